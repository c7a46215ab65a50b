package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementação do porto MembershipRepository sobre PostgreSQL.
type MembershipRepo struct {
	db dbtx
}

// NewMembershipRepository constrói o adaptador sobre o pool.
func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepo {
	return &MembershipRepo{db: pool}
}

// Criar insere o vínculo e devolve o id gerado em m.ID.
func (r *MembershipRepo) Criar(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (equipe_id, atleta_id)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, m.EquipeID, m.AtletaID).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// BuscarPorID vínculo por id, ou nil.
func (r *MembershipRepo) BuscarPorID(ctx context.Context, id int) (*entity.Membership, error) {
	var m entity.Membership
	err := r.db.QueryRow(ctx, `SELECT id, equipe_id, atleta_id FROM memberships WHERE id = $1`, id).
		Scan(&m.ID, &m.EquipeID, &m.AtletaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar membership: %w", err)
	}
	return &m, nil
}

// BuscarPorEquipeAtleta vínculo pelo par (equipe, atleta), ou nil.
func (r *MembershipRepo) BuscarPorEquipeAtleta(ctx context.Context, equipeID, atletaID int) (*entity.Membership, error) {
	var m entity.Membership
	err := r.db.QueryRow(ctx,
		`SELECT id, equipe_id, atleta_id FROM memberships WHERE equipe_id = $1 AND atleta_id = $2`,
		equipeID, atletaID,
	).Scan(&m.ID, &m.EquipeID, &m.AtletaID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar membership por equipe e atleta: %w", err)
	}
	return &m, nil
}

// BuscarEquipeDoAtleta equipe de uma membership do atleta, ou 0 se não há.
func (r *MembershipRepo) BuscarEquipeDoAtleta(ctx context.Context, atletaID int) (int, error) {
	var equipeID int
	err := r.db.QueryRow(ctx,
		`SELECT equipe_id FROM memberships WHERE atleta_id = $1 ORDER BY id LIMIT 1`,
		atletaID,
	).Scan(&equipeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("buscar equipe do atleta: %w", err)
	}
	return equipeID, nil
}

// Listar vínculos cujas equipes pertencem à organização, com filtros opcionais.
func (r *MembershipRepo) Listar(ctx context.Context, orgID uuid.UUID, f repository.FiltroMembership) ([]*entity.Membership, error) {
	query := `
		SELECT m.id, m.equipe_id, m.atleta_id
		FROM memberships m
		JOIN equipes e ON e.id = m.equipe_id
		WHERE e.organization_id = $1`
	args := []any{orgID}
	if f.EquipeID != nil {
		args = append(args, *f.EquipeID)
		query += fmt.Sprintf(" AND m.equipe_id = $%d", len(args))
	}
	if f.AtletaID != nil {
		args = append(args, *f.AtletaID)
		query += fmt.Sprintf(" AND m.atleta_id = $%d", len(args))
	}
	query += " ORDER BY m.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar memberships: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.EquipeID, &m.AtletaID); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Remover apaga o vínculo.
func (r *MembershipRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover membership: %w", err)
	}
	return nil
}
