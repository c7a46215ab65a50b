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

var _ repository.EquipeRepository = (*EquipeRepo)(nil)

// EquipeRepo implementação do porto EquipeRepository sobre PostgreSQL.
type EquipeRepo struct {
	db dbtx
}

// NewEquipeRepository constrói o adaptador sobre o pool.
func NewEquipeRepository(pool *pgxpool.Pool) *EquipeRepo {
	return &EquipeRepo{db: pool}
}

// NewEquipeRepositoryTx variante atada a uma transação.
func NewEquipeRepositoryTx(tx pgx.Tx) *EquipeRepo {
	return &EquipeRepo{db: tx}
}

// Criar insere a equipe e devolve o id gerado em e.ID.
func (r *EquipeRepo) Criar(ctx context.Context, e *entity.Equipe) error {
	query := `
		INSERT INTO equipes (nome, categoria, organization_id, treinador_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, e.Nome, e.Categoria, e.OrganizationID, e.TreinadorID).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert equipe: %w", err)
	}
	return nil
}

// BuscarPorID equipe por id, ou nil.
func (r *EquipeRepo) BuscarPorID(ctx context.Context, id int) (*entity.Equipe, error) {
	query := `SELECT id, nome, categoria, organization_id, treinador_id FROM equipes WHERE id = $1`
	var e entity.Equipe
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Nome, &e.Categoria, &e.OrganizationID, &e.TreinadorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar equipe: %w", err)
	}
	return &e, nil
}

// ListarPorOrganizacao equipes da organização com paginação.
func (r *EquipeRepo) ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Equipe, error) {
	query := `
		SELECT id, nome, categoria, organization_id, treinador_id
		FROM equipes WHERE organization_id = $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.listar(ctx, query, orgID, limit, offset)
}

// ListarPorMembroAtleta equipes das quais o atleta é membro.
func (r *EquipeRepo) ListarPorMembroAtleta(ctx context.Context, orgID uuid.UUID, atletaID int, limit, offset int) ([]*entity.Equipe, error) {
	query := `
		SELECT e.id, e.nome, e.categoria, e.organization_id, e.treinador_id
		FROM equipes e
		JOIN memberships m ON m.equipe_id = e.id
		WHERE e.organization_id = $1 AND m.atleta_id = $2
		ORDER BY e.id LIMIT $3 OFFSET $4`
	return r.listar(ctx, query, orgID, atletaID, limit, offset)
}

// ListarPorStaff equipes nas quais o usuário é staff.
func (r *EquipeRepo) ListarPorStaff(ctx context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Equipe, error) {
	query := `
		SELECT DISTINCT e.id, e.nome, e.categoria, e.organization_id, e.treinador_id
		FROM equipes e
		JOIN team_staff ts ON ts.equipe_id = e.id
		WHERE e.organization_id = $1 AND ts.user_id = $2
		ORDER BY e.id LIMIT $3 OFFSET $4`
	return r.listar(ctx, query, orgID, usuarioID, limit, offset)
}

// Atualizar grava os campos mutáveis da equipe.
func (r *EquipeRepo) Atualizar(ctx context.Context, e *entity.Equipe) error {
	query := `UPDATE equipes SET nome = $2, categoria = $3, treinador_id = $4 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, e.ID, e.Nome, e.Categoria, e.TreinadorID)
	if err != nil {
		return fmt.Errorf("atualizar equipe: %w", err)
	}
	return nil
}

// Remover apaga a equipe; memberships e staff caem por cascata.
func (r *EquipeRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM equipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover equipe: %w", err)
	}
	return nil
}

func (r *EquipeRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Equipe, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar equipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipe
	for rows.Next() {
		var e entity.Equipe
		if err := rows.Scan(&e.ID, &e.Nome, &e.Categoria, &e.OrganizationID, &e.TreinadorID); err != nil {
			return nil, fmt.Errorf("scan equipe: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
