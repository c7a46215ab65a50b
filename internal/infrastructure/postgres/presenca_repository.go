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

var _ repository.PresencaRepository = (*PresencaRepo)(nil)

// PresencaRepo implementação do porto PresencaRepository sobre PostgreSQL.
type PresencaRepo struct {
	db dbtx
}

// NewPresencaRepository constrói o adaptador sobre o pool.
func NewPresencaRepository(pool *pgxpool.Pool) *PresencaRepo {
	return &PresencaRepo{db: pool}
}

const colunasPresenca = `id, atleta_id, equipe_id, data, tipo, presente, obs`

func scanPresenca(row pgx.Row) (*entity.Presenca, error) {
	var p entity.Presenca
	err := row.Scan(&p.ID, &p.AtletaID, &p.EquipeID, &p.Data, &p.Tipo, &p.Presente, &p.Obs)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Criar insere a presença e devolve o id gerado em p.ID.
func (r *PresencaRepo) Criar(ctx context.Context, p *entity.Presenca) error {
	query := `
		INSERT INTO presencas (atleta_id, equipe_id, data, tipo, presente, obs)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, p.AtletaID, p.EquipeID, p.Data, p.Tipo, p.Presente, p.Obs).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert presenca: %w", err)
	}
	return nil
}

// BuscarPorID presença por id, ou nil.
func (r *PresencaRepo) BuscarPorID(ctx context.Context, id int) (*entity.Presenca, error) {
	p, err := scanPresenca(r.db.QueryRow(ctx, `SELECT `+colunasPresenca+` FROM presencas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar presenca: %w", err)
	}
	return p, nil
}

// Listar presenças cujas equipes pertencem à organização, com filtros e paginação.
func (r *PresencaRepo) Listar(ctx context.Context, orgID uuid.UUID, f repository.FiltroPresenca, limit, offset int) ([]*entity.Presenca, error) {
	query := `
		SELECT p.id, p.atleta_id, p.equipe_id, p.data, p.tipo, p.presente, p.obs
		FROM presencas p
		JOIN equipes e ON e.id = p.equipe_id
		WHERE e.organization_id = $1`
	args := []any{orgID}
	if f.EquipeID != nil {
		args = append(args, *f.EquipeID)
		query += fmt.Sprintf(" AND p.equipe_id = $%d", len(args))
	}
	if f.AtletaID != nil {
		args = append(args, *f.AtletaID)
		query += fmt.Sprintf(" AND p.atleta_id = $%d", len(args))
	}
	if f.Data != nil {
		args = append(args, *f.Data)
		query += fmt.Sprintf(" AND p.data::date = $%d::date", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY p.data DESC, p.id LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar presencas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Presenca
	for rows.Next() {
		p, err := scanPresenca(rows)
		if err != nil {
			return nil, fmt.Errorf("scan presenca: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListarPorEquipeComAtleta presenças da equipe com o nome do atleta, por data.
func (r *PresencaRepo) ListarPorEquipeComAtleta(ctx context.Context, equipeID int) ([]repository.ItemPresencaEquipe, error) {
	query := `
		SELECT p.id, p.atleta_id, p.equipe_id, p.data, p.tipo, p.presente, p.obs, a.nome
		FROM presencas p
		JOIN atletas a ON a.id = p.atleta_id
		WHERE p.equipe_id = $1
		ORDER BY p.data, a.nome`
	rows, err := r.db.Query(ctx, query, equipeID)
	if err != nil {
		return nil, fmt.Errorf("listar presencas da equipe: %w", err)
	}
	defer rows.Close()
	var itens []repository.ItemPresencaEquipe
	for rows.Next() {
		var item repository.ItemPresencaEquipe
		p := &item.Presenca
		if err := rows.Scan(&p.ID, &p.AtletaID, &p.EquipeID, &p.Data, &p.Tipo, &p.Presente, &p.Obs, &item.Atleta); err != nil {
			return nil, fmt.Errorf("scan presenca da equipe: %w", err)
		}
		itens = append(itens, item)
	}
	return itens, rows.Err()
}

// Atualizar grava os campos mutáveis da presença.
func (r *PresencaRepo) Atualizar(ctx context.Context, p *entity.Presenca) error {
	query := `UPDATE presencas SET data = $2, tipo = $3, presente = $4, obs = $5 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.Data, p.Tipo, p.Presente, p.Obs)
	if err != nil {
		return fmt.Errorf("atualizar presenca: %w", err)
	}
	return nil
}

// Remover apaga a presença.
func (r *PresencaRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM presencas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover presenca: %w", err)
	}
	return nil
}
