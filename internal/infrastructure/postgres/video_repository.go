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

var _ repository.VideoRepository = (*VideoRepo)(nil)

// VideoRepo implementação do porto VideoRepository sobre PostgreSQL.
type VideoRepo struct {
	db dbtx
}

// NewVideoRepository constrói o adaptador sobre o pool.
func NewVideoRepository(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{db: pool}
}

// Criar insere o vídeo e devolve o id gerado em v.ID.
func (r *VideoRepo) Criar(ctx context.Context, v *entity.Video) error {
	query := `
		INSERT INTO videos (url, equipe_id, atleta_id, criado_em)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, v.URL, v.EquipeID, v.AtletaID, v.CriadoEm).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

// BuscarPorID vídeo por id, ou nil.
func (r *VideoRepo) BuscarPorID(ctx context.Context, id int) (*entity.Video, error) {
	var v entity.Video
	err := r.db.QueryRow(ctx, `SELECT id, url, equipe_id, atleta_id, criado_em FROM videos WHERE id = $1`, id).
		Scan(&v.ID, &v.URL, &v.EquipeID, &v.AtletaID, &v.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar video: %w", err)
	}
	return &v, nil
}

// Listar vídeos cujas equipes pertencem à organização, com filtros e paginação.
// MembroAtletaID restringe às equipes das quais o atleta é membro.
func (r *VideoRepo) Listar(ctx context.Context, orgID uuid.UUID, f repository.FiltroVideo, limit, offset int) ([]*entity.Video, error) {
	query := `
		SELECT v.id, v.url, v.equipe_id, v.atleta_id, v.criado_em
		FROM videos v
		JOIN equipes e ON e.id = v.equipe_id
		WHERE e.organization_id = $1`
	args := []any{orgID}
	if f.EquipeID != nil {
		args = append(args, *f.EquipeID)
		query += fmt.Sprintf(" AND v.equipe_id = $%d", len(args))
	}
	if f.AtletaID != nil {
		args = append(args, *f.AtletaID)
		query += fmt.Sprintf(" AND v.atleta_id = $%d", len(args))
	}
	if f.MembroAtletaID != nil {
		args = append(args, *f.MembroAtletaID)
		query += fmt.Sprintf(" AND v.equipe_id IN (SELECT equipe_id FROM memberships WHERE atleta_id = $%d)", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY v.criado_em DESC, v.id LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar videos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Video
	for rows.Next() {
		var v entity.Video
		if err := rows.Scan(&v.ID, &v.URL, &v.EquipeID, &v.AtletaID, &v.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Remover apaga o vídeo.
func (r *VideoRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover video: %w", err)
	}
	return nil
}
