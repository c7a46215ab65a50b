package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

var _ repository.AtletaRepository = (*AtletaRepo)(nil)

// AtletaRepo implementação do porto AtletaRepository sobre PostgreSQL.
type AtletaRepo struct {
	db dbtx
}

// NewAtletaRepository constrói o adaptador sobre o pool.
func NewAtletaRepository(pool *pgxpool.Pool) *AtletaRepo {
	return &AtletaRepo{db: pool}
}

const colunasAtleta = `id, nome, email, nascimento, posicao, altura, peso, organization_id`

func scanAtleta(row pgx.Row) (*entity.Atleta, error) {
	var a entity.Atleta
	err := row.Scan(&a.ID, &a.Nome, &a.Email, &a.Nascimento, &a.Posicao, &a.Altura, &a.Peso, &a.OrganizationID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Criar insere o atleta e devolve o id gerado em a.ID.
func (r *AtletaRepo) Criar(ctx context.Context, a *entity.Atleta) error {
	query := `
		INSERT INTO atletas (nome, email, nascimento, posicao, altura, peso, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(ctx, query, a.Nome, a.Email, a.Nascimento, a.Posicao, a.Altura, a.Peso, a.OrganizationID).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert atleta: %w", err)
	}
	return nil
}

// BuscarPorID atleta por id, ou nil.
func (r *AtletaRepo) BuscarPorID(ctx context.Context, id int) (*entity.Atleta, error) {
	a, err := scanAtleta(r.db.QueryRow(ctx, `SELECT `+colunasAtleta+` FROM atletas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar atleta: %w", err)
	}
	return a, nil
}

// BuscarPorEmail atleta por email (único no sistema), ou nil.
func (r *AtletaRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Atleta, error) {
	a, err := scanAtleta(r.db.QueryRow(ctx, `SELECT `+colunasAtleta+` FROM atletas WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar atleta por email: %w", err)
	}
	return a, nil
}

// BuscarPorEmailNaOrganizacao atleta por email dentro da organização, ou nil.
func (r *AtletaRepo) BuscarPorEmailNaOrganizacao(ctx context.Context, email string, orgID uuid.UUID) (*entity.Atleta, error) {
	query := `SELECT ` + colunasAtleta + ` FROM atletas WHERE email = $1 AND organization_id = $2`
	a, err := scanAtleta(r.db.QueryRow(ctx, query, email, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar atleta por email na organização: %w", err)
	}
	return a, nil
}

// ListarPorOrganizacao atletas da organização com paginação.
func (r *AtletaRepo) ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Atleta, error) {
	query := `
		SELECT ` + colunasAtleta + ` FROM atletas
		WHERE organization_id = $1
		ORDER BY id LIMIT $2 OFFSET $3`
	return r.listar(ctx, query, orgID, limit, offset)
}

// ListarPorStaff atletas com membership em equipes nas quais o usuário é staff.
func (r *AtletaRepo) ListarPorStaff(ctx context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Atleta, error) {
	query := `
		SELECT DISTINCT a.id, a.nome, a.email, a.nascimento, a.posicao, a.altura, a.peso, a.organization_id
		FROM atletas a
		JOIN memberships m ON m.atleta_id = a.id
		JOIN team_staff ts ON ts.equipe_id = m.equipe_id
		WHERE a.organization_id = $1 AND ts.user_id = $2
		ORDER BY a.id LIMIT $3 OFFSET $4`
	return r.listar(ctx, query, orgID, usuarioID, limit, offset)
}

// Atualizar grava os campos mutáveis do atleta.
func (r *AtletaRepo) Atualizar(ctx context.Context, a *entity.Atleta) error {
	query := `
		UPDATE atletas SET nome = $2, email = $3, nascimento = $4, posicao = $5, altura = $6, peso = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, a.ID, a.Nome, a.Email, a.Nascimento, a.Posicao, a.Altura, a.Peso)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("atualizar atleta: %w", err)
	}
	return nil
}

// Remover apaga o atleta; memberships e presenças caem por cascata.
func (r *AtletaRepo) Remover(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM atletas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remover atleta: %w", err)
	}
	return nil
}

func (r *AtletaRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Atleta, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar atletas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Atleta
	for rows.Next() {
		a, err := scanAtleta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan atleta: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
