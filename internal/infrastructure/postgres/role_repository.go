package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo leitura de roles sobre PostgreSQL.
type RoleRepo struct {
	db dbtx
}

// NewRoleRepository constrói o adaptador.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{db: pool}
}

// BuscarPorID role por id, ou nil.
func (r *RoleRepo) BuscarPorID(ctx context.Context, id int) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(ctx, `SELECT role_id, role_name FROM roles WHERE role_id = $1`, id).
		Scan(&role.RoleID, &role.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar role: %w", err)
	}
	return &role, nil
}

// BuscarPorNome role por nome, ou nil.
func (r *RoleRepo) BuscarPorNome(ctx context.Context, nome string) (*entity.Role, error) {
	var role entity.Role
	err := r.db.QueryRow(ctx, `SELECT role_id, role_name FROM roles WHERE role_name = $1`, nome).
		Scan(&role.RoleID, &role.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar role por nome: %w", err)
	}
	return &role, nil
}

// Listar todas as roles.
func (r *RoleRepo) Listar(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT role_id, role_name FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.RoleID, &role.RoleName); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
