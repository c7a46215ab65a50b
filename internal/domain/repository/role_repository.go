package repository

import (
	"context"

	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// RoleRepository porta de persistência de Role (leitura).
type RoleRepository interface {
	BuscarPorID(ctx context.Context, id int) (*entity.Role, error)
	BuscarPorNome(ctx context.Context, nome string) (*entity.Role, error)
	Listar(ctx context.Context) ([]*entity.Role, error)
}
