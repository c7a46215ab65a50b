package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// EquipeRepository porta de persistência de Equipe.
type EquipeRepository interface {
	Criar(ctx context.Context, e *entity.Equipe) error
	BuscarPorID(ctx context.Context, id int) (*entity.Equipe, error)
	ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Equipe, error)

	// ListarPorMembroAtleta equipes da organização das quais o atleta é membro.
	ListarPorMembroAtleta(ctx context.Context, orgID uuid.UUID, atletaID int, limit, offset int) ([]*entity.Equipe, error)

	// ListarPorStaff equipes da organização nas quais o usuário é staff.
	ListarPorStaff(ctx context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Equipe, error)

	Atualizar(ctx context.Context, e *entity.Equipe) error
	Remover(ctx context.Context, id int) error
}
