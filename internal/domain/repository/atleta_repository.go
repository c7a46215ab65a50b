package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// AtletaRepository porta de persistência de Atleta.
type AtletaRepository interface {
	Criar(ctx context.Context, a *entity.Atleta) error
	BuscarPorID(ctx context.Context, id int) (*entity.Atleta, error)

	// BuscarPorEmail email de atleta é único no sistema inteiro.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Atleta, error)

	// BuscarPorEmailNaOrganizacao resolve o registro de atleta da própria
	// conta (escopo da role atleta).
	BuscarPorEmailNaOrganizacao(ctx context.Context, email string, orgID uuid.UUID) (*entity.Atleta, error)

	ListarPorOrganizacao(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]*entity.Atleta, error)

	// ListarPorStaff atletas com membership em equipes nas quais o usuário é staff.
	ListarPorStaff(ctx context.Context, orgID uuid.UUID, usuarioID uuid.UUID, limit, offset int) ([]*entity.Atleta, error)

	Atualizar(ctx context.Context, a *entity.Atleta) error
	Remover(ctx context.Context, id int) error
}
