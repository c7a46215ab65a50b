package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// FiltroMembership filtros opcionais de listagem.
type FiltroMembership struct {
	EquipeID *int
	AtletaID *int
}

// MembershipRepository porta de persistência de Membership.
type MembershipRepository interface {
	Criar(ctx context.Context, m *entity.Membership) error
	BuscarPorID(ctx context.Context, id int) (*entity.Membership, error)
	BuscarPorEquipeAtleta(ctx context.Context, equipeID, atletaID int) (*entity.Membership, error)

	// BuscarEquipeDoAtleta equipe de uma membership do atleta, ou 0 se não há.
	BuscarEquipeDoAtleta(ctx context.Context, atletaID int) (int, error)

	// Listar memberships cujas equipes pertencem à organização.
	Listar(ctx context.Context, orgID uuid.UUID, f FiltroMembership) ([]*entity.Membership, error)

	Remover(ctx context.Context, id int) error
}
