package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// FiltroTeamStaff filtros opcionais de listagem.
type FiltroTeamStaff struct {
	EquipeID *int
	UserID   *uuid.UUID
}

// TeamStaffRepository porta de persistência de TeamStaff.
type TeamStaffRepository interface {
	Criar(ctx context.Context, ts *entity.TeamStaff) error
	BuscarPorID(ctx context.Context, id int) (*entity.TeamStaff, error)
	Buscar(ctx context.Context, equipeID int, userID uuid.UUID, staffRole string) (*entity.TeamStaff, error)

	// ExisteParaUsuario verificação de escopo: o usuário é staff da equipe?
	ExisteParaUsuario(ctx context.Context, equipeID int, userID uuid.UUID) (bool, error)

	// Listar linhas cujas equipes pertencem à organização.
	Listar(ctx context.Context, orgID uuid.UUID, f FiltroTeamStaff) ([]*entity.TeamStaff, error)

	Remover(ctx context.Context, id int) error
}
