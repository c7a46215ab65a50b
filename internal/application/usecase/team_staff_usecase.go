package usecase

import (
	"context"

	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// TeamStaffUseCase administra a relação staff-equipe. Conceder e revogar é
// exclusivo de dirigente/coordenador: a relação é o insumo das decisões de
// escopo do treinador.
type TeamStaffUseCase struct {
	staff    repository.TeamStaffRepository
	equipes  repository.EquipeRepository
	usuarios repository.UsuarioRepository
}

// NewTeamStaffUseCase constrói o use case.
func NewTeamStaffUseCase(staff repository.TeamStaffRepository, equipes repository.EquipeRepository, usuarios repository.UsuarioRepository) *TeamStaffUseCase {
	return &TeamStaffUseCase{staff: staff, equipes: equipes, usuarios: usuarios}
}

// Criar idempotente: linha já existente é devolvida sem erro.
func (uc *TeamStaffUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.TeamStaffRequest) (*dto.TeamStaffResponse, error) {
	if atual.Role == nil || !atual.Role.EhAdministrativa() {
		return nil, domain.ErrPermissaoNegada
	}

	equipe, err := uc.equipes.BuscarPorID(ctx, in.EquipeID)
	if err != nil {
		return nil, err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	usuario, err := uc.usuarios.BuscarPorID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if usuario == nil || usuario.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}

	existente, err := uc.staff.Buscar(ctx, in.EquipeID, in.UserID, in.StaffRole)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return dto.ToTeamStaffResponse(existente), nil
	}

	ts := &entity.TeamStaff{EquipeID: in.EquipeID, UserID: in.UserID, StaffRole: in.StaffRole}
	if err := uc.staff.Criar(ctx, ts); err != nil {
		return nil, err
	}
	return dto.ToTeamStaffResponse(ts), nil
}

// Listar atleta é negado; treinador só enxerga as próprias linhas.
func (uc *TeamStaffUseCase) Listar(ctx context.Context, atual *entity.Usuario, f repository.FiltroTeamStaff) ([]*dto.TeamStaffResponse, error) {
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return nil, domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		id := atual.ID
		f.UserID = &id
	}

	list, err := uc.staff.Listar(ctx, atual.OrganizationID, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TeamStaffResponse, 0, len(list))
	for _, ts := range list {
		out = append(out, dto.ToTeamStaffResponse(ts))
	}
	return out, nil
}

// Remover exclusivo de dirigente/coordenador; linha de outra organização
// responde como inexistente.
func (uc *TeamStaffUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	ts, err := uc.staff.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if ts == nil {
		return domain.ErrNaoEncontrado
	}
	equipe, err := uc.equipes.BuscarPorID(ctx, ts.EquipeID)
	if err != nil {
		return err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return domain.ErrNaoEncontrado
	}
	if atual.Role == nil || !atual.Role.EhAdministrativa() {
		return domain.ErrPermissaoNegada
	}
	return uc.staff.Remover(ctx, id)
}
