package usecase

import (
	"context"

	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// MembershipUseCase vínculos atleta-equipe.
type MembershipUseCase struct {
	memberships repository.MembershipRepository
	equipes     repository.EquipeRepository
	atletas     repository.AtletaRepository
	escopo      *authz.TeamScope
}

// NewMembershipUseCase constrói o use case.
func NewMembershipUseCase(
	memberships repository.MembershipRepository,
	equipes repository.EquipeRepository,
	atletas repository.AtletaRepository,
	escopo *authz.TeamScope,
) *MembershipUseCase {
	return &MembershipUseCase{memberships: memberships, equipes: equipes, atletas: atletas, escopo: escopo}
}

// Criar idempotente: vínculo já existente é devolvido sem erro. Equipe e
// atleta precisam existir na organização do solicitante; treinador só opera
// em equipes em que é staff.
func (uc *MembershipUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.MembershipRequest) (*dto.MembershipResponse, error) {
	if atual.RoleName() == entity.RoleAtleta {
		return nil, domain.ErrPermissaoNegada
	}

	equipe, err := uc.equipes.BuscarPorID(ctx, in.EquipeID)
	if err != nil {
		return nil, err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	atleta, err := uc.atletas.BuscarPorID(ctx, in.AtletaID)
	if err != nil {
		return nil, err
	}
	if atleta == nil || atleta.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}

	if atual.RoleName() == entity.RoleTreinador {
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, in.EquipeID); err != nil {
			return nil, err
		}
	}

	existente, err := uc.memberships.BuscarPorEquipeAtleta(ctx, in.EquipeID, in.AtletaID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return dto.ToMembershipResponse(existente), nil
	}

	m := &entity.Membership{EquipeID: in.EquipeID, AtletaID: in.AtletaID}
	if err := uc.memberships.Criar(ctx, m); err != nil {
		return nil, err
	}
	return dto.ToMembershipResponse(m), nil
}

// Listar atleta só os próprios vínculos; treinador só os das suas equipes.
func (uc *MembershipUseCase) Listar(ctx context.Context, atual *entity.Usuario, f repository.FiltroMembership) ([]*dto.MembershipResponse, error) {
	switch atual.RoleName() {
	case entity.RoleAtleta:
		proprio, err := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, atual.OrganizationID)
		if err != nil {
			return nil, err
		}
		if proprio == nil {
			return []*dto.MembershipResponse{}, nil
		}
		f.AtletaID = &proprio.ID
	case entity.RoleTreinador:
		// Filtro de equipe explícito fora do escopo de staff é negado.
		if f.EquipeID != nil {
			if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, *f.EquipeID); err != nil {
				return nil, err
			}
		}
	}

	list, err := uc.memberships.Listar(ctx, atual.OrganizationID, f)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MembershipResponse, 0, len(list))
	for _, m := range list {
		if atual.RoleName() == entity.RoleTreinador && f.EquipeID == nil {
			ok, err := uc.escopo.EhStaffDaEquipe(ctx, atual.ID, m.EquipeID)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, dto.ToMembershipResponse(m))
	}
	return out, nil
}

// Remover atleta nunca; treinador só nas suas equipes.
func (uc *MembershipUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	m, err := uc.memberships.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNaoEncontrado
	}
	equipe, err := uc.equipes.BuscarPorID(ctx, m.EquipeID)
	if err != nil {
		return err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return domain.ErrNaoEncontrado
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, m.EquipeID); err != nil {
			return err
		}
	}
	return uc.memberships.Remover(ctx, id)
}
