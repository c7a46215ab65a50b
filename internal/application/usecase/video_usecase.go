package usecase

import (
	"context"
	"time"

	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// VideoUseCase links de vídeo por equipe. Treinador opera só nas equipes em
// que é staff; atleta só lê vídeos das equipes das quais é membro.
type VideoUseCase struct {
	videos      repository.VideoRepository
	equipes     repository.EquipeRepository
	atletas     repository.AtletaRepository
	memberships repository.MembershipRepository
	escopo      *authz.TeamScope
	agora       func() time.Time
}

// NewVideoUseCase constrói o use case.
func NewVideoUseCase(
	videos repository.VideoRepository,
	equipes repository.EquipeRepository,
	atletas repository.AtletaRepository,
	memberships repository.MembershipRepository,
	escopo *authz.TeamScope,
) *VideoUseCase {
	return &VideoUseCase{
		videos:      videos,
		equipes:     equipes,
		atletas:     atletas,
		memberships: memberships,
		escopo:      escopo,
		agora:       time.Now,
	}
}

// Criar atleta nunca; treinador precisa de staff na equipe; alvo em outra
// organização responde como inexistente.
func (uc *VideoUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.VideoRequest) (*dto.VideoResponse, error) {
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return nil, domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, in.EquipeID); err != nil {
			return nil, err
		}
	}

	equipe, err := uc.equipes.BuscarPorID(ctx, in.EquipeID)
	if err != nil {
		return nil, err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	if in.AtletaID != nil {
		atleta, err := uc.atletas.BuscarPorID(ctx, *in.AtletaID)
		if err != nil {
			return nil, err
		}
		if atleta == nil || atleta.OrganizationID != atual.OrganizationID {
			return nil, domain.ErrNaoEncontrado
		}
	}

	v := &entity.Video{URL: in.URL, EquipeID: in.EquipeID, AtletaID: in.AtletaID, CriadoEm: uc.agora()}
	if err := uc.videos.Criar(ctx, v); err != nil {
		return nil, err
	}
	return dto.ToVideoResponse(v), nil
}

// Listar atleta restrito às equipes da própria membership; treinador às suas
// equipes de staff.
func (uc *VideoUseCase) Listar(ctx context.Context, atual *entity.Usuario, f repository.FiltroVideo, page dto.PageRequest) ([]*dto.VideoResponse, error) {
	page.DefaultPage()

	switch atual.RoleName() {
	case entity.RoleAtleta:
		proprio, err := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, atual.OrganizationID)
		if err != nil {
			return nil, err
		}
		if proprio == nil {
			return []*dto.VideoResponse{}, nil
		}
		f.MembroAtletaID = &proprio.ID
	case entity.RoleTreinador:
		if f.EquipeID != nil {
			if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, *f.EquipeID); err != nil {
				return nil, err
			}
		}
	}

	list, err := uc.videos.Listar(ctx, atual.OrganizationID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VideoResponse, 0, len(list))
	for _, v := range list {
		if atual.RoleName() == entity.RoleTreinador && f.EquipeID == nil {
			ok, err := uc.escopo.EhStaffDaEquipe(ctx, atual.ID, v.EquipeID)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, dto.ToVideoResponse(v))
	}
	return out, nil
}

// Remover atleta nunca; treinador só nas suas equipes.
func (uc *VideoUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	v, err := uc.videos.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNaoEncontrado
	}
	equipe, err := uc.equipes.BuscarPorID(ctx, v.EquipeID)
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
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, v.EquipeID); err != nil {
			return err
		}
	}
	return uc.videos.Remover(ctx, id)
}
