package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// EquipeUseCase CRUD de equipes com escopo por role: atleta só lê as equipes
// das quais é membro, treinador só opera nas equipes em que é staff,
// dirigente/coordenador veem toda a organização.
type EquipeUseCase struct {
	equipes     repository.EquipeRepository
	usuarios    repository.UsuarioRepository
	atletas     repository.AtletaRepository
	memberships repository.MembershipRepository
	escopo      *authz.TeamScope
	tx          EquipeTxRunner
}

// NewEquipeUseCase constrói o use case.
func NewEquipeUseCase(
	equipes repository.EquipeRepository,
	usuarios repository.UsuarioRepository,
	atletas repository.AtletaRepository,
	memberships repository.MembershipRepository,
	escopo *authz.TeamScope,
	tx EquipeTxRunner,
) *EquipeUseCase {
	return &EquipeUseCase{
		equipes:     equipes,
		usuarios:    usuarios,
		atletas:     atletas,
		memberships: memberships,
		escopo:      escopo,
		tx:          tx,
	}
}

// Criar cria a equipe. Treinador criando vira o próprio treinador da equipe e
// ganha a linha de staff; as duas escritas são na mesma transação.
func (uc *EquipeUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.EquipeRequest) (*dto.EquipeResponse, error) {
	if atual.RoleName() == entity.RoleAtleta {
		return nil, domain.ErrPermissaoNegada
	}

	var treinadorID *uuid.UUID
	if atual.RoleName() == entity.RoleTreinador {
		id := atual.ID
		treinadorID = &id
	} else if in.TreinadorID != nil {
		treinador, err := uc.usuarios.BuscarPorID(ctx, *in.TreinadorID)
		if err != nil {
			return nil, err
		}
		if treinador == nil || treinador.OrganizationID != atual.OrganizationID {
			return nil, domain.ErrNaoEncontrado
		}
		treinadorID = in.TreinadorID
	}

	e := &entity.Equipe{
		Nome:           in.Nome,
		Categoria:      in.Categoria,
		OrganizationID: atual.OrganizationID,
		TreinadorID:    treinadorID,
	}
	err := uc.tx.Run(ctx, func(equipes repository.EquipeRepository, staff repository.TeamStaffRepository) error {
		if err := equipes.Criar(ctx, e); err != nil {
			return err
		}
		if treinadorID == nil {
			return nil
		}
		existente, err := staff.Buscar(ctx, e.ID, *treinadorID, entity.RoleTreinador)
		if err != nil {
			return err
		}
		if existente != nil {
			return nil
		}
		return staff.Criar(ctx, &entity.TeamStaff{EquipeID: e.ID, UserID: *treinadorID, StaffRole: entity.RoleTreinador})
	})
	if err != nil {
		return nil, err
	}
	return dto.ToEquipeResponse(e), nil
}

// Listar equipes visíveis para o solicitante, conforme a role.
func (uc *EquipeUseCase) Listar(ctx context.Context, atual *entity.Usuario, page dto.PageRequest) ([]*dto.EquipeResponse, error) {
	page.DefaultPage()
	org := atual.OrganizationID

	var (
		list []*entity.Equipe
		err  error
	)
	switch atual.RoleName() {
	case entity.RoleAtleta:
		atleta, aerr := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, org)
		if aerr != nil {
			return nil, aerr
		}
		if atleta == nil {
			return []*dto.EquipeResponse{}, nil
		}
		list, err = uc.equipes.ListarPorMembroAtleta(ctx, org, atleta.ID, page.Limit, page.Offset)
	case entity.RoleTreinador:
		list, err = uc.equipes.ListarPorStaff(ctx, org, atual.ID, page.Limit, page.Offset)
	default:
		list, err = uc.equipes.ListarPorOrganizacao(ctx, org, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToEquipeResponse(e))
	}
	return out, nil
}

// BuscarPorID atleta precisa de membership na equipe; treinador precisa ser
// staff; outra organização responde como inexistente.
func (uc *EquipeUseCase) BuscarPorID(ctx context.Context, atual *entity.Usuario, id int) (*dto.EquipeResponse, error) {
	e, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		atleta, err := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, atual.OrganizationID)
		if err != nil {
			return nil, err
		}
		if atleta == nil {
			return nil, domain.ErrPermissaoNegada
		}
		m, err := uc.memberships.BuscarPorEquipeAtleta(ctx, id, atleta.ID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrPermissaoNegada
		}
	case entity.RoleTreinador:
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, id); err != nil {
			return nil, err
		}
	}
	return dto.ToEquipeResponse(e), nil
}

// Atualizar atleta nunca; treinador só nas equipes em que é staff.
func (uc *EquipeUseCase) Atualizar(ctx context.Context, atual *entity.Usuario, id int, in dto.EquipeRequest) (*dto.EquipeResponse, error) {
	e, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	if err := uc.exigirMutacao(ctx, atual, id); err != nil {
		return nil, err
	}

	var treinadorID *uuid.UUID
	if in.TreinadorID != nil {
		treinador, err := uc.usuarios.BuscarPorID(ctx, *in.TreinadorID)
		if err != nil {
			return nil, err
		}
		if treinador == nil {
			return nil, domain.ErrNaoEncontrado
		}
		if treinador.OrganizationID != atual.OrganizationID {
			return nil, domain.ErrPermissaoNegada
		}
		treinadorID = in.TreinadorID
	}

	e.Nome = in.Nome
	e.Categoria = in.Categoria
	e.TreinadorID = treinadorID

	if err := uc.equipes.Atualizar(ctx, e); err != nil {
		return nil, err
	}
	return dto.ToEquipeResponse(e), nil
}

// Remover mesma regra de mutação do Atualizar.
func (uc *EquipeUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	if _, err := uc.buscarNaOrganizacao(ctx, atual, id); err != nil {
		return err
	}
	if err := uc.exigirMutacao(ctx, atual, id); err != nil {
		return err
	}
	return uc.equipes.Remover(ctx, id)
}

func (uc *EquipeUseCase) buscarNaOrganizacao(ctx context.Context, atual *entity.Usuario, id int) (*entity.Equipe, error) {
	e, err := uc.equipes.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	return e, nil
}

func (uc *EquipeUseCase) exigirMutacao(ctx context.Context, atual *entity.Usuario, equipeID int) error {
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		return uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, equipeID)
	}
	return nil
}
