package usecase

import (
	"context"

	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
	"github.com/seu-usuario/equipe-pro/pkg/textutil"
)

// AtletaUseCase CRUD de atletas. Conta com role atleta só enxerga o próprio
// registro (vínculo por igualdade de email); treinador só os atletas das
// equipes em que é staff.
type AtletaUseCase struct {
	atletas     repository.AtletaRepository
	memberships repository.MembershipRepository
	escopo      *authz.TeamScope
}

// NewAtletaUseCase constrói o use case.
func NewAtletaUseCase(atletas repository.AtletaRepository, memberships repository.MembershipRepository, escopo *authz.TeamScope) *AtletaUseCase {
	return &AtletaUseCase{atletas: atletas, memberships: memberships, escopo: escopo}
}

// Criar email de atleta é único no sistema.
func (uc *AtletaUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.AtletaRequest) (*dto.AtletaResponse, error) {
	if atual.RoleName() == entity.RoleAtleta {
		return nil, domain.ErrPermissaoNegada
	}
	existente, err := uc.atletas.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	a := &entity.Atleta{
		Nome:           in.Nome,
		Email:          in.Email,
		Nascimento:     in.Nascimento,
		Posicao:        in.Posicao,
		Altura:         in.Altura,
		Peso:           in.Peso,
		OrganizationID: atual.OrganizationID,
	}
	if err := uc.atletas.Criar(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToAtletaResponse(a), nil
}

// Listar atletas visíveis conforme a role. busca filtra por nome, insensível
// a acentos ("joao" encontra "João").
func (uc *AtletaUseCase) Listar(ctx context.Context, atual *entity.Usuario, busca string, page dto.PageRequest) ([]*dto.AtletaResponse, error) {
	page.DefaultPage()
	org := atual.OrganizationID

	var (
		list []*entity.Atleta
		err  error
	)
	switch atual.RoleName() {
	case entity.RoleAtleta:
		proprio, aerr := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, org)
		if aerr != nil {
			return nil, aerr
		}
		if proprio == nil {
			return []*dto.AtletaResponse{}, nil
		}
		list = []*entity.Atleta{proprio}
	case entity.RoleTreinador:
		list, err = uc.atletas.ListarPorStaff(ctx, org, atual.ID, page.Limit, page.Offset)
	default:
		list, err = uc.atletas.ListarPorOrganizacao(ctx, org, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AtletaResponse, 0, len(list))
	for _, a := range list {
		if busca != "" && !textutil.Contem(a.Nome, busca) {
			continue
		}
		out = append(out, dto.ToAtletaResponse(a))
	}
	return out, nil
}

// BuscarPorID atleta só o próprio registro; treinador só atletas de equipes
// em que é staff.
func (uc *AtletaUseCase) BuscarPorID(ctx context.Context, atual *entity.Usuario, id int) (*dto.AtletaResponse, error) {
	a, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		if a.Email != atual.Email {
			return nil, domain.ErrPermissaoNegada
		}
	case entity.RoleTreinador:
		if err := uc.exigirAtletaNoEscopo(ctx, atual, id); err != nil {
			return nil, err
		}
	}
	return dto.ToAtletaResponse(a), nil
}

// Atualizar atleta nunca; treinador só dentro do escopo de staff.
func (uc *AtletaUseCase) Atualizar(ctx context.Context, atual *entity.Usuario, id int, in dto.AtletaRequest) (*dto.AtletaResponse, error) {
	a, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return nil, domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		if err := uc.exigirAtletaNoEscopo(ctx, atual, id); err != nil {
			return nil, err
		}
	}

	if in.Email != a.Email {
		existente, err := uc.atletas.BuscarPorEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, domain.ErrEmailJaCadastrado
		}
	}

	a.Nome = in.Nome
	a.Email = in.Email
	a.Nascimento = in.Nascimento
	a.Posicao = in.Posicao
	a.Altura = in.Altura
	a.Peso = in.Peso

	if err := uc.atletas.Atualizar(ctx, a); err != nil {
		return nil, err
	}
	return dto.ToAtletaResponse(a), nil
}

// Remover mesma regra de mutação do Atualizar.
func (uc *AtletaUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	if _, err := uc.buscarNaOrganizacao(ctx, atual, id); err != nil {
		return err
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		if err := uc.exigirAtletaNoEscopo(ctx, atual, id); err != nil {
			return err
		}
	}
	return uc.atletas.Remover(ctx, id)
}

func (uc *AtletaUseCase) buscarNaOrganizacao(ctx context.Context, atual *entity.Usuario, id int) (*entity.Atleta, error) {
	a, err := uc.atletas.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	return a, nil
}

// exigirAtletaNoEscopo o treinador alcança o atleta pela membership: resolve a
// equipe do atleta e exige staff nela. Atleta sem membership fica fora do
// escopo de qualquer treinador.
func (uc *AtletaUseCase) exigirAtletaNoEscopo(ctx context.Context, atual *entity.Usuario, atletaID int) error {
	equipeID, err := uc.memberships.BuscarEquipeDoAtleta(ctx, atletaID)
	if err != nil {
		return err
	}
	if equipeID == 0 {
		return domain.ErrPermissaoNegada
	}
	return uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, equipeID)
}
