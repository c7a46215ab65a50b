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

// RelatorioPresencas dados do relatório de presenças de uma equipe.
type RelatorioPresencas struct {
	Equipe   *entity.Equipe
	GeradoEm time.Time
	Itens    []repository.ItemPresencaEquipe
}

// PresencaUseCase registros de presença. Treinador opera só nas equipes em
// que é staff; atleta só lê os próprios registros.
type PresencaUseCase struct {
	presencas repository.PresencaRepository
	equipes   repository.EquipeRepository
	atletas   repository.AtletaRepository
	escopo    *authz.TeamScope
	pdf       RelatorioPresencasPDF
	agora     func() time.Time
}

// NewPresencaUseCase constrói o use case.
func NewPresencaUseCase(
	presencas repository.PresencaRepository,
	equipes repository.EquipeRepository,
	atletas repository.AtletaRepository,
	escopo *authz.TeamScope,
	pdf RelatorioPresencasPDF,
) *PresencaUseCase {
	return &PresencaUseCase{
		presencas: presencas,
		equipes:   equipes,
		atletas:   atletas,
		escopo:    escopo,
		pdf:       pdf,
		agora:     time.Now,
	}
}

// Criar equipe e atleta precisam existir na organização; treinador precisa de
// staff na equipe.
func (uc *PresencaUseCase) Criar(ctx context.Context, atual *entity.Usuario, in dto.PresencaRequest) (*dto.PresencaResponse, error) {
	if err := uc.exigirMutacao(ctx, atual, in.EquipeID); err != nil {
		return nil, err
	}
	if err := uc.validarAlvos(ctx, atual, in.EquipeID, in.AtletaID); err != nil {
		return nil, err
	}
	p := &entity.Presenca{
		AtletaID: in.AtletaID,
		EquipeID: in.EquipeID,
		Data:     in.Data,
		Tipo:     in.Tipo,
		Presente: in.Presente,
		Obs:      in.Obs,
	}
	if err := uc.presencas.Criar(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPresencaResponse(p), nil
}

// Listar atleta só os próprios registros; treinador filtrado às suas equipes.
func (uc *PresencaUseCase) Listar(ctx context.Context, atual *entity.Usuario, f repository.FiltroPresenca, page dto.PageRequest) ([]*dto.PresencaResponse, error) {
	page.DefaultPage()

	switch atual.RoleName() {
	case entity.RoleAtleta:
		proprio, err := uc.atletas.BuscarPorEmailNaOrganizacao(ctx, atual.Email, atual.OrganizationID)
		if err != nil {
			return nil, err
		}
		if proprio == nil {
			return []*dto.PresencaResponse{}, nil
		}
		f.AtletaID = &proprio.ID
	case entity.RoleTreinador:
		if f.EquipeID != nil {
			if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, *f.EquipeID); err != nil {
				return nil, err
			}
		}
	}

	list, err := uc.presencas.Listar(ctx, atual.OrganizationID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PresencaResponse, 0, len(list))
	for _, p := range list {
		if atual.RoleName() == entity.RoleTreinador && f.EquipeID == nil {
			ok, err := uc.escopo.EhStaffDaEquipe(ctx, atual.ID, p.EquipeID)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, dto.ToPresencaResponse(p))
	}
	return out, nil
}

// Atualizar mesma regra de mutação do Criar, aplicada à equipe do registro e
// à equipe de destino.
func (uc *PresencaUseCase) Atualizar(ctx context.Context, atual *entity.Usuario, id int, in dto.PresencaRequest) (*dto.PresencaResponse, error) {
	p, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	if err := uc.exigirMutacao(ctx, atual, p.EquipeID); err != nil {
		return nil, err
	}
	if in.EquipeID != p.EquipeID {
		if err := uc.exigirMutacao(ctx, atual, in.EquipeID); err != nil {
			return nil, err
		}
	}
	if err := uc.validarAlvos(ctx, atual, in.EquipeID, in.AtletaID); err != nil {
		return nil, err
	}

	p.AtletaID = in.AtletaID
	p.EquipeID = in.EquipeID
	p.Data = in.Data
	p.Tipo = in.Tipo
	p.Presente = in.Presente
	p.Obs = in.Obs

	if err := uc.presencas.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPresencaResponse(p), nil
}

// Remover mesma regra de mutação do Criar.
func (uc *PresencaUseCase) Remover(ctx context.Context, atual *entity.Usuario, id int) error {
	p, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return err
	}
	if err := uc.exigirMutacao(ctx, atual, p.EquipeID); err != nil {
		return err
	}
	return uc.presencas.Remover(ctx, id)
}

// GerarRelatorio relatório de presenças da equipe em PDF. Atleta é negado;
// treinador precisa de staff na equipe.
func (uc *PresencaUseCase) GerarRelatorio(ctx context.Context, atual *entity.Usuario, equipeID int) ([]byte, error) {
	equipe, err := uc.equipes.BuscarPorID(ctx, equipeID)
	if err != nil {
		return nil, err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return nil, domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		if err := uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, equipeID); err != nil {
			return nil, err
		}
	}

	itens, err := uc.presencas.ListarPorEquipeComAtleta(ctx, equipeID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GerarRelatorioPresencas(ctx, &RelatorioPresencas{
		Equipe:   equipe,
		GeradoEm: uc.agora(),
		Itens:    itens,
	})
}

func (uc *PresencaUseCase) buscarNaOrganizacao(ctx context.Context, atual *entity.Usuario, id int) (*entity.Presenca, error) {
	p, err := uc.presencas.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	equipe, err := uc.equipes.BuscarPorID(ctx, p.EquipeID)
	if err != nil {
		return nil, err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	return p, nil
}

func (uc *PresencaUseCase) exigirMutacao(ctx context.Context, atual *entity.Usuario, equipeID int) error {
	switch atual.RoleName() {
	case entity.RoleAtleta:
		return domain.ErrPermissaoNegada
	case entity.RoleTreinador:
		return uc.escopo.ExigirStaffDaEquipe(ctx, atual.ID, equipeID)
	}
	return nil
}

func (uc *PresencaUseCase) validarAlvos(ctx context.Context, atual *entity.Usuario, equipeID, atletaID int) error {
	equipe, err := uc.equipes.BuscarPorID(ctx, equipeID)
	if err != nil {
		return err
	}
	if equipe == nil || equipe.OrganizationID != atual.OrganizationID {
		return domain.ErrNaoEncontrado
	}
	atleta, err := uc.atletas.BuscarPorID(ctx, atletaID)
	if err != nil {
		return err
	}
	if atleta == nil || atleta.OrganizationID != atual.OrganizationID {
		return domain.ErrNaoEncontrado
	}
	return nil
}
