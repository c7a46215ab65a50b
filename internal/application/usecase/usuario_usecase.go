package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
	"github.com/seu-usuario/equipe-pro/pkg/hasher"
)

// UsuarioUseCase administração de contas. O gate grosso (dirigente ou
// coordenador) fica no middleware; aqui ficam as regras de organização e do
// ciclo de vida da senha temporária.
type UsuarioUseCase struct {
	usuarios    repository.UsuarioRepository
	roles       repository.RoleRepository
	validadeTmp time.Duration // janela da senha temporária de contas novas
	custoBcrypt int
	agora       func() time.Time
}

// NewUsuarioUseCase constrói o use case.
func NewUsuarioUseCase(usuarios repository.UsuarioRepository, roles repository.RoleRepository, validadeTmp time.Duration, custoBcrypt int) *UsuarioUseCase {
	return &UsuarioUseCase{
		usuarios:    usuarios,
		roles:       roles,
		validadeTmp: validadeTmp,
		custoBcrypt: custoBcrypt,
		agora:       time.Now,
	}
}

// Criar cria uma conta na organização do criador, sempre com senha temporária:
// must_change_password=true e janela de validade a partir de agora.
func (uc *UsuarioUseCase) Criar(ctx context.Context, criador *entity.Usuario, in dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	role, err := uc.roles.BuscarPorID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleInvalida
	}

	existente, err := uc.usuarios.BuscarPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	hash, err := hasher.Hash(in.Password, uc.custoBcrypt)
	if err != nil {
		return nil, err
	}

	agora := uc.agora()
	expira := agora.Add(uc.validadeTmp)
	ativo := true
	if in.IsActive != nil {
		ativo = *in.IsActive
	}
	u := &entity.Usuario{
		ID:                    uuid.New(),
		Nome:                  in.Nome,
		Email:                 in.Email,
		PasswordHash:          hash,
		RoleID:                in.RoleID,
		Role:                  role,
		OrganizationID:        criador.OrganizationID,
		IsActive:              ativo,
		MustChangePassword:    true,
		TempPasswordExpiresAt: &expira,
		CreatedAt:             agora,
		UpdatedAt:             agora,
	}
	if err := uc.usuarios.Criar(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUsuarioResponse(u), nil
}

// Listar contas da organização do solicitante.
func (uc *UsuarioUseCase) Listar(ctx context.Context, atual *entity.Usuario, page dto.PageRequest) ([]*dto.UsuarioResponse, error) {
	page.DefaultPage()
	list, err := uc.usuarios.ListarPorOrganizacao(ctx, atual.OrganizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUsuarioResponse(u))
	}
	return out, nil
}

// BuscarPorID conta de outra organização responde como inexistente.
func (uc *UsuarioUseCase) BuscarPorID(ctx context.Context, atual *entity.Usuario, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUsuarioResponse(u), nil
}

// Atualizar atualização administrativa parcial. Email é imutável; troca de
// senha pelo admin limpa o estado de senha temporária.
func (uc *UsuarioUseCase) Atualizar(ctx context.Context, atual *entity.Usuario, id uuid.UUID, in dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return nil, err
	}

	if in.RoleID != nil {
		role, err := uc.roles.BuscarPorID(ctx, *in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrRoleInvalida
		}
		u.RoleID = *in.RoleID
		u.Role = role
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.MustChangePassword != nil {
		u.MustChangePassword = *in.MustChangePassword
	}
	agora := uc.agora()
	if in.Password != nil {
		hash, err := hasher.Hash(*in.Password, uc.custoBcrypt)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
		u.PasswordChangedAt = &agora
		u.MustChangePassword = false
		u.TempPasswordExpiresAt = nil
	}
	u.UpdatedAt = agora

	if err := uc.usuarios.Atualizar(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUsuarioResponse(u), nil
}

// Remover remoção lógica: marca deleted_at e desativa. A conta some de todas
// as buscas e nunca mais autentica.
func (uc *UsuarioUseCase) Remover(ctx context.Context, atual *entity.Usuario, id uuid.UUID) (time.Time, error) {
	u, err := uc.buscarNaOrganizacao(ctx, atual, id)
	if err != nil {
		return time.Time{}, err
	}
	agora := uc.agora()
	if err := uc.usuarios.RemoverLogicamente(ctx, u.ID, agora); err != nil {
		return time.Time{}, err
	}
	return agora, nil
}

func (uc *UsuarioUseCase) buscarNaOrganizacao(ctx context.Context, atual *entity.Usuario, id uuid.UUID) (*entity.Usuario, error) {
	u, err := uc.usuarios.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Mesma resposta para inexistente e para outra organização: 404 não
	// confirma a existência de recursos de outro tenant.
	if u == nil || u.OrganizationID != atual.OrganizationID {
		return nil, domain.ErrNaoEncontrado
	}
	return u, nil
}
