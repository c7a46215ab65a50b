package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/equipe-pro/internal/application/dto"
	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/pkg/hasher"
)

const validadeTmp = 7 * 24 * time.Hour

func montarUsuarioUC(t *testing.T, us ...*entity.Usuario) (*usecase.UsuarioUseCase, *usuarioRepoFake) {
	t.Helper()
	repo := newUsuarioRepoFake(us...)
	return usecase.NewUsuarioUseCase(repo, newRoleRepoFake(), validadeTmp, 4), repo
}

func TestUsuarioCriar_SenhaTemporariaProvisionada(t *testing.T) {
	criador := conta(uuid.New(), 1, entity.RoleDirigente, "dirigente@clube.com")
	uc, repo := montarUsuarioUC(t, criador)
	antes := time.Now()

	out, err := uc.Criar(context.Background(), criador, dto.CriarUsuarioRequest{
		Nome: "Novo Treinador", Email: "novo@clube.com", Password: "senha-temporaria-1", RoleID: 3,
	})
	require.NoError(t, err)

	// Conta nova sempre nasce pendente de troca, com janela a partir de agora
	// e na organização do criador, ignorando qualquer outra origem.
	assert.True(t, out.MustChangePassword)
	require.NotNil(t, out.TempPasswordExpiresAt)
	janela := out.TempPasswordExpiresAt.Sub(antes)
	assert.InDelta(t, validadeTmp.Seconds(), janela.Seconds(), 5)
	assert.Equal(t, criador.OrganizationID, out.OrganizationID)

	guardado := repo.usuarios[out.ID]
	require.NotNil(t, guardado)
	assert.True(t, hasher.Verificar("senha-temporaria-1", guardado.PasswordHash))
}

func TestUsuarioCriar_RoleInvalida(t *testing.T) {
	criador := conta(uuid.New(), 1, entity.RoleDirigente, "dirigente@clube.com")
	uc, _ := montarUsuarioUC(t, criador)

	_, err := uc.Criar(context.Background(), criador, dto.CriarUsuarioRequest{
		Nome: "X", Email: "x@clube.com", Password: "12345678", RoleID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrRoleInvalida)
}

func TestUsuarioCriar_EmailDuplicado(t *testing.T) {
	criador := conta(uuid.New(), 1, entity.RoleDirigente, "dirigente@clube.com")
	uc, _ := montarUsuarioUC(t, criador)

	_, err := uc.Criar(context.Background(), criador, dto.CriarUsuarioRequest{
		Nome: "Clone", Email: criador.Email, Password: "12345678", RoleID: 3,
	})
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestUsuarioAtualizar_SenhaLimpaEstadoTemporario(t *testing.T) {
	org := uuid.New()
	admin := conta(org, 1, entity.RoleDirigente, "admin@clube.com")
	alvo := conta(org, 3, entity.RoleTreinador, "alvo@clube.com")
	alvo.MustChangePassword = true
	expira := time.Now().Add(time.Hour)
	alvo.TempPasswordExpiresAt = &expira
	uc, _ := montarUsuarioUC(t, admin, alvo)

	nova := "senha-definitiva-99"
	out, err := uc.Atualizar(context.Background(), admin, alvo.ID, dto.AtualizarUsuarioRequest{Password: &nova})
	require.NoError(t, err)

	assert.False(t, out.MustChangePassword)
	assert.Nil(t, out.TempPasswordExpiresAt)
	assert.NotNil(t, out.PasswordChangedAt)
	assert.True(t, hasher.Verificar(nova, alvo.PasswordHash))
}

func TestUsuarioAtualizar_EmailImutavel(t *testing.T) {
	org := uuid.New()
	admin := conta(org, 1, entity.RoleDirigente, "admin@clube.com")
	alvo := conta(org, 3, entity.RoleTreinador, "alvo@clube.com")
	uc, _ := montarUsuarioUC(t, admin, alvo)

	nome := "Renomeado"
	out, err := uc.Atualizar(context.Background(), admin, alvo.ID, dto.AtualizarUsuarioRequest{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, "Renomeado", out.Nome)
	assert.Equal(t, "alvo@clube.com", out.Email)
}

// Conta de outra organização responde como inexistente em busca, atualização
// e remoção.
func TestUsuario_OutraOrganizacaoE404(t *testing.T) {
	admin := conta(uuid.New(), 1, entity.RoleDirigente, "admin@clube.com")
	forasteiro := conta(uuid.New(), 3, entity.RoleTreinador, "fora@outra.com")
	uc, _ := montarUsuarioUC(t, admin, forasteiro)
	ctx := context.Background()

	_, err := uc.BuscarPorID(ctx, admin, forasteiro.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	nome := "Hack"
	_, err = uc.Atualizar(ctx, admin, forasteiro.ID, dto.AtualizarUsuarioRequest{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)

	_, err = uc.Remover(ctx, admin, forasteiro.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestUsuarioRemover_ContaSomeDasBuscas(t *testing.T) {
	org := uuid.New()
	admin := conta(org, 1, entity.RoleDirigente, "admin@clube.com")
	alvo := conta(org, 3, entity.RoleTreinador, "alvo@clube.com")
	uc, repo := montarUsuarioUC(t, admin, alvo)
	ctx := context.Background()

	quando, err := uc.Remover(ctx, admin, alvo.ID)
	require.NoError(t, err)
	assert.False(t, quando.IsZero())

	// Remoção é lógica: o registro persiste com deleted_at, mas é invisível.
	assert.NotNil(t, repo.usuarios[alvo.ID].DeletedAt)
	_, err = uc.BuscarPorID(ctx, admin, alvo.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
