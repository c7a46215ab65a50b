package authz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/equipe-pro/internal/application/authz"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

func usuarioCom(roleID int, nome string) *entity.Usuario {
	return &entity.Usuario{
		ID:     uuid.New(),
		RoleID: roleID,
		Role:   &entity.Role{RoleID: roleID, RoleName: nome},
	}
}

func TestAutorizar_PorID(t *testing.T) {
	u := usuarioCom(2, entity.RoleCoordenador)
	assert.NoError(t, authz.Autorizar(u, []int{1, 2}, nil))
	assert.ErrorIs(t, authz.Autorizar(u, []int{1, 3}, nil), domain.ErrPermissaoNegada)
}

func TestAutorizar_PorNome(t *testing.T) {
	u := usuarioCom(3, entity.RoleTreinador)
	assert.NoError(t, authz.Autorizar(u, nil, []string{entity.RoleTreinador}))
	assert.ErrorIs(t, authz.Autorizar(u, nil, []string{entity.RoleDirigente}), domain.ErrPermissaoNegada)
}

func TestAutorizar_SemConta(t *testing.T) {
	assert.ErrorIs(t, authz.Autorizar(nil, []int{1}, nil), domain.ErrNaoAutenticado)
}

func TestAutorizar_RoleNaoPopulada(t *testing.T) {
	u := &entity.Usuario{ID: uuid.New(), RoleID: 3}
	// Sem a Role carregada o nome é vazio e nunca casa com o conjunto.
	assert.ErrorIs(t, authz.Autorizar(u, nil, []string{entity.RoleTreinador}), domain.ErrPermissaoNegada)
	assert.NoError(t, authz.Autorizar(u, []int{3}, nil))
}

// staffFake só responde ExisteParaUsuario; o resto não é usado pelo TeamScope.
type staffFake struct {
	repository.TeamStaffRepository
	vinculos map[int]uuid.UUID // equipe -> usuário staff
}

func (f *staffFake) ExisteParaUsuario(_ context.Context, equipeID int, userID uuid.UUID) (bool, error) {
	return f.vinculos[equipeID] == userID, nil
}

func TestTeamScope_ExigirStaffDaEquipe(t *testing.T) {
	treinador := uuid.New()
	outro := uuid.New()
	escopo := authz.NewTeamScope(&staffFake{vinculos: map[int]uuid.UUID{10: treinador}})

	require.NoError(t, escopo.ExigirStaffDaEquipe(context.Background(), treinador, 10))
	assert.ErrorIs(t, escopo.ExigirStaffDaEquipe(context.Background(), treinador, 11), domain.ErrPermissaoNegada)
	assert.ErrorIs(t, escopo.ExigirStaffDaEquipe(context.Background(), outro, 10), domain.ErrPermissaoNegada)

	ok, err := escopo.EhStaffDaEquipe(context.Background(), treinador, 10)
	require.NoError(t, err)
	assert.True(t, ok)
}
