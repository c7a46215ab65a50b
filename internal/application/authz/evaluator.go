// Package authz decisões de acesso por role e por escopo de equipe.
package authz

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// Autorizar passa se o role_id da conta está no conjunto de ids permitidos OU
// o nome da role está no conjunto de nomes. Qualquer outro caso é
// ErrPermissaoNegada.
func Autorizar(u *entity.Usuario, idsPermitidos []int, nomesPermitidos []string) error {
	if u == nil {
		return domain.ErrNaoAutenticado
	}
	for _, id := range idsPermitidos {
		if u.RoleID == id {
			return nil
		}
	}
	nome := u.RoleName()
	for _, n := range nomesPermitidos {
		if nome != "" && nome == n {
			return nil
		}
	}
	return domain.ErrPermissaoNegada
}

// TeamScope verificação de relação staff-equipe, insumo do escopo fino do
// treinador.
type TeamScope struct {
	staff repository.TeamStaffRepository
}

// NewTeamScope constrói o verificador.
func NewTeamScope(staff repository.TeamStaffRepository) *TeamScope {
	return &TeamScope{staff: staff}
}

// EhStaffDaEquipe indica se o usuário é staff da equipe.
func (s *TeamScope) EhStaffDaEquipe(ctx context.Context, usuarioID uuid.UUID, equipeID int) (bool, error) {
	return s.staff.ExisteParaUsuario(ctx, equipeID, usuarioID)
}

// ExigirStaffDaEquipe variante que nega diretamente: toda mutação de recursos
// de uma equipe pelo treinador exige a relação.
func (s *TeamScope) ExigirStaffDaEquipe(ctx context.Context, usuarioID uuid.UUID, equipeID int) error {
	ok, err := s.EhStaffDaEquipe(ctx, usuarioID, equipeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPermissaoNegada
	}
	return nil
}
