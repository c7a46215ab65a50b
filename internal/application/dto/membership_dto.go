package dto

import "github.com/seu-usuario/equipe-pro/internal/domain/entity"

// MembershipRequest vínculo atleta-equipe.
type MembershipRequest struct {
	EquipeID int `json:"equipe_id" validate:"required"`
	AtletaID int `json:"atleta_id" validate:"required"`
}

// MembershipResponse saída de membership.
type MembershipResponse struct {
	ID       int `json:"id"`
	EquipeID int `json:"equipe_id"`
	AtletaID int `json:"atleta_id"`
}

// ToMembershipResponse converte a entidade para o DTO de saída.
func ToMembershipResponse(m *entity.Membership) *MembershipResponse {
	if m == nil {
		return nil
	}
	return &MembershipResponse{ID: m.ID, EquipeID: m.EquipeID, AtletaID: m.AtletaID}
}
