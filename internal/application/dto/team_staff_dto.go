package dto

import (
	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// TeamStaffRequest vínculo usuário-equipe com função.
type TeamStaffRequest struct {
	EquipeID  int       `json:"equipe_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	StaffRole string    `json:"staff_role" validate:"required,max=50"`
}

// TeamStaffResponse saída de team staff.
type TeamStaffResponse struct {
	ID        int       `json:"id"`
	EquipeID  int       `json:"equipe_id"`
	UserID    uuid.UUID `json:"user_id"`
	StaffRole string    `json:"staff_role"`
}

// ToTeamStaffResponse converte a entidade para o DTO de saída.
func ToTeamStaffResponse(ts *entity.TeamStaff) *TeamStaffResponse {
	if ts == nil {
		return nil
	}
	return &TeamStaffResponse{ID: ts.ID, EquipeID: ts.EquipeID, UserID: ts.UserID, StaffRole: ts.StaffRole}
}
