package dto

import (
	"time"

	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// VideoRequest criação de vídeo.
type VideoRequest struct {
	URL      string `json:"url" validate:"required,url"`
	EquipeID int    `json:"equipe_id" validate:"required"`
	AtletaID *int   `json:"atleta_id"`
}

// VideoResponse saída de vídeo.
type VideoResponse struct {
	ID       int       `json:"id"`
	URL      string    `json:"url"`
	EquipeID int       `json:"equipe_id"`
	AtletaID *int      `json:"atleta_id,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}

// ToVideoResponse converte a entidade para o DTO de saída.
func ToVideoResponse(v *entity.Video) *VideoResponse {
	if v == nil {
		return nil
	}
	return &VideoResponse{ID: v.ID, URL: v.URL, EquipeID: v.EquipeID, AtletaID: v.AtletaID, CriadoEm: v.CriadoEm}
}
