package dto

import (
	"time"

	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// PresencaRequest criação/atualização de presença.
type PresencaRequest struct {
	AtletaID int       `json:"atleta_id" validate:"required"`
	EquipeID int       `json:"equipe_id" validate:"required"`
	Data     time.Time `json:"data" validate:"required"`
	Tipo     string    `json:"tipo" validate:"max=20"`
	Presente *bool     `json:"presente"`
	Obs      string    `json:"obs" validate:"max=140"`
}

// PresencaResponse saída de presença.
type PresencaResponse struct {
	ID       int       `json:"id"`
	AtletaID int       `json:"atleta_id"`
	EquipeID int       `json:"equipe_id"`
	Data     time.Time `json:"data"`
	Tipo     string    `json:"tipo,omitempty"`
	Presente *bool     `json:"presente,omitempty"`
	Obs      string    `json:"obs,omitempty"`
}

// ToPresencaResponse converte a entidade para o DTO de saída.
func ToPresencaResponse(p *entity.Presenca) *PresencaResponse {
	if p == nil {
		return nil
	}
	return &PresencaResponse{
		ID:       p.ID,
		AtletaID: p.AtletaID,
		EquipeID: p.EquipeID,
		Data:     p.Data,
		Tipo:     p.Tipo,
		Presente: p.Presente,
		Obs:      p.Obs,
	}
}
