package dto

import (
	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// EquipeRequest criação/atualização de equipe.
type EquipeRequest struct {
	Nome        string     `json:"nome" validate:"required,min=1,max=100"`
	Categoria   string     `json:"categoria"`
	TreinadorID *uuid.UUID `json:"treinador_id"`
}

// EquipeResponse saída de equipe.
type EquipeResponse struct {
	ID             int        `json:"id"`
	Nome           string     `json:"nome"`
	Categoria      string     `json:"categoria,omitempty"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	TreinadorID    *uuid.UUID `json:"treinador_id,omitempty"`
}

// ToEquipeResponse converte a entidade para o DTO de saída.
func ToEquipeResponse(e *entity.Equipe) *EquipeResponse {
	if e == nil {
		return nil
	}
	return &EquipeResponse{
		ID:             e.ID,
		Nome:           e.Nome,
		Categoria:      e.Categoria,
		OrganizationID: e.OrganizationID,
		TreinadorID:    e.TreinadorID,
	}
}
