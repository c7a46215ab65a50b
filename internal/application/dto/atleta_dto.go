package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AtletaRequest criação/atualização de atleta.
type AtletaRequest struct {
	Nome       string           `json:"nome" validate:"required,min=1,max=100"`
	Email      string           `json:"email" validate:"required,email"`
	Nascimento *time.Time       `json:"nascimento"`
	Posicao    string           `json:"posicao"`
	Altura     *decimal.Decimal `json:"altura"`
	Peso       *decimal.Decimal `json:"peso"`
}

// AtletaResponse saída de atleta.
type AtletaResponse struct {
	ID             int              `json:"id"`
	Nome           string           `json:"nome"`
	Email          string           `json:"email"`
	Nascimento     *time.Time       `json:"nascimento,omitempty"`
	Posicao        string           `json:"posicao,omitempty"`
	Altura         *decimal.Decimal `json:"altura,omitempty"`
	Peso           *decimal.Decimal `json:"peso,omitempty"`
	OrganizationID uuid.UUID        `json:"organization_id"`
}

// ToAtletaResponse converte a entidade para o DTO de saída.
func ToAtletaResponse(a *entity.Atleta) *AtletaResponse {
	if a == nil {
		return nil
	}
	return &AtletaResponse{
		ID:             a.ID,
		Nome:           a.Nome,
		Email:          a.Email,
		Nascimento:     a.Nascimento,
		Posicao:        a.Posicao,
		Altura:         a.Altura,
		Peso:           a.Peso,
		OrganizationID: a.OrganizationID,
	}
}
