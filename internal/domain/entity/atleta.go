package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Atleta registro esportivo. O vínculo com a conta de acesso (quando o atleta
// tem login) é feito por igualdade de email, não por FK.
type Atleta struct {
	ID             int
	Nome           string
	Email          string
	Nascimento     *time.Time
	Posicao        string
	Altura         *decimal.Decimal // metros
	Peso           *decimal.Decimal // kg
	OrganizationID uuid.UUID
}
