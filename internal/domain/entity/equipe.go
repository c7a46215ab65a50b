package entity

import "github.com/google/uuid"

// Equipe time esportivo de uma organização. TreinadorID é opcional; quando
// preenchido, o treinador também ganha uma linha em team_staff.
type Equipe struct {
	ID             int
	Nome           string
	Categoria      string
	OrganizationID uuid.UUID
	TreinadorID    *uuid.UUID
}
