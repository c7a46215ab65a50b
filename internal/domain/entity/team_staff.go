package entity

import "github.com/google/uuid"

// TeamStaff vínculo usuário-equipe com rótulo de função (ex.: "treinador").
// Único por (equipe, usuário, função). É o insumo do escopo de permissão do
// treinador: toda mutação de equipe exige uma linha aqui.
type TeamStaff struct {
	ID        int
	EquipeID  int
	UserID    uuid.UUID
	StaffRole string
}
