package entity

// Membership vínculo atleta-equipe. Único por (equipe, atleta).
type Membership struct {
	ID       int
	EquipeID int
	AtletaID int
}
