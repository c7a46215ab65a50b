package entity

import "time"

// Video link de vídeo associado a uma equipe e, opcionalmente, a um atleta.
type Video struct {
	ID       int
	URL      string
	EquipeID int
	AtletaID *int
	CriadoEm time.Time
}
