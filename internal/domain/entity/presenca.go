package entity

import "time"

// Presenca registro de presença de um atleta em um evento da equipe.
type Presenca struct {
	ID       int
	AtletaID int
	EquipeID int
	Data     time.Time
	Tipo     string // treino, jogo, ...
	Presente *bool
	Obs      string
}
