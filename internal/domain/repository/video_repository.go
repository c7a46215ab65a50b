package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// FiltroVideo filtros opcionais de listagem. MembroAtletaID restringe às
// equipes das quais o atleta é membro (escopo da role atleta).
type FiltroVideo struct {
	EquipeID       *int
	AtletaID       *int
	MembroAtletaID *int
}

// VideoRepository porta de persistência de Video.
type VideoRepository interface {
	Criar(ctx context.Context, v *entity.Video) error
	BuscarPorID(ctx context.Context, id int) (*entity.Video, error)
	Listar(ctx context.Context, orgID uuid.UUID, f FiltroVideo, limit, offset int) ([]*entity.Video, error)
	Remover(ctx context.Context, id int) error
}
