package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/equipe-pro/internal/domain/entity"
)

// FiltroPresenca filtros opcionais de listagem.
type FiltroPresenca struct {
	EquipeID *int
	AtletaID *int
	Data     *time.Time
}

// ItemPresencaEquipe linha do relatório de presenças: presença + nome do atleta.
type ItemPresencaEquipe struct {
	Presenca entity.Presenca
	Atleta   string
}

// PresencaRepository porta de persistência de Presenca.
type PresencaRepository interface {
	Criar(ctx context.Context, p *entity.Presenca) error
	BuscarPorID(ctx context.Context, id int) (*entity.Presenca, error)
	Listar(ctx context.Context, orgID uuid.UUID, f FiltroPresenca, limit, offset int) ([]*entity.Presenca, error)

	// ListarPorEquipeComAtleta presenças da equipe com nome do atleta,
	// ordenadas por data; insumo do relatório em PDF.
	ListarPorEquipeComAtleta(ctx context.Context, equipeID int) ([]ItemPresencaEquipe, error)

	Atualizar(ctx context.Context, p *entity.Presenca) error
	Remover(ctx context.Context, id int) error
}
