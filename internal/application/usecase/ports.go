package usecase

import (
	"context"

	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// EquipeTxRunner executa a criação de equipe e da linha de staff do treinador
// na mesma transação.
type EquipeTxRunner interface {
	Run(ctx context.Context, fn func(equipes repository.EquipeRepository, staff repository.TeamStaffRepository) error) error
}

// RelatorioPresencasPDF gerador do relatório de presenças de uma equipe.
type RelatorioPresencasPDF interface {
	GerarRelatorioPresencas(ctx context.Context, r *RelatorioPresencas) ([]byte, error)
}
