// Package pdf implementa a geração do relatório de presenças de uma equipe.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da equipe + Categoria  │  Data de geração     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Atleta | Tipo | Presente | Obs              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: total de registros / presenças / ausências         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/seu-usuario/equipe-pro/internal/application/usecase"
	"github.com/seu-usuario/equipe-pro/internal/domain/repository"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.RelatorioPresencasPDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GerarRelatorioPresencas gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GerarRelatorioPresencas(_ context.Context, r *usecase.RelatorioPresencas) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Presenças", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, linha := range tableItemRows(r.Itens) {
		m.AddRows(linha)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resumoRow(r.Itens))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da equipe + categoria (esq) e data de geração (dir).
func headerRow(r *usecase.RelatorioPresencas) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Equipe.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Categoria: "+nonEmpty(r.Equipe.Categoria, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("RELATÓRIO DE PRESENÇAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+r.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de presenças.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Atleta", 4, align.Left),
		h("Tipo", 2, align.Left),
		h("Presente", 1, align.Center),
		h("Obs", 3, align.Left),
	)
}

// tableItemRows: uma linha por registro de presença.
func tableItemRows(itens []repository.ItemPresencaEquipe) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		p := item.Presenca
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.Data.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				item.Atleta,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(p.Tipo, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				presenteLabel(p.Presente),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(p.Obs, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// resumoRow: contagem de registros, presenças e ausências.
func resumoRow(itens []repository.ItemPresencaEquipe) core.Row {
	var presentes, ausentes int
	for _, item := range itens {
		switch {
		case item.Presenca.Presente == nil:
		case *item.Presenca.Presente:
			presentes++
		default:
			ausentes++
		}
	}
	resumo := fmt.Sprintf("Registros: %d   |   Presenças: %d   |   Ausências: %d",
		len(itens), presentes, ausentes)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(resumo, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func presenteLabel(p *bool) string {
	switch {
	case p == nil:
		return "—"
	case *p:
		return "Sim"
	default:
		return "Não"
	}
}
