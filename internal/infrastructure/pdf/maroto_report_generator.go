// Package pdf genera el Reporte de Estado de Inventario con Maroto v2.
//
// Layout de cada página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER (todas las páginas): Logo │ Título + empresa         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PORTADA: Cliente / Fecha / ID / Total adeudado (1ra pág.)   │
//	│  TABLA: Entrada | Descripción / Mercancía | Días | Cobro     │
//	│         (filas con más días que el umbral sombreadas)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Página N de M                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 211, Green: 47, Blue: 47}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAging   = &props.Color{Red: 255, Green: 235, Blue: 238}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(ctx context.Context, rep *dto.InventoryReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		WithAuthor(rep.CompanyName, true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterHeader(headerRows(rep)...); err != nil {
		return nil, fmt.Errorf("pdf: registrar cabecera: %w", err)
	}

	m.AddRows(coverRows(rep)...)
	m.AddRows(line.NewRow(4))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(rep.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: logo (si el archivo existe) y título, repetidos en cada página.
func headerRows(rep *dto.InventoryReportDTO) []core.Row {
	titleCol := col.New(9).Add(
		text.New(rep.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right, Color: colorPrimary, Top: 3,
		}),
		text.New(rep.CompanyName, props.Text{
			Size: 9, Align: align.Right, Top: 11, Color: colorGray,
		}),
	)

	var logoCol core.Col
	if hasFile(rep.LogoPath) {
		logoCol = col.New(3).Add(image.NewFromFile(rep.LogoPath, props.Rect{Percent: 90, Center: false}))
	} else {
		logoCol = col.New(3).Add(text.New(rep.CompanyName, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 5,
		}))
	}

	return []core.Row{
		row.New(20).Add(logoCol, titleCol),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// coverRows: bloque de portada (cliente, fecha, ID, total) con QR del ID.
func coverRows(rep *dto.InventoryReportDTO) []core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Top: top, Left: 1})
	}

	return []core.Row{
		row.New(30).Add(
			col.New(3).Add(
				label("Cliente:", 2),
				label("Fecha de reporte:", 8),
				label("ID de reporte:", 14),
				label("Total adeudado:", 20),
			),
			col.New(7).Add(
				value(rep.ClientLabel, 2),
				value(rep.DateLabel, 8),
				text.New(rep.ID, props.Text{Size: 7, Top: 14.5, Left: 1, Color: colorGray}),
				text.New(rep.TotalChargeLabel, props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 19.5, Left: 1, Color: colorPrimary,
				}),
			),
			col.New(2).Add(code.NewQr(rep.ID, props.Rect{Percent: 90, Center: true})),
		),
		row.New(6).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Partidas: %d   |   Máx. días en bodega: %d   |   Partidas con más de %d días: %d",
				rep.TotalItems, rep.MaxDays, rep.ThresholdDays, rep.AgingItems),
			props.Text{Size: 8, Color: colorGray, Top: 1},
		))),
	}
}

// tableHeaderRow: cabecera de la tabla con fondo del color primario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Entrada", 2, align.Left),
		h("Descripción / Mercancía", 6, align.Left),
		h("Días Bodega", 2, align.Center),
		h("Cobro", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por partida; las antiguas van sombreadas.
func tableDetailRows(lines []dto.ReportLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		r := row.New(6).Add(
			col.New(2).Add(text.New(l.EntryID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(l.Days), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.ChargeLabel, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if l.Aging {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorAging})
		}
		result = append(result, r)
	}
	return result
}

// totalsRow: total adeudado alineado a la derecha.
func totalsRow(rep *dto.InventoryReportDTO) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(rep.TotalChargeLabel, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1, Color: colorPrimary,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func hasFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
