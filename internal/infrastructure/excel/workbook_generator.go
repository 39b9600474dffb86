// Package excel genera el informe de inventario como libro de Excel con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

const (
	SheetInventory = "Inventario"
	SheetSummary   = "Resumen"

	usdFormat = `"$"#,##0.00`
)

var inventoryHeaders = []string{"Entrada de bodega", "Cliente", "Descripción / Mercancía", "Días en bodega", "Cobro (USD)"}

// WorkbookGenerator implementa report.ReportWorkbookGenerator.
type WorkbookGenerator struct {
	application string
}

// NewWorkbookGenerator construye el generador; application se guarda en las
// propiedades del documento.
func NewWorkbookGenerator(application string) *WorkbookGenerator {
	return &WorkbookGenerator{application: application}
}

// GenerateInventoryWorkbook arma las hojas Inventario y Resumen y devuelve el XLSX.
func (g *WorkbookGenerator) GenerateInventoryWorkbook(ctx context.Context, rep *dto.InventoryReportDTO) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetAppProps(&excelize.AppProperties{Application: g.application, Company: rep.CompanyName}); err != nil {
		return nil, fmt.Errorf("excel: propiedades: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   rep.Title,
		Creator: rep.CompanyName,
		Created: rep.Date.UTC().Format("2006-01-02T15:04:05Z"),
	}); err != nil {
		return nil, fmt.Errorf("excel: propiedades: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return nil, fmt.Errorf("excel: hoja %s: %w", SheetInventory, err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return nil, fmt.Errorf("excel: hoja %s: %w", SheetSummary, err)
	}

	if err := writeInventorySheet(f, rep); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, rep); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeInventorySheet una fila por partida; las antiguas con relleno.
func writeInventorySheet(f *excelize.File, rep *dto.InventoryReportDTO) error {
	sheet := SheetInventory
	numFmt := usdFormat

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D32F2F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("excel: estilo moneda: %w", err)
	}
	agingStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FFEBEE"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo antigüedad: %w", err)
	}
	agingMoneyStyle, err := f.NewStyle(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Color: []string{"#FFEBEE"}, Pattern: 1},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return fmt.Errorf("excel: estilo antigüedad: %w", err)
	}

	for i, h := range inventoryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: cabecera: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(inventoryHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("excel: cabecera: %w", err)
	}

	for i, l := range rep.Lines {
		r := i + 2
		values := []interface{}{l.EntryID, l.Customer, l.Description, l.Days, l.Charge.InexactFloat64()}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("excel: fila %d: %w", r, err)
			}
		}

		first, _ := excelize.CoordinatesToCellName(1, r)
		days, _ := excelize.CoordinatesToCellName(4, r)
		charge, _ := excelize.CoordinatesToCellName(5, r)
		chargeStyle := moneyStyle
		if l.Aging {
			if err := f.SetCellStyle(sheet, first, days, agingStyle); err != nil {
				return fmt.Errorf("excel: estilo fila %d: %w", r, err)
			}
			chargeStyle = agingMoneyStyle
		}
		if err := f.SetCellStyle(sheet, charge, charge, chargeStyle); err != nil {
			return fmt.Errorf("excel: estilo fila %d: %w", r, err)
		}
	}

	widths := []float64{18, 24, 40, 14, 16}
	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return fmt.Errorf("excel: ancho columna %s: %w", name, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("excel: inmovilizar cabecera: %w", err)
	}

	lastRow := len(rep.Lines) + 1
	if lastRow > 1 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, lastRow), nil); err != nil {
			return fmt.Errorf("excel: autofiltro: %w", err)
		}
	}
	return nil
}

// writeSummarySheet datos de portada en pares etiqueta/valor.
func writeSummarySheet(f *excelize.File, rep *dto.InventoryReportDTO) error {
	sheet := SheetSummary
	numFmt := usdFormat

	pairs := [][2]interface{}{
		{"Reporte", rep.Title},
		{"Cliente", rep.ClientLabel},
		{"Fecha de reporte", rep.DateLabel},
		{"ID de reporte", rep.ID},
		{"Total adeudado (USD)", rep.TotalCharge.InexactFloat64()},
		{"Partidas", rep.TotalItems},
		{"Máx. días en bodega", rep.MaxDays},
		{fmt.Sprintf("Partidas con más de %d días", rep.ThresholdDays), rep.AgingItems},
	}
	for i, p := range pairs {
		r := i + 1
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", r), p[0]); err != nil {
			return fmt.Errorf("excel: resumen: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", r), p[1]); err != nil {
			return fmt.Errorf("excel: resumen: %w", err)
		}
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo resumen: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: "#D32F2F"},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return fmt.Errorf("excel: estilo resumen: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("A%d", len(pairs)), labelStyle); err != nil {
		return fmt.Errorf("excel: estilo resumen: %w", err)
	}
	if err := f.SetCellStyle(sheet, "B5", "B5", moneyStyle); err != nil {
		return fmt.Errorf("excel: estilo resumen: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return fmt.Errorf("excel: ancho resumen: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 44); err != nil {
		return fmt.Errorf("excel: ancho resumen: %w", err)
	}
	return nil
}
