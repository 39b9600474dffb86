package excel_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/excel"
)

func sampleReport() *dto.InventoryReportDTO {
	return &dto.InventoryReportDTO{
		ID:               "rep-1",
		Title:            "Reporte de Estado de Inventario",
		CompanyName:      "AFS Logistics",
		ClientLabel:      "ACME",
		Date:             time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		DateLabel:        "07-03-2025",
		TotalCharge:      decimal.RequireFromString("1250.5"),
		TotalChargeLabel: "$1,250.50",
		TotalItems:       2,
		MaxDays:          95,
		AgingItems:       1,
		ThresholdDays:    80,
		Lines: []dto.ReportLineDTO{
			{EntryID: "E-1", Customer: "ACME", Description: "Cajas", Days: 95, Charge: decimal.RequireFromString("1250"), Aging: true},
			{EntryID: "E-2", Customer: "ACME", Description: "Tarimas", Days: 12, Charge: decimal.RequireFromString("0.5")},
		},
	}
}

func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestGenerateInventoryWorkbook_Hojas(t *testing.T) {
	b, err := excel.NewWorkbookGenerator("inventario-dashboard").
		GenerateInventoryWorkbook(context.Background(), sampleReport())
	require.NoError(t, err)

	f := openWorkbook(t, b)
	assert.Equal(t, []string{excel.SheetInventory, excel.SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(excel.SheetInventory)
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + una fila por partida")
	assert.Equal(t, "Entrada de bodega", rows[0][0])
	assert.Equal(t, "E-1", rows[1][0])
	assert.Equal(t, "95", rows[1][3])

	raw, err := f.GetCellValue(excel.SheetInventory, "E3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0.5", raw)
}

func TestGenerateInventoryWorkbook_Resumen(t *testing.T) {
	b, err := excel.NewWorkbookGenerator("x").GenerateInventoryWorkbook(context.Background(), sampleReport())
	require.NoError(t, err)

	f := openWorkbook(t, b)
	client, err := f.GetCellValue(excel.SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "ACME", client)

	total, err := f.GetCellValue(excel.SheetSummary, "B5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1250.5", total)

	label, err := f.GetCellValue(excel.SheetSummary, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Partidas con más de 80 días", label)
}

func TestGenerateInventoryWorkbook_Estilos(t *testing.T) {
	b, err := excel.NewWorkbookGenerator("x").GenerateInventoryWorkbook(context.Background(), sampleReport())
	require.NoError(t, err)
	f := openWorkbook(t, b)

	aging, err := f.GetCellStyle(excel.SheetInventory, "A2")
	require.NoError(t, err)
	plain, err := f.GetCellStyle(excel.SheetInventory, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, plain, aging, "la partida envejecida lleva relleno")

	style, err := f.GetStyle(aging)
	require.NoError(t, err)
	assert.Equal(t, "pattern", style.Fill.Type)

	money, err := f.GetCellStyle(excel.SheetInventory, "E3")
	require.NoError(t, err)
	assert.NotZero(t, money, "el cargo lleva formato de moneda")

	width, err := f.GetColWidth(excel.SheetInventory, "C")
	require.NoError(t, err)
	assert.Equal(t, 40.0, width)

	width, err = f.GetColWidth(excel.SheetSummary, "B")
	require.NoError(t, err)
	assert.Equal(t, 44.0, width)
}

func TestGenerateInventoryWorkbook_SinFilas(t *testing.T) {
	rep := sampleReport()
	rep.Lines = nil
	b, err := excel.NewWorkbookGenerator("x").GenerateInventoryWorkbook(context.Background(), rep)
	require.NoError(t, err)

	rows, err := openWorkbook(t, b).GetRows(excel.SheetInventory)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
