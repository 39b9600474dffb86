package tabular_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/tabular"
)

const utf8CSV = "Entrada de bodega,Cliente,Descripción,Días en bodega,Días Cobrados,Concepto,Cobro (USD)\n" +
	"E-001,ACME,Cajas de repuestos,81,60,Almacenaje,\"$1.234,56\"\n" +
	"E-002,Beta,Tambores,80,50,Almacenaje,\"$0,00\"\n" +
	",,,,,,\n" +
	"E-003,,Pallets,sin dato,0,Libre,pendiente\n"

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func latin1(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeText(t *testing.T) {
	text, enc, err := tabular.DecodeText(append([]byte{0xEF, 0xBB, 0xBF}, []byte("Días")...))
	require.NoError(t, err)
	assert.Equal(t, tabular.EncodingUTF8, enc)
	assert.Equal(t, "Días", text, "el BOM se descarta")

	text, enc, err = tabular.DecodeText(latin1(t, "Días en bodega;Descripción"))
	require.NoError(t, err)
	assert.Equal(t, tabular.EncodingLatin1, enc)
	assert.Equal(t, "Días en bodega;Descripción", text)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ';', tabular.DetectDelimiter(`Entrada;Cliente;"Cobro, USD"`))
	assert.Equal(t, ',', tabular.DetectDelimiter(`Entrada,Cliente,"Cobro; USD"`))
	assert.Equal(t, '\t', tabular.DetectDelimiter("Entrada\tCliente\tCobro"))
	assert.Equal(t, ',', tabular.DetectDelimiter("Entrada"))
}

func TestReadCSV_FilasIrregulares(t *testing.T) {
	rows, delim, err := tabular.ReadCSV("a;b;c\n1;2\n3;4;5;6\n")
	require.NoError(t, err)
	assert.Equal(t, ';', delim)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestFileSource_CSVUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01 Diciembre 2025 - Inventario 01-12-2025.csv", []byte(utf8CSV))

	src := tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir})
	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tabular.EncodingUTF8, snap.Encoding)
	assert.Equal(t, ",", snap.Delimiter)
	require.Len(t, snap.Records, 3, "la fila en blanco se omite")
	assert.True(t, snap.HasColumn("Días Cobrados"))

	first := snap.Records[0]
	assert.Equal(t, "E-001", first.EntryID)
	assert.Equal(t, 81, first.DaysInWarehouse)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(first.Charge))
	assert.Equal(t, "60", first.BilledDays)
	assert.Equal(t, "Almacenaje", first.Concept)

	last := snap.Records[2]
	assert.Equal(t, entity.UnknownCustomer, last.Customer)
	assert.Equal(t, 0, last.DaysInWarehouse)
	assert.True(t, last.Charge.IsZero())
	assert.Len(t, snap.Warnings, 2, "un aviso por cobros y otro por días ilegibles")
}

func TestFileSource_CSVLatin1PuntoYComa(t *testing.T) {
	dir := t.TempDir()
	content := "Entrada de bodega;CLIENTE;Descripción;Dias en Bodega;Cobro (USD)\r\n" +
		"E-100;Compañía Ñandú;Café en grano;90;$1.200,50\r\n"
	writeFile(t, dir, "Inventario.csv", latin1(t, content))

	snap, err := tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir}).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tabular.EncodingLatin1, snap.Encoding)
	assert.Equal(t, ";", snap.Delimiter)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "Compañía Ñandú", snap.Records[0].Customer)
	assert.Equal(t, "Café en grano", snap.Records[0].Description)
	assert.Equal(t, 90, snap.Records[0].DaysInWarehouse)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(snap.Records[0].Charge))
	assert.Empty(t, snap.Warnings)
}

func TestFileSource_ColumnasFaltantes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Inventario.csv", []byte("Entrada,Cliente\nE-1,ACME\n"))

	snap, err := tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir}).Load(context.Background())
	require.NoError(t, err, "faltar columnas no es fatal")
	require.Len(t, snap.Records, 1)
	assert.True(t, snap.Records[0].Charge.IsZero())
	assert.Len(t, snap.Warnings, 3, "Descripción, Días en bodega y Cobro (USD)")
}

func TestFileSource_XLSX(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Entrada de bodega", "Cliente", "Descripción", "Días en bodega", "Cobro (USD)"},
		{"E-200", "ACME", "Bobinas", "120", "$2.500,00"},
		{"E-201", "Beta", "Cajas", "15", "$10,25"},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(dir, "Inventario.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	snap, err := tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tabular.EncodingXLSX, snap.Encoding)
	require.Len(t, snap.Records, 2)
	assert.Equal(t, 120, snap.Records[0].DaysInWarehouse)
	assert.True(t, decimal.RequireFromString("2500").Equal(snap.Records[0].Charge))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "Inventario 01-11-2025.csv", []byte("x"))
	recent := writeFile(t, dir, "Inventario 01-12-2025.csv", []byte("x"))
	writeFile(t, dir, "notas.txt", []byte("x"))

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	got, err := tabular.Discover(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, recent, got, "gana el más reciente")

	got, err = tabular.Discover(dir, "Inventario 01-11-2025.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, old, got, "la ruta explícita tiene prioridad")
}

func TestDiscover_SinArchivo(t *testing.T) {
	dir := t.TempDir()

	_, err := tabular.Discover(dir, "", nil)
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))

	_, err = tabular.Discover(dir, "no-existe.csv", nil)
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))

	_, err = tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir}).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))
}

func TestFileSource_ErroresDeFormato(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inventario.json", []byte("{}"))
	_, err := tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir, File: "inventario.json"}).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFile))

	writeFile(t, dir, "vacio.csv", []byte("\n\n"))
	_, err = tabular.NewFileSource(tabular.FileSourceConfig{Dir: dir, File: "vacio.csv"}).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrEmptyFile))
}

func TestFileSource_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tabular.NewFileSource(tabular.FileSourceConfig{Dir: t.TempDir()}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
