package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

func TestFoldHeader(t *testing.T) {
	assert.Equal(t, "dias en bodega", inventory.FoldHeader("  Días   EN Bodega "))
	assert.Equal(t, "descripcion", inventory.FoldHeader("\ufeffDESCRIPCIÓN"))
	assert.Equal(t, "cobro (usd)", inventory.FoldHeader("Cobro (USD)"))
}

// Variantes reales de encabezado para "Días en bodega": con y sin tilde,
// mayúsculas, espacios repetidos y texto adicional.
func TestReconcileHeader_DiasEnBodega(t *testing.T) {
	variants := []string{
		"Días en bodega",
		"Dias en bodega",
		"DÍAS EN BODEGA",
		"dias  en   bodega",
		"Total días en bodega (al corte)",
		"Di\u0301as en bodega", // tilde combinante (NFD)
	}
	for _, v := range variants {
		f, ok := inventory.ReconcileHeader(v)
		require.True(t, ok, "debe reconocer %q", v)
		assert.Equal(t, inventory.FieldDays, f, "encabezado %q", v)
	}
}

func TestReconcileHeader_Canonicos(t *testing.T) {
	cases := map[string]inventory.Field{
		"Entrada de bodega":       inventory.FieldEntryID,
		"No. Entrada":             inventory.FieldEntryID,
		"CLIENTE":                 inventory.FieldCustomer,
		"Descripción":             inventory.FieldDescription,
		"Descripción / Mercancía": inventory.FieldDescription,
		"Mercancia":               inventory.FieldDescription,
		"Días Cobrados":           inventory.FieldBilledDays,
		"Concepto":                inventory.FieldConcept,
		"Cobro (USD)":             inventory.FieldCharge,
		"Adeudo":                  inventory.FieldCharge,
	}
	for header, want := range cases {
		got, ok := inventory.ReconcileHeader(header)
		require.True(t, ok, "debe reconocer %q", header)
		assert.Equal(t, want, got, "encabezado %q", header)
	}
}

func TestReconcileHeader_SinCoincidencia(t *testing.T) {
	for _, h := range []string{"Peso (kg)", "Fecha de entrada", "", "   "} {
		_, ok := inventory.ReconcileHeader(h)
		assert.False(t, ok, "%q no debe conciliarse", h)
	}
}

func TestReconcileHeaders(t *testing.T) {
	headers := []string{"Peso", "ENTRADA DE BODEGA", "Cliente", "Dias en Bodega", "Cobro USD", "Cliente final"}
	m := inventory.ReconcileHeaders(headers)

	assert.Equal(t, []string{"Peso", "Entrada de bodega", "Cliente", "Días en bodega", "Cobro (USD)", "Cliente final"}, m.Columns,
		"los no conciliados y los duplicados conservan su nombre")
	assert.Equal(t, 2, m.Index[inventory.FieldCustomer], "gana el primer encabezado de cliente")
	assert.Equal(t, []inventory.Field{inventory.FieldDescription}, m.Missing)
	assert.Equal(t, []string{"Entrada de bodega", "Cliente", "Días en bodega", "Cobro (USD)"}, m.Present())
	assert.Equal(t, []int{0, 5}, m.Unmatched())

	row := []string{"10", " E-001 ", "ACME", "81"}
	v, ok := m.Value(row, inventory.FieldEntryID)
	assert.True(t, ok)
	assert.Equal(t, "E-001", v)

	_, ok = m.Value(row, inventory.FieldCharge)
	assert.False(t, ok, "fila más corta que el encabezado")

	_, ok = m.Value(row, inventory.FieldDescription)
	assert.False(t, ok, "columna ausente")
	assert.False(t, m.Has(inventory.FieldDescription))
}

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "Compania Nandu", inventory.StripAccents("Compañía Ñandú"))
	assert.Equal(t, "Dias", inventory.StripAccents("Días"))
}
