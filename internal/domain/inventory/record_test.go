package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

func TestBuildRecord(t *testing.T) {
	m := inventory.ReconcileHeaders([]string{
		"Entrada de bodega", "Cliente", "Descripción", "Días en bodega", "Peso", "Cobro (USD)",
	})

	r, issues := inventory.BuildRecord(m, []string{"E-10", "ACME", "Cajas", "85", "12 kg", "$1.234,56"}, 2)
	assert.Equal(t, "E-10", r.EntryID)
	assert.Equal(t, "ACME", r.Customer)
	assert.Equal(t, 85, r.DaysInWarehouse)
	assert.Equal(t, "$1.234,56", r.ChargeRaw)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(r.Charge))
	assert.Equal(t, map[string]string{"Peso": "12 kg"}, r.Extra)
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, inventory.RowIssues{}, issues)
}

func TestBuildRecord_ValoresPorDefecto(t *testing.T) {
	m := inventory.ReconcileHeaders([]string{"Entrada", "Cliente", "Dias en bodega", "Cobro"})

	r, issues := inventory.BuildRecord(m, []string{"E-11", "  ", "pendiente", "N/D"}, 3)
	assert.Equal(t, entity.UnknownCustomer, r.Customer, "cliente vacío se etiqueta")
	assert.Equal(t, 0, r.DaysInWarehouse)
	assert.True(t, r.Charge.IsZero())
	assert.True(t, issues.BadDays)
	assert.True(t, issues.BadCharge)

	// fila corta: las columnas faltantes quedan vacías sin marcar error
	r, issues = inventory.BuildRecord(m, []string{"E-12"}, 4)
	assert.Equal(t, "E-12", r.EntryID)
	assert.True(t, r.Charge.IsZero())
	assert.Equal(t, inventory.RowIssues{}, issues)
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, inventory.IsBlankRow([]string{"", "  ", "\t"}))
	assert.True(t, inventory.IsBlankRow(nil))
	assert.False(t, inventory.IsBlankRow([]string{"", "x"}))
}
