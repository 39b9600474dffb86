package dto

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

// SelectionRequest clientes elegidos en el filtro.
// Si Customers está vacío, AllSelected decide entre "todos" y "ninguno".
type SelectionRequest struct {
	Customers   []string
	AllSelected bool
}

// InventoryRowDTO una partida de la tabla de detalle.
type InventoryRowDTO struct {
	EntryID          string            `json:"entry_id"`
	Customer         string            `json:"customer"`
	Description      string            `json:"description"`
	DescriptionShort string            `json:"description_short"`
	DaysInWarehouse  int               `json:"days_in_warehouse"`
	BilledDays       string            `json:"billed_days,omitempty"`
	Concept          string            `json:"concept,omitempty"`
	ChargeRaw        string            `json:"charge_raw,omitempty"`
	Charge           decimal.Decimal   `json:"charge"`
	ChargeLabel      string            `json:"charge_label"`
	Aging            bool              `json:"aging"` // más días que el umbral: se resalta
	Extra            map[string]string `json:"extra,omitempty"`
}

// Cell devuelve el valor a mostrar para una columna canónica de la tabla.
func (r InventoryRowDTO) Cell(column string) string {
	switch column {
	case string(inventory.FieldEntryID):
		return r.EntryID
	case string(inventory.FieldCustomer):
		return r.Customer
	case string(inventory.FieldDescription):
		return r.DescriptionShort
	case string(inventory.FieldDays):
		return strconv.Itoa(r.DaysInWarehouse)
	case string(inventory.FieldBilledDays):
		return r.BilledDays
	case string(inventory.FieldConcept):
		return r.Concept
	case string(inventory.FieldCharge):
		if r.ChargeRaw != "" {
			return r.ChargeRaw
		}
		return r.ChargeLabel
	}
	return r.Extra[column]
}

// InventoryListDTO respuesta de GET /api/inventory.
type InventoryListDTO struct {
	Customers []string          `json:"customers"`
	Selected  []string          `json:"selected"`
	Columns   []string          `json:"columns"`
	Rows      []InventoryRowDTO `json:"rows"`
	Page      PageResponse      `json:"page"`
	Summary   *SummaryDTO       `json:"summary,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// CustomerListDTO respuesta de GET /api/inventory/customers.
type CustomerListDTO struct {
	Total     int      `json:"total"`
	Customers []string `json:"customers"`
}
