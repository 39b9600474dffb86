package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/money"
)

// RowIssues valores que no se pudieron interpretar en una fila y se
// reemplazaron por su valor por defecto.
type RowIssues struct {
	BadCharge bool
	BadDays   bool
}

// IsBlankRow indica si todas las celdas de la fila están vacías.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// BuildRecord convierte una fila cruda en InventoryRecord usando el mapa de
// encabezados. Nunca falla: lo ausente o ilegible toma su valor por defecto.
func BuildRecord(m HeaderMap, row []string, line int) (entity.InventoryRecord, RowIssues) {
	var issues RowIssues
	r := entity.InventoryRecord{Line: line, Charge: decimal.Zero}

	r.EntryID, _ = m.Value(row, FieldEntryID)
	r.Description, _ = m.Value(row, FieldDescription)
	r.BilledDays, _ = m.Value(row, FieldBilledDays)
	r.Concept, _ = m.Value(row, FieldConcept)

	r.Customer, _ = m.Value(row, FieldCustomer)
	if r.Customer == "" {
		r.Customer = entity.UnknownCustomer
	}

	if raw, ok := m.Value(row, FieldDays); ok && raw != "" {
		days, valid := TryParseDays(raw)
		r.DaysInWarehouse = days
		issues.BadDays = !valid
	}

	if raw, ok := m.Value(row, FieldCharge); ok {
		r.ChargeRaw = raw
		if raw != "" {
			charge, valid := money.TryParseAmount(raw)
			r.Charge = charge
			issues.BadCharge = !valid
		}
	}

	for _, i := range m.Unmatched() {
		if i >= len(row) {
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[m.Columns[i]] = strings.TrimSpace(row[i])
	}
	return r, issues
}
