package dto

import "github.com/shopspring/decimal"

// SummaryDTO KPIs del conjunto filtrado.
type SummaryDTO struct {
	TotalCharge      decimal.Decimal `json:"total_charge"`       // adeudo total estimado (USD)
	TotalChargeLabel string          `json:"total_charge_label"` // ej: "$1,234.56"
	TotalItems       int             `json:"total_items"`
	MaxDays          int             `json:"max_days"`
	AgingItems       int             `json:"aging_items"`
	AgingAlert       bool            `json:"aging_alert"` // MaxDays > ThresholdDays
	ThresholdDays    int             `json:"threshold_days"`
}

// DashboardDTO todo lo que necesita la página del dashboard en una petición.
type DashboardDTO struct {
	Customers   []string          `json:"customers"`
	Selected    []string          `json:"selected"`
	AllSelected bool              `json:"all_selected"`
	Columns     []string          `json:"columns"` // columnas presentes, en orden de la tabla
	Rows        []InventoryRowDTO `json:"rows"`
	Summary     *SummaryDTO       `json:"summary,omitempty"` // nil si la selección está vacía
	Info        string            `json:"info,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	CutoffDate  string            `json:"cutoff_date"` // dd-mm-aaaa
	SourceFile  string            `json:"source_file"`
}

// IsSelected indica si el cliente está en la selección efectiva (para la plantilla).
func (d *DashboardDTO) IsSelected(customer string) bool {
	for _, s := range d.Selected {
		if s == customer {
			return true
		}
	}
	return false
}
