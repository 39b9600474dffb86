package inventory

import (
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/money"
)

// TableDescriptionLen largo máximo de la descripción en la tabla del dashboard.
const TableDescriptionLen = 60

// ToRowDTOs convierte las partidas en filas de tabla marcando las antiguas.
func ToRowDTOs(records []entity.InventoryRecord, policy inventory.AgingPolicy) []dto.InventoryRowDTO {
	out := make([]dto.InventoryRowDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.InventoryRowDTO{
			EntryID:          r.EntryID,
			Customer:         r.Customer,
			Description:      r.Description,
			DescriptionShort: inventory.Truncate(r.Description, TableDescriptionLen),
			DaysInWarehouse:  r.DaysInWarehouse,
			BilledDays:       r.BilledDays,
			Concept:          r.Concept,
			ChargeRaw:        r.ChargeRaw,
			Charge:           r.Charge,
			ChargeLabel:      money.FormatUSD(r.Charge),
			Aging:            policy.IsAging(r.DaysInWarehouse),
			Extra:            r.Extra,
		})
	}
	return out
}

// ToSummaryDTO convierte las métricas de dominio en el DTO de KPIs.
func ToSummaryDTO(s inventory.Summary, policy inventory.AgingPolicy) *dto.SummaryDTO {
	return &dto.SummaryDTO{
		TotalCharge:      s.TotalCharge,
		TotalChargeLabel: money.FormatUSD(s.TotalCharge),
		TotalItems:       s.Items,
		MaxDays:          s.MaxDays,
		AgingItems:       s.AgingItems,
		AgingAlert:       s.Alert,
		ThresholdDays:    policy.ThresholdDays,
	}
}

// DisplayColumns devuelve las columnas de la tabla que existen en el archivo,
// en el orden fijo de la tabla.
func DisplayColumns(snap *entity.InventorySnapshot) []string {
	out := make([]string, 0, len(inventory.DisplayFields))
	for _, f := range inventory.DisplayFields {
		if snap.HasColumn(string(f)) {
			out = append(out, string(f))
		}
	}
	return out
}
