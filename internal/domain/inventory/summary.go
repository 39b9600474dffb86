package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Summary métricas agregadas de un conjunto filtrado de partidas.
type Summary struct {
	TotalCharge decimal.Decimal // adeudo total estimado (suma exacta de cobros)
	Items       int             // total de partidas
	MaxDays     int             // antigüedad máxima
	AgingItems  int             // partidas por encima del umbral
	Alert       bool            // MaxDays > umbral
}

// Summarize calcula las métricas del conjunto.
func Summarize(records []entity.InventoryRecord, policy AgingPolicy) Summary {
	s := Summary{TotalCharge: decimal.Zero, Items: len(records)}
	for _, r := range records {
		s.TotalCharge = s.TotalCharge.Add(r.Charge)
		if r.DaysInWarehouse > s.MaxDays {
			s.MaxDays = r.DaysInWarehouse
		}
		if policy.IsAging(r.DaysInWarehouse) {
			s.AgingItems++
		}
	}
	s.Alert = policy.IsAging(s.MaxDays)
	return s
}
