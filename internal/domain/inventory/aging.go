package inventory

// DefaultAgingThresholdDays umbral de almacenaje prolongado.
const DefaultAgingThresholdDays = 80

// AgingPolicy decide qué partidas se marcan por antigüedad.
type AgingPolicy struct {
	ThresholdDays int
}

// NewAgingPolicy construye la política; un umbral <= 0 usa el valor por defecto.
func NewAgingPolicy(thresholdDays int) AgingPolicy {
	if thresholdDays <= 0 {
		thresholdDays = DefaultAgingThresholdDays
	}
	return AgingPolicy{ThresholdDays: thresholdDays}
}

// IsAging es estrictamente mayor que el umbral: 81 se marca, 80 no.
func (p AgingPolicy) IsAging(days int) bool {
	return days > p.ThresholdDays
}
