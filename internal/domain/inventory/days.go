package inventory

import (
	"strconv"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/pkg/money"
)

// ParseDays convierte "Días en bodega" a entero no negativo. Acepta enteros,
// decimales con punto o coma ("45,0") y sufijos de texto comunes ("45 días").
// Cualquier otro valor, o un negativo, devuelve 0.
func ParseDays(raw string) int {
	n, _ := TryParseDays(raw)
	return n
}

// TryParseDays es ParseDays pero indica si el valor era interpretable.
// Las celdas vacías no lo son.
func TryParseDays(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(s), "días"))
	s = strings.TrimSpace(strings.TrimSuffix(s, "dias"))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, true
		}
		return n, true
	}
	d, ok := money.TryParseAmount(s)
	if !ok {
		return 0, false
	}
	if d.IsNegative() {
		return 0, true
	}
	return int(d.IntPart()), true
}
