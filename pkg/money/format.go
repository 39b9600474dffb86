package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formatea un monto como "$1,234.56" (dos decimales, coma de miles).
// Los negativos llevan el signo delante: "-$10.00".
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(intPart, ',') + "." + frac
}

// groupThousands inserta sep cada tres dígitos contando desde la derecha.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string, sep byte) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, c)
	}
	return string(buf)
}
