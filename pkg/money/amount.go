// Package money normaliza montos escritos con convenciones locales distintas
// ("$1.234,56", "US$ 1,234.56", "(500,00)") y los formatea para mostrarlos.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyTokens se eliminan antes de analizar el número. El orden importa:
// "US$" debe quitarse antes que "$".
var currencyTokens = []string{"US$", "USD", "COP", "MXN", "$", "€"}

// ParseAmount convierte un monto en texto a decimal. Cualquier valor que no se
// pueda interpretar devuelve cero: una celda corrupta no debe tumbar la carga.
//
// Reglas de separadores:
//   - si aparecen '.' y ',' a la vez, el que esté más a la derecha es el decimal;
//   - si un mismo separador se repite, es de miles ("1.234.567");
//   - una sola ',' es decimal ("0,00", "1234,5");
//   - un solo '.' seguido de exactamente tres dígitos es de miles ("1.234"),
//     en otro caso es decimal ("12.5").
func ParseAmount(raw string) decimal.Decimal {
	d, ok := TryParseAmount(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// TryParseAmount es ParseAmount pero indica si el texto era un monto válido.
// Una celda vacía no es válida.
func TryParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, tok := range currencyTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return decimal.Zero, false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return decimal.Zero, false
		}
	}

	canonical, ok := canonicalNumber(s)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// canonicalNumber deja el número con '.' como único separador decimal y sin
// separadores de miles.
func canonicalNumber(s string) (string, bool) {
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			if commas > 1 {
				return "", false
			}
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			if dots > 1 {
				return "", false
			}
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	case dots == 1:
		i := strings.Index(s, ".")
		if i > 0 && len(s)-i-1 == 3 {
			s = s[:i] + s[i+1:]
		}
	}

	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s, true
}
