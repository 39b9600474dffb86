package tabular

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// candidateDelimiters en orden de preferencia ante empate.
var candidateDelimiters = []rune{',', ';', '\t'}

// ReadCSV lee un CSV ya decodificado. El separador se detecta en la primera
// línea no vacía; se toleran filas con distinta cantidad de columnas y
// comillas mal cerradas.
func ReadCSV(text string) ([][]string, rune, error) {
	delim := DetectDelimiter(firstLine(text))

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, delim, fmt.Errorf("tabular: leer CSV: %w", err)
	}
	return rows, delim, nil
}

// DetectDelimiter cuenta los separadores candidatos fuera de comillas y
// devuelve el más frecuente (',' si no aparece ninguno).
func DetectDelimiter(line string) rune {
	counts := make(map[rune]int, len(candidateDelimiters))
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		for _, d := range candidateDelimiters {
			if r == d {
				counts[d]++
			}
		}
	}
	best := candidateDelimiters[0]
	for _, d := range candidateDelimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func firstLine(text string) string {
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			return strings.TrimRight(l, "\r")
		}
	}
	return ""
}
