// Package inventory contiene las reglas de dominio del reporte de antigüedad:
// conciliación de encabezados, coerción de días, alerta de antigüedad,
// filtro por cliente y totales.
package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field es el nombre canónico de una columna del reporte.
type Field string

// Columnas canónicas (así se muestran en la tabla).
const (
	FieldEntryID     Field = "Entrada de bodega"
	FieldCustomer    Field = "Cliente"
	FieldDescription Field = "Descripción"
	FieldDays        Field = "Días en bodega"
	FieldBilledDays  Field = "Días Cobrados"
	FieldConcept     Field = "Concepto"
	FieldCharge      Field = "Cobro (USD)"
)

// DisplayFields es el orden de columnas de la tabla del dashboard.
var DisplayFields = []Field{
	FieldEntryID, FieldCustomer, FieldDescription, FieldDays,
	FieldBilledDays, FieldConcept, FieldCharge,
}

// ExpectedFields son las columnas que el cálculo necesita; si faltan se avisa
// y se usan valores por defecto.
var ExpectedFields = []Field{
	FieldEntryID, FieldCustomer, FieldDescription, FieldDays, FieldCharge,
}

// headerRules se evalúan en orden; la primera coincidencia gana.
// "dias cobrados" va antes que "cobro" y "dias en bodega" antes que "entrada".
var headerRules = []struct {
	field Field
	keys  []string
	skip  []string
}{
	{field: FieldDays, keys: []string{"dias en bodega", "dias bodega"}},
	{field: FieldBilledDays, keys: []string{"dias cobrados"}},
	{field: FieldEntryID, keys: []string{"entrada"}, skip: []string{"fecha"}},
	{field: FieldCustomer, keys: []string{"cliente"}},
	{field: FieldDescription, keys: []string{"descripcion", "mercancia"}},
	{field: FieldConcept, keys: []string{"concepto"}},
	{field: FieldCharge, keys: []string{"cobro", "adeudo"}},
}

// FoldHeader normaliza un encabezado para compararlo: minúsculas, sin tildes
// y con los espacios colapsados. "  Días   EN Bodega " → "dias en bodega".
func FoldHeader(s string) string {
	folded := StripAccents(strings.TrimPrefix(s, "\ufeff"))
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// StripAccents elimina las marcas diacríticas: "Compañía" → "Compania".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ReconcileHeader asigna un encabezado arbitrario a su columna canónica por
// coincidencia de subcadenas. ok es false si no coincide con ninguna.
func ReconcileHeader(header string) (Field, bool) {
	folded := FoldHeader(header)
	if folded == "" {
		return "", false
	}
	for _, rule := range headerRules {
		if containsAny(folded, rule.skip) {
			continue
		}
		if containsAny(folded, rule.keys) {
			return rule.field, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// HeaderMap es el resultado de conciliar la fila de encabezados de un archivo.
type HeaderMap struct {
	Headers []string      // encabezados originales
	Columns []string      // nombre final por posición: canónico o el original
	Index   map[Field]int // posición de cada columna canónica encontrada
	Missing []Field       // columnas esperadas que no aparecieron
}

// ReconcileHeaders concilia todos los encabezados. Si dos encabezados caen en
// la misma columna canónica gana el primero; el resto conserva su nombre.
func ReconcileHeaders(headers []string) HeaderMap {
	m := HeaderMap{
		Headers: headers,
		Columns: make([]string, len(headers)),
		Index:   make(map[Field]int, len(headerRules)),
	}
	for i, h := range headers {
		m.Columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		f, ok := ReconcileHeader(h)
		if !ok {
			continue
		}
		if _, taken := m.Index[f]; taken {
			continue
		}
		m.Index[f] = i
		m.Columns[i] = string(f)
	}
	for _, f := range ExpectedFields {
		if _, ok := m.Index[f]; !ok {
			m.Missing = append(m.Missing, f)
		}
	}
	return m
}

// Has indica si la columna canónica está presente.
func (m HeaderMap) Has(f Field) bool {
	_, ok := m.Index[f]
	return ok
}

// Value devuelve la celda de la columna canónica f en row (recortada).
// ok es false si la columna no existe o la fila es más corta.
func (m HeaderMap) Value(row []string, f Field) (string, bool) {
	i, ok := m.Index[f]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// Present devuelve las columnas canónicas encontradas, en el orden del archivo.
func (m HeaderMap) Present() []string {
	out := make([]string, 0, len(m.Index))
	for i := range m.Columns {
		if f, ok := m.fieldAt(i); ok {
			out = append(out, string(f))
		}
	}
	return out
}

// Unmatched devuelve las posiciones de los encabezados que no se conciliaron.
func (m HeaderMap) Unmatched() []int {
	var out []int
	for i := range m.Columns {
		if _, ok := m.fieldAt(i); !ok {
			out = append(out, i)
		}
	}
	return out
}

func (m HeaderMap) fieldAt(i int) (Field, bool) {
	for f, idx := range m.Index {
		if idx == i {
			return f, true
		}
	}
	return "", false
}
