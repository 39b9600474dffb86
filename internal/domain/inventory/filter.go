package inventory

import (
	"sort"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// CustomerSelection conjunto de clientes elegidos por el operador. Conserva el
// orden en que se eligieron (se usa para la etiqueta del reporte).
type CustomerSelection struct {
	names []string
	set   map[string]struct{}
}

// NewCustomerSelection construye la selección descartando vacíos y duplicados.
// Los nombres se comparan literalmente, sin normalizar.
func NewCustomerSelection(names []string) CustomerSelection {
	sel := CustomerSelection{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if _, dup := sel.set[n]; dup {
			continue
		}
		sel.set[n] = struct{}{}
		sel.names = append(sel.names, n)
	}
	return sel
}

// Names devuelve los clientes seleccionados en el orden de elección.
func (s CustomerSelection) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len número de clientes seleccionados.
func (s CustomerSelection) Len() int { return len(s.names) }

// IsEmpty indica si no hay ningún cliente seleccionado.
func (s CustomerSelection) IsEmpty() bool { return len(s.names) == 0 }

// Contains prueba de pertenencia literal.
func (s CustomerSelection) Contains(customer string) bool {
	_, ok := s.set[customer]
	return ok
}

// Customers devuelve las etiquetas de cliente únicas, ordenadas.
func Customers(records []entity.InventoryRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Customer]; ok {
			continue
		}
		seen[r.Customer] = struct{}{}
		out = append(out, r.Customer)
	}
	sort.Strings(out)
	return out
}

// Filter devuelve las filas cuyo cliente pertenece a la selección, en el orden
// original. Una selección vacía devuelve un resultado vacío.
func Filter(records []entity.InventoryRecord, sel CustomerSelection) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, 0)
	if sel.IsEmpty() {
		return out
	}
	for _, r := range records {
		if sel.Contains(r.Customer) {
			out = append(out, r)
		}
	}
	return out
}
