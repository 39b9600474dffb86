package inventory

import (
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

// ResolveSelection convierte la petición del filtro en la selección efectiva:
// los clientes pedidos si hay alguno; si no, todos o ninguno según AllSelected.
func ResolveSelection(available []string, req dto.SelectionRequest) inventory.CustomerSelection {
	if len(req.Customers) > 0 {
		return inventory.NewCustomerSelection(req.Customers)
	}
	if req.AllSelected {
		return inventory.NewCustomerSelection(available)
	}
	return inventory.NewCustomerSelection(nil)
}
