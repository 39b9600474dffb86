package repository

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// InventorySource define el puerto de lectura del inventario (archivo CSV/XLSX).
type InventorySource interface {
	Load(ctx context.Context) (*entity.InventorySnapshot, error)
}
