// Package analytics contiene el caso de uso del dashboard de antigüedad:
// filtro por cliente, KPIs y tabla resaltada.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	appinventory "github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

// emptySelectionInfo mensaje cuando el operador no eligió ningún cliente.
const emptySelectionInfo = "Por favor seleccione al menos un cliente en el panel izquierdo."

// SnapshotProvider entrega el inventario cargado (LoadUseCase lo implementa).
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*entity.InventorySnapshot, error)
}

// DashboardUseCase arma la vista del dashboard para una selección de clientes.
//
// Fuente de datos: el snapshot memorizado; cada petición solo filtra y suma.
type DashboardUseCase struct {
	snapshots SnapshotProvider
	policy    inventory.AgingPolicy
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapshots SnapshotProvider, policy inventory.AgingPolicy) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, policy: policy, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Build construye el DashboardDTO:
//  1. lista de clientes y selección efectiva
//  2. filas filtradas con la marca de antigüedad
//  3. KPIs (solo si la selección no está vacía)
func (uc *DashboardUseCase) Build(ctx context.Context, req dto.SelectionRequest) (*dto.DashboardDTO, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	customers := inventory.Customers(snap.Records)
	sel := appinventory.ResolveSelection(customers, req)
	filtered := inventory.Filter(snap.Records, sel)

	view := &dto.DashboardDTO{
		Customers:   customers,
		Selected:    sel.Names(),
		AllSelected: req.AllSelected && len(req.Customers) == 0,
		Columns:     appinventory.DisplayColumns(snap),
		Rows:        appinventory.ToRowDTOs(filtered, uc.policy),
		Warnings:    snap.Warnings,
		CutoffDate:  uc.now().Format("02-01-2006"),
		SourceFile:  snap.SourcePath,
	}
	if sel.IsEmpty() {
		view.Info = emptySelectionInfo
		return view, nil
	}
	view.Summary = appinventory.ToSummaryDTO(inventory.Summarize(filtered, uc.policy), uc.policy)
	return view, nil
}

// Customers devuelve la lista de clientes disponibles para el filtro.
func (uc *DashboardUseCase) Customers(ctx context.Context) ([]string, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.Customers(snap.Records), nil
}

// List devuelve las filas filtradas paginadas junto con los KPIs del conjunto
// completo (no solo de la página).
func (uc *DashboardUseCase) List(ctx context.Context, req dto.SelectionRequest, page dto.PageRequest) (*dto.InventoryListDTO, error) {
	view, err := uc.Build(ctx, req)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()

	total := len(view.Rows)
	start := page.Offset
	if start > total {
		start = total
	}
	end := total
	if page.Limit > 0 && page.Limit < total-start {
		end = start + page.Limit
	}

	return &dto.InventoryListDTO{
		Customers: view.Customers,
		Selected:  view.Selected,
		Columns:   view.Columns,
		Rows:      view.Rows[start:end],
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
		Summary:   view.Summary,
		Warnings:  view.Warnings,
	}, nil
}
