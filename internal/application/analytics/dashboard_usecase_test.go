package analytics_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

type staticSnapshots struct {
	snap *entity.InventorySnapshot
	err  error
}

func (s staticSnapshots) Snapshot(context.Context) (*entity.InventorySnapshot, error) {
	return s.snap, s.err
}

func record(id, customer string, days int, charge string) entity.InventoryRecord {
	return entity.InventoryRecord{
		EntryID: id, Customer: customer, Description: "Mercancía " + id,
		DaysInWarehouse: days, Charge: decimal.RequireFromString(charge),
	}
}

func newUseCase() *analytics.DashboardUseCase {
	snap := &entity.InventorySnapshot{
		SourcePath: "Inventario.csv",
		Columns:    []string{"Entrada de bodega", "Cliente", "Descripción", "Días en bodega", "Cobro (USD)"},
		Records: []entity.InventoryRecord{
			record("E-1", "ACME", 10, "100.25"),
			record("E-2", "Beta", 95, "2000"),
			record("E-3", "ACME", 80, "0.75"),
			record("E-4", "Gamma", 5, "1"),
		},
	}
	fixed := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	return analytics.NewDashboardUseCase(staticSnapshots{snap: snap}, inventory.NewAgingPolicy(80)).
		WithClock(func() time.Time { return fixed })
}

func TestBuild_TodosLosClientes(t *testing.T) {
	view, err := newUseCase().Build(context.Background(), dto.SelectionRequest{AllSelected: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"ACME", "Beta", "Gamma"}, view.Customers)
	assert.True(t, view.AllSelected)
	assert.Len(t, view.Rows, 4, "selección completa = todas las filas")
	require.NotNil(t, view.Summary)
	assert.True(t, decimal.RequireFromString("2102").Equal(view.Summary.TotalCharge))
	assert.Equal(t, "$2,102.00", view.Summary.TotalChargeLabel)
	assert.Equal(t, 95, view.Summary.MaxDays)
	assert.True(t, view.Summary.AgingAlert)
	assert.Equal(t, "01-12-2025", view.CutoffDate)
	assert.Empty(t, view.Info)
}

func TestBuild_FiltroPorCliente(t *testing.T) {
	view, err := newUseCase().Build(context.Background(), dto.SelectionRequest{Customers: []string{"ACME"}})
	require.NoError(t, err)

	require.Len(t, view.Rows, 2)
	assert.False(t, view.AllSelected)
	assert.True(t, view.IsSelected("ACME"))
	assert.False(t, view.IsSelected("Beta"))
	assert.True(t, decimal.RequireFromString("101").Equal(view.Summary.TotalCharge))
	assert.Equal(t, 80, view.Summary.MaxDays)
	assert.False(t, view.Summary.AgingAlert, "80 días exactos no disparan la alerta")
	assert.False(t, view.Rows[1].Aging)
}

func TestBuild_SeleccionVacia(t *testing.T) {
	view, err := newUseCase().Build(context.Background(), dto.SelectionRequest{})
	require.NoError(t, err)

	assert.Empty(t, view.Rows)
	assert.Nil(t, view.Summary)
	assert.NotEmpty(t, view.Info)
	assert.Len(t, view.Customers, 3, "la lista de clientes sigue disponible")
}

func TestBuild_ErrorDeCarga(t *testing.T) {
	uc := analytics.NewDashboardUseCase(staticSnapshots{err: domain.ErrFileNotFound}, inventory.NewAgingPolicy(80))
	_, err := uc.Build(context.Background(), dto.SelectionRequest{AllSelected: true})
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))

	_, err = uc.Customers(context.Background())
	assert.True(t, errors.Is(err, domain.ErrFileNotFound))
}

func TestList_Paginacion(t *testing.T) {
	uc := newUseCase()
	req := dto.SelectionRequest{AllSelected: true}

	page, err := uc.List(context.Background(), req, dto.PageRequest{Limit: 3, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, "E-3", page.Rows[0].EntryID)
	assert.Equal(t, 4, page.Page.Total)
	assert.Equal(t, 4, page.Summary.TotalItems, "los KPIs cubren todo el filtro, no la página")

	page, err = uc.List(context.Background(), req, dto.PageRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)

	page, err = uc.List(context.Background(), req, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 4, "sin límite devuelve todo")
}

func TestList_LimiteMaximo(t *testing.T) {
	page, err := newUseCase().List(context.Background(), dto.SelectionRequest{AllSelected: true},
		dto.PageRequest{Limit: math.MaxInt, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 3)
	assert.Equal(t, "E-2", page.Rows[0].EntryID)
}
