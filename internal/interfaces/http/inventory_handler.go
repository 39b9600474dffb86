package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// InventoryHandler expone el inventario filtrado como JSON.
type InventoryHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Partidas de inventario filtradas
// @Description  Filas del filtro de clientes con la marca de antigüedad y los KPIs del conjunto completo.
// @Tags         inventory
// @Produce      json
// @Param        cliente  query  []string  false  "Cliente (repetible)"  collectionFormat(multi)
// @Param        todos    query  string    false  "1 = todos los clientes, 0 = ninguno si no hay cliente"
// @Param        limit    query  int       false  "Máximo de filas (0 = sin límite)"
// @Param        offset   query  int       false  "Desplazamiento"
// @Success      200  {object}  dto.InventoryListDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	list, err := h.uc.List(c.Context(), GetSelection(c), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Customers godoc
// @Summary      Clientes disponibles
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.CustomerListDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/customers [get]
func (h *InventoryHandler) Customers(c *fiber.Ctx) error {
	customers, err := h.uc.Customers(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.CustomerListDTO{Total: len(customers), Customers: customers})
}

// Summary godoc
// @Summary      KPIs del filtro
// @Description  Adeudo total, partidas, antigüedad máxima y alerta para la selección.
// @Tags         inventory
// @Produce      json
// @Param        cliente  query  []string  false  "Cliente (repetible)"  collectionFormat(multi)
// @Param        todos    query  string    false  "1 = todos los clientes"
// @Success      200  {object}  dto.SummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	view, err := h.uc.Build(c.Context(), GetSelection(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if view.Summary == nil {
		return writeError(c, h.log, domain.ErrEmptySelection)
	}
	return c.JSON(view.Summary)
}
