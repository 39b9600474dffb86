package http

import (
	"github.com/gofiber/fiber/v2"

	appreport "github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descarga el informe de inventario.
type ReportHandler struct {
	uc  *appreport.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appreport.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// DownloadPDF godoc
// @Summary      Descargar reporte PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        cliente  query  []string  false  "Cliente (repetible)"  collectionFormat(multi)
// @Param        todos    query  string    false  "1 = todos los clientes"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	b, name, err := h.uc.DownloadPDF(c.Context(), GetSelection(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(b)
}

// DownloadXLSX godoc
// @Summary      Descargar reporte Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        cliente  query  []string  false  "Cliente (repetible)"  collectionFormat(multi)
// @Param        todos    query  string    false  "1 = todos los clientes"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/xlsx [get]
func (h *ReportHandler) DownloadXLSX(c *fiber.Ctx) error {
	b, name, err := h.uc.DownloadXLSX(c.Context(), GetSelection(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	return c.Send(b)
}
