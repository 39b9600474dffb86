package http

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// Mensajes de la página cuando el inventario no se puede cargar.
const (
	fileNotFoundInfo = "No se encontró el archivo de inventario. Coloque el archivo CSV o XLSX en la carpeta configurada y recargue la página."
	invalidFileInfo  = "El archivo de inventario no se pudo leer: debe ser CSV o XLSX y tener una fila de encabezados."
	loadFailedInfo   = "Ocurrió un error al cargar el inventario. Revise el log del servidor."
)

// PageOptions textos y recursos fijos de la página.
type PageOptions struct {
	Title       string
	CompanyName string
	LogoURL     string // vacío → texto "AFS LOGISTICS"
}

// dashboardPage modelo de la plantilla.
type dashboardPage struct {
	PageOptions
	View    *dto.DashboardDTO
	PDFURL  template.URL
	XLSXURL template.URL
}

// DashboardHandler sirve la página interactiva del dashboard.
type DashboardHandler struct {
	uc   *appanalytics.DashboardUseCase
	opts PageOptions
	log  *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, opts PageOptions, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, opts: opts, log: log}
}

// Page renderiza el dashboard para la selección de la query.
// GET /
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	sel := GetSelection(c)

	status := fiber.StatusOK
	view, err := h.uc.Build(c.Context(), sel)
	if err != nil {
		view = &dto.DashboardDTO{}
		switch {
		case errors.Is(err, domain.ErrFileNotFound):
			view.Info = fileNotFoundInfo
		case errors.Is(err, domain.ErrEmptyFile), errors.Is(err, domain.ErrUnsupportedFile):
			h.log.Warn().Err(err).Msg("dashboard: archivo de inventario inválido")
			view.Info = invalidFileInfo
		default:
			h.log.Error().Err(err).Msg("dashboard: construir vista")
			view.Info = loadFailedInfo
			status = fiber.StatusInternalServerError
		}
	}

	q := exportQuery(sel)
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, dashboardPage{
		PageOptions: h.opts,
		View:        view,
		PDFURL:      template.URL("/api/reports/pdf?" + q),
		XLSXURL:     template.URL("/api/reports/xlsx?" + q),
	}); err != nil {
		h.log.Error().Err(err).Msg("dashboard: renderizar plantilla")
		return c.Status(fiber.StatusInternalServerError).SendString("Error al renderizar la página")
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// exportQuery repite el filtro actual en los enlaces de descarga.
func exportQuery(sel dto.SelectionRequest) string {
	q := url.Values{}
	switch {
	case len(sel.Customers) > 0:
		q.Set(QueryAll, "0")
		for _, cst := range sel.Customers {
			q.Add(QueryCustomer, cst)
		}
	case sel.AllSelected:
		q.Set(QueryAll, "1")
	default:
		q.Set(QueryAll, "0")
	}
	return q.Encode()
}
