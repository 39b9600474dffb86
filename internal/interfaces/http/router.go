package http

import (
	"os"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	appreport "github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// sidebarLogoRoute ruta pública del logo de la barra lateral.
const sidebarLogoRoute = "/static/logo"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC     *appanalytics.DashboardUseCase
	ReportUC        *appreport.ReportUseCase
	Page            PageOptions
	SidebarLogoPath string // archivo local; si no existe se muestra el texto de respaldo
	Log             *logger.Logger
}

// Router registra la página y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("http")

	page := deps.Page
	if fileExists(deps.SidebarLogoPath) {
		logoPath := deps.SidebarLogoPath
		app.Get(sidebarLogoRoute, func(c *fiber.Ctx) error {
			return c.SendFile(logoPath)
		})
		page.LogoURL = sidebarLogoRoute
	}

	sel := SelectionMiddleware()

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, page, log)
	app.Get("/", sel, dashboardHandler.Page)

	api := app.Group("/api", sel)

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.DashboardUC, log)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/customers", inventoryHandler.Customers)
	inv.Get("/summary", inventoryHandler.Summary)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, log)
	reports.Get("/pdf", reportHandler.DownloadPDF)
	reports.Get("/xlsx", reportHandler.DownloadXLSX)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
