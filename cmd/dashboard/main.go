package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Inventario-dashboard/docs"
	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	appinventory "github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	appreport "github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	infraexcel "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/tabular"
	httpRouter "github.com/jhoicas/Inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        Inventario Dashboard API
// @version      1.0
// @description  Reporte de antigüedad de inventario: filtro por cliente, KPIs y descargas PDF/XLSX.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("inventory_dir", cfg.Inventory.Dir).
		Int("aging_threshold_days", cfg.Inventory.AgingThresholdDays).
		Msg("iniciando aplicación")

	source := tabular.NewFileSource(tabular.FileSourceConfig{
		Dir:      cfg.Inventory.Dir,
		File:     cfg.Inventory.File,
		Patterns: cfg.Inventory.Patterns,
	})
	loadUC := appinventory.NewLoadUseCase(source, log.Named("inventario"))
	policy := inventory.NewAgingPolicy(cfg.Inventory.AgingThresholdDays)

	dashboardUC := appanalytics.NewDashboardUseCase(loadUC, policy)
	reportUC := appreport.NewReportUseCase(
		loadUC, policy,
		infrapdf.NewMarotoReportGenerator(),
		infraexcel.NewWorkbookGenerator(cfg.App.Name),
		appreport.Options{CompanyName: cfg.Report.CompanyName, LogoPath: cfg.Report.LogoPath},
	)

	// Carga anticipada: si el archivo aún no existe se reintenta en la primera petición.
	if _, err := loadUC.Snapshot(context.Background()); err != nil {
		log.Warn().Err(err).Msg("inventario no disponible al arrancar")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario Dashboard API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Page: httpRouter.PageOptions{
			Title:       appreport.ReportTitle,
			CompanyName: cfg.Report.CompanyName,
		},
		SidebarLogoPath: cfg.Report.SidebarLogoPath,
		Log:             log,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(app, cfg.HTTP.Addr(), quit, log); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}

	log.Info().Msg("aplicación detenida")
}
