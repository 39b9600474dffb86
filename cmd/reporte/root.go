package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	appinventory "github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	appreport "github.com/jhoicas/Inventario-dashboard/internal/application/report"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	infraexcel "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/tabular"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// app casos de uso compartidos por los subcomandos.
type app struct {
	dashboard *appanalytics.DashboardUseCase
	report    *appreport.ReportUseCase
	log       *logger.Logger
}

// cliOptions valores de los flags que no pasan por la configuración.
type cliOptions struct {
	customers []string
	output    string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "reporte",
		Short: "Reporte de antigüedad de inventario",
		Long: `reporte lee la exportación de inventario (CSV o XLSX), filtra por cliente
y genera el Reporte de Estado de Inventario en PDF o Excel, o muestra el resumen.

Sin --cliente se incluyen todos los clientes.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("archivo", "", "archivo de inventario (por defecto se busca en --dir)")
	pf.String("dir", ".", "directorio donde buscar el archivo de inventario")
	pf.Int("umbral", inventory.DefaultAgingThresholdDays, "días a partir de los cuales una partida se considera antigua")
	pf.String("log-level", "warn", "nivel de log (debug, info, warn, error)")
	pf.StringArrayVarP(&opts.customers, "cliente", "c", nil, "cliente a incluir (repetible)")

	_ = v.BindPFlag("INVENTORY_FILE", pf.Lookup("archivo"))
	_ = v.BindPFlag("INVENTORY_DIR", pf.Lookup("dir"))
	_ = v.BindPFlag("AGING_THRESHOLD_DAYS", pf.Lookup("umbral"))
	_ = v.BindPFlag("LOG_LEVEL", pf.Lookup("log-level"))
	v.AutomaticEnv()

	build := func(cmd *cobra.Command) (*app, error) {
		cfg, err := config.FromViper(v)
		if err != nil {
			return nil, err
		}
		return newApp(cfg, cmd.ErrOrStderr()), nil
	}

	root.AddCommand(
		exportCmd("pdf", "Genera el reporte en PDF", opts, build),
		exportCmd("xlsx", "Genera el reporte en Excel", opts, build),
		summaryCmd(opts, build),
	)
	return root
}

func newApp(cfg *config.Config, logOut io.Writer) *app {
	log := logger.New(logger.Config{Env: "production", Level: cfg.App.LogLevel, Output: logOut})

	source := tabular.NewFileSource(tabular.FileSourceConfig{
		Dir:      cfg.Inventory.Dir,
		File:     cfg.Inventory.File,
		Patterns: cfg.Inventory.Patterns,
	})
	loadUC := appinventory.NewLoadUseCase(source, log.Named("inventario"))
	policy := inventory.NewAgingPolicy(cfg.Inventory.AgingThresholdDays)

	return &app{
		dashboard: appanalytics.NewDashboardUseCase(loadUC, policy),
		report: appreport.NewReportUseCase(
			loadUC, policy,
			infrapdf.NewMarotoReportGenerator(),
			infraexcel.NewWorkbookGenerator(cfg.App.Name),
			appreport.Options{CompanyName: cfg.Report.CompanyName, LogoPath: cfg.Report.LogoPath},
		),
		log: log,
	}
}

// selection sin --cliente equivale a todos los clientes.
func (o *cliOptions) selection() dto.SelectionRequest {
	if len(o.customers) == 0 {
		return dto.SelectionRequest{AllSelected: true}
	}
	return dto.SelectionRequest{Customers: o.customers}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
