package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

type appBuilder func(cmd *cobra.Command) (*app, error)

// exportCmd subcomando pdf o xlsx; ambos solo difieren en el generador.
func exportCmd(format, short string, opts *cliOptions, build appBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build(cmd)
			if err != nil {
				return err
			}

			download := a.report.DownloadPDF
			if format == "xlsx" {
				download = a.report.DownloadXLSX
			}
			b, name, err := download(cmd.Context(), opts.selection())
			if err != nil {
				return err
			}

			path := outputPath(opts.output, name)
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", path, err)
			}
			printf(cmd.OutOrStdout(), "Reporte generado: %s (%d bytes)\n", path, len(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.output, "salida", "o", "", "archivo o directorio de salida (por defecto el nombre estándar en el directorio actual)")
	return cmd
}

func summaryCmd(opts *cliOptions, build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "resumen",
		Short: "Muestra los KPIs del filtro sin generar archivos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build(cmd)
			if err != nil {
				return err
			}
			return printSummary(cmd.Context(), cmd, a, opts.selection())
		},
	}
}

func printSummary(ctx context.Context, cmd *cobra.Command, a *app, sel dto.SelectionRequest) error {
	view, err := a.dashboard.Build(ctx, sel)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	printf(w, "Archivo:           %s\n", view.SourceFile)
	printf(w, "Fecha de corte:    %s\n", view.CutoffDate)
	for _, warn := range view.Warnings {
		printf(w, "Aviso:             %s\n", warn)
	}
	if view.Summary == nil {
		printf(w, "%s\n", view.Info)
		return nil
	}
	s := view.Summary
	printf(w, "Clientes:          %d de %d\n", len(view.Selected), len(view.Customers))
	printf(w, "Adeudo total:      %s\n", s.TotalChargeLabel)
	printf(w, "Partidas:          %d\n", s.TotalItems)
	printf(w, "Antigüedad máxima: %d días\n", s.MaxDays)
	printf(w, "Más de %d días:    %d partidas\n", s.ThresholdDays, s.AgingItems)
	if s.AgingAlert {
		printf(w, "ALERTA: hay mercancía con más de %d días en bodega\n", s.ThresholdDays)
	}
	return nil
}

// outputPath resuelve --salida: vacío → nombre estándar; directorio → nombre dentro.
func outputPath(flag, name string) string {
	if flag == "" {
		return name
	}
	if info, err := os.Stat(flag); err == nil && info.IsDir() {
		return filepath.Join(flag, name)
	}
	return flag
}
