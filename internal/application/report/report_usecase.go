// Package report arma el informe exportable de antigüedad de inventario y lo
// entrega en PDF o XLSX.
package report

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	appinventory "github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/money"
)

const (
	// ReportTitle título de la cabecera de cada página.
	ReportTitle = "Reporte de Estado de Inventario"
	// ReportDescriptionLen largo máximo de la descripción en la tabla del informe.
	ReportDescriptionLen = 35
	// clientLabelMax cuántos clientes se nombran en la portada.
	clientLabelMax = 3
	// multiClientFileLabel etiqueta del archivo cuando hay más de un cliente.
	multiClientFileLabel = "Varios_Clientes"
	dateLayout           = "02-01-2006"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ReportUseCase construye el informe a partir del snapshot memorizado.
type ReportUseCase struct {
	snapshots   analytics.SnapshotProvider
	policy      inventory.AgingPolicy
	pdf         ReportPDFGenerator
	workbook    ReportWorkbookGenerator
	companyName string
	logoPath    string
	now         func() time.Time
}

// Options datos de presentación del informe (vienen de la configuración).
type Options struct {
	CompanyName string
	LogoPath    string
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
// Cualquiera de los generadores puede ser nil si ese formato no se usa.
func NewReportUseCase(
	snapshots analytics.SnapshotProvider,
	policy inventory.AgingPolicy,
	pdf ReportPDFGenerator,
	workbook ReportWorkbookGenerator,
	opts Options,
) *ReportUseCase {
	return &ReportUseCase{
		snapshots:   snapshots,
		policy:      policy,
		pdf:         pdf,
		workbook:    workbook,
		companyName: opts.CompanyName,
		logoPath:    opts.LogoPath,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// BuildReport arma el contenido del informe para la selección.
// Una selección vacía devuelve domain.ErrEmptySelection.
func (uc *ReportUseCase) BuildReport(ctx context.Context, req dto.SelectionRequest) (*dto.InventoryReportDTO, error) {
	snap, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sel := appinventory.ResolveSelection(inventory.Customers(snap.Records), req)
	if sel.IsEmpty() {
		return nil, domain.ErrEmptySelection
	}
	filtered := inventory.Filter(snap.Records, sel)
	sum := inventory.Summarize(filtered, uc.policy)

	lines := make([]dto.ReportLineDTO, 0, len(filtered))
	for _, r := range filtered {
		lines = append(lines, dto.ReportLineDTO{
			EntryID:     r.EntryID,
			Customer:    r.Customer,
			Description: inventory.Truncate(r.Description, ReportDescriptionLen),
			Days:        r.DaysInWarehouse,
			Charge:      r.Charge,
			ChargeLabel: money.FormatUSD(r.Charge),
			Aging:       uc.policy.IsAging(r.DaysInWarehouse),
		})
	}

	now := uc.now()
	return &dto.InventoryReportDTO{
		ID:               uuid.NewString(),
		Title:            ReportTitle,
		CompanyName:      uc.companyName,
		ClientLabel:      ClientLabel(sel.Names()),
		FileLabel:        FileLabel(sel.Names()),
		Date:             now,
		DateLabel:        now.Format(dateLayout),
		TotalCharge:      sum.TotalCharge,
		TotalChargeLabel: money.FormatUSD(sum.TotalCharge),
		TotalItems:       sum.Items,
		MaxDays:          sum.MaxDays,
		AgingItems:       sum.AgingItems,
		ThresholdDays:    uc.policy.ThresholdDays,
		LogoPath:         uc.logoPath,
		Lines:            lines,
	}, nil
}

// DownloadPDF genera el PDF del informe.
// Retorna (bytes, nombre de archivo, error).
func (uc *ReportUseCase) DownloadPDF(ctx context.Context, req dto.SelectionRequest) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: generador PDF no configurado", domain.ErrInvalidInput)
	}
	rep, err := uc.BuildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInventoryPDF(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return b, FileName(rep.FileLabel, "pdf"), nil
}

// DownloadXLSX genera el libro de Excel del informe.
func (uc *ReportUseCase) DownloadXLSX(ctx context.Context, req dto.SelectionRequest) ([]byte, string, error) {
	if uc.workbook == nil {
		return nil, "", fmt.Errorf("%w: generador XLSX no configurado", domain.ErrInvalidInput)
	}
	rep, err := uc.BuildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.workbook.GenerateInventoryWorkbook(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar xlsx: %w", err)
	}
	return b, FileName(rep.FileLabel, "xlsx"), nil
}

// ClientLabel nombra hasta tres clientes en la portada; si hay más se indica
// cuántos quedan fuera. Ej: "ACME, Beta, Gamma y 2 más".
func ClientLabel(customers []string) string {
	if len(customers) <= clientLabelMax {
		return strings.Join(customers, ", ")
	}
	return fmt.Sprintf("%s y %d más", strings.Join(customers[:clientLabelMax], ", "), len(customers)-clientLabelMax)
}

// FileLabel devuelve el cliente (apto para nombre de archivo) si es uno solo,
// o "Varios_Clientes".
func FileLabel(customers []string) string {
	if len(customers) != 1 {
		return multiClientFileLabel
	}
	s := inventory.StripAccents(strings.TrimSpace(customers[0]))
	s = unsafeFileChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return multiClientFileLabel
	}
	return s
}

// FileName nombre de descarga: Reporte_Inventario_<etiqueta>.<ext>.
func FileName(label, ext string) string {
	return fmt.Sprintf("Reporte_Inventario_%s.%s", label, ext)
}
