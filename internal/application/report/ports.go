package report

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF del informe de inventario.
// La implementación vive en internal/infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, rep *dto.InventoryReportDTO) ([]byte, error)
}

// ReportWorkbookGenerator genera el mismo informe como libro de Excel.
// La implementación vive en internal/infrastructure/excel.
type ReportWorkbookGenerator interface {
	GenerateInventoryWorkbook(ctx context.Context, rep *dto.InventoryReportDTO) ([]byte, error)
}
