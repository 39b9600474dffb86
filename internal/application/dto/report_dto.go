package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReportDTO contenido del informe exportable (PDF / XLSX).
type InventoryReportDTO struct {
	ID               string
	Title            string
	CompanyName      string
	ClientLabel      string // hasta tres clientes separados por coma
	FileLabel        string // cliente único o "Varios_Clientes"
	Date             time.Time
	DateLabel        string // dd-mm-aaaa
	TotalCharge      decimal.Decimal
	TotalChargeLabel string
	TotalItems       int
	MaxDays          int
	AgingItems       int
	ThresholdDays    int
	LogoPath         string
	Lines            []ReportLineDTO
}

// ReportLineDTO una fila de la tabla del informe.
type ReportLineDTO struct {
	EntryID     string
	Customer    string
	Description string // truncada para el PDF
	Days        int
	Charge      decimal.Decimal
	ChargeLabel string // ej: "$12.50"
	Aging       bool
}
