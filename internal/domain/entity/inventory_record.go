package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownCustomer etiqueta las filas sin cliente, para que toda fila pertenezca
// exactamente a un cliente al filtrar.
const UnknownCustomer = "Sin cliente"

// InventoryRecord representa una partida del reporte de antigüedad de bodega.
// Es de solo lectura después de la carga.
type InventoryRecord struct {
	EntryID         string          // Entrada de bodega
	Customer        string          // Cliente (comparado literalmente al filtrar)
	Description     string          // Descripción / mercancía
	DaysInWarehouse int             // Días en bodega (>= 0; 0 si no se pudo leer)
	BilledDays      string          // Días cobrados, tal cual vienen en el archivo
	Concept         string          // Concepto de cobro
	ChargeRaw       string          // Cobro (USD) original, para mostrar
	Charge          decimal.Decimal // Cobro normalizado (0 si no se pudo leer)
	Extra           map[string]string
	Line            int // fila de la tabla leída (1 = encabezado)
}

// InventorySnapshot es el resultado de una carga completa del archivo.
type InventorySnapshot struct {
	SourcePath string
	Encoding   string   // "UTF-8" | "ISO-8859-1" | "XLSX"
	Delimiter  string   // "," | ";" | "\t" ("" para XLSX)
	Columns    []string // nombres canónicos presentes, en el orden del archivo
	Records    []InventoryRecord
	Warnings   []string
	LoadedAt   time.Time
}

// HasColumn indica si la columna canónica estaba presente en el archivo.
func (s *InventorySnapshot) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}
