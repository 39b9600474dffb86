// Package tabular lee el archivo exportado de inventario (CSV en UTF-8 o
// ISO-8859-1, o XLSX) y lo convierte en un InventorySnapshot.
package tabular

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
)

// FileSourceConfig ubicación del archivo de inventario.
type FileSourceConfig struct {
	Dir      string   // directorio de búsqueda (vacío = directorio actual)
	File     string   // ruta explícita; tiene prioridad sobre Patterns
	Patterns []string // vacío = DefaultPatterns
}

// FileSource implementa repository.InventorySource sobre un archivo local.
type FileSource struct {
	cfg FileSourceConfig
	now func() time.Time
}

// NewFileSource construye la fuente.
func NewFileSource(cfg FileSourceConfig) *FileSource {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return &FileSource{cfg: cfg, now: time.Now}
}

// Load localiza, decodifica y normaliza el archivo. Solo falla si no hay
// archivo, no se puede leer o no tiene encabezados; los valores ilegibles se
// convierten en ceros y se reportan como advertencias.
func (s *FileSource) Load(ctx context.Context) (*entity.InventorySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := Discover(s.cfg.Dir, s.cfg.File, s.cfg.Patterns)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: leer %s: %w", path, err)
	}

	snap := &entity.InventorySnapshot{SourcePath: path, LoadedAt: s.now()}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		text, enc, err := DecodeText(raw)
		if err != nil {
			return nil, err
		}
		var delim rune
		rows, delim, err = ReadCSV(text)
		if err != nil {
			return nil, err
		}
		snap.Encoding = enc
		snap.Delimiter = string(delim)
	case ".xlsx":
		rows, err = ReadXLSX(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		snap.Encoding = EncodingXLSX
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFile, filepath.Ext(path))
	}

	headerAt := -1
	for i, row := range rows {
		if !inventory.IsBlankRow(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyFile, path)
	}

	hm := inventory.ReconcileHeaders(rows[headerAt])
	snap.Columns = hm.Present()
	for _, f := range hm.Missing {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("Columna '%s' no encontrada en el archivo; se usan valores por defecto.", f))
	}

	var badCharges, badDays int
	snap.Records = make([]entity.InventoryRecord, 0, len(rows)-headerAt-1)
	for i := headerAt + 1; i < len(rows); i++ {
		if inventory.IsBlankRow(rows[i]) {
			continue
		}
		rec, issues := inventory.BuildRecord(hm, rows[i], i+1)
		if issues.BadCharge {
			badCharges++
		}
		if issues.BadDays {
			badDays++
		}
		snap.Records = append(snap.Records, rec)
	}
	if badCharges > 0 {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("%d valor(es) de '%s' no se pudieron interpretar y se tomaron como 0.", badCharges, inventory.FieldCharge))
	}
	if badDays > 0 {
		snap.Warnings = append(snap.Warnings,
			fmt.Sprintf("%d valor(es) de '%s' no se pudieron interpretar y se tomaron como 0.", badDays, inventory.FieldDays))
	}
	return snap, nil
}
