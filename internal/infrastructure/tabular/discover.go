package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// DefaultPatterns patrones de búsqueda del archivo de inventario, en orden de
// preferencia.
var DefaultPatterns = []string{"*Inventario*.csv", "*Inventario*.xlsx", "*.csv", "*.xlsx"}

// IsSupported indica si la extensión del archivo se sabe leer.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".xlsx":
		return true
	}
	return false
}

// Discover localiza el archivo de inventario.
//
// Si explicit no está vacío se usa esa ruta (relativa a dir si no es absoluta).
// Si no, se recorren los patrones en orden y, para el primero que encuentre
// archivos, gana el modificado más recientemente.
func Discover(dir, explicit string, patterns []string) (string, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return path, nil
	}

	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return "", fmt.Errorf("tabular: patrón inválido %q: %w", p, err)
		}
		if path, ok := newest(matches); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: ningún archivo coincide con %s en %s",
		domain.ErrFileNotFound, strings.Join(patterns, ", "), dir)
}

// newest elige el archivo soportado más reciente; a igual fecha, el primero
// en orden alfabético.
func newest(paths []string) (string, bool) {
	type candidate struct {
		path string
		mod  int64
	}
	var cands []candidate
	for _, p := range paths {
		if !IsSupported(p) {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		cands = append(cands, candidate{p, info.ModTime().UnixNano()})
	}
	if len(cands) == 0 {
		return "", false
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].mod != cands[j].mod {
			return cands[i].mod > cands[j].mod
		}
		return cands[i].path < cands[j].path
	})
	return cands[0].path, true
}
