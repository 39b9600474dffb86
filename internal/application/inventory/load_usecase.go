package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// LoadUseCase carga el archivo de inventario una sola vez por proceso.
//
// La primera carga exitosa queda memorizada hasta que el proceso se reinicia.
// Un error no se memoriza: si el archivo aparece después, la siguiente
// petición lo toma.
type LoadUseCase struct {
	source repository.InventorySource
	log    *logger.Logger

	mu   sync.Mutex
	snap *entity.InventorySnapshot
}

// NewLoadUseCase construye el caso de uso.
func NewLoadUseCase(source repository.InventorySource, log *logger.Logger) *LoadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LoadUseCase{source: source, log: log}
}

// Snapshot devuelve el inventario memorizado o lo carga si aún no existe.
func (uc *LoadUseCase) Snapshot(ctx context.Context) (*entity.InventorySnapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.snap != nil {
		return uc.snap, nil
	}

	snap, err := uc.source.Load(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("carga de inventario fallida")
		return nil, fmt.Errorf("inventario: cargar archivo: %w", err)
	}

	ev := uc.log.Info().
		Str("archivo", snap.SourcePath).
		Str("codificacion", snap.Encoding).
		Int("partidas", len(snap.Records)).
		Strs("columnas", snap.Columns)
	if snap.Delimiter != "" {
		ev = ev.Str("separador", snap.Delimiter)
	}
	ev.Msg("inventario cargado")
	for _, w := range snap.Warnings {
		uc.log.Warn().Str("archivo", snap.SourcePath).Msg(w)
	}

	uc.snap = snap
	return snap, nil
}
