package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// serve atiende HTTP en addr hasta recibir una señal en quit. Un fallo de
// Listen (puerto ocupado, dirección inválida) se devuelve como error.
func serve(app *fiber.App, addr string, quit <-chan os.Signal, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err == nil {
			return fmt.Errorf("servidor HTTP finalizado sin señal de apagado")
		}
		return fmt.Errorf("servidor HTTP en %s: %w", addr, err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}
