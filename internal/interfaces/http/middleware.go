package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Locals keys y parámetros de query del filtro de clientes.
const (
	LocalSelection = "selection"

	QueryCustomer = "cliente"
	QueryAll      = "todos"
)

// SelectionMiddleware interpreta el filtro de clientes de la query y lo deja en c.Locals.
//
//   - cliente=A&cliente=B → esos clientes (aunque venga todos=1)
//   - todos=1 sin cliente → todos
//   - todos=0 sin cliente → ninguno
//   - sin parámetros      → todos
//
// Si todos aparece varias veces vale el último (el formulario manda un todos=0
// oculto antes del checkbox).
func SelectionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalSelection, ParseSelection(c))
		return c.Next()
	}
}

// ParseSelection lee el filtro de clientes de la query. Los clientes
// explícitos mandan; todos solo elige entre todos y ninguno cuando no hay.
func ParseSelection(c *fiber.Ctx) dto.SelectionRequest {
	args := c.Context().QueryArgs()

	var customers []string
	for _, v := range args.PeekMulti(QueryCustomer) {
		if s := strings.TrimSpace(string(v)); s != "" {
			customers = append(customers, s)
		}
	}
	if len(customers) > 0 {
		return dto.SelectionRequest{Customers: customers}
	}

	if vals := args.PeekMulti(QueryAll); len(vals) > 0 {
		return dto.SelectionRequest{AllSelected: parseFlag(string(vals[len(vals)-1]))}
	}
	return dto.SelectionRequest{AllSelected: true}
}

// GetSelection devuelve la selección (después de SelectionMiddleware).
func GetSelection(c *fiber.Ctx) dto.SelectionRequest {
	v := c.Locals(LocalSelection)
	if v == nil {
		return ParseSelection(c)
	}
	sel, _ := v.(dto.SelectionRequest)
	return sel
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false", "off", "no":
		return false
	}
	return true
}

// RequestLogger registra método, ruta, estado y duración de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
