package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

const internalErrorMessage = "error interno, revise el log del servidor"

// writeError traduce errores de dominio a la respuesta JSON.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FILE_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySelection):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SELECTION", Message: "seleccione al menos un cliente"})
	case errors.Is(err, domain.ErrUnsupportedFile), errors.Is(err, domain.ErrEmptyFile):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalErrorMessage})
}
