package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrFileNotFound    = errors.New("archivo de inventario no encontrado")
	ErrUnsupportedFile = errors.New("formato de archivo no soportado")
	ErrEmptyFile       = errors.New("el archivo de inventario no tiene encabezados")
	ErrEmptySelection  = errors.New("no hay clientes seleccionados")
	ErrInvalidInput    = errors.New("entrada inválida")
)
