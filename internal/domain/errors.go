package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnsupported  = errors.New("formato no soportado")
	ErrExportFailed = errors.New("exportación fallida")
)
