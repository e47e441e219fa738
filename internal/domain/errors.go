package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrNoMatchingRecords = errors.New("ningún registro coincide con el filtro")

	// ErrMissingRequiredFields es el único rechazo de validación por fila del
	// import masivo. El texto es contrato de API: el frontend lo muestra tal cual.
	ErrMissingRequiredFields = errors.New("name and code are required")
)
