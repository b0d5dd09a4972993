package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrSinCambios           = errors.New("no hay cambios para guardar")
	ErrGuardadoEnCurso      = errors.New("ya hay un guardado en curso")
	ErrSesionNoEncontrada   = errors.New("sesión de edición no encontrada")
	ErrBorradorNoEncontrado = errors.New("borrador de factura no encontrado")
)
