package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBackendUnavailable fallo de red o conectividad: no llegó ninguna
// respuesta HTTP. Se distingue de los rechazos del servidor para que la UI
// muestre un mensaje de conexión y no uno de validación.
var ErrBackendUnavailable = errors.New("sin conexión con el servidor")

// FieldError error de validación asociado a un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError rechazo del API externo, construido desde el sobre de error
// estándar {success:false, statusCode, message, errors?, timestamp}.
// Codigo viene solo si el backend envía un código estructurado; cuando
// falta, la clasificación de reglas de negocio cae al emparejamiento por
// subcadena del mensaje (ver application/vendedor).
type APIError struct {
	StatusCode int
	Codigo     string
	Message    string
	Errors     []FieldError
	Timestamp  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.StatusCode, e.Message)
}

// IsValidationError el servidor rechazó la entrada (HTTP 400).
func (e *APIError) IsValidationError() bool { return e.StatusCode == http.StatusBadRequest }

// IsNotFoundError el recurso no existe (HTTP 404).
func (e *APIError) IsNotFoundError() bool { return e.StatusCode == http.StatusNotFound }

// IsConflictError conflicto con el estado actual (HTTP 409).
func (e *APIError) IsConflictError() bool { return e.StatusCode == http.StatusConflict }

// IsServerError error interno del servidor (5xx); no se reintenta.
func (e *APIError) IsServerError() bool { return e.StatusCode >= http.StatusInternalServerError }

// GetValidationErrors errores de campo del sobre, si los hay.
func (e *APIError) GetValidationErrors() []FieldError { return e.Errors }
