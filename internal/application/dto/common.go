package dto

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de DTOs.
var validate = validator.New()

// Validar aplica las etiquetas validate del DTO; la validación local
// ocurre antes de cualquier llamada de red.
func Validar(in any) error {
	return validate.Struct(in)
}

// ErrorResponse cuerpo de error HTTP. Nivel distingue la advertencia
// persistente (regla de negocio con dependientes) del error corriente.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Nivel   string       `json:"nivel,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError error de validación asociado a un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
