package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
)

// respuestaError traduce un error de dominio, un rechazo del API externo o
// un rechazo de regla de negocio al cuerpo de error HTTP del gateway.
func respuestaError(c *fiber.Ctx, err error) error {
	var rechazo *vendedor.Rechazo
	if errors.As(err, &rechazo) {
		// Regla de negocio con dependientes: aviso persistente, no error.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "REGLA_NEGOCIO",
			Message: rechazo.Mensaje,
			Nivel:   string(rechazo.Nivel),
		})
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		out := dto.ErrorResponse{Code: "BACKEND", Message: apiErr.Message}
		if apiErr.Codigo != "" {
			out.Code = apiErr.Codigo
		}
		for _, f := range apiErr.GetValidationErrors() {
			out.Fields = append(out.Fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		return c.Status(apiErr.StatusCode).JSON(out)
	}

	if errors.Is(err, backend.ErrBackendUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "SIN_CONEXION",
			Message: "sin conexión con el servidor",
		})
	}

	switch {
	case errors.Is(err, domain.ErrSesionNoEncontrada),
		errors.Is(err, domain.ErrBorradorNoEncontrado),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSinCambios):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_CAMBIOS", Message: err.Error()})
	case errors.Is(err, domain.ErrGuardadoEnCurso):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "GUARDADO_EN_CURSO", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// cuerpoInvalido respuesta estándar para un body que no parsea.
func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// validacionFallida respuesta para etiquetas validate incumplidas.
func validacionFallida(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}
