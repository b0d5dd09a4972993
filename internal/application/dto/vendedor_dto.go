package dto

import (
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// VendedorRequest alta o edición de un vendedor.
type VendedorRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Identificacion string `json:"identificacion" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Observaciones  string `json:"observaciones"`
}

// AInput convierte el request al input del caso de uso.
func (r VendedorRequest) AInput() vendedor.Input {
	return vendedor.Input{
		Nombre:         r.Nombre,
		Identificacion: r.Identificacion,
		Email:          r.Email,
		Observaciones:  r.Observaciones,
	}
}

// EstadoVendedorRequest activación o desactivación de un vendedor.
type EstadoVendedorRequest struct {
	Activo     bool `json:"activo"`
	Confirmado bool `json:"confirmado"`
}

// VendedorResponse representación de un vendedor.
type VendedorResponse struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Email          string `json:"email"`
	Observaciones  string `json:"observaciones"`
	Activo         bool   `json:"activo"`
}

// AVendedorResponse arma la respuesta desde la entidad.
func AVendedorResponse(v entity.Vendedor) VendedorResponse {
	return VendedorResponse{
		ID:             v.ID,
		Nombre:         v.Nombre,
		Identificacion: v.Identificacion,
		Email:          v.Email,
		Observaciones:  v.Observaciones,
		Activo:         v.Activo,
	}
}

// AVendedoresResponse arma la lista de respuestas.
func AVendedoresResponse(items []entity.Vendedor) []VendedorResponse {
	out := make([]VendedorResponse, 0, len(items))
	for _, v := range items {
		out = append(out, AVendedorResponse(v))
	}
	return out
}
