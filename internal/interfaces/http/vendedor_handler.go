package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
)

// VendedorHandler maneja las peticiones HTTP de vendedores.
type VendedorHandler struct {
	uc *vendedor.UseCase
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *vendedor.UseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar vendedores
// @Tags         vendedores
// @Produce      json
// @Success      200  {array}  dto.VendedorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/vendedores [get]
func (h *VendedorHandler) Listar(c *fiber.Ctx) error {
	items, err := h.uc.Listar(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AVendedoresResponse(items))
}

// Crear godoc
// @Summary      Crear vendedor
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendedorRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendedores [post]
func (h *VendedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	v, err := h.uc.Crear(c.Context(), in.AInput())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AVendedorResponse(*v))
}

// Actualizar godoc
// @Summary      Editar vendedor
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vendedor"
// @Param        body  body  dto.VendedorRequest  true  "Datos del vendedor"
// @Success      200   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [put]
func (h *VendedorHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.VendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	v, err := h.uc.Actualizar(c.Context(), int64(id), in.AInput())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AVendedorResponse(*v))
}

// CambiarEstado godoc
// @Summary      Activar o desactivar vendedor
// @Description  La desactivación exige confirmación; si el vendedor tiene
// @Description  facturas de venta registradas, el rechazo vuelve como
// @Description  advertencia de nivel persistente y la bandera no cambia.
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del vendedor"
// @Param        body  body  dto.EstadoVendedorRequest  true  "Estado deseado"
// @Success      200   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id}/estado [put]
func (h *VendedorHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.EstadoVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	v, err := h.uc.CambiarEstado(c.Context(), int64(id), in.Activo, in.Confirmado)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AVendedorResponse(*v))
}
