package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/factura"
)

// FacturaHandler maneja los borradores de factura de venta.
type FacturaHandler struct {
	uc *factura.UseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *factura.UseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Crear godoc
// @Summary      Abrir un borrador de factura
// @Tags         facturas
// @Produce      json
// @Success      201  {object}  dto.BorradorResponse
// @Router       /api/facturas/borradores [post]
func (h *FacturaHandler) Crear(c *fiber.Ctx) error {
	b := h.uc.Crear()
	return c.Status(fiber.StatusCreated).JSON(dto.ABorradorResponse(b))
}

// Obtener godoc
// @Summary      Estado de un borrador
// @Tags         facturas
// @Produce      json
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {object}  dto.BorradorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id} [get]
func (h *FacturaHandler) Obtener(c *fiber.Ctx) error {
	b, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ABorradorResponse(b))
}

// Encabezado godoc
// @Summary      Editar el encabezado del borrador
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.EncabezadoRequest  true  "Encabezado"
// @Success      200   {object}  dto.BorradorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id}/encabezado [put]
func (h *FacturaHandler) Encabezado(c *fiber.Ctx) error {
	var in dto.EncabezadoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	b, err := h.uc.SetEncabezado(c.Params("id"), in.AEncabezado())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ABorradorResponse(b))
}

// AgregarLinea godoc
// @Summary      Agregar una línea de venta
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.LineaRequest  true  "Línea"
// @Success      200   {object}  dto.BorradorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id}/lineas [post]
func (h *FacturaHandler) AgregarLinea(c *fiber.Ctx) error {
	var in dto.LineaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	b, err := h.uc.AgregarLinea(c.Params("id"), in.AInput())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ABorradorResponse(b))
}

// QuitarLinea godoc
// @Summary      Quitar una línea de venta
// @Tags         facturas
// @Produce      json
// @Param        id      path  string  true  "ID del borrador"
// @Param        indice  path  int     true  "Índice de la línea"
// @Success      200  {object}  dto.BorradorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id}/lineas/{indice} [delete]
func (h *FacturaHandler) QuitarLinea(c *fiber.Ctx) error {
	indice, err := c.ParamsInt("indice")
	if err != nil || indice < 0 {
		return cuerpoInvalido(c)
	}
	b, err := h.uc.QuitarLinea(c.Params("id"), indice)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ABorradorResponse(b))
}

// Emitir godoc
// @Summary      Emitir el borrador contra el backend
// @Tags         facturas
// @Param        id  path  string  true  "ID del borrador"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id}/emitir [post]
func (h *FacturaHandler) Emitir(c *fiber.Ctx) error {
	if err := h.uc.Emitir(c.Context(), c.Params("id")); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Vista imprimible del borrador
// @Tags         facturas
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del borrador"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/borradores/{id}/pdf [get]
func (h *FacturaHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.PDF(c.Context(), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

// Cerrar godoc
// @Summary      Descartar el borrador
// @Tags         facturas
// @Param        id  path  string  true  "ID del borrador"
// @Success      204
// @Router       /api/facturas/borradores/{id} [delete]
func (h *FacturaHandler) Cerrar(c *fiber.Ctx) error {
	h.uc.Cerrar(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
