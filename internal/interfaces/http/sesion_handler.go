package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// SesionHandler maneja las sesiones de edición y alta de producto.
type SesionHandler struct {
	uc *session.UseCase
}

// NewSesionHandler construye el handler.
func NewSesionHandler(uc *session.UseCase) *SesionHandler {
	return &SesionHandler{uc: uc}
}

// Abrir godoc
// @Summary      Abrir una sesión de edición o de alta
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        body  body  object{productoId=int}  false  "productoId 0 u omitido = alta"
// @Success      201   {object}  dto.SesionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sesiones [post]
func (h *SesionHandler) Abrir(c *fiber.Ctx) error {
	var in struct {
		ProductoID int64 `json:"productoId"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return cuerpoInvalido(c)
		}
	}

	var (
		s   *session.Sesion
		err error
	)
	if in.ProductoID == 0 {
		s, err = h.uc.AbrirAlta(c.Context())
	} else {
		s, err = h.uc.Abrir(c.Context(), in.ProductoID)
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ASesionResponse(s.Vista()))
}

// Obtener godoc
// @Summary      Estado de una sesión
// @Tags         sesiones
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id} [get]
func (h *SesionHandler) Obtener(c *fiber.Ctx) error {
	s, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Refrescar godoc
// @Summary      Refrescar bodegas y campos desde el backend
// @Tags         sesiones
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.SesionResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/refrescar [post]
func (h *SesionHandler) Refrescar(c *fiber.Ctx) error {
	s, err := h.uc.Refrescar(c.Context(), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Datos godoc
// @Summary      Editar los campos descriptivos del producto
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.DatosRequest  true  "Campos a editar"
// @Success      200   {object}  dto.SesionResponse
// @Router       /api/sesiones/{id}/datos [patch]
func (h *SesionHandler) Datos(c *fiber.Ctx) error {
	var in dto.DatosRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	s, err := h.uc.ActualizarDatos(c.Params("id"), in.AInput())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Precio godoc
// @Summary      Editar precio base, total o tasa de IVA
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.PrecioRequest  true  "campo base|total, valor y tasa"
// @Success      200   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/precio [put]
func (h *SesionHandler) Precio(c *fiber.Ctx) error {
	var in dto.PrecioRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}

	var (
		s   *session.Sesion
		err error
	)
	if in.Campo == "total" {
		s, err = h.uc.SetPrecioTotal(c.Params("id"), in.Valor)
	} else {
		s, err = h.uc.SetPrecioBase(c.Params("id"), in.Valor, in.TasaIVA)
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Principal godoc
// @Summary      Apuntar el selector de bodega principal
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.PrincipalRequest  true  "Bodega elegida"
// @Success      200   {object}  dto.SesionResponse
// @Router       /api/sesiones/{id}/stock/principal [put]
func (h *SesionHandler) Principal(c *fiber.Ctx) error {
	var in dto.PrincipalRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	s, err := h.uc.SeleccionarPrincipal(c.Params("id"), in.BodegaID)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Cantidades godoc
// @Summary      Editar cantidades de la bodega principal
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CantidadesRequest  true  "Cantidades"
// @Success      200   {object}  dto.SesionResponse
// @Router       /api/sesiones/{id}/stock/cantidades [put]
func (h *SesionHandler) Cantidades(c *fiber.Ctx) error {
	var in dto.CantidadesRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	s, err := h.uc.SetCantidadesPrincipal(c.Params("id"), in.CantidadInicial, in.CantidadMinima, in.CantidadMaxima)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// AgregarBodega godoc
// @Summary      Agregar una bodega adicional
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.BodegaAdicionalRequest  true  "Asignación"
// @Success      200   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/bodegas [post]
func (h *SesionHandler) AgregarBodega(c *fiber.Ctx) error {
	var in dto.BodegaAdicionalRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	s, err := h.uc.AgregarBodega(c.Context(), c.Params("id"), adicionalInput(in))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// ActualizarBodega godoc
// @Summary      Editar una bodega adicional
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id        path  string  true  "ID de la sesión"
// @Param        bodegaId  path  int     true  "ID de la bodega"
// @Param        body      body  dto.BodegaAdicionalRequest  true  "Asignación"
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/sesiones/{id}/bodegas/{bodegaId} [put]
func (h *SesionHandler) ActualizarBodega(c *fiber.Ctx) error {
	bodegaID, err := c.ParamsInt("bodegaId")
	if err != nil || bodegaID <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.BodegaAdicionalRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	in.BodegaID = int64(bodegaID)
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	s, err := h.uc.ActualizarBodega(c.Context(), c.Params("id"), adicionalInput(in))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// EliminarBodega godoc
// @Summary      Quitar una bodega adicional (requiere confirmación)
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id        path  string  true  "ID de la sesión"
// @Param        bodegaId  path  int     true  "ID de la bodega"
// @Param        body      body  dto.ConfirmacionRequest  true  "Confirmación"
// @Success      200  {object}  dto.SesionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/bodegas/{bodegaId} [delete]
func (h *SesionHandler) EliminarBodega(c *fiber.Ctx) error {
	bodegaID, err := c.ParamsInt("bodegaId")
	if err != nil || bodegaID <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.ConfirmacionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return cuerpoInvalido(c)
		}
	}
	s, err := h.uc.EliminarBodega(c.Context(), c.Params("id"), int64(bodegaID), in.Confirmado)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// SetCampo godoc
// @Summary      Teclear el valor de un campo extra
// @Tags         sesiones
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        campoId  path  int     true  "ID del campo"
// @Param        body     body  dto.CampoValorRequest  true  "Valor"
// @Success      200  {object}  dto.SesionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/campos/{campoId} [put]
func (h *SesionHandler) SetCampo(c *fiber.Ctx) error {
	campoID, err := c.ParamsInt("campoId")
	if err != nil || campoID <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.CampoValorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	s, err := h.uc.SetCampoExtra(c.Params("id"), int64(campoID), in.Valor)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// SeleccionarCampo godoc
// @Summary      Incluir un campo extra opcional
// @Tags         sesiones
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        campoId  path  int     true  "ID del campo"
// @Success      200  {object}  dto.SesionResponse
// @Router       /api/sesiones/{id}/campos/{campoId} [post]
func (h *SesionHandler) SeleccionarCampo(c *fiber.Ctx) error {
	campoID, err := c.ParamsInt("campoId")
	if err != nil || campoID <= 0 {
		return cuerpoInvalido(c)
	}
	s, err := h.uc.SeleccionarCampo(c.Params("id"), int64(campoID))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// QuitarCampo godoc
// @Summary      Excluir un campo extra opcional
// @Tags         sesiones
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        campoId  path  int     true  "ID del campo"
// @Success      200  {object}  dto.SesionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/campos/{campoId} [delete]
func (h *SesionHandler) QuitarCampo(c *fiber.Ctx) error {
	campoID, err := c.ParamsInt("campoId")
	if err != nil || campoID <= 0 {
		return cuerpoInvalido(c)
	}
	s, err := h.uc.QuitarCampo(c.Params("id"), int64(campoID))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.ASesionResponse(s.Vista()))
}

// Guardar godoc
// @Summary      Guardar la sesión (alta o edición)
// @Tags         sesiones
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.GuardarResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sesiones/{id}/guardar [post]
func (h *SesionHandler) Guardar(c *fiber.Ctx) error {
	productoID, err := h.uc.Guardar(c.Context(), c.Params("id"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.GuardarResponse{ProductoID: productoID})
}

// Cerrar godoc
// @Summary      Descartar la sesión
// @Tags         sesiones
// @Param        id  path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/sesiones/{id} [delete]
func (h *SesionHandler) Cerrar(c *fiber.Ctx) error {
	h.uc.Cerrar(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// EliminarProducto godoc
// @Summary      Eliminar un producto (requiere confirmación)
// @Tags         productos
// @Accept       json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ConfirmacionRequest  true  "Confirmación"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *SesionHandler) EliminarProducto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return cuerpoInvalido(c)
	}
	var in dto.ConfirmacionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return cuerpoInvalido(c)
		}
	}
	if err := h.uc.EliminarProducto(c.Context(), int64(id), in.Confirmado); err != nil {
		return respuestaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func adicionalInput(in dto.BodegaAdicionalRequest) stock.AdicionalInput {
	return stock.AdicionalInput{
		BodegaID:        in.BodegaID,
		CantidadInicial: in.CantidadInicial,
		CantidadMinima:  in.CantidadMinima,
		CantidadMaxima:  in.CantidadMaxima,
	}
}
