package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalogo"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain/listado"
)

func listadoOrden(in dto.OrdenRequest) listado.Orden {
	return listado.Orden{Campo: in.Campo, Descendente: in.Descendente}
}

// CatalogoHandler maneja el listado de productos y los catálogos de apoyo.
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar productos (página vigente)
// @Tags         productos
// @Produce      json
// @Success      200  {object}  dto.ListadoResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	v, err := h.uc.Listar(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AListadoResponse(v))
}

// SetFiltros godoc
// @Summary      Reemplazar los filtros del listado
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FiltrosRequest  true  "Filtros"
// @Success      200   {object}  dto.ListadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/filtros [put]
func (h *CatalogoHandler) SetFiltros(c *fiber.Ctx) error {
	var in dto.FiltrosRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	v, err := h.uc.SetFiltros(c.Context(), in.AFiltros())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AListadoResponse(v))
}

// SetOrden godoc
// @Summary      Cambiar la clave de orden del listado
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrdenRequest  true  "Orden"
// @Success      200   {object}  dto.ListadoResponse
// @Router       /api/productos/orden [put]
func (h *CatalogoHandler) SetOrden(c *fiber.Ctx) error {
	var in dto.OrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := dto.Validar(in); err != nil {
		return validacionFallida(c, err)
	}
	v, err := h.uc.SetOrden(c.Context(), listadoOrden(in))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AListadoResponse(v))
}

// SetPagina godoc
// @Summary      Navegar a otra página del listado
// @Tags         productos
// @Produce      json
// @Param        pagina     query  int  false  "Página"       default(1)
// @Param        porPagina  query  int  false  "Por página"   default(10)
// @Success      200  {object}  dto.ListadoResponse
// @Router       /api/productos/pagina [put]
func (h *CatalogoHandler) SetPagina(c *fiber.Ctx) error {
	pagina := c.QueryInt("pagina", 0)
	porPagina := c.QueryInt("porPagina", 0)
	v, err := h.uc.SetPagina(c.Context(), pagina, porPagina)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AListadoResponse(v))
}

// Seleccionar godoc
// @Summary      Alternar la selección de un producto
// @Tags         productos
// @Produce      json
// @Param        id       path   int   true   "ID del producto"
// @Param        marcado  query  bool  false  "Marcado"  default(true)
// @Success      200  {object}  dto.ListadoResponse
// @Router       /api/productos/{id}/seleccion [put]
func (h *CatalogoHandler) Seleccionar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return cuerpoInvalido(c)
	}
	marcado := c.QueryBool("marcado", true)
	v, err := h.uc.Seleccionar(c.Context(), int64(id), marcado)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(dto.AListadoResponse(v))
}

// Bodegas godoc
// @Summary      Catálogo de bodegas
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  entity.Bodega
// @Router       /api/bodegas [get]
func (h *CatalogoHandler) Bodegas(c *fiber.Ctx) error {
	items, err := h.uc.Bodegas(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(items)
}

// Categorias godoc
// @Summary      Catálogo de categorías
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  entity.Categoria
// @Router       /api/categorias [get]
func (h *CatalogoHandler) Categorias(c *fiber.Ctx) error {
	items, err := h.uc.Categorias(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(items)
}
