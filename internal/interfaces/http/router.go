package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalogo"
	"github.com/jhoicas/inventario-admin/internal/application/factura"
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogoUC *catalogo.UseCase
	SesionUC   *session.UseCase
	VendedorUC *vendedor.UseCase
	FacturaUC  *factura.UseCase
}

// Router registra las rutas del gateway.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Listado de productos y catálogos de apoyo
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	productos := api.Group("/productos")
	productos.Get("/", catalogoHandler.Listar)
	productos.Put("/filtros", catalogoHandler.SetFiltros)
	productos.Put("/orden", catalogoHandler.SetOrden)
	productos.Put("/pagina", catalogoHandler.SetPagina)
	productos.Put("/:id/seleccion", catalogoHandler.Seleccionar)
	api.Get("/bodegas", catalogoHandler.Bodegas)
	api.Get("/categorias", catalogoHandler.Categorias)

	// Sesiones de edición/alta de producto
	sesionHandler := NewSesionHandler(deps.SesionUC)
	productos.Delete("/:id", sesionHandler.EliminarProducto)
	sesiones := api.Group("/sesiones")
	sesiones.Post("/", sesionHandler.Abrir)
	sesiones.Get("/:id", sesionHandler.Obtener)
	sesiones.Delete("/:id", sesionHandler.Cerrar)
	sesiones.Post("/:id/refrescar", sesionHandler.Refrescar)
	sesiones.Patch("/:id/datos", sesionHandler.Datos)
	sesiones.Put("/:id/precio", sesionHandler.Precio)
	sesiones.Put("/:id/stock/principal", sesionHandler.Principal)
	sesiones.Put("/:id/stock/cantidades", sesionHandler.Cantidades)
	sesiones.Post("/:id/bodegas", sesionHandler.AgregarBodega)
	sesiones.Put("/:id/bodegas/:bodegaId", sesionHandler.ActualizarBodega)
	sesiones.Delete("/:id/bodegas/:bodegaId", sesionHandler.EliminarBodega)
	sesiones.Post("/:id/campos/:campoId", sesionHandler.SeleccionarCampo)
	sesiones.Put("/:id/campos/:campoId", sesionHandler.SetCampo)
	sesiones.Delete("/:id/campos/:campoId", sesionHandler.QuitarCampo)
	sesiones.Post("/:id/guardar", sesionHandler.Guardar)

	// Vendedores
	vendedorHandler := NewVendedorHandler(deps.VendedorUC)
	vendedores := api.Group("/vendedores")
	vendedores.Get("/", vendedorHandler.Listar)
	vendedores.Post("/", vendedorHandler.Crear)
	vendedores.Put("/:id", vendedorHandler.Actualizar)
	vendedores.Put("/:id/estado", vendedorHandler.CambiarEstado)

	// Borradores de factura de venta
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	borradores := api.Group("/facturas/borradores")
	borradores.Post("/", facturaHandler.Crear)
	borradores.Get("/:id", facturaHandler.Obtener)
	borradores.Delete("/:id", facturaHandler.Cerrar)
	borradores.Put("/:id/encabezado", facturaHandler.Encabezado)
	borradores.Post("/:id/lineas", facturaHandler.AgregarLinea)
	borradores.Delete("/:id/lineas/:indice", facturaHandler.QuitarLinea)
	borradores.Post("/:id/emitir", facturaHandler.Emitir)
	borradores.Get("/:id/pdf", facturaHandler.PDF)
}
