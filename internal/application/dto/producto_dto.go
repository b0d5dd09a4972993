package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/application/catalogo"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/listado"
)

// FiltrosRequest filtros del listado de productos.
type FiltrosRequest struct {
	Nombre        string `json:"nombre"`
	SKU           string `json:"sku"`
	Descripcion   string `json:"descripcion"`
	StockOperador string `json:"stockOperador" validate:"omitempty,oneof== > >= < <= entre"`
	StockValor    string `json:"stockValor"`
	StockValor2   string `json:"stockValor2"`
	Estado        string `json:"estado" validate:"omitempty,oneof=todos activos inactivos"`
}

// AFiltros convierte el request al tipo del dominio.
func (r FiltrosRequest) AFiltros() listado.Filtros {
	f := listado.Filtros{
		Nombre:      r.Nombre,
		SKU:         r.SKU,
		Descripcion: r.Descripcion,
		Estado:      listado.EstadoTodos,
	}
	if r.Estado != "" {
		f.Estado = listado.FiltroEstado(r.Estado)
	}
	if r.StockOperador != "" {
		f.Stock.Operador = listado.OperadorStock(r.StockOperador)
		f.Stock.Valor = decimalODefecto(r.StockValor)
		f.Stock.Valor2 = decimalODefecto(r.StockValor2)
	}
	return f
}

func decimalODefecto(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// OrdenRequest clave de orden del listado.
type OrdenRequest struct {
	Campo       string `json:"campo" validate:"omitempty,oneof=nombre sku descripcion precio stock"`
	Descendente bool   `json:"descendente"`
}

// ProductoResponse proyección de un producto para el listado.
type ProductoResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioBase  decimal.Decimal `json:"precioBase"`
	TasaIVA     decimal.Decimal `json:"tasaIva"`
	PrecioTotal decimal.Decimal `json:"precioTotal"`
	StockActual decimal.Decimal `json:"stockActual"`
	Activo      bool            `json:"activo"`
}

// ListadoResponse página materializada del listado más la selección.
type ListadoResponse struct {
	Items        []ProductoResponse `json:"items"`
	TotalItems   int                `json:"totalItems"`
	TotalPaginas int                `json:"totalPaginas"`
	Pagina       int                `json:"pagina"`
	PorPagina    int                `json:"porPagina"`
	Seleccion    []int64            `json:"seleccion"`
}

// AListadoResponse arma la respuesta desde la vista del caso de uso.
func AListadoResponse(v catalogo.Vista) ListadoResponse {
	items := make([]ProductoResponse, 0, len(v.Resultado.Items))
	for _, p := range v.Resultado.Items {
		items = append(items, aProductoResponse(p))
	}
	sel := v.Seleccion
	if sel == nil {
		sel = []int64{}
	}
	return ListadoResponse{
		Items:        items,
		TotalItems:   v.Resultado.TotalItems,
		TotalPaginas: v.Resultado.TotalPaginas,
		Pagina:       v.Resultado.Pagina,
		PorPagina:    v.PorPagina,
		Seleccion:    sel,
	}
}

func aProductoResponse(p entity.Producto) ProductoResponse {
	return ProductoResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		PrecioBase:  p.PrecioBase,
		TasaIVA:     p.TasaIVA,
		PrecioTotal: p.PrecioTotal,
		StockActual: p.StockActual,
		Activo:      p.Activo,
	}
}
