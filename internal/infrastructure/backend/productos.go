package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// productoWire representación en el cable de un producto. La tasa de IVA
// viaja como fracción (0.19) mientras el dominio trabaja en porcentaje
// (19); la conversión ocurre solo en esta frontera.
type productoWire struct {
	ID                int64           `json:"id"`
	SKU               string          `json:"sku"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	CategoriaID       int64           `json:"categoriaId"`
	UnidadMedida      string          `json:"unidadMedida"`
	ImagenURL         string          `json:"imagenUrl"`
	PrecioBase        decimal.Decimal `json:"precioBase"`
	TasaIVA           decimal.Decimal `json:"tasaIva"`
	PrecioTotal       decimal.Decimal `json:"precioTotal"`
	Costo             decimal.Decimal `json:"costo"`
	StockActual       decimal.Decimal `json:"stockActual"`
	BodegaPrincipalID int64           `json:"bodegaPrincipalId"`
	Activo            bool            `json:"activo"`
}

func (w productoWire) aEntidad() entity.Producto {
	return entity.Producto{
		ID:                w.ID,
		SKU:               w.SKU,
		Nombre:            w.Nombre,
		Descripcion:       w.Descripcion,
		CategoriaID:       w.CategoriaID,
		UnidadMedida:      w.UnidadMedida,
		ImagenURL:         w.ImagenURL,
		PrecioBase:        w.PrecioBase,
		TasaIVA:           w.TasaIVA.Mul(cien), // fracción → porcentaje
		PrecioTotal:       w.PrecioTotal,
		Costo:             w.Costo,
		StockActual:       w.StockActual,
		BodegaPrincipalID: w.BodegaPrincipalID,
		Activo:            w.Activo,
	}
}

// ProductoPatch actualización parcial de un producto; los campos nil no
// se tocan. TasaIVA se expresa en porcentaje y se convierte a fracción al
// serializar.
type ProductoPatch struct {
	SKU               *string          `json:"sku,omitempty"`
	Nombre            *string          `json:"nombre,omitempty"`
	Descripcion       *string          `json:"descripcion,omitempty"`
	CategoriaID       *int64           `json:"categoriaId,omitempty"`
	UnidadMedida      *string          `json:"unidadMedida,omitempty"`
	ImagenURL         *string          `json:"imagenUrl,omitempty"`
	PrecioBase        *decimal.Decimal `json:"precioBase,omitempty"`
	TasaIVA           *decimal.Decimal `json:"tasaIva,omitempty"`
	PrecioTotal       *decimal.Decimal `json:"precioTotal,omitempty"`
	Costo             *decimal.Decimal `json:"costo,omitempty"`
	BodegaPrincipalID *int64           `json:"bodegaPrincipalId,omitempty"`
	Activo            *bool            `json:"activo,omitempty"`
}

func (p ProductoPatch) aWire() ProductoPatch {
	if p.TasaIVA != nil {
		frac := p.TasaIVA.Div(cien) // porcentaje → fracción
		p.TasaIVA = &frac
	}
	return p
}

// GetProducto GET /productos/{id}. StockActual es el agregado entre
// bodegas; las cifras por bodega vienen de GetBodegasProducto.
func (c *Client) GetProducto(ctx context.Context, id int64) (*entity.Producto, error) {
	var w productoWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d", id), nil, &w); err != nil {
		return nil, err
	}
	p := w.aEntidad()
	return &p, nil
}

// ListProductos recorre todas las páginas de GET /productos.
func (c *Client) ListProductos(ctx context.Context) ([]entity.Producto, error) {
	wires, err := listAll[productoWire](c, ctx, "/productos")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Producto, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.aEntidad())
	}
	return out, nil
}

// CreateProducto POST /productos.
func (c *Client) CreateProducto(ctx context.Context, patch ProductoPatch) (*entity.Producto, error) {
	var w productoWire
	if err := c.do(ctx, http.MethodPost, "/productos", patch.aWire(), &w); err != nil {
		return nil, err
	}
	p := w.aEntidad()
	return &p, nil
}

// UpdateProducto PUT /productos/{id} con DTO de actualización parcial.
func (c *Client) UpdateProducto(ctx context.Context, id int64, patch ProductoPatch) (*entity.Producto, error) {
	var w productoWire
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d", id), patch.aWire(), &w); err != nil {
		return nil, err
	}
	p := w.aEntidad()
	return &p, nil
}

// DeleteProducto DELETE /productos/{id} (eliminación definitiva; la baja
// lógica va por UpdateProducto con Activo=false).
func (c *Client) DeleteProducto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d", id), nil, nil)
}
