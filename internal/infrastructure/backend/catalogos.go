package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// categoriaWire catálogo de categorías.
type categoriaWire struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Activa bool   `json:"activa"`
}

// ListCategorias GET /categorias.
func (c *Client) ListCategorias(ctx context.Context) ([]entity.Categoria, error) {
	wires, err := listAll[categoriaWire](c, ctx, "/categorias")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Categoria, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.Categoria{ID: w.ID, Nombre: w.Nombre, Activa: w.Activa})
	}
	return out, nil
}

// lineaWire línea de una factura de venta en el cable.
type lineaWire struct {
	ProductoID    int64           `json:"productoId"`
	Precio        decimal.Decimal `json:"precio"`
	PorcDescuento decimal.Decimal `json:"porcentajeDescuento"`
	PorcIVA       decimal.Decimal `json:"porcentajeIva"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

// facturaWire cuerpo de POST /facturas.
type facturaWire struct {
	BodegaID      int64       `json:"bodegaId"`
	VendedorID    int64       `json:"vendedorId"`
	Fecha         string      `json:"fecha"`
	TipoPago      string      `json:"tipoPago"`
	MedioPago     string      `json:"medioPago"`
	PlazoPago     string      `json:"plazoPago,omitempty"`
	Observaciones string      `json:"observaciones,omitempty"`
	Lineas        []lineaWire `json:"lineas"`
}

// CreateFactura POST /facturas: emite una factura de venta a partir del
// borrador local.
func (c *Client) CreateFactura(ctx context.Context, f entity.FacturaVenta) error {
	body := facturaWire{
		BodegaID:      f.BodegaID,
		VendedorID:    f.VendedorID,
		Fecha:         f.Fecha.Format(time.DateOnly),
		TipoPago:      string(f.TipoPago),
		MedioPago:     f.MedioPago,
		PlazoPago:     f.PlazoPago,
		Observaciones: f.Observaciones,
	}
	for _, l := range f.Lineas {
		body.Lineas = append(body.Lineas, lineaWire{
			ProductoID:    l.ProductoID,
			Precio:        l.Precio,
			PorcDescuento: l.PorcDescuento,
			PorcIVA:       l.PorcIVA,
			Cantidad:      l.Cantidad,
		})
	}
	return c.do(ctx, http.MethodPost, "/facturas", body, nil)
}
