package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/application/factura"
)

// EncabezadoRequest edición del encabezado del borrador de factura.
type EncabezadoRequest struct {
	BodegaID      int64  `json:"bodegaId"`
	VendedorID    int64  `json:"vendedorId"`
	Fecha         string `json:"fecha"`
	TipoPago      string `json:"tipoPago" validate:"omitempty,oneof=contado credito"`
	MedioPago     string `json:"medioPago"`
	PlazoPago     string `json:"plazoPago"`
	Observaciones string `json:"observaciones"`
}

// AEncabezado convierte el request al input del caso de uso.
func (r EncabezadoRequest) AEncabezado() factura.Encabezado {
	return factura.Encabezado{
		BodegaID:      r.BodegaID,
		VendedorID:    r.VendedorID,
		Fecha:         r.Fecha,
		TipoPago:      r.TipoPago,
		MedioPago:     r.MedioPago,
		PlazoPago:     r.PlazoPago,
		Observaciones: r.Observaciones,
	}
}

// LineaRequest alta de una línea de venta.
type LineaRequest struct {
	ProductoID     int64           `json:"productoId" validate:"required,gt=0"`
	ProductoNombre string          `json:"productoNombre"`
	Precio         decimal.Decimal `json:"precio"`
	PorcDescuento  decimal.Decimal `json:"porcDescuento"`
	PorcIVA        decimal.Decimal `json:"porcIva"`
	Cantidad       decimal.Decimal `json:"cantidad"`
}

// AInput convierte el request al input del caso de uso.
func (r LineaRequest) AInput() factura.LineaInput {
	return factura.LineaInput{
		ProductoID:     r.ProductoID,
		ProductoNombre: r.ProductoNombre,
		Precio:         r.Precio,
		PorcDescuento:  r.PorcDescuento,
		PorcIVA:        r.PorcIVA,
		Cantidad:       r.Cantidad,
	}
}

// LineaResponse línea de venta con sus montos derivados.
type LineaResponse struct {
	ProductoID     int64           `json:"productoId"`
	ProductoNombre string          `json:"productoNombre"`
	Precio         decimal.Decimal `json:"precio"`
	PorcDescuento  decimal.Decimal `json:"porcDescuento"`
	PorcIVA        decimal.Decimal `json:"porcIva"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Descuento      decimal.Decimal `json:"descuento"`
	IVA            decimal.Decimal `json:"iva"`
	Total          decimal.Decimal `json:"total"`
}

// TotalesResponse montos agregados del borrador.
type TotalesResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Descuento decimal.Decimal `json:"descuento"`
	IVA       decimal.Decimal `json:"iva"`
	Total     decimal.Decimal `json:"total"`
}

// BorradorResponse estado completo de un borrador de factura.
type BorradorResponse struct {
	ID            string          `json:"id"`
	BodegaID      int64           `json:"bodegaId"`
	VendedorID    int64           `json:"vendedorId"`
	Fecha         string          `json:"fecha"`
	TipoPago      string          `json:"tipoPago"`
	MedioPago     string          `json:"medioPago"`
	PlazoPago     string          `json:"plazoPago"`
	Observaciones string          `json:"observaciones"`
	Lineas        []LineaResponse `json:"lineas"`
	Totales       TotalesResponse `json:"totales"`
}

// ABorradorResponse arma la respuesta desde una vista consistente del
// borrador.
func ABorradorResponse(b *factura.Borrador) BorradorResponse {
	f := b.Vista()
	lineas := make([]LineaResponse, 0, len(f.Lineas))
	for _, l := range f.Lineas {
		lineas = append(lineas, LineaResponse{
			ProductoID:     l.ProductoID,
			ProductoNombre: l.ProductoNombre,
			Precio:         l.Precio,
			PorcDescuento:  l.PorcDescuento,
			PorcIVA:        l.PorcIVA,
			Cantidad:       l.Cantidad,
			Subtotal:       l.Subtotal,
			Descuento:      l.Descuento,
			IVA:            l.IVA,
			Total:          l.Total,
		})
	}
	t := factura.CalcularTotales(f.Lineas)
	return BorradorResponse{
		ID:            b.ID,
		BodegaID:      f.BodegaID,
		VendedorID:    f.VendedorID,
		Fecha:         f.Fecha.Format(time.DateOnly),
		TipoPago:      string(f.TipoPago),
		MedioPago:     f.MedioPago,
		PlazoPago:     f.PlazoPago,
		Observaciones: f.Observaciones,
		Lineas:        lineas,
		Totales: TotalesResponse{
			Subtotal:  t.Subtotal,
			Descuento: t.Descuento,
			IVA:       t.IVA,
			Total:     t.Total,
		},
	}
}
