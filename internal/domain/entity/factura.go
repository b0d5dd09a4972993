package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoPago forma de pago de una factura de venta.
type TipoPago string

const (
	PagoContado TipoPago = "contado"
	PagoCredito TipoPago = "credito" // requiere PlazoPago
)

// FacturaVenta encabezado de una factura de venta en borrador.
// PlazoPago solo es obligatorio cuando TipoPago es crédito.
type FacturaVenta struct {
	BodegaID      int64
	VendedorID    int64
	Fecha         time.Time
	TipoPago      TipoPago
	MedioPago     string
	PlazoPago     string
	Observaciones string
	Lineas        []LineaFactura
}

// LineaFactura línea de detalle con sus montos derivados.
// Subtotal = Precio * Cantidad; Descuento = Subtotal * PorcDescuento/100;
// IVA = (Subtotal - Descuento) * PorcIVA/100; Total = base gravable + IVA.
type LineaFactura struct {
	ProductoID     int64
	ProductoNombre string
	Precio         decimal.Decimal
	PorcDescuento  decimal.Decimal
	PorcIVA        decimal.Decimal
	Cantidad       decimal.Decimal
	Subtotal       decimal.Decimal
	Descuento      decimal.Decimal
	IVA            decimal.Decimal
	Total          decimal.Decimal
}
