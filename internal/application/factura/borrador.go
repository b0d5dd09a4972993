// Package factura mantiene los borradores de factura de venta: un
// almacén de borradores por sesión (inyectado por dependencia, no un
// global de módulo) con encabezado, líneas y sus montos derivados por
// aritmética fija.
package factura

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// CalcularLinea deriva los montos de una línea:
//
//	subtotal  = precio * cantidad
//	descuento = subtotal * porcDescuento/100
//	iva       = (subtotal - descuento) * porcIVA/100
//	total     = subtotal - descuento + iva
func CalcularLinea(l entity.LineaFactura) entity.LineaFactura {
	l.Subtotal = l.Precio.Mul(l.Cantidad).Round(2)
	l.Descuento = l.Subtotal.Mul(l.PorcDescuento).Div(cien).Round(2)
	base := l.Subtotal.Sub(l.Descuento)
	l.IVA = base.Mul(l.PorcIVA).Div(cien).Round(2)
	l.Total = base.Add(l.IVA).Round(2)
	return l
}

// Totales montos agregados del borrador.
type Totales struct {
	Subtotal  decimal.Decimal
	Descuento decimal.Decimal
	IVA       decimal.Decimal
	Total     decimal.Decimal
}

// CalcularTotales suma los montos de todas las líneas.
func CalcularTotales(lineas []entity.LineaFactura) Totales {
	t := Totales{
		Subtotal:  decimal.Zero,
		Descuento: decimal.Zero,
		IVA:       decimal.Zero,
		Total:     decimal.Zero,
	}
	for _, l := range lineas {
		t.Subtotal = t.Subtotal.Add(l.Subtotal)
		t.Descuento = t.Descuento.Add(l.Descuento)
		t.IVA = t.IVA.Add(l.IVA)
		t.Total = t.Total.Add(l.Total)
	}
	return t
}

// Borrador una factura de venta en construcción. El estado se protege
// con un mutex propio: el mutex del Store solo cuida el mapa, y dos
// requests concurrentes sobre el mismo borrador mutan encabezado y
// líneas.
type Borrador struct {
	ID string

	mu      sync.Mutex
	factura entity.FacturaVenta
}

// Vista devuelve una copia consistente de la factura del borrador.
func (b *Borrador) Vista() entity.FacturaVenta {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := b.factura
	f.Lineas = append([]entity.LineaFactura(nil), b.factura.Lineas...)
	return f
}

// Store almacén de borradores en memoria, seguro para uso concurrente.
type Store struct {
	mu         sync.Mutex
	borradores map[string]*Borrador
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{borradores: make(map[string]*Borrador)}
}

// Crear abre un borrador con fecha de hoy y pago de contado.
func (st *Store) Crear() *Borrador {
	b := &Borrador{
		ID: uuid.New().String(),
		factura: entity.FacturaVenta{
			Fecha:    time.Now(),
			TipoPago: entity.PagoContado,
		},
	}
	st.mu.Lock()
	st.borradores[b.ID] = b
	st.mu.Unlock()
	return b
}

// Obtener devuelve un borrador por id.
func (st *Store) Obtener(id string) (*Borrador, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	b, ok := st.borradores[id]
	if !ok {
		return nil, domain.ErrBorradorNoEncontrado
	}
	return b, nil
}

// Cerrar descarta un borrador.
func (st *Store) Cerrar(id string) {
	st.mu.Lock()
	delete(st.borradores, id)
	st.mu.Unlock()
}
