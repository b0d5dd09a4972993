package factura_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/factura"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalcularLinea(t *testing.T) {
	l := factura.CalcularLinea(entity.LineaFactura{
		Precio:        dec("1000"),
		Cantidad:      dec("3"),
		PorcDescuento: dec("10"),
		PorcIVA:       dec("19"),
	})

	assert.True(t, dec("3000").Equal(l.Subtotal), "subtotal: %s", l.Subtotal)
	assert.True(t, dec("300").Equal(l.Descuento), "descuento: %s", l.Descuento)
	assert.True(t, dec("513").Equal(l.IVA), "iva: %s", l.IVA)
	assert.True(t, dec("3213").Equal(l.Total), "total: %s", l.Total)
}

func TestCalcularLinea_RedondeaADosDecimales(t *testing.T) {
	// 33.33 * 3 = 99.99; 19% de 99.99 = 18.9981 -> 19.00
	l := factura.CalcularLinea(entity.LineaFactura{
		Precio:   dec("33.33"),
		Cantidad: dec("3"),
		PorcIVA:  dec("19"),
	})

	assert.True(t, dec("99.99").Equal(l.Subtotal), "subtotal: %s", l.Subtotal)
	assert.True(t, dec("19").Equal(l.IVA), "iva: %s", l.IVA)
	assert.True(t, dec("118.99").Equal(l.Total), "total: %s", l.Total)
}

func TestCalcularTotales(t *testing.T) {
	lineas := []entity.LineaFactura{
		factura.CalcularLinea(entity.LineaFactura{Precio: dec("1000"), Cantidad: dec("1"), PorcIVA: dec("19")}),
		factura.CalcularLinea(entity.LineaFactura{Precio: dec("500"), Cantidad: dec("2"), PorcDescuento: dec("50")}),
	}

	tot := factura.CalcularTotales(lineas)

	assert.True(t, dec("2000").Equal(tot.Subtotal), "subtotal: %s", tot.Subtotal)
	assert.True(t, dec("500").Equal(tot.Descuento), "descuento: %s", tot.Descuento)
	assert.True(t, dec("190").Equal(tot.IVA), "iva: %s", tot.IVA)
	assert.True(t, dec("1690").Equal(tot.Total), "total: %s", tot.Total)
}

func TestCalcularTotales_SinLineasEsCero(t *testing.T) {
	tot := factura.CalcularTotales(nil)
	assert.True(t, tot.Total.IsZero())
	assert.True(t, tot.Subtotal.IsZero())
}

func TestStore_CrearObtenerCerrar(t *testing.T) {
	st := factura.NewStore()

	b := st.Crear()
	require.NotEmpty(t, b.ID)
	f := b.Vista()
	assert.Equal(t, entity.PagoContado, f.TipoPago, "un borrador nuevo arranca de contado")
	assert.False(t, f.Fecha.IsZero(), "la fecha por defecto es hoy")

	got, err := st.Obtener(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got)

	st.Cerrar(b.ID)
	_, err = st.Obtener(b.ID)
	assert.ErrorIs(t, err, domain.ErrBorradorNoEncontrado)
}
