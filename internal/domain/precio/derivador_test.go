package precio_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain/precio"
)

func TestSetBaseOrTax_DerivaTotal(t *testing.T) {
	d := precio.NewDerivador()

	d.SetBaseOrTax("100", "19")

	assert.Equal(t, "100", d.Base(), "el campo base conserva lo tecleado")
	assert.Equal(t, "119.00", d.Total(), "total = base + base*tasa/100")
}

func TestSetTotal_DespejaBase(t *testing.T) {
	d := precio.NewDerivador()

	d.SetTotal("119", "19")

	assert.Equal(t, "119", d.Total(), "el campo total conserva lo tecleado")
	assert.Equal(t, "100.00", d.Base(), "base = total / (1 + tasa/100)")
}

func TestSetTotal_TasaCero(t *testing.T) {
	d := precio.NewDerivador()

	d.SetTotal("250.50", "0")

	assert.Equal(t, "250.50", d.Base(), "con tasa 0 la base es igual al total")
}

func TestDerivador_EntradaVaciaONoNumerica(t *testing.T) {
	d := precio.NewDerivador()

	d.SetBaseOrTax("", "19")
	assert.Equal(t, "0.00", d.Total(), "campo vacío se trata como 0")

	d.SetBaseOrTax("abc", "19")
	assert.Equal(t, "0.00", d.Total(), "entrada no numérica se trata como 0")
}

func TestDerivador_NegativoSeVacia(t *testing.T) {
	d := precio.NewDerivador()

	d.SetBaseOrTax("-100", "19")

	assert.Equal(t, "", d.Total(), "un total negativo se vacía en lugar de mostrarse")
}

func TestDerivador_IdaYVueltaDentroDelCentavo(t *testing.T) {
	d := precio.NewDerivador()

	// base → total → base no debe desviarse más de un centavo por el
	// redondeo a 2 decimales.
	d.SetBaseOrTax("33.33", "19")
	total := d.Total()
	require.NotEmpty(t, total)

	d.SetTotal(total, "19")
	assert.InDelta(t, 33.33, mustFloat(t, d.Base()), 0.01)
}

func TestDerivador_GuardaContraReentrada(t *testing.T) {
	d := precio.NewDerivador()

	// Un espejo que reacciona llamando de vuelta al derivador simula la
	// realimentación entre los dos manejadores del formulario; la guarda
	// debe descartar la reentrada en lugar de ciclar.
	llamadas := 0
	d.Espejo = func(base, total string) {
		llamadas++
		require.Less(t, llamadas, 10, "el espejo no debe ciclar")
		d.SetTotal("999", "19") // reentrada: debe ser ignorada
	}

	d.SetBaseOrTax("100", "19")

	assert.Equal(t, 1, llamadas)
	assert.Equal(t, "119.00", d.Total(), "la reentrada no pisa la derivación en curso")
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}
