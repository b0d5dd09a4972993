package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

func TestParseCantidad(t *testing.T) {
	v, err := stock.ParseCantidad(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = stock.ParseCantidad("")
	assert.ErrorIs(t, err, stock.ErrCantidadRequerida)

	_, err = stock.ParseCantidad("4.2")
	assert.ErrorIs(t, err, stock.ErrCantidadInvalida, "sin separadores decimales")

	_, err = stock.ParseCantidad("-3")
	assert.ErrorIs(t, err, stock.ErrCantidadInvalida)
}

func TestParseCantidadOpcional_VacioEsNil(t *testing.T) {
	v, err := stock.ParseCantidadOpcional("  ")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestValidarAdicional_RechazaPrincipal(t *testing.T) {
	est := stock.Estado{BodegaPrincipalID: 1}

	_, err := stock.ValidarAdicional(est, 0, stock.AdicionalInput{BodegaID: 1, CantidadInicial: "5"}, false)
	assert.ErrorIs(t, err, stock.ErrBodegaEsPrincipal, "la del selector en vivo no puede ser adicional")

	// El backend todavía marca la bodega 2 como principal aunque el
	// selector apunte a otra: también se rechaza.
	_, err = stock.ValidarAdicional(est, 2, stock.AdicionalInput{BodegaID: 2, CantidadInicial: "5"}, false)
	assert.ErrorIs(t, err, stock.ErrBodegaEsPrincipal)
}

func TestValidarAdicional_RechazaDuplicada(t *testing.T) {
	est, _ := stock.Reconciliar(stock.Estado{}, snapshot(), 0)

	_, err := stock.ValidarAdicional(est, 1, stock.AdicionalInput{BodegaID: 2, CantidadInicial: "5"}, false)
	assert.ErrorIs(t, err, stock.ErrBodegaDuplicada)

	// Editando la misma bodega no es un duplicado.
	_, err = stock.ValidarAdicional(est, 1, stock.AdicionalInput{BodegaID: 2, CantidadInicial: "5"}, true)
	assert.NoError(t, err)
}

func TestValidarAdicional_Rangos(t *testing.T) {
	est := stock.Estado{}

	_, err := stock.ValidarAdicional(est, 0, stock.AdicionalInput{
		BodegaID: 7, CantidadInicial: "5", CantidadMinima: "10", CantidadMaxima: "3",
	}, false)
	assert.ErrorIs(t, err, stock.ErrMinimaMayorQueMaxima)

	_, err = stock.ValidarAdicional(est, 0, stock.AdicionalInput{
		BodegaID: 7, CantidadInicial: "50", CantidadMinima: "1", CantidadMaxima: "10",
	}, false)
	assert.ErrorIs(t, err, stock.ErrInicialFueraDeRango)

	a, err := stock.ValidarAdicional(est, 0, stock.AdicionalInput{
		BodegaID: 7, CantidadInicial: "5", CantidadMinima: "1", CantidadMaxima: "10",
	}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), a.BodegaID)
	assert.Equal(t, int64(5), a.CantidadInicial)
	require.NotNil(t, a.CantidadMinima)
	assert.Equal(t, int64(1), *a.CantidadMinima)
}

func TestValidarEliminacion_ProtegeLaPrincipal(t *testing.T) {
	est := stock.Estado{BodegaPrincipalID: 1}

	assert.ErrorIs(t, stock.ValidarEliminacion(est, 0, 1), stock.ErrEliminarPrincipal)
	assert.ErrorIs(t, stock.ValidarEliminacion(est, 2, 2), stock.ErrEliminarPrincipal,
		"también protege la que el backend aún marca como principal")
	assert.NoError(t, stock.ValidarEliminacion(est, 0, 3))
}
