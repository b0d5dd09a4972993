package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

func TestAgregarBodega_ViolacionAbortaSinRed(t *testing.T) {
	uc, falso := nuevaSesionUC(t)

	s, err := uc.Abrir(context.Background(), 7)
	require.NoError(t, err)

	// La bodega 2 ya está en las adicionales.
	_, err = uc.AgregarBodega(context.Background(), s.ID, stock.AdicionalInput{BodegaID: 2, CantidadInicial: "5"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// La bodega 1 es la principal.
	_, err = uc.AgregarBodega(context.Background(), s.ID, stock.AdicionalInput{BodegaID: 1, CantidadInicial: "5"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, falso.recibidas(), "ninguna violación local emite llamadas")
}

func TestAgregarBodega_ValidaCreaYRefresca(t *testing.T) {
	uc, falso := nuevaSesionUC(t)

	s, err := uc.Abrir(context.Background(), 7)
	require.NoError(t, err)

	_, err = uc.AgregarBodega(context.Background(), s.ID, stock.AdicionalInput{BodegaID: 3, CantidadInicial: "8"})
	require.NoError(t, err)

	assert.Contains(t, falso.recibidas(), "POST /productos/7/bodegas")
}

func TestEliminarBodega_ExigeConfirmacionYProtegePrincipal(t *testing.T) {
	uc, falso := nuevaSesionUC(t)

	s, err := uc.Abrir(context.Background(), 7)
	require.NoError(t, err)

	_, err = uc.EliminarBodega(context.Background(), s.ID, 1, true)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "la principal no se elimina")

	_, err = uc.EliminarBodega(context.Background(), s.ID, 2, false)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "sin confirmación no hay llamada")
	assert.Empty(t, falso.recibidas())

	_, err = uc.EliminarBodega(context.Background(), s.ID, 2, true)
	require.NoError(t, err)
	assert.Contains(t, falso.recibidas(), "DELETE /productos/7/bodegas/2")
}

func TestAbrirAlta_BodegasLocalesHastaGuardar(t *testing.T) {
	uc, falso := nuevaSesionUC(t)

	s, err := uc.AbrirAlta(context.Background())
	require.NoError(t, err)

	_, err = uc.AgregarBodega(context.Background(), s.ID, stock.AdicionalInput{BodegaID: 5, CantidadInicial: "3"})
	require.NoError(t, err)

	assert.Empty(t, falso.recibidas(), "en alta la asignación vive solo en el formulario")
	require.Len(t, s.Vista().Stock.Adicionales, 1)
}

func TestEliminarProducto_ExigeConfirmacion(t *testing.T) {
	uc, falso := nuevaSesionUC(t)

	err := uc.EliminarProducto(context.Background(), 7, false)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, falso.recibidas())

	err = uc.EliminarProducto(context.Background(), 7, true)
	require.NoError(t, err)
	assert.Contains(t, falso.recibidas(), "DELETE /productos/7")
}
