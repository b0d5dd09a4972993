package factura_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/factura"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// pdfFalso generador que devuelve un marcador reconocible.
type pdfFalso struct{ ultima entity.FacturaVenta }

func (p *pdfFalso) GenerarBorradorPDF(_ context.Context, f entity.FacturaVenta, _ factura.Totales) ([]byte, error) {
	p.ultima = f
	return []byte("%PDF-falso"), nil
}

func nuevoFacturaUC(t *testing.T, h http.HandlerFunc) (*factura.UseCase, *pdfFalso) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	api := backend.New(backend.Config{BaseURL: srv.URL}, logger.Nop())
	pdf := &pdfFalso{}
	return factura.NewUseCase(api, cache.New(), factura.NewStore(), pdf, logger.Nop()), pdf
}

func lineaValida() factura.LineaInput {
	return factura.LineaInput{
		ProductoID:     7,
		ProductoNombre: "Martillo",
		Precio:         dec("1000"),
		PorcIVA:        dec("19"),
		Cantidad:       dec("2"),
	}
}

func TestSetEncabezado(t *testing.T) {
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {})
	b := uc.Crear()

	t.Run("fecha inválida", func(t *testing.T) {
		_, err := uc.SetEncabezado(b.ID, factura.Encabezado{Fecha: "01/09/2026"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("tipo de pago desconocido", func(t *testing.T) {
		_, err := uc.SetEncabezado(b.ID, factura.Encabezado{TipoPago: "cheque"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("actualización completa", func(t *testing.T) {
		got, err := uc.SetEncabezado(b.ID, factura.Encabezado{
			BodegaID:   2,
			VendedorID: 4,
			Fecha:      "2026-09-01",
			TipoPago:   "credito",
			PlazoPago:  "30 días",
		})
		require.NoError(t, err)
		f := got.Vista()
		assert.Equal(t, int64(2), f.BodegaID)
		assert.Equal(t, entity.PagoCredito, f.TipoPago)
		assert.Equal(t, "2026-09-01", f.Fecha.Format("2006-01-02"))
		assert.Equal(t, "30 días", f.PlazoPago)
	})

	t.Run("borrador inexistente", func(t *testing.T) {
		_, err := uc.SetEncabezado("no-existe", factura.Encabezado{})
		assert.ErrorIs(t, err, domain.ErrBorradorNoEncontrado)
	})
}

func TestAgregarLinea_Validaciones(t *testing.T) {
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {})
	b := uc.Crear()

	casos := []struct {
		nombre string
		mutar  func(*factura.LineaInput)
	}{
		{"sin producto", func(l *factura.LineaInput) { l.ProductoID = 0 }},
		{"cantidad cero", func(l *factura.LineaInput) { l.Cantidad = dec("0") }},
		{"precio negativo", func(l *factura.LineaInput) { l.Precio = dec("-1") }},
		{"descuento sobre cien", func(l *factura.LineaInput) { l.PorcDescuento = dec("101") }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := lineaValida()
			c.mutar(&in)
			_, err := uc.AgregarLinea(b.ID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	got, err := uc.AgregarLinea(b.ID, lineaValida())
	require.NoError(t, err)
	lineas := got.Vista().Lineas
	require.Len(t, lineas, 1)
	assert.True(t, dec("2380").Equal(lineas[0].Total), "los montos se derivan al agregar")
}

func TestAgregarLinea_Concurrente(t *testing.T) {
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {})
	b := uc.Crear()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AgregarLinea(b.ID, lineaValida())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, b.Vista().Lineas, n, "ninguna línea se pierde bajo concurrencia")
}

func TestQuitarLinea(t *testing.T) {
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {})
	b := uc.Crear()
	_, err := uc.AgregarLinea(b.ID, lineaValida())
	require.NoError(t, err)

	_, err = uc.QuitarLinea(b.ID, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "índice fuera de rango")

	got, err := uc.QuitarLinea(b.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Vista().Lineas)
}

func TestEmitir_ValidaAntesDeLaRed(t *testing.T) {
	llamado := false
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) { llamado = true })

	t.Run("sin líneas", func(t *testing.T) {
		b := uc.Crear()
		err := uc.Emitir(context.Background(), b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("sin bodega ni vendedor", func(t *testing.T) {
		b := uc.Crear()
		_, err := uc.AgregarLinea(b.ID, lineaValida())
		require.NoError(t, err)
		err = uc.Emitir(context.Background(), b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("crédito sin plazo", func(t *testing.T) {
		b := uc.Crear()
		_, err := uc.AgregarLinea(b.ID, lineaValida())
		require.NoError(t, err)
		_, err = uc.SetEncabezado(b.ID, factura.Encabezado{BodegaID: 2, VendedorID: 4, TipoPago: "credito"})
		require.NoError(t, err)
		err = uc.Emitir(context.Background(), b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	assert.False(t, llamado, "las validaciones locales no llegan a la red")
}

func TestEmitir_EnviaYDescartaElBorrador(t *testing.T) {
	var recibido map[string]any
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/facturas", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		fmt.Fprint(w, `{"success":true,"statusCode":201,"message":"creada","timestamp":""}`)
	})

	b := uc.Crear()
	_, err := uc.AgregarLinea(b.ID, lineaValida())
	require.NoError(t, err)
	_, err = uc.SetEncabezado(b.ID, factura.Encabezado{BodegaID: 2, VendedorID: 4})
	require.NoError(t, err)

	require.NoError(t, uc.Emitir(context.Background(), b.ID))

	assert.EqualValues(t, 2, recibido["bodegaId"])
	lineas, _ := recibido["lineas"].([]any)
	assert.Len(t, lineas, 1)

	_, err = uc.Obtener(b.ID)
	assert.ErrorIs(t, err, domain.ErrBorradorNoEncontrado, "al emitir se descarta el borrador")
}

func TestEmitir_RechazoDelBackendConservaElBorrador(t *testing.T) {
	uc, _ := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success":false,"statusCode":409,"message":"stock insuficiente","timestamp":""}`)
	})

	b := uc.Crear()
	_, err := uc.AgregarLinea(b.ID, lineaValida())
	require.NoError(t, err)
	_, err = uc.SetEncabezado(b.ID, factura.Encabezado{BodegaID: 2, VendedorID: 4})
	require.NoError(t, err)

	err = uc.Emitir(context.Background(), b.ID)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsConflictError())
	_, err = uc.Obtener(b.ID)
	assert.NoError(t, err, "un rechazo no descarta el borrador")
}

func TestPDF(t *testing.T) {
	uc, pdf := nuevoFacturaUC(t, func(w http.ResponseWriter, r *http.Request) {})
	b := uc.Crear()
	_, err := uc.AgregarLinea(b.ID, lineaValida())
	require.NoError(t, err)

	out, err := uc.PDF(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-falso"), out)
	assert.Len(t, pdf.ultima.Lineas, 1, "el generador recibe la factura del borrador")
}
