package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/catalogo"
	"github.com/jhoicas/inventario-admin/internal/application/factura"
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/pdf"
	ihttp "github.com/jhoicas/inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// appDePrueba aplicación completa cableada contra un backend falso.
func appDePrueba(t *testing.T) *fiber.App {
	t.Helper()
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /productos", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		fmt.Fprint(w, `{"success":true,"statusCode":200,"message":"ok","data":{
			"items":[{"id":1,"sku":"MAR-01","nombre":"Martillo","precioBase":12000,"tasaIva":0.19,"activo":true}],
			"page":1,"pageSize":50,"totalCount":1,"totalPages":1,"hasPreviousPage":false,"hasNextPage":false
		},"timestamp":""}`)
	})
	mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		fmt.Fprint(w, `{"success":true,"statusCode":200,"message":"ok","data":[],"timestamp":""}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	api := backend.New(backend.Config{BaseURL: srv.URL}, log)
	qc := cache.New()

	app := fiber.New()
	ihttp.Router(app, ihttp.RouterDeps{
		CatalogoUC: catalogo.NewUseCase(api, qc, log),
		SesionUC:   session.NewUseCase(api, qc, session.NewStore(), log),
		VendedorUC: vendedor.NewUseCase(api, qc, log),
		FacturaUC:  factura.NewUseCase(api, qc, factura.NewStore(), pdf.NewMarotoFacturaGenerator(), log),
	})
	return app
}

func TestListarProductos(t *testing.T) {
	app := appDePrueba(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/productos", nil))

	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	cuerpo, _ := io.ReadAll(resp.Body)
	var listado map[string]any
	require.NoError(t, json.Unmarshal(cuerpo, &listado))
	items, _ := listado["items"].([]any)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, listado["totalItems"])
}

func TestSesionInexistenteDa404(t *testing.T) {
	app := appDePrueba(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/sesiones/no-existe", nil))

	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestCrearVendedorInvalidoDa400(t *testing.T) {
	app := appDePrueba(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/vendedores",
		strings.NewReader(`{"identificacion":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	cuerpo, _ := io.ReadAll(resp.Body)
	var cuerpoErr map[string]any
	require.NoError(t, json.Unmarshal(cuerpo, &cuerpoErr))
	assert.NotEmpty(t, cuerpoErr["message"])
}

func TestBorradorDeFacturaCicloBasico(t *testing.T) {
	app := appDePrueba(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, "/api/facturas/borradores", nil))
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	cuerpo, _ := io.ReadAll(resp.Body)
	var borrador map[string]any
	require.NoError(t, json.Unmarshal(cuerpo, &borrador))
	id, _ := borrador["id"].(string)
	require.NotEmpty(t, id)

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/api/facturas/borradores/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodDelete, "/api/facturas/borradores/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
}
