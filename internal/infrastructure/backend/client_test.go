package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func decimalDe(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func cliente(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.New(backend.Config{BaseURL: srv.URL}, logger.Nop())
}

func sobreOK(data string) string {
	return fmt.Sprintf(`{"success":true,"statusCode":200,"message":"ok","data":%s,"timestamp":"2025-01-01T00:00:00Z"}`, data)
}

func TestGetProducto_DesarmaSobreYConvierteTasa(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/productos/7", r.URL.Path)
		fmt.Fprint(w, sobreOK(`{"id":7,"sku":"TAL-001","nombre":"Taladro","precioBase":100.00,"tasaIva":0.19,"precioTotal":119.00}`))
	})

	p, err := c.GetProducto(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Taladro", p.Nombre)
	assert.True(t, p.TasaIVA.Equal(decimalDe("19")), "en el cable la tasa es fracción; en el dominio, porcentaje")
}

func TestListProductos_RecorreTodasLasPaginas(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, sobreOK(`{"items":[{"id":1},{"id":2}],"page":1,"pageSize":100,"totalCount":3,"totalPages":2,"hasPreviousPage":false,"hasNextPage":true}`))
		default:
			fmt.Fprint(w, sobreOK(`{"items":[{"id":3}],"page":2,"pageSize":100,"totalCount":3,"totalPages":2,"hasPreviousPage":true,"hasNextPage":false}`))
		}
	})

	items, err := c.ListProductos(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestDo_RechazoDelServidorSeTipaComoAPIError(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success":false,"statusCode":409,"message":"SKU duplicado","code":"SKU_DUPLICADO","timestamp":"2025-01-01T00:00:00Z"}`)
	})

	_, err := c.GetProducto(context.Background(), 1)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsConflictError())
	assert.Equal(t, "SKU_DUPLICADO", apiErr.Codigo)
	assert.Equal(t, "SKU duplicado", apiErr.Message)
}

func TestDo_ErroresDeCampoDelSobre(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"statusCode":400,"message":"entrada inválida","errors":[{"field":"sku","message":"requerido"}],"timestamp":""}`)
	})

	_, err := c.GetProducto(context.Background(), 1)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsValidationError())
	require.Len(t, apiErr.GetValidationErrors(), 1)
	assert.Equal(t, "sku", apiErr.GetValidationErrors()[0].Field)
}

func TestDo_FalloDeConexion(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // el puerto queda muerto: error de red, no rechazo HTTP
	c := backend.New(backend.Config{BaseURL: srv.URL}, logger.Nop())

	_, err := c.GetProducto(context.Background(), 1)

	assert.True(t, errors.Is(err, backend.ErrBackendUnavailable))
}

func TestUpdateProducto_TasaViajaComoFraccion(t *testing.T) {
	c := cliente(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, `"0.19"`, string(body["tasaIva"]), "porcentaje del dominio → fracción en el cable")
		fmt.Fprint(w, sobreOK(`{"id":7,"tasaIva":0.19}`))
	})

	tasa := decimalDe("19")
	_, err := c.UpdateProducto(context.Background(), 7, backend.ProductoPatch{TasaIVA: &tasa})

	require.NoError(t, err)
}
