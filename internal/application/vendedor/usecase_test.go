package vendedor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func nuevoUC(t *testing.T, h http.HandlerFunc) *vendedor.UseCase {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	api := backend.New(backend.Config{BaseURL: srv.URL}, logger.Nop())
	return vendedor.NewUseCase(api, cache.New(), logger.Nop())
}

func TestCrear_ValidacionLocalDeIdentificacion(t *testing.T) {
	llamado := false
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) { llamado = true })

	casos := []struct {
		nombre         string
		identificacion string
	}{
		{"con letras", "12A34"},
		{"con espacios", "12 34"},
		{"vacía", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Crear(context.Background(), vendedor.Input{Nombre: "Ana", Identificacion: c.identificacion})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := uc.Crear(context.Background(), vendedor.Input{Identificacion: "123-45"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre es requerido")

	assert.False(t, llamado, "la validación local no llega a la red")
}

func TestCrear_DigitosYGuionesPasan(t *testing.T) {
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"statusCode":200,"message":"ok","data":{"id":4,"nombre":"Ana","identificacion":"901-234-5"},"timestamp":""}`)
	})

	v, err := uc.Crear(context.Background(), vendedor.Input{Nombre: "Ana", Identificacion: "901-234-5"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), v.ID)
}

func TestCambiarEstado_DesactivarExigeConfirmacion(t *testing.T) {
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debe llegar a la red sin confirmación")
	})

	_, err := uc.CambiarEstado(context.Background(), 4, false, false)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_RechazoPorFacturasEsAdvertencia(t *testing.T) {
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success":false,"statusCode":409,"message":"El vendedor tiene facturas de venta registradas","timestamp":""}`)
	})

	_, err := uc.CambiarEstado(context.Background(), 4, false, true)

	var rechazo *vendedor.Rechazo
	require.ErrorAs(t, err, &rechazo, "el rechazo se clasifica, no se propaga como error crudo")
	assert.Equal(t, vendedor.NivelAdvertencia, rechazo.Nivel)
	assert.Contains(t, rechazo.Mensaje, "facturas de venta registradas")
}

func TestCambiarEstado_CodigoEstructuradoTienePrioridad(t *testing.T) {
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success":false,"statusCode":409,"message":"No se puede desactivar","code":"VENDEDOR_CON_FACTURAS","timestamp":""}`)
	})

	_, err := uc.CambiarEstado(context.Background(), 4, false, true)

	var rechazo *vendedor.Rechazo
	require.ErrorAs(t, err, &rechazo)
	assert.Equal(t, vendedor.NivelAdvertencia, rechazo.Nivel)
	assert.Equal(t, "No se puede desactivar", rechazo.Mensaje)
}

func TestCambiarEstado_OtroRechazoSigueSiendoError(t *testing.T) {
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success":false,"statusCode":500,"message":"error interno","timestamp":""}`)
	})

	_, err := uc.CambiarEstado(context.Background(), 4, false, true)

	var rechazo *vendedor.Rechazo
	assert.False(t, errors.As(err, &rechazo), "solo el rechazo por facturas se degrada a advertencia")
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsServerError())
}

func TestListar_UsaCache(t *testing.T) {
	llamadas := 0
	uc := nuevoUC(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		fmt.Fprint(w, `{"success":true,"statusCode":200,"message":"ok","data":{
			"items":[{"id":1,"nombre":"Ana"}],
			"page":1,"pageSize":50,"totalCount":1,"totalPages":1,"hasPreviousPage":false,"hasNextPage":false
		},"timestamp":""}`)
	})

	_, err := uc.Listar(context.Background())
	require.NoError(t, err)
	_, err = uc.Listar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, llamadas, "el segundo listado sale del caché")
}
