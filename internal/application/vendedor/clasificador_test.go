package vendedor_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
)

func TestClasificar(t *testing.T) {
	conFacturas := &backend.APIError{
		StatusCode: http.StatusConflict,
		Codigo:     "VENDEDOR_CON_FACTURAS",
		Message:    "No se puede desactivar",
	}
	porMensaje := &backend.APIError{
		StatusCode: http.StatusConflict,
		Message:    "El vendedor tiene Facturas De Venta Registradas",
	}
	otroConflicto := &backend.APIError{
		StatusCode: http.StatusConflict,
		Codigo:     "OTRO_CODIGO",
		Message:    "conflicto distinto",
	}

	casos := []struct {
		nombre  string
		err     error
		rechazo bool
	}{
		{"código estructurado", conFacturas, true},
		{"código envuelto", fmt.Errorf("al actualizar: %w", conFacturas), true},
		{"subcadena sin distinguir mayúsculas", porMensaje, true},
		{"otro código no se degrada", otroConflicto, false},
		{"error genérico", errors.New("se cayó la red"), false},
		{"nil", nil, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			r := vendedor.Clasificar(c.err)
			if c.rechazo {
				assert.NotNil(t, r)
				assert.Equal(t, vendedor.NivelAdvertencia, r.Nivel)
			} else {
				assert.Nil(t, r)
			}
		})
	}
}
