package vendedor

import (
	"errors"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
)

// Nivel tratamiento de UI para un rechazo del backend.
type Nivel string

const (
	NivelError       Nivel = "error"
	NivelAdvertencia Nivel = "advertencia" // aviso persistente, no error
)

// Rechazo rechazo de regla de negocio ya clasificado.
type Rechazo struct {
	Nivel   Nivel
	Mensaje string
}

func (r *Rechazo) Error() string { return r.Mensaje }

// codigoConFacturas código estructurado que el backend puede enviar para
// el rechazo de desactivación con facturas asociadas.
const codigoConFacturas = "VENDEDOR_CON_FACTURAS"

// fragmentoConFacturas respaldo por subcadena cuando el backend no envía
// código estructurado. Frágil ante cambios de redacción: por eso vive
// aislado aquí y solo se consulta cuando falta el código.
const fragmentoConFacturas = "facturas de venta registradas"

// Clasificar decide el tratamiento de un error del backend al desactivar
// un vendedor. Prefiere el código estructurado; si no viene, cae al
// emparejamiento por subcadena del mensaje.
func Clasificar(err error) *Rechazo {
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	if apiErr.Codigo == codigoConFacturas {
		return &Rechazo{Nivel: NivelAdvertencia, Mensaje: apiErr.Message}
	}
	if apiErr.Codigo == "" && strings.Contains(strings.ToLower(apiErr.Message), fragmentoConFacturas) {
		return &Rechazo{Nivel: NivelAdvertencia, Mensaje: apiErr.Message}
	}
	return nil
}
