// Package campos resuelve, para cada campo extra del catálogo global, qué
// valor debe mostrar el formulario y qué valor debe enviarse al guardar.
//
// Prioridad por campo:
//  1. Requerido y activo: siempre está en el conjunto seleccionado.
//  2. Valor persistido en el backend (incluso cadena vacía): gana sobre
//     cualquier valor por defecto del catálogo.
//  3. Valor ya tecleado por el usuario en memoria: se conserva, nunca se
//     pisa en una reconciliación.
//  4. Valor por defecto del catálogo.
//
// Los campos opcionales no seleccionados quedan fuera del payload.
package campos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ValorPersistido valor que el backend tiene guardado para un campo del
// producto. Una entrada ausente significa "nunca asignado"; por eso el
// valor se modela aparte del catálogo.
type ValorPersistido struct {
	CampoExtraID int64
	Valor        string
}

// Estado porción del formulario gobernada por el resolutor.
type Estado struct {
	Seleccionados map[int64]bool   // campos elegidos para este producto
	Valores       map[int64]string // valor en memoria por campo
	Editados      map[int64]bool   // campos que el usuario ya tocó
}

// NewEstado construye un estado vacío.
func NewEstado() Estado {
	return Estado{
		Seleccionados: make(map[int64]bool),
		Valores:       make(map[int64]string),
		Editados:      make(map[int64]bool),
	}
}

// Resolver fusiona el catálogo y los valores persistidos con el estado en
// memoria y devuelve el estado siguiente. Idempotente: aplicarlo dos veces
// con el mismo backend no produce más cambios.
func Resolver(catalogo []entity.CampoExtra, persistidos []ValorPersistido, est Estado) Estado {
	porCampo := make(map[int64]string, len(persistidos))
	for _, p := range persistidos {
		porCampo[p.CampoExtraID] = p.Valor
	}

	sig := Estado{
		Seleccionados: make(map[int64]bool, len(est.Seleccionados)),
		Valores:       make(map[int64]string, len(est.Valores)),
		Editados:      est.Editados,
	}
	if sig.Editados == nil {
		sig.Editados = make(map[int64]bool)
	}

	for _, def := range catalogo {
		if !def.Activo {
			continue
		}
		_, persistido := porCampo[def.ID]
		seleccionado := (def.Requerido) || persistido || est.Seleccionados[def.ID]
		if !seleccionado {
			continue
		}
		sig.Seleccionados[def.ID] = true

		switch {
		case persistido && !sig.Editados[def.ID]:
			// El backend es la fuente de verdad, incluso si guardó "".
			sig.Valores[def.ID] = porCampo[def.ID]
		case est.Valores[def.ID] != "" || sig.Editados[def.ID]:
			sig.Valores[def.ID] = est.Valores[def.ID]
		default:
			sig.Valores[def.ID] = def.ValorDefecto
		}
	}
	return sig
}

// ValidarEnvio bloquea el guardado cuando algún campo requerido, o algún
// campo opcional seleccionado, no resuelve a un valor no vacío. El error
// enumera los nombres de los campos ofensores.
func ValidarEnvio(catalogo []entity.CampoExtra, est Estado) error {
	var incompletos []string
	for _, def := range catalogo {
		if !def.Activo {
			continue
		}
		if (def.Requerido || est.Seleccionados[def.ID]) && strings.TrimSpace(est.Valores[def.ID]) == "" {
			incompletos = append(incompletos, def.Nombre)
		}
	}
	if len(incompletos) > 0 {
		sort.Strings(incompletos)
		return fmt.Errorf("campos incompletos: %s", strings.Join(incompletos, ", "))
	}
	return nil
}

// Upsert valor resuelto a escribir en el backend.
type Upsert struct {
	CampoExtraID int64
	Valor        string
}

// Plan diferencia de tres vías contra la lista de asignaciones del backend.
type Plan struct {
	Eliminar []int64  // persistidos, ya no seleccionados y no requeridos
	Upserts  []Upsert // todos los seleccionados con su valor resuelto
}

// PlanGuardado calcula el plan de sincronización tras el guardado
// principal. Los deletes y upserts se ejecutan de forma concurrente por el
// llamador; los fallos individuales se registran sin revertir.
func PlanGuardado(catalogo []entity.CampoExtra, persistidos []ValorPersistido, est Estado) Plan {
	requerido := make(map[int64]bool, len(catalogo))
	for _, def := range catalogo {
		if def.Activo && def.Requerido {
			requerido[def.ID] = true
		}
	}

	var plan Plan
	for _, p := range persistidos {
		if !est.Seleccionados[p.CampoExtraID] && !requerido[p.CampoExtraID] {
			plan.Eliminar = append(plan.Eliminar, p.CampoExtraID)
		}
	}
	for _, def := range catalogo {
		if !def.Activo || !est.Seleccionados[def.ID] {
			continue
		}
		plan.Upserts = append(plan.Upserts, Upsert{CampoExtraID: def.ID, Valor: est.Valores[def.ID]})
	}
	sort.Slice(plan.Eliminar, func(i, j int) bool { return plan.Eliminar[i] < plan.Eliminar[j] })
	sort.Slice(plan.Upserts, func(i, j int) bool { return plan.Upserts[i].CampoExtraID < plan.Upserts[j].CampoExtraID })
	return plan
}
