package stock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// Errores de validación de asignaciones de bodega. Cada violación aborta
// la mutación localmente; nunca se escribe estado parcial ni se emite una
// llamada de red.
var (
	ErrBodegaEsPrincipal    = errors.New("la bodega ya está configurada como principal")
	ErrBodegaDuplicada      = errors.New("la bodega ya está en la lista de bodegas adicionales")
	ErrEliminarPrincipal    = errors.New("no se puede eliminar la bodega principal; seleccione otra bodega principal primero")
	ErrCantidadInvalida     = errors.New("la cantidad debe ser un entero no negativo")
	ErrCantidadRequerida    = errors.New("la cantidad inicial es obligatoria")
	ErrMinimaMayorQueMaxima = errors.New("la cantidad mínima no puede ser mayor que la máxima")
	ErrInicialFueraDeRango  = errors.New("la cantidad inicial debe estar entre la mínima y la máxima")
)

// ParseCantidad interpreta el contenido de un campo de cantidad: entero no
// negativo, sin separadores decimales.
func ParseCantidad(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrCantidadRequerida
	}
	if strings.ContainsAny(s, ".,") {
		return 0, ErrCantidadInvalida
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, ErrCantidadInvalida
	}
	return v, nil
}

// ParseCantidadOpcional como ParseCantidad pero admite campo vacío (nil).
func ParseCantidadOpcional(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := ParseCantidad(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AdicionalInput entrada cruda del formulario para agregar o editar una
// bodega adicional.
type AdicionalInput struct {
	BodegaID        int64
	CantidadInicial string
	CantidadMinima  string
	CantidadMaxima  string
}

// ValidarAdicional aplica las reglas para agregar/editar una bodega
// adicional. backendPrincipalID es la bodega que el backend tiene marcada
// como principal: se comprueba junto con el selector en vivo porque ambos
// pueden estar momentáneamente desincronizados. Devuelve la asignación ya
// normalizada lista para enviar.
func ValidarAdicional(est Estado, backendPrincipalID int64, in AdicionalInput, editando bool) (entity.ProductoBodega, error) {
	var vacio entity.ProductoBodega

	if in.BodegaID == est.BodegaPrincipalID || in.BodegaID == backendPrincipalID {
		return vacio, ErrBodegaEsPrincipal
	}
	if !editando {
		for _, a := range est.Adicionales {
			if a.BodegaID == in.BodegaID {
				return vacio, ErrBodegaDuplicada
			}
		}
	}

	inicial, err := ParseCantidad(in.CantidadInicial)
	if err != nil {
		return vacio, fmt.Errorf("cantidad inicial: %w", err)
	}
	minima, err := ParseCantidadOpcional(in.CantidadMinima)
	if err != nil {
		return vacio, fmt.Errorf("cantidad mínima: %w", err)
	}
	maxima, err := ParseCantidadOpcional(in.CantidadMaxima)
	if err != nil {
		return vacio, fmt.Errorf("cantidad máxima: %w", err)
	}
	if minima != nil && maxima != nil {
		if *minima > *maxima {
			return vacio, ErrMinimaMayorQueMaxima
		}
		if inicial < *minima || inicial > *maxima {
			return vacio, ErrInicialFueraDeRango
		}
	}

	return entity.ProductoBodega{
		BodegaID:        in.BodegaID,
		CantidadInicial: inicial,
		CantidadMinima:  minima,
		CantidadMaxima:  maxima,
	}, nil
}

// ValidarEliminacion impide quitar la asignación principal: el usuario
// debe reapuntar el selector de principal antes de eliminar.
func ValidarEliminacion(est Estado, backendPrincipalID, bodegaID int64) error {
	if bodegaID == est.BodegaPrincipalID || bodegaID == backendPrincipalID {
		return ErrEliminarPrincipal
	}
	return nil
}
