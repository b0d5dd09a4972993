// Package stock reconcilia las asignaciones de bodega que reporta el
// backend con el estado del formulario de edición de producto: el selector
// de bodega principal, sus campos de cantidades y la tabla de bodegas
// adicionales. La reconciliación nunca pisa una edición del usuario en
// curso y es idempotente frente al mismo snapshot del backend.
package stock

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// Estado porción del formulario gobernada por el reconciliador.
// Los campos de cantidad son espejos de texto ("" = campo vacío).
type Estado struct {
	BodegaPrincipalID int64 // 0 = sin selección
	CantidadInicial   string
	CantidadMinima    string
	CantidadMaxima    string
	Adicionales       []entity.ProductoBodega

	// Firma del último snapshot reconciliado (ordenado por bodega);
	// un snapshot con la misma firma no produce cambios.
	Firma string
}

// Reconciliar fusiona el snapshot del backend con el estado actual del
// formulario y devuelve el estado siguiente junto con un indicador de si
// hubo cambios. bodegaPrincipalID es el valor persistido en el producto,
// usado como respaldo cuando ninguna asignación viene marcada como
// principal.
func Reconciliar(actual Estado, backend []entity.ProductoBodega, bodegaPrincipalID int64) (Estado, bool) {
	firma := firmaDe(backend)
	if firma == actual.Firma {
		return actual, false
	}

	sig := actual
	sig.Firma = firma

	principal := resolverPrincipal(backend, bodegaPrincipalID)

	if principal != nil {
		if principal.BodegaID != actual.BodegaPrincipalID || actual.CantidadInicial == "" {
			// Cambió la principal (o los campos están vacíos): adoptar
			// las cantidades del backend de una vez.
			sig.BodegaPrincipalID = principal.BodegaID
			sig.CantidadInicial = strconv.FormatInt(principal.CantidadInicial, 10)
			sig.CantidadMinima = formatoOpcional(principal.CantidadMinima)
			sig.CantidadMaxima = formatoOpcional(principal.CantidadMaxima)
		} else {
			// Misma principal: corregir solo los campos que se desviaron
			// del valor del backend para minimizar escrituras.
			if v, err := ParseCantidad(sig.CantidadInicial); err != nil || v != principal.CantidadInicial {
				sig.CantidadInicial = strconv.FormatInt(principal.CantidadInicial, 10)
			}
			sig.CantidadMinima = corregirOpcional(sig.CantidadMinima, principal.CantidadMinima)
			sig.CantidadMaxima = corregirOpcional(sig.CantidadMaxima, principal.CantidadMaxima)
		}
	}

	adicionales := particionar(backend, principal)
	if !igualesAsignaciones(adicionales, sig.Adicionales) {
		sig.Adicionales = adicionales
	}

	return sig, true
}

// SeleccionarPrincipal aplica un cambio del selector de bodega principal
// dirigido por el usuario. Si el backend ya registra cifras para la bodega
// elegida se adoptan en los campos de nivel superior (no se vacían); la
// principal anterior pasa a ser elegible en la lista de adicionales. El
// selector manda aquí aunque el backend todavía marque otra bodega como
// principal: ambos quedan momentáneamente desincronizados hasta guardar.
func SeleccionarPrincipal(est Estado, backend []entity.ProductoBodega, bodegaID int64) Estado {
	est.BodegaPrincipalID = bodegaID

	var elegida *entity.ProductoBodega
	for i := range backend {
		if backend[i].BodegaID == bodegaID {
			elegida = &backend[i]
			break
		}
	}
	if elegida != nil {
		est.CantidadInicial = strconv.FormatInt(elegida.CantidadInicial, 10)
		est.CantidadMinima = formatoOpcional(elegida.CantidadMinima)
		est.CantidadMaxima = formatoOpcional(elegida.CantidadMaxima)
	} else {
		est.CantidadInicial = ""
		est.CantidadMinima = ""
		est.CantidadMaxima = ""
	}

	est.Adicionales = particionar(backend, elegida)
	return est
}

// resolverPrincipal prefiere la asignación marcada EsPrincipal; de lo
// contrario usa el BodegaPrincipalID persistido en el producto.
func resolverPrincipal(backend []entity.ProductoBodega, bodegaPrincipalID int64) *entity.ProductoBodega {
	for i := range backend {
		if backend[i].EsPrincipal {
			return &backend[i]
		}
	}
	if bodegaPrincipalID != 0 {
		for i := range backend {
			if backend[i].BodegaID == bodegaPrincipalID {
				return &backend[i]
			}
		}
	}
	return nil
}

// particionar devuelve las asignaciones no principales ordenadas por bodega.
func particionar(backend []entity.ProductoBodega, principal *entity.ProductoBodega) []entity.ProductoBodega {
	out := make([]entity.ProductoBodega, 0, len(backend))
	for _, a := range backend {
		if principal != nil && a.BodegaID == principal.BodegaID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BodegaID < out[j].BodegaID })
	return out
}

// firmaDe serializa el snapshot ordenado por bodega; dos snapshots con la
// misma firma son estructuralmente iguales.
func firmaDe(backend []entity.ProductoBodega) string {
	orden := make([]entity.ProductoBodega, len(backend))
	copy(orden, backend)
	sort.Slice(orden, func(i, j int) bool { return orden[i].BodegaID < orden[j].BodegaID })

	var b strings.Builder
	for _, a := range orden {
		fmt.Fprintf(&b, "%d:%d:%s:%s:%t;",
			a.BodegaID, a.CantidadInicial,
			formatoOpcional(a.CantidadMinima), formatoOpcional(a.CantidadMaxima),
			a.EsPrincipal)
	}
	return b.String()
}

func igualesAsignaciones(a, b []entity.ProductoBodega) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].BodegaID != b[i].BodegaID ||
			a[i].CantidadInicial != b[i].CantidadInicial ||
			!igualOpcional(a[i].CantidadMinima, b[i].CantidadMinima) ||
			!igualOpcional(a[i].CantidadMaxima, b[i].CantidadMaxima) {
			return false
		}
	}
	return true
}

func igualOpcional(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatoOpcional(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// corregirOpcional deja el campo como está si coincide con el backend y
// lo corrige en caso contrario.
func corregirOpcional(campo string, backend *int64) string {
	if backend == nil {
		return campo
	}
	if v, err := ParseCantidad(campo); err == nil && v == *backend {
		return campo
	}
	return strconv.FormatInt(*backend, 10)
}
