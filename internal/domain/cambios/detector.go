// Package cambios compara el estado actual del formulario de producto con
// la instantánea original cargada del backend, para habilitar o no la
// acción de guardar. La comparación es total y sin efectos; debe
// recalcularse en cada cambio de estado relevante, nunca cachearse.
package cambios

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// epsilon tolerancia para montos: diferencias menores a un centavo no
// cuentan como cambio.
var epsilon = decimal.New(1, -2)

// Instantanea atributos comparables del formulario en un momento dado.
// Los montos son espejos de texto tal como los mantiene el derivador.
type Instantanea struct {
	Nombre      string
	SKU         string
	Descripcion string
	CategoriaID int64
	Unidad      string
	PrecioBase  string
	TasaIVA     string
	PrecioTotal string
	Costo       string
	Imagen      string

	BodegaPrincipalID int64
	CantidadInicial   string
	CantidadMinima    string
	CantidadMaxima    string
	Adicionales       []entity.ProductoBodega

	CamposSeleccionados []int64          // ids, en cualquier orden
	ValoresCampos       map[int64]string // valor resuelto por campo
}

// HayCambios devuelve true en cuanto detecta una diferencia entre el
// estado actual y la instantánea original; false mientras la entidad no
// terminó de cargar (original == nil).
func HayCambios(original *Instantanea, actual Instantanea) bool {
	if original == nil {
		return false
	}
	if original.Nombre != actual.Nombre ||
		original.SKU != actual.SKU ||
		original.Descripcion != actual.Descripcion ||
		original.CategoriaID != actual.CategoriaID ||
		original.Unidad != actual.Unidad ||
		original.Imagen != actual.Imagen {
		return true
	}
	if difiereMonto(original.PrecioBase, actual.PrecioBase) ||
		difiereMonto(original.TasaIVA, actual.TasaIVA) ||
		difiereMonto(original.PrecioTotal, actual.PrecioTotal) ||
		difiereMonto(original.Costo, actual.Costo) {
		return true
	}
	if original.BodegaPrincipalID != actual.BodegaPrincipalID ||
		difiereCantidad(original.CantidadInicial, actual.CantidadInicial) ||
		difiereCantidad(original.CantidadMinima, actual.CantidadMinima) ||
		difiereCantidad(original.CantidadMaxima, actual.CantidadMaxima) {
		return true
	}
	if difierenIDs(original.CamposSeleccionados, actual.CamposSeleccionados) {
		return true
	}
	for _, id := range actual.CamposSeleccionados {
		if original.ValoresCampos[id] != actual.ValoresCampos[id] {
			return true
		}
	}
	return difierenAdicionales(original.Adicionales, actual.Adicionales)
}

// difiereMonto compara dos espejos de monto con tolerancia de un centavo.
// Vacío o no numérico equivale a 0.
func difiereMonto(a, b string) bool {
	da, err := decimal.NewFromString(a)
	if err != nil {
		da = decimal.Zero
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		db = decimal.Zero
	}
	return da.Sub(db).Abs().GreaterThanOrEqual(epsilon)
}

// difiereCantidad compara dos espejos de cantidad; vacío solo es igual a
// vacío.
func difiereCantidad(a, b string) bool {
	if (a == "") != (b == "") {
		return true
	}
	if a == "" {
		return false
	}
	return difiereMonto(a, b)
}

func difierenIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return true
	}
	sa := append([]int64(nil), a...)
	sb := append([]int64(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := range sa {
		if sa[i] != sb[i] {
			return true
		}
	}
	return false
}

// difierenAdicionales compara los conjuntos de asignaciones adicionales
// por bodega y cantidades (inicial/mín/máx), ordenados por id.
func difierenAdicionales(a, b []entity.ProductoBodega) bool {
	if len(a) != len(b) {
		return true
	}
	sa := ordenadas(a)
	sb := ordenadas(b)
	for i := range sa {
		if sa[i].BodegaID != sb[i].BodegaID ||
			sa[i].CantidadInicial != sb[i].CantidadInicial ||
			!igualOpcional(sa[i].CantidadMinima, sb[i].CantidadMinima) ||
			!igualOpcional(sa[i].CantidadMaxima, sb[i].CantidadMaxima) {
			return true
		}
	}
	return false
}

func ordenadas(v []entity.ProductoBodega) []entity.ProductoBodega {
	out := append([]entity.ProductoBodega(nil), v...)
	sort.Slice(out, func(i, j int) bool { return out[i].BodegaID < out[j].BodegaID })
	return out
}

func igualOpcional(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
