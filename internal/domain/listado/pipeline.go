// Package listado implementa la tubería de transformación en memoria del
// listado de productos: filtros independientes por campo, un filtro
// numérico de stock con operadores, filtro de estado, una sola clave de
// orden y recorte por página. Todo es puro: la colección de entrada nunca
// se muta.
package listado

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// OperadorStock operador del filtro numérico de stock.
type OperadorStock string

const (
	StockSinFiltro  OperadorStock = ""
	StockIgual      OperadorStock = "="
	StockMayor      OperadorStock = ">"
	StockMayorIgual OperadorStock = ">="
	StockMenor      OperadorStock = "<"
	StockMenorIgual OperadorStock = "<="
	StockEntre      OperadorStock = "entre"
)

// FiltroEstado filtro por bandera de activo.
type FiltroEstado string

const (
	EstadoTodos     FiltroEstado = "todos"
	EstadoActivos   FiltroEstado = "activos"
	EstadoInactivos FiltroEstado = "inactivos"
)

// Filtros filtros independientes por campo (subcadena, sin mayúsculas).
type Filtros struct {
	Nombre      string
	SKU         string
	Descripcion string
	Stock       FiltroStock
	Estado      FiltroEstado
}

// FiltroStock filtro numérico sobre el stock agregado.
type FiltroStock struct {
	Operador OperadorStock
	Valor    decimal.Decimal
	Valor2   decimal.Decimal // límite superior del operador "entre"
}

// Orden a lo sumo una clave de orden activa.
type Orden struct {
	Campo       string // nombre, sku, descripcion, precio, stock
	Descendente bool
}

// Resultado página materializada más los totales de la colección filtrada.
type Resultado struct {
	Items        []entity.Producto
	TotalItems   int
	TotalPaginas int
	Pagina       int
}

// colador comparación lexicográfica sin distinguir mayúsculas (español).
var colador = collate.New(language.Spanish, collate.IgnoreCase)

// Aplicar ejecuta filtro → orden → recorte de página sobre la colección.
// pagina fuera de rango devuelve una página vacía con los totales intactos.
func Aplicar(items []entity.Producto, f Filtros, o Orden, pagina, porPagina int) Resultado {
	filtrados := filtrar(items, f)
	ordenar(filtrados, o)

	total := len(filtrados)
	if porPagina <= 0 {
		porPagina = 10
	}
	if pagina <= 0 {
		pagina = 1
	}
	totalPaginas := (total + porPagina - 1) / porPagina

	inicio := (pagina - 1) * porPagina
	if inicio >= total {
		return Resultado{Items: []entity.Producto{}, TotalItems: total, TotalPaginas: totalPaginas, Pagina: pagina}
	}
	fin := inicio + porPagina
	if fin > total {
		fin = total
	}
	return Resultado{Items: filtrados[inicio:fin], TotalItems: total, TotalPaginas: totalPaginas, Pagina: pagina}
}

func filtrar(items []entity.Producto, f Filtros) []entity.Producto {
	out := make([]entity.Producto, 0, len(items))
	for _, p := range items {
		if !contiene(p.Nombre, f.Nombre) ||
			!contiene(p.SKU, f.SKU) ||
			!contiene(p.Descripcion, f.Descripcion) {
			continue
		}
		if !pasaStock(p.StockActual, f.Stock) {
			continue
		}
		switch f.Estado {
		case EstadoActivos:
			if !p.Activo {
				continue
			}
		case EstadoInactivos:
			if p.Activo {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func contiene(valor, filtro string) bool {
	if filtro == "" {
		return true
	}
	return strings.Contains(strings.ToLower(valor), strings.ToLower(filtro))
}

func pasaStock(stock decimal.Decimal, f FiltroStock) bool {
	switch f.Operador {
	case StockIgual:
		return stock.Equal(f.Valor)
	case StockMayor:
		return stock.GreaterThan(f.Valor)
	case StockMayorIgual:
		return stock.GreaterThanOrEqual(f.Valor)
	case StockMenor:
		return stock.LessThan(f.Valor)
	case StockMenorIgual:
		return stock.LessThanOrEqual(f.Valor)
	case StockEntre:
		return stock.GreaterThanOrEqual(f.Valor) && stock.LessThanOrEqual(f.Valor2)
	default:
		return true
	}
}

func ordenar(items []entity.Producto, o Orden) {
	if o.Campo == "" {
		return
	}
	menor := comparador(o.Campo)
	if menor == nil {
		return
	}
	// Orden estable para que empates no reordenen entre renders.
	sort.SliceStable(items, func(i, j int) bool {
		if o.Descendente {
			return menor(items[j], items[i])
		}
		return menor(items[i], items[j])
	})
}

func comparador(campo string) func(a, b entity.Producto) bool {
	switch campo {
	case "nombre":
		return func(a, b entity.Producto) bool { return colador.CompareString(a.Nombre, b.Nombre) < 0 }
	case "sku":
		return func(a, b entity.Producto) bool { return colador.CompareString(a.SKU, b.SKU) < 0 }
	case "descripcion":
		return func(a, b entity.Producto) bool { return colador.CompareString(a.Descripcion, b.Descripcion) < 0 }
	case "precio":
		return func(a, b entity.Producto) bool { return a.PrecioBase.LessThan(b.PrecioBase) }
	case "stock":
		return func(a, b entity.Producto) bool { return a.StockActual.LessThan(b.StockActual) }
	default:
		return nil
	}
}
