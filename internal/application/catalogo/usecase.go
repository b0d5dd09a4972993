// Package catalogo expone el listado de productos del administrador: la
// colección completa se trae del backend (con caché) y los filtros, el
// orden, la paginación y la selección múltiple se aplican en memoria con
// la tubería de listado.
package catalogo

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/listado"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// UseCase estado del listado más acceso al backend.
type UseCase struct {
	api   *backend.Client
	cache *cache.QueryCache
	log   *logger.Logger

	mu    sync.Mutex
	lista *listado.Estado
}

// NewUseCase construye el caso de uso con el listado en su estado inicial.
func NewUseCase(api *backend.Client, qc *cache.QueryCache, log *logger.Logger) *UseCase {
	return &UseCase{api: api, cache: qc, log: log, lista: listado.NewEstado(10)}
}

// Vista página materializada del listado más la selección vigente.
type Vista struct {
	Resultado listado.Resultado
	Seleccion []int64
	Filtros   listado.Filtros
	Orden     listado.Orden
	PorPagina int
}

// Listar aplica la tubería con el estado actual.
func (uc *UseCase) Listar(ctx context.Context) (Vista, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.vista(ctx)
}

// SetFiltros reemplaza los filtros (vuelve a página 1, limpia selección).
func (uc *UseCase) SetFiltros(ctx context.Context, f listado.Filtros) (Vista, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lista.SetFiltros(f)
	return uc.vista(ctx)
}

// SetOrden cambia la clave/dirección de orden (vuelve a página 1).
func (uc *UseCase) SetOrden(ctx context.Context, o listado.Orden) (Vista, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lista.SetOrden(o)
	return uc.vista(ctx)
}

// SetPagina navega a otra página sin tocar filtros ni selección.
func (uc *UseCase) SetPagina(ctx context.Context, pagina, porPagina int) (Vista, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if pagina > 0 {
		uc.lista.Pagina = pagina
	}
	if porPagina > 0 {
		uc.lista.PorPagina = porPagina
	}
	return uc.vista(ctx)
}

// Seleccionar alterna la selección de un producto.
func (uc *UseCase) Seleccionar(ctx context.Context, id int64, marcado bool) (Vista, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.lista.Seleccionar(id, marcado)
	return uc.vista(ctx)
}

// Invalidar fuerza el refetch del catálogo en la próxima lectura.
func (uc *UseCase) Invalidar() {
	uc.cache.Invalidate("productos")
}

func (uc *UseCase) vista(ctx context.Context) (Vista, error) {
	items, err := uc.productos(ctx)
	if err != nil {
		return Vista{}, err
	}
	res := uc.lista.Aplicar(items)

	sel := make([]int64, 0, len(uc.lista.Seleccion))
	for id := range uc.lista.Seleccion {
		sel = append(sel, id)
	}
	sort.Slice(sel, func(i, j int) bool { return sel[i] < sel[j] })

	return Vista{
		Resultado: res,
		Seleccion: sel,
		Filtros:   uc.lista.Filtros,
		Orden:     uc.lista.Orden,
		PorPagina: uc.lista.PorPagina,
	}, nil
}

// productos colección completa, con caché (clave productos:todos).
func (uc *UseCase) productos(ctx context.Context) ([]entity.Producto, error) {
	clave := cache.Clave("productos", "todos")
	if v, ok := uc.cache.Get(clave); ok {
		return v.([]entity.Producto), nil
	}
	items, err := uc.api.ListProductos(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(clave, items)
	return items, nil
}

// Bodegas catálogo de bodegas para los selectores.
func (uc *UseCase) Bodegas(ctx context.Context) ([]entity.Bodega, error) {
	clave := cache.Clave("bodegas", "todas")
	if v, ok := uc.cache.Get(clave); ok {
		return v.([]entity.Bodega), nil
	}
	items, err := uc.api.ListBodegas(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(clave, items)
	return items, nil
}

// Categorias catálogo de categorías para los selectores.
func (uc *UseCase) Categorias(ctx context.Context) ([]entity.Categoria, error) {
	clave := cache.Clave("categorias", "todas")
	if v, ok := uc.cache.Get(clave); ok {
		return v.([]entity.Categoria), nil
	}
	items, err := uc.api.ListCategorias(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(clave, items)
	return items, nil
}
