package listado

import "github.com/jhoicas/inventario-admin/internal/domain/entity"

// Estado estado vivo del listado: filtros, orden, página y selección
// múltiple por id. Cualquier cambio de filtro u orden vuelve a la página 1
// y depura la selección para que nunca retenga ids que el filtro sacó de
// la vista.
type Estado struct {
	Filtros   Filtros
	Orden     Orden
	Pagina    int
	PorPagina int
	Seleccion map[int64]bool
}

// NewEstado construye el estado inicial del listado.
func NewEstado(porPagina int) *Estado {
	if porPagina <= 0 {
		porPagina = 10
	}
	return &Estado{
		Filtros:   Filtros{Estado: EstadoTodos},
		Pagina:    1,
		PorPagina: porPagina,
		Seleccion: make(map[int64]bool),
	}
}

// SetFiltros reemplaza los filtros, vuelve a la página 1 y limpia la
// selección (los ids podrían ya no estar a la vista).
func (e *Estado) SetFiltros(f Filtros) {
	e.Filtros = f
	e.reiniciar()
}

// SetOrden cambia la clave o dirección de orden y vuelve a la página 1.
func (e *Estado) SetOrden(o Orden) {
	e.Orden = o
	e.reiniciar()
}

// Seleccionar alterna la selección de un id.
func (e *Estado) Seleccionar(id int64, marcado bool) {
	if marcado {
		e.Seleccion[id] = true
		return
	}
	delete(e.Seleccion, id)
}

// Aplicar ejecuta la tubería con el estado actual y depura la selección
// contra la colección filtrada completa (no solo la página visible).
func (e *Estado) Aplicar(items []entity.Producto) Resultado {
	res := Aplicar(items, e.Filtros, e.Orden, e.Pagina, e.PorPagina)
	e.depurarSeleccion(items)
	return res
}

func (e *Estado) reiniciar() {
	e.Pagina = 1
	e.Seleccion = make(map[int64]bool)
}

func (e *Estado) depurarSeleccion(items []entity.Producto) {
	if len(e.Seleccion) == 0 {
		return
	}
	visibles := make(map[int64]bool, len(items))
	for _, p := range filtrar(items, e.Filtros) {
		visibles[p.ID] = true
	}
	for id := range e.Seleccion {
		if !visibles[id] {
			delete(e.Seleccion, id)
		}
	}
}
