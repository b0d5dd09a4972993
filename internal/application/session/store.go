// Package session mantiene las sesiones de edición/alta de producto del
// gateway: el estado local del formulario, la instantánea original para
// detección de cambios y la orquestación del guardado contra el API
// externo. El almacén se instancia e inyecta por dependencia (no es un
// singleton), de modo que cada prueba puede crear el suyo.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/cambios"
	"github.com/jhoicas/inventario-admin/internal/domain/campos"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/precio"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// Form estado mutable del formulario de producto. Los montos son espejos
// de texto, como los mantiene el derivador de precios.
type Form struct {
	Nombre      string
	SKU         string
	Descripcion string
	CategoriaID int64
	Unidad      string
	Imagen      string
	TasaIVA     string
	Costo       string
	Precios     *precio.Derivador
	Stock       stock.Estado
	Campos      campos.Estado
}

// Sesion una sesión de edición (ProductoID > 0) o de alta (ProductoID == 0).
type Sesion struct {
	ID         string
	ProductoID int64

	mu        sync.Mutex
	guardando bool // un solo guardado en vuelo por sesión

	form     Form
	original *cambios.Instantanea // nil mientras no termina la carga

	// Último snapshot del backend, para validaciones y particiones.
	catalogoCampos     []entity.CampoExtra
	persistidos        []campos.ValorPersistido
	asignaciones       []entity.ProductoBodega
	backendPrincipalID int64
}

// instantanea proyecta el formulario a los atributos comparables.
func (s *Sesion) instantanea() cambios.Instantanea {
	seleccionados := make([]int64, 0, len(s.form.Campos.Seleccionados))
	valores := make(map[int64]string, len(s.form.Campos.Valores))
	for id := range s.form.Campos.Seleccionados {
		seleccionados = append(seleccionados, id)
		valores[id] = s.form.Campos.Valores[id]
	}
	return cambios.Instantanea{
		Nombre:              s.form.Nombre,
		SKU:                 s.form.SKU,
		Descripcion:         s.form.Descripcion,
		CategoriaID:         s.form.CategoriaID,
		Unidad:              s.form.Unidad,
		Imagen:              s.form.Imagen,
		PrecioBase:          s.form.Precios.Base(),
		TasaIVA:             s.form.TasaIVA,
		PrecioTotal:         s.form.Precios.Total(),
		Costo:               s.form.Costo,
		BodegaPrincipalID:   s.form.Stock.BodegaPrincipalID,
		CantidadInicial:     s.form.Stock.CantidadInicial,
		CantidadMinima:      s.form.Stock.CantidadMinima,
		CantidadMaxima:      s.form.Stock.CantidadMaxima,
		Adicionales:         s.form.Stock.Adicionales,
		CamposSeleccionados: seleccionados,
		ValoresCampos:       valores,
	}
}

// HayCambios compara el formulario contra la instantánea original.
func (s *Sesion) HayCambios() bool {
	return cambios.HayCambios(s.original, s.instantanea())
}

// Store almacén de sesiones en memoria, seguro para uso concurrente.
type Store struct {
	mu       sync.Mutex
	sesiones map[string]*Sesion
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{sesiones: make(map[string]*Sesion)}
}

func (st *Store) crear(productoID int64) *Sesion {
	s := &Sesion{
		ID:         uuid.New().String(),
		ProductoID: productoID,
		form: Form{
			Precios: precio.NewDerivador(),
			Campos:  campos.NewEstado(),
		},
	}
	st.mu.Lock()
	st.sesiones[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *Store) obtener(id string) (*Sesion, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sesiones[id]
	if !ok {
		return nil, domain.ErrSesionNoEncontrada
	}
	return s, nil
}

// Cerrar descarta una sesión.
func (st *Store) Cerrar(id string) {
	st.mu.Lock()
	delete(st.sesiones, id)
	st.mu.Unlock()
}
