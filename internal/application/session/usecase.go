package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/campos"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// UseCase casos de uso del formulario de producto.
type UseCase struct {
	api   *backend.Client
	cache *cache.QueryCache
	store *Store
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api *backend.Client, qc *cache.QueryCache, store *Store, log *logger.Logger) *UseCase {
	return &UseCase{api: api, cache: qc, store: store, log: log}
}

// Abrir crea una sesión de edición: carga el producto, sus bodegas y sus
// campos extra, reconcilia y toma la instantánea original.
func (uc *UseCase) Abrir(ctx context.Context, productoID int64) (*Sesion, error) {
	p, err := uc.api.GetProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}

	s := uc.store.crear(productoID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.Nombre = p.Nombre
	s.form.SKU = p.SKU
	s.form.Descripcion = p.Descripcion
	s.form.CategoriaID = p.CategoriaID
	s.form.Unidad = p.UnidadMedida
	s.form.Imagen = p.ImagenURL
	s.form.TasaIVA = p.TasaIVA.StringFixed(2)
	s.form.Costo = p.Costo.StringFixed(2)
	s.form.Precios.SetBaseOrTax(p.PrecioBase.StringFixed(2), s.form.TasaIVA)
	s.form.Stock.BodegaPrincipalID = p.BodegaPrincipalID

	if err := uc.recargar(ctx, s); err != nil {
		uc.store.Cerrar(s.ID)
		return nil, err
	}

	// La detección de cambios queda habilitada solo cuando la carga
	// completa terminó.
	orig := s.instantanea()
	s.original = &orig
	return s, nil
}

// AbrirAlta crea una sesión de alta: sin producto, con el catálogo de
// campos resuelto sobre sus valores por defecto.
func (uc *UseCase) AbrirAlta(ctx context.Context) (*Sesion, error) {
	catalogo, err := uc.camposExtra(ctx)
	if err != nil {
		return nil, err
	}
	s := uc.store.crear(0)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogoCampos = catalogo
	s.form.Campos = campos.Resolver(catalogo, nil, s.form.Campos)
	return s, nil
}

// Obtener devuelve la sesión por id.
func (uc *UseCase) Obtener(id string) (*Sesion, error) {
	return uc.store.obtener(id)
}

// Refrescar vuelve a pedir bodegas y campos al backend y reconcilia. Es
// idempotente: con el mismo snapshot no produce cambios ni escrituras.
func (uc *UseCase) Refrescar(ctx context.Context, id string) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ProductoID == 0 {
		return s, nil
	}
	if err := uc.recargar(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// recargar trae el snapshot autoritativo de bodegas y campos y lo fusiona
// con el formulario sin pisar ediciones en curso. Llamar con s.mu tomado.
func (uc *UseCase) recargar(ctx context.Context, s *Sesion) error {
	asignaciones, err := uc.api.GetBodegasProducto(ctx, s.ProductoID)
	if err != nil {
		return err
	}
	catalogo, err := uc.camposExtra(ctx)
	if err != nil {
		return err
	}
	persistidos, err := uc.api.GetCamposProducto(ctx, s.ProductoID)
	if err != nil {
		return err
	}

	s.asignaciones = asignaciones
	s.catalogoCampos = catalogo
	s.persistidos = persistidos
	s.backendPrincipalID = 0
	for _, a := range asignaciones {
		if a.EsPrincipal {
			s.backendPrincipalID = a.BodegaID
			break
		}
	}

	s.form.Stock, _ = stock.Reconciliar(s.form.Stock, asignaciones, s.form.Stock.BodegaPrincipalID)
	s.form.Campos = campos.Resolver(catalogo, persistidos, s.form.Campos)
	return nil
}

// camposExtra catálogo global, con caché (clave campos-extra:catalogo).
func (uc *UseCase) camposExtra(ctx context.Context) ([]entity.CampoExtra, error) {
	clave := cache.Clave("campos-extra", "catalogo")
	if v, ok := uc.cache.Get(clave); ok {
		return v.([]entity.CampoExtra), nil
	}
	catalogo, err := uc.api.ListCamposExtra(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(clave, catalogo)
	return catalogo, nil
}

// DatosInput campos descriptivos editables del producto.
type DatosInput struct {
	Nombre      *string
	SKU         *string
	Descripcion *string
	CategoriaID *int64
	Unidad      *string
	Imagen      *string
	Costo       *string
}

// ActualizarDatos aplica ediciones de los campos descriptivos.
func (uc *UseCase) ActualizarDatos(id string, in DatosInput) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Nombre != nil {
		s.form.Nombre = *in.Nombre
	}
	if in.SKU != nil {
		s.form.SKU = *in.SKU
	}
	if in.Descripcion != nil {
		s.form.Descripcion = *in.Descripcion
	}
	if in.CategoriaID != nil {
		s.form.CategoriaID = *in.CategoriaID
	}
	if in.Unidad != nil {
		s.form.Unidad = *in.Unidad
	}
	if in.Imagen != nil {
		s.form.Imagen = *in.Imagen
	}
	if in.Costo != nil {
		s.form.Costo = *in.Costo
	}
	return s, nil
}

// SetPrecioBase el usuario editó el precio base (o la tasa): se deriva el
// total.
func (uc *UseCase) SetPrecioBase(id, base, tasaIVA string) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tasaIVA != "" {
		s.form.TasaIVA = tasaIVA
	}
	s.form.Precios.SetBaseOrTax(base, s.form.TasaIVA)
	return s, nil
}

// SetPrecioTotal el usuario editó el precio total: se despeja la base.
func (uc *UseCase) SetPrecioTotal(id, total string) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Precios.SetTotal(total, s.form.TasaIVA)
	return s, nil
}

// SeleccionarPrincipal apunta el selector de bodega principal a otra
// bodega. Si el backend ya tiene cifras para esa bodega, la reconciliación
// las adopta en los campos de nivel superior (no se vacían).
func (uc *UseCase) SeleccionarPrincipal(id string, bodegaID int64) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bodegaID == s.form.Stock.BodegaPrincipalID {
		return s, nil
	}
	s.form.Stock = stock.SeleccionarPrincipal(s.form.Stock, s.asignaciones, bodegaID)
	return s, nil
}

// SetCantidadesPrincipal edita las cantidades de la bodega principal.
func (uc *UseCase) SetCantidadesPrincipal(id, inicial, minima, maxima string) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Stock.CantidadInicial = inicial
	s.form.Stock.CantidadMinima = minima
	s.form.Stock.CantidadMaxima = maxima
	return s, nil
}

// SetCampoExtra el usuario tecleó un valor para un campo extra; queda
// marcado como editado para que la reconciliación no lo pise.
func (uc *UseCase) SetCampoExtra(id string, campoID int64, valor string) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	def := buscarCampo(s.catalogoCampos, campoID)
	if def == nil {
		return nil, domain.ErrNotFound
	}
	if err := campos.ValidarValor(*def, valor); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	s.form.Campos.Seleccionados[campoID] = true
	s.form.Campos.Valores[campoID] = valor
	s.form.Campos.Editados[campoID] = true
	return s, nil
}

// SeleccionarCampo incluye un campo opcional en el producto.
func (uc *UseCase) SeleccionarCampo(id string, campoID int64) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	def := buscarCampo(s.catalogoCampos, campoID)
	if def == nil {
		return nil, domain.ErrNotFound
	}
	s.form.Campos.Seleccionados[campoID] = true
	if s.form.Campos.Valores[campoID] == "" && !s.form.Campos.Editados[campoID] {
		s.form.Campos.Valores[campoID] = def.ValorDefecto
	}
	return s, nil
}

// QuitarCampo excluye un campo opcional; los requeridos no se pueden
// quitar.
func (uc *UseCase) QuitarCampo(id string, campoID int64) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	def := buscarCampo(s.catalogoCampos, campoID)
	if def == nil {
		return nil, domain.ErrNotFound
	}
	if def.Requerido {
		return nil, fmt.Errorf("%w: el campo %q es requerido", domain.ErrInvalidInput, def.Nombre)
	}
	delete(s.form.Campos.Seleccionados, campoID)
	delete(s.form.Campos.Valores, campoID)
	delete(s.form.Campos.Editados, campoID)
	return s, nil
}

func buscarCampo(catalogo []entity.CampoExtra, id int64) *entity.CampoExtra {
	for i := range catalogo {
		if catalogo[i].ID == id {
			return &catalogo[i]
		}
	}
	return nil
}

// Cerrar descarta la sesión.
func (uc *UseCase) Cerrar(id string) { uc.store.Cerrar(id) }
