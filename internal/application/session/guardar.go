package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/campos"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
)

// Guardar ejecuta el guardado de la sesión: (a) validación síncrona,
// (b) mutación principal del producto, (c) mutaciones dependientes
// (asignación de bodega principal y sincronización de campos extra).
//
// Las dependientes se emiten solo después de resolver (b) y continúan en
// segundo plano aunque el llamador ya haya navegado: sus fallos se
// registran y no revierten (b). Es una ventana de inconsistencia asumida
// y documentada, no una garantía transaccional.
func (uc *UseCase) Guardar(ctx context.Context, id string) (int64, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.guardando {
		return 0, domain.ErrGuardadoEnCurso
	}
	s.guardando = true
	defer func() { s.guardando = false }()

	if s.ProductoID != 0 && !s.HayCambios() {
		return 0, domain.ErrSinCambios
	}

	// (a) Validación local: ningún fallo de aquí llega a la red.
	principal, err := uc.validar(s)
	if err != nil {
		return 0, err
	}

	// (b) Mutación principal.
	patch := uc.armarPatch(s)
	var productoID int64
	if s.ProductoID == 0 {
		creado, err := uc.api.CreateProducto(ctx, patch)
		if err != nil {
			return 0, err
		}
		productoID = creado.ID
	} else {
		if _, err := uc.api.UpdateProducto(ctx, s.ProductoID, patch); err != nil {
			return 0, err
		}
		productoID = s.ProductoID
	}
	uc.cache.Invalidate("productos")

	// (c) Dependientes en segundo plano, desligadas de la cancelación del
	// request (el llamador navega de inmediato tras (b)).
	plan := campos.PlanGuardado(s.catalogoCampos, s.persistidos, s.form.Campos)
	var adicionales []entity.ProductoBodega
	if s.ProductoID == 0 {
		// En alta las adicionales se acumularon localmente; se envían
		// recién ahora que el producto existe.
		adicionales = append(adicionales, s.form.Stock.Adicionales...)
	}
	existentes := make(map[int64]bool, len(s.asignaciones))
	for _, a := range s.asignaciones {
		existentes[a.BodegaID] = true
	}
	uc.sincronizarDependientes(context.WithoutCancel(ctx), productoID, principal, existentes, adicionales, plan)

	return productoID, nil
}

// validar aplica todas las reglas locales y devuelve la asignación
// principal normalizada (nil si no hay bodega principal seleccionada).
func (uc *UseCase) validar(s *Sesion) (*entity.ProductoBodega, error) {
	if strings.TrimSpace(s.form.Nombre) == "" || strings.TrimSpace(s.form.SKU) == "" {
		return nil, fmt.Errorf("%w: nombre y sku son requeridos", domain.ErrInvalidInput)
	}
	if err := campos.ValidarEnvio(s.catalogoCampos, s.form.Campos); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	for _, def := range s.catalogoCampos {
		if !s.form.Campos.Seleccionados[def.ID] {
			continue
		}
		if err := campos.ValidarValor(def, s.form.Campos.Valores[def.ID]); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	if s.form.Stock.BodegaPrincipalID == 0 {
		return nil, nil
	}
	inicial, err := stock.ParseCantidad(s.form.Stock.CantidadInicial)
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad inicial: %v", domain.ErrInvalidInput, err)
	}
	minima, err := stock.ParseCantidadOpcional(s.form.Stock.CantidadMinima)
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad mínima: %v", domain.ErrInvalidInput, err)
	}
	maxima, err := stock.ParseCantidadOpcional(s.form.Stock.CantidadMaxima)
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad máxima: %v", domain.ErrInvalidInput, err)
	}
	if minima != nil && maxima != nil && *minima > *maxima {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, stock.ErrMinimaMayorQueMaxima)
	}
	return &entity.ProductoBodega{
		BodegaID:        s.form.Stock.BodegaPrincipalID,
		CantidadInicial: inicial,
		CantidadMinima:  minima,
		CantidadMaxima:  maxima,
		EsPrincipal:     true,
	}, nil
}

// armarPatch construye el DTO de actualización parcial: solo los
// atributos que difieren de la instantánea original (en alta, todos).
func (uc *UseCase) armarPatch(s *Sesion) backend.ProductoPatch {
	var p backend.ProductoPatch
	o := s.original

	if o == nil || o.Nombre != s.form.Nombre {
		v := s.form.Nombre
		p.Nombre = &v
	}
	if o == nil || o.SKU != s.form.SKU {
		v := s.form.SKU
		p.SKU = &v
	}
	if o == nil || o.Descripcion != s.form.Descripcion {
		v := s.form.Descripcion
		p.Descripcion = &v
	}
	if o == nil || o.CategoriaID != s.form.CategoriaID {
		v := s.form.CategoriaID
		p.CategoriaID = &v
	}
	if o == nil || o.Unidad != s.form.Unidad {
		v := s.form.Unidad
		p.UnidadMedida = &v
	}
	if o == nil || o.Imagen != s.form.Imagen {
		v := s.form.Imagen
		p.ImagenURL = &v
	}
	if o == nil || o.PrecioBase != s.form.Precios.Base() {
		v := decimalDe(s.form.Precios.Base())
		p.PrecioBase = &v
	}
	if o == nil || o.TasaIVA != s.form.TasaIVA {
		v := decimalDe(s.form.TasaIVA)
		p.TasaIVA = &v
	}
	if o == nil || o.PrecioTotal != s.form.Precios.Total() {
		v := decimalDe(s.form.Precios.Total())
		p.PrecioTotal = &v
	}
	if o == nil || o.Costo != s.form.Costo {
		v := decimalDe(s.form.Costo)
		p.Costo = &v
	}
	if o == nil || o.BodegaPrincipalID != s.form.Stock.BodegaPrincipalID {
		v := s.form.Stock.BodegaPrincipalID
		p.BodegaPrincipalID = &v
	}
	return p
}

func decimalDe(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// sincronizarDependientes ejecuta el upsert de la bodega principal y el
// plan de campos extra en paralelo. Los fallos se registran y se tragan:
// el usuario ya fue navegado, así que son de mejor esfuerzo y solo se
// reflejan vía invalidación de caché.
func (uc *UseCase) sincronizarDependientes(
	ctx context.Context,
	productoID int64,
	principal *entity.ProductoBodega,
	existentes map[int64]bool,
	adicionales []entity.ProductoBodega,
	plan campos.Plan,
) {
	go func() {
		var wg sync.WaitGroup

		for _, a := range adicionales {
			wg.Add(1)
			go func(a entity.ProductoBodega) {
				defer wg.Done()
				if err := uc.api.CreateBodegaProducto(ctx, productoID, a); err != nil {
					uc.log.Warn().Err(err).Int64("producto", productoID).
						Int64("bodega", a.BodegaID).
						Msg("alta de bodega adicional falló")
				}
			}(a)
		}

		if principal != nil {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var err error
				if existentes[principal.BodegaID] {
					err = uc.api.UpdateBodegaProducto(ctx, productoID, *principal)
				} else {
					err = uc.api.CreateBodegaProducto(ctx, productoID, *principal)
				}
				if err != nil {
					uc.log.Warn().Err(err).Int64("producto", productoID).
						Int64("bodega", principal.BodegaID).
						Msg("sincronización de bodega principal falló")
				}
			}()
		}

		for _, campoID := range plan.Eliminar {
			wg.Add(1)
			go func(campoID int64) {
				defer wg.Done()
				if err := uc.api.DeleteCampoProducto(ctx, productoID, campoID); err != nil {
					uc.log.Warn().Err(err).Int64("producto", productoID).
						Int64("campo", campoID).Msg("borrado de campo extra falló")
				}
			}(campoID)
		}
		for _, up := range plan.Upserts {
			wg.Add(1)
			go func(up campos.Upsert) {
				defer wg.Done()
				if err := uc.api.PutCampoProducto(ctx, productoID, up.CampoExtraID, up.Valor); err != nil {
					uc.log.Warn().Err(err).Int64("producto", productoID).
						Int64("campo", up.CampoExtraID).Msg("upsert de campo extra falló")
				}
			}(up)
		}

		wg.Wait()
		// Pase lo que pase con las individuales, la lista cacheada se
		// invalida para que la próxima lectura refleje el backend.
		uc.cache.Invalidate("productos")
		uc.cache.Invalidate("campos-producto")
		uc.cache.Invalidate("bodegas-producto")
	}()
}
