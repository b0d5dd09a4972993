package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// AgregarBodega valida y crea una asignación adicional contra el backend,
// y refresca la lista autoritativa (sin merge optimista). Cualquier
// violación de reglas aborta localmente sin emitir la llamada.
func (uc *UseCase) AgregarBodega(ctx context.Context, id string, in stock.AdicionalInput) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := stock.ValidarAdicional(s.form.Stock, s.backendPrincipalID, in, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if s.ProductoID == 0 {
		// Alta: todavía no hay producto en el backend; la asignación vive
		// solo en el formulario y se enviará tras crear el producto.
		s.form.Stock.Adicionales = append(s.form.Stock.Adicionales, a)
		return s, nil
	}

	if err := uc.mutarBodega(ctx, s, func() error {
		return uc.api.CreateBodegaProducto(ctx, s.ProductoID, a)
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// ActualizarBodega valida y actualiza las cantidades de una asignación
// adicional existente.
func (uc *UseCase) ActualizarBodega(ctx context.Context, id string, in stock.AdicionalInput) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := stock.ValidarAdicional(s.form.Stock, s.backendPrincipalID, in, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if s.ProductoID == 0 {
		for i := range s.form.Stock.Adicionales {
			if s.form.Stock.Adicionales[i].BodegaID == a.BodegaID {
				s.form.Stock.Adicionales[i] = a
				return s, nil
			}
		}
		return nil, domain.ErrNotFound
	}

	if err := uc.mutarBodega(ctx, s, func() error {
		return uc.api.UpdateBodegaProducto(ctx, s.ProductoID, a)
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// EliminarBodega quita una asignación adicional. Es una acción
// destructiva: exige confirmación explícita antes de emitir la llamada, y
// la principal nunca se puede eliminar.
func (uc *UseCase) EliminarBodega(ctx context.Context, id string, bodegaID int64, confirmado bool) (*Sesion, error) {
	s, err := uc.store.obtener(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := stock.ValidarEliminacion(s.form.Stock, s.backendPrincipalID, bodegaID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !confirmado {
		return nil, fmt.Errorf("%w: la eliminación requiere confirmación", domain.ErrInvalidInput)
	}

	if s.ProductoID == 0 {
		filtradas := s.form.Stock.Adicionales[:0]
		for _, a := range s.form.Stock.Adicionales {
			if a.BodegaID != bodegaID {
				filtradas = append(filtradas, a)
			}
		}
		s.form.Stock.Adicionales = filtradas
		return s, nil
	}

	if err := uc.mutarBodega(ctx, s, func() error {
		return uc.api.DeleteBodegaProducto(ctx, s.ProductoID, bodegaID)
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// mutarBodega serializa la mutación por el indicador de guardado en vuelo
// de la sesión y, en caso de éxito, refetchea la lista autoritativa y
// reconcilia. Llamar con s.mu tomado.
func (uc *UseCase) mutarBodega(ctx context.Context, s *Sesion, op func() error) error {
	if s.guardando {
		return domain.ErrGuardadoEnCurso
	}
	s.guardando = true
	defer func() { s.guardando = false }()

	if err := op(); err != nil {
		return err
	}
	uc.cache.Invalidate("bodegas-producto")

	asignaciones, err := uc.api.GetBodegasProducto(ctx, s.ProductoID)
	if err != nil {
		// La mutación ya fue aceptada; el refetch fallido solo deja la
		// vista desactualizada hasta el próximo refresco.
		uc.log.Warn().Err(err).Int64("producto", s.ProductoID).Msg("refetch de bodegas falló")
		return nil
	}
	s.asignaciones = asignaciones
	for _, a := range asignaciones {
		if a.EsPrincipal {
			s.backendPrincipalID = a.BodegaID
			break
		}
	}
	s.form.Stock, _ = stock.Reconciliar(s.form.Stock, asignaciones, s.form.Stock.BodegaPrincipalID)
	return nil
}

// EliminarProducto elimina definitivamente un producto. Destructivo:
// exige confirmación explícita antes de la llamada de red.
func (uc *UseCase) EliminarProducto(ctx context.Context, productoID int64, confirmado bool) error {
	if !confirmado {
		return fmt.Errorf("%w: la eliminación requiere confirmación", domain.ErrInvalidInput)
	}
	if err := uc.api.DeleteProducto(ctx, productoID); err != nil {
		return err
	}
	uc.cache.Invalidate("productos")
	return nil
}
