// Package vendedor casos de uso de vendedores: alta, edición, listado y
// desactivación. El backend impide desactivar un vendedor con facturas de
// venta registradas; ese rechazo se clasifica como advertencia (no error)
// y la bandera de activo no cambia del lado del cliente.
package vendedor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// identificacionRe solo dígitos y guiones.
var identificacionRe = regexp.MustCompile(`^[0-9-]+$`)

// UseCase casos de uso de vendedores.
type UseCase struct {
	api   *backend.Client
	cache *cache.QueryCache
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api *backend.Client, qc *cache.QueryCache, log *logger.Logger) *UseCase {
	return &UseCase{api: api, cache: qc, log: log}
}

// Input datos de alta/edición de un vendedor.
type Input struct {
	Nombre         string
	Identificacion string
	Email          string
	Observaciones  string
}

func (in Input) validar() error {
	if strings.TrimSpace(in.Nombre) == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if !identificacionRe.MatchString(in.Identificacion) {
		return fmt.Errorf("%w: la identificación admite solo dígitos y guiones", domain.ErrInvalidInput)
	}
	return nil
}

// Listar trae los vendedores, con caché (clave vendedores:todos).
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Vendedor, error) {
	clave := cache.Clave("vendedores", "todos")
	if v, ok := uc.cache.Get(clave); ok {
		return v.([]entity.Vendedor), nil
	}
	items, err := uc.api.ListVendedores(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(clave, items)
	return items, nil
}

// Crear da de alta un vendedor tras la validación local.
func (uc *UseCase) Crear(ctx context.Context, in Input) (*entity.Vendedor, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	patch := backend.VendedorPatch{
		Nombre:         &in.Nombre,
		Identificacion: &in.Identificacion,
		Email:          &in.Email,
		Observaciones:  &in.Observaciones,
	}
	v, err := uc.api.CreateVendedor(ctx, patch)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate("vendedores")
	return v, nil
}

// Actualizar edita un vendedor existente.
func (uc *UseCase) Actualizar(ctx context.Context, id int64, in Input) (*entity.Vendedor, error) {
	if err := in.validar(); err != nil {
		return nil, err
	}
	patch := backend.VendedorPatch{
		Nombre:         &in.Nombre,
		Identificacion: &in.Identificacion,
		Email:          &in.Email,
		Observaciones:  &in.Observaciones,
	}
	v, err := uc.api.UpdateVendedor(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate("vendedores")
	return v, nil
}

// CambiarEstado activa o desactiva un vendedor. La desactivación es una
// acción con dependientes: exige confirmación explícita, y si el backend
// la rechaza por facturas asociadas devuelve un *Rechazo de nivel
// advertencia sin tocar la bandera local.
func (uc *UseCase) CambiarEstado(ctx context.Context, id int64, activo, confirmado bool) (*entity.Vendedor, error) {
	if !activo && !confirmado {
		return nil, fmt.Errorf("%w: la desactivación requiere confirmación", domain.ErrInvalidInput)
	}
	patch := backend.VendedorPatch{Activo: &activo}
	v, err := uc.api.UpdateVendedor(ctx, id, patch)
	if err != nil {
		if rechazo := Clasificar(err); rechazo != nil {
			uc.log.Warn().Int64("vendedor", id).Str("motivo", rechazo.Mensaje).
				Msg("desactivación rechazada por facturas asociadas")
			return nil, rechazo
		}
		return nil, err
	}
	uc.cache.Invalidate("vendedores")
	return v, nil
}
