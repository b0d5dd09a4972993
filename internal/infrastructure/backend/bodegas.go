package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// bodegaWire catálogo de bodegas.
type bodegaWire struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Activa    bool   `json:"activa"`
}

// asignacionWire elemento de GET /productos/{id}/bodegas.
type asignacionWire struct {
	BodegaID        int64  `json:"bodegaId"`
	BodegaNombre    string `json:"bodegaNombre"`
	CantidadInicial int64  `json:"cantidadInicial"`
	CantidadMinima  *int64 `json:"cantidadMinima"`
	CantidadMaxima  *int64 `json:"cantidadMaxima"`
	EsPrincipal     bool   `json:"esPrincipal"`
}

// cantidadesWire cuerpo de las mutaciones de asignación.
type cantidadesWire struct {
	BodegaID        int64  `json:"bodegaId,omitempty"`
	CantidadInicial int64  `json:"cantidadInicial"`
	CantidadMinima  *int64 `json:"cantidadMinima,omitempty"`
	CantidadMaxima  *int64 `json:"cantidadMaxima,omitempty"`
}

// ListBodegas GET /bodegas (catálogo completo).
func (c *Client) ListBodegas(ctx context.Context) ([]entity.Bodega, error) {
	wires, err := listAll[bodegaWire](c, ctx, "/bodegas")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Bodega, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.Bodega{ID: w.ID, Nombre: w.Nombre, Direccion: w.Direccion, Activa: w.Activa})
	}
	return out, nil
}

// GetBodegasProducto GET /productos/{id}/bodegas: asignaciones por bodega
// con su bandera de principal.
func (c *Client) GetBodegasProducto(ctx context.Context, productoID int64) ([]entity.ProductoBodega, error) {
	var wires []asignacionWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d/bodegas", productoID), nil, &wires); err != nil {
		return nil, err
	}
	out := make([]entity.ProductoBodega, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.ProductoBodega{
			ProductoID:      productoID,
			BodegaID:        w.BodegaID,
			BodegaNombre:    w.BodegaNombre,
			CantidadInicial: w.CantidadInicial,
			CantidadMinima:  w.CantidadMinima,
			CantidadMaxima:  w.CantidadMaxima,
			EsPrincipal:     w.EsPrincipal,
		})
	}
	return out, nil
}

// CreateBodegaProducto POST /productos/{id}/bodegas.
func (c *Client) CreateBodegaProducto(ctx context.Context, productoID int64, a entity.ProductoBodega) error {
	body := cantidadesWire{
		BodegaID:        a.BodegaID,
		CantidadInicial: a.CantidadInicial,
		CantidadMinima:  a.CantidadMinima,
		CantidadMaxima:  a.CantidadMaxima,
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/productos/%d/bodegas", productoID), body, nil)
}

// UpdateBodegaProducto PUT /productos/{id}/bodegas/{bodegaId}.
func (c *Client) UpdateBodegaProducto(ctx context.Context, productoID int64, a entity.ProductoBodega) error {
	body := cantidadesWire{
		CantidadInicial: a.CantidadInicial,
		CantidadMinima:  a.CantidadMinima,
		CantidadMaxima:  a.CantidadMaxima,
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d/bodegas/%d", productoID, a.BodegaID), body, nil)
}

// DeleteBodegaProducto DELETE /productos/{id}/bodegas/{bodegaId}.
func (c *Client) DeleteBodegaProducto(ctx context.Context, productoID, bodegaID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d/bodegas/%d", productoID, bodegaID), nil, nil)
}
