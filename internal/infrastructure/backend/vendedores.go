package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// vendedorWire representación en el cable de un vendedor.
type vendedorWire struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	Identificacion string `json:"identificacion"`
	Email          string `json:"email"`
	Observaciones  string `json:"observaciones"`
	Activo         bool   `json:"activo"`
}

func (w vendedorWire) aEntidad() entity.Vendedor {
	return entity.Vendedor{
		ID:             w.ID,
		Nombre:         w.Nombre,
		Identificacion: w.Identificacion,
		Email:          w.Email,
		Observaciones:  w.Observaciones,
		Activo:         w.Activo,
	}
}

// VendedorPatch actualización parcial de un vendedor.
type VendedorPatch struct {
	Nombre         *string `json:"nombre,omitempty"`
	Identificacion *string `json:"identificacion,omitempty"`
	Email          *string `json:"email,omitempty"`
	Observaciones  *string `json:"observaciones,omitempty"`
	Activo         *bool   `json:"activo,omitempty"`
}

// ListVendedores GET /vendedores.
func (c *Client) ListVendedores(ctx context.Context) ([]entity.Vendedor, error) {
	wires, err := listAll[vendedorWire](c, ctx, "/vendedores")
	if err != nil {
		return nil, err
	}
	out := make([]entity.Vendedor, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.aEntidad())
	}
	return out, nil
}

// CreateVendedor POST /vendedores.
func (c *Client) CreateVendedor(ctx context.Context, patch VendedorPatch) (*entity.Vendedor, error) {
	var w vendedorWire
	if err := c.do(ctx, http.MethodPost, "/vendedores", patch, &w); err != nil {
		return nil, err
	}
	v := w.aEntidad()
	return &v, nil
}

// UpdateVendedor PUT /vendedores/{id}. La desactivación viaja como
// Activo=false; el backend la rechaza si el vendedor tiene facturas de
// venta registradas.
func (c *Client) UpdateVendedor(ctx context.Context, id int64, patch VendedorPatch) (*entity.Vendedor, error) {
	var w vendedorWire
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/vendedores/%d", id), patch, &w); err != nil {
		return nil, err
	}
	v := w.aEntidad()
	return &v, nil
}
