package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/inventario-admin/internal/domain/campos"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// campoExtraWire entrada del catálogo global de campos.
type campoExtraWire struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Tipo         string `json:"tipo"`
	ValorDefecto string `json:"valorDefecto"`
	Requerido    bool   `json:"requerido"`
	Activo       bool   `json:"activo"`
}

// valorCampoWire elemento de GET /productos/{id}/campos-extra. Solo
// valores persistidos: una entrada ausente significa "nunca asignado".
type valorCampoWire struct {
	CampoExtraID int64  `json:"campoExtraId"`
	Valor        string `json:"valor"`
}

// ListCamposExtra GET /campos-extra (catálogo global).
func (c *Client) ListCamposExtra(ctx context.Context) ([]entity.CampoExtra, error) {
	wires, err := listAll[campoExtraWire](c, ctx, "/campos-extra")
	if err != nil {
		return nil, err
	}
	out := make([]entity.CampoExtra, 0, len(wires))
	for _, w := range wires {
		out = append(out, entity.CampoExtra{
			ID:           w.ID,
			Nombre:       w.Nombre,
			Tipo:         entity.TipoCampo(w.Tipo),
			ValorDefecto: w.ValorDefecto,
			Requerido:    w.Requerido,
			Activo:       w.Activo,
		})
	}
	return out, nil
}

// GetCamposProducto GET /productos/{id}/campos-extra.
func (c *Client) GetCamposProducto(ctx context.Context, productoID int64) ([]campos.ValorPersistido, error) {
	var wires []valorCampoWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d/campos-extra", productoID), nil, &wires); err != nil {
		return nil, err
	}
	out := make([]campos.ValorPersistido, 0, len(wires))
	for _, w := range wires {
		out = append(out, campos.ValorPersistido{CampoExtraID: w.CampoExtraID, Valor: w.Valor})
	}
	return out, nil
}

// PutCampoProducto PUT /productos/{id}/campos-extra/{campoExtraId} con
// cuerpo {valor}.
func (c *Client) PutCampoProducto(ctx context.Context, productoID, campoID int64, valor string) error {
	body := map[string]string{"valor": valor}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d/campos-extra/%d", productoID, campoID), body, nil)
}

// DeleteCampoProducto DELETE /productos/{id}/campos-extra/{campoExtraId}.
func (c *Client) DeleteCampoProducto(ctx context.Context, productoID, campoID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d/campos-extra/%d", productoID, campoID), nil, nil)
}
