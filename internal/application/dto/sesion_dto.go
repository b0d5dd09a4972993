package dto

import (
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// SesionResponse estado completo de una sesión de edición/alta.
type SesionResponse struct {
	ID         string `json:"id"`
	ProductoID int64  `json:"productoId"`
	Guardando  bool   `json:"guardando"`
	HayCambios bool   `json:"hayCambios"`

	Nombre      string `json:"nombre"`
	SKU         string `json:"sku"`
	Descripcion string `json:"descripcion"`
	CategoriaID int64  `json:"categoriaId"`
	Unidad      string `json:"unidadMedida"`
	Imagen      string `json:"imagenUrl"`
	TasaIVA     string `json:"tasaIva"`
	Costo       string `json:"costo"`
	PrecioBase  string `json:"precioBase"`
	PrecioTotal string `json:"precioTotal"`

	Stock  StockResponse        `json:"stock"`
	Campos []CampoExtraResponse `json:"camposExtra"`
}

// StockResponse selector de principal, sus cantidades y las adicionales.
type StockResponse struct {
	BodegaPrincipalID int64              `json:"bodegaPrincipalId"`
	CantidadInicial   string             `json:"cantidadInicial"`
	CantidadMinima    string             `json:"cantidadMinima"`
	CantidadMaxima    string             `json:"cantidadMaxima"`
	Adicionales       []AsignacionBodega `json:"bodegasAdicionales"`
}

// AsignacionBodega fila de la tabla de bodegas adicionales.
type AsignacionBodega struct {
	BodegaID        int64  `json:"bodegaId"`
	BodegaNombre    string `json:"bodegaNombre"`
	CantidadInicial int64  `json:"cantidadInicial"`
	CantidadMinima  *int64 `json:"cantidadMinima"`
	CantidadMaxima  *int64 `json:"cantidadMaxima"`
}

// CampoExtraResponse definición del catálogo más el estado en la sesión.
type CampoExtraResponse struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Tipo         string `json:"tipo"`
	Requerido    bool   `json:"requerido"`
	ValorDefecto string `json:"valorDefecto"`
	Seleccionado bool   `json:"seleccionado"`
	Valor        string `json:"valor"`
	Editado      bool   `json:"editado"`
}

// ASesionResponse arma la respuesta desde la vista de la sesión.
func ASesionResponse(v session.Vista) SesionResponse {
	adicionales := make([]AsignacionBodega, 0, len(v.Stock.Adicionales))
	for _, a := range v.Stock.Adicionales {
		adicionales = append(adicionales, aAsignacion(a))
	}
	campos := make([]CampoExtraResponse, 0, len(v.Campos))
	for _, c := range v.Campos {
		campos = append(campos, CampoExtraResponse{
			ID:           c.ID,
			Nombre:       c.Nombre,
			Tipo:         string(c.Tipo),
			Requerido:    c.Requerido,
			ValorDefecto: c.ValorDefecto,
			Seleccionado: c.Seleccionado,
			Valor:        c.Valor,
			Editado:      c.Editado,
		})
	}
	return SesionResponse{
		ID:          v.ID,
		ProductoID:  v.ProductoID,
		Guardando:   v.Guardando,
		HayCambios:  v.HayCambios,
		Nombre:      v.Nombre,
		SKU:         v.SKU,
		Descripcion: v.Descripcion,
		CategoriaID: v.CategoriaID,
		Unidad:      v.Unidad,
		Imagen:      v.Imagen,
		TasaIVA:     v.TasaIVA,
		Costo:       v.Costo,
		PrecioBase:  v.PrecioBase,
		PrecioTotal: v.PrecioTotal,
		Stock: StockResponse{
			BodegaPrincipalID: v.Stock.BodegaPrincipalID,
			CantidadInicial:   v.Stock.CantidadInicial,
			CantidadMinima:    v.Stock.CantidadMinima,
			CantidadMaxima:    v.Stock.CantidadMaxima,
			Adicionales:       adicionales,
		},
		Campos: campos,
	}
}

func aAsignacion(a entity.ProductoBodega) AsignacionBodega {
	return AsignacionBodega{
		BodegaID:        a.BodegaID,
		BodegaNombre:    a.BodegaNombre,
		CantidadInicial: a.CantidadInicial,
		CantidadMinima:  a.CantidadMinima,
		CantidadMaxima:  a.CantidadMaxima,
	}
}

// DatosRequest edición parcial de los campos descriptivos del producto.
type DatosRequest struct {
	Nombre      *string `json:"nombre"`
	SKU         *string `json:"sku"`
	Descripcion *string `json:"descripcion"`
	CategoriaID *int64  `json:"categoriaId"`
	Unidad      *string `json:"unidadMedida"`
	Imagen      *string `json:"imagenUrl"`
	Costo       *string `json:"costo"`
}

// AInput convierte el request al input del caso de uso.
func (r DatosRequest) AInput() session.DatosInput {
	return session.DatosInput{
		Nombre:      r.Nombre,
		SKU:         r.SKU,
		Descripcion: r.Descripcion,
		CategoriaID: r.CategoriaID,
		Unidad:      r.Unidad,
		Imagen:      r.Imagen,
		Costo:       r.Costo,
	}
}

// PrecioRequest edición de precio base, total o tasa de IVA.
type PrecioRequest struct {
	Campo   string `json:"campo" validate:"required,oneof=base total"`
	Valor   string `json:"valor"`
	TasaIVA string `json:"tasaIva"`
}

// PrincipalRequest cambio del selector de bodega principal.
type PrincipalRequest struct {
	BodegaID int64 `json:"bodegaId" validate:"required,gt=0"`
}

// CantidadesRequest edición de las cantidades de la bodega principal.
type CantidadesRequest struct {
	CantidadInicial string `json:"cantidadInicial"`
	CantidadMinima  string `json:"cantidadMinima"`
	CantidadMaxima  string `json:"cantidadMaxima"`
}

// BodegaAdicionalRequest alta o edición de una bodega adicional.
type BodegaAdicionalRequest struct {
	BodegaID        int64  `json:"bodegaId" validate:"required,gt=0"`
	CantidadInicial string `json:"cantidadInicial" validate:"required"`
	CantidadMinima  string `json:"cantidadMinima"`
	CantidadMaxima  string `json:"cantidadMaxima"`
}

// ConfirmacionRequest confirmación explícita de una acción destructiva.
type ConfirmacionRequest struct {
	Confirmado bool `json:"confirmado"`
}

// CampoValorRequest valor tecleado para un campo extra.
type CampoValorRequest struct {
	Valor string `json:"valor"`
}

// GuardarResponse resultado del guardado de la sesión.
type GuardarResponse struct {
	ProductoID int64 `json:"productoId"`
}
