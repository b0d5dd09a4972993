package entity

import "github.com/shopspring/decimal"

// Producto representa un producto o SKU del catálogo (multi-bodega).
// PrecioTotal es derivado (PrecioBase + IVA); StockActual es el agregado
// entre bodegas y las cifras por bodega viven en ProductoBodega.
type Producto struct {
	ID                int64
	SKU               string
	Nombre            string
	Descripcion       string
	CategoriaID       int64
	UnidadMedida      string
	ImagenURL         string
	PrecioBase        decimal.Decimal
	TasaIVA           decimal.Decimal // porcentaje: 0, 5, 19
	PrecioTotal       decimal.Decimal
	Costo             decimal.Decimal
	StockActual       decimal.Decimal
	BodegaPrincipalID int64
	Activo            bool
}

// Categoria agrupa productos del catálogo.
type Categoria struct {
	ID     int64
	Nombre string
	Activa bool
}
