package entity

// Vendedor persona asociada a facturas de venta.
// Identificacion admite solo dígitos y guiones. El backend impide
// desactivar un vendedor con facturas de venta registradas.
type Vendedor struct {
	ID             int64
	Nombre         string
	Identificacion string
	Email          string
	Observaciones  string
	Activo         bool
}
