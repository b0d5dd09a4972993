package entity

// Bodega representa una bodega o sucursal donde se almacena inventario.
type Bodega struct {
	ID        int64
	Nombre    string
	Direccion string
	Activa    bool
}

// ProductoBodega relaciona un producto con una bodega y sus cantidades.
// Invariante: a lo sumo una asignación por producto tiene EsPrincipal = true;
// las cantidades de la principal se exponen en los campos de nivel superior
// del formulario y el resto se lista como bodegas adicionales.
type ProductoBodega struct {
	ProductoID      int64
	BodegaID        int64
	BodegaNombre    string
	CantidadInicial int64
	CantidadMinima  *int64 // nil = sin mínimo configurado
	CantidadMaxima  *int64 // nil = sin máximo configurado
	EsPrincipal     bool
}
