package entity

// TipoCampo tipo de dato de un campo extra.
type TipoCampo string

const (
	TipoTexto    TipoCampo = "texto"
	TipoEntero   TipoCampo = "entero"
	TipoDecimal  TipoCampo = "decimal"
	TipoFecha    TipoCampo = "fecha" // formato YYYY-MM-DD
	TipoBooleano TipoCampo = "booleano"
)

// CampoExtra entrada del catálogo global de campos personalizados.
// Los campos requeridos y activos deben estar presentes en todos los
// productos; los opcionales se seleccionan producto a producto.
type CampoExtra struct {
	ID           int64
	Nombre       string
	Tipo         TipoCampo
	ValorDefecto string
	Requerido    bool
	Activo       bool
}

// ProductoCampoExtra valor persistido de un campo extra para un producto.
// El valor se codifica siempre como string según el tipo del campo.
type ProductoCampoExtra struct {
	ProductoID   int64
	CampoExtraID int64
	Valor        string
}
