package session

import (
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/stock"
)

// CampoVista un campo extra tal como lo muestra el formulario: la
// definición del catálogo más el estado resuelto en la sesión.
type CampoVista struct {
	ID           int64
	Nombre       string
	Tipo         entity.TipoCampo
	Requerido    bool
	ValorDefecto string
	Seleccionado bool
	Valor        string
	Editado      bool
}

// Vista proyección inmutable de la sesión para la capa de interfaces.
type Vista struct {
	ID         string
	ProductoID int64
	Guardando  bool
	HayCambios bool

	Nombre      string
	SKU         string
	Descripcion string
	CategoriaID int64
	Unidad      string
	Imagen      string
	TasaIVA     string
	Costo       string
	PrecioBase  string
	PrecioTotal string

	Stock  stock.Estado
	Campos []CampoVista
}

// Vista toma el candado y copia el estado visible de la sesión.
func (s *Sesion) Vista() Vista {
	s.mu.Lock()
	defer s.mu.Unlock()

	adicionales := make([]entity.ProductoBodega, len(s.form.Stock.Adicionales))
	copy(adicionales, s.form.Stock.Adicionales)
	st := s.form.Stock
	st.Adicionales = adicionales

	campos := make([]CampoVista, 0, len(s.catalogoCampos))
	for _, def := range s.catalogoCampos {
		campos = append(campos, CampoVista{
			ID:           def.ID,
			Nombre:       def.Nombre,
			Tipo:         def.Tipo,
			Requerido:    def.Requerido,
			ValorDefecto: def.ValorDefecto,
			Seleccionado: s.form.Campos.Seleccionados[def.ID],
			Valor:        s.form.Campos.Valores[def.ID],
			Editado:      s.form.Campos.Editados[def.ID],
		})
	}

	return Vista{
		ID:          s.ID,
		ProductoID:  s.ProductoID,
		Guardando:   s.guardando,
		HayCambios:  s.HayCambios(),
		Nombre:      s.form.Nombre,
		SKU:         s.form.SKU,
		Descripcion: s.form.Descripcion,
		CategoriaID: s.form.CategoriaID,
		Unidad:      s.form.Unidad,
		Imagen:      s.form.Imagen,
		TasaIVA:     s.form.TasaIVA,
		Costo:       s.form.Costo,
		PrecioBase:  s.form.Precios.Base(),
		PrecioTotal: s.form.Precios.Total(),
		Stock:       st,
		Campos:      campos,
	}
}
