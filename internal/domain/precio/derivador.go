// Package precio mantiene la relación algebraica entre el precio base,
// la tasa de IVA y el precio total de un producto:
//
//	total = base + base * tasa/100
//
// Los dos campos (base y total) son editables de forma independiente; el
// derivador recalcula el otro sin disparar ciclos de realimentación.
package precio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// estado de la máquina que reemplaza el par bandera booleana + reset
// diferido del formulario original. Mientras una derivación está en curso
// la entrada opuesta se ignora, rompiendo la recursión mutua entre los
// dos manejadores.
type estado int

const (
	inactivo estado = iota
	desdeBase
	desdeTotal
)

var cien = decimal.NewFromInt(100)

// Derivador mantiene los espejos de los campos base y total tal como se
// muestran en el formulario ("" = campo vacío).
type Derivador struct {
	est   estado
	base  string
	total string

	// Espejo opcional hacia el marco de validación. Se invoca con la
	// derivación todavía en curso: si el espejo reacciona llamando de
	// vuelta a SetBaseOrTax/SetTotal, la guarda descarta la reentrada.
	Espejo func(base, total string)
}

// NewDerivador construye un derivador en reposo.
func NewDerivador() *Derivador {
	return &Derivador{est: inactivo}
}

// Base devuelve el espejo del campo precio base.
func (d *Derivador) Base() string { return d.base }

// Total devuelve el espejo del campo precio total.
func (d *Derivador) Total() string { return d.total }

// SetBaseOrTax recalcula el total a partir del precio base y la tasa de
// IVA (porcentaje). Entrada vacía o no numérica se trata como 0; un
// resultado negativo se vacía en lugar de propagarse como precio negativo.
func (d *Derivador) SetBaseOrTax(base, tasaIVA string) {
	if d.est != inactivo {
		return
	}
	d.est = desdeBase
	defer func() { d.est = inactivo }()

	b := parseMonto(base)
	t := parseMonto(tasaIVA)
	d.base = base
	total := b.Add(b.Mul(t).Div(cien)).Round(2)
	d.total = formato(total)
	if d.Espejo != nil {
		d.Espejo(d.base, d.total)
	}
}

// SetTotal resuelve el precio base a partir del total:
// base = total / (1 + tasa/100) cuando la tasa es positiva, si no
// base = total. Redondea a 2 decimales.
func (d *Derivador) SetTotal(total, tasaIVA string) {
	if d.est != inactivo {
		return
	}
	d.est = desdeTotal
	defer func() { d.est = inactivo }()

	tot := parseMonto(total)
	t := parseMonto(tasaIVA)
	d.total = total
	base := tot
	if t.GreaterThan(decimal.Zero) {
		base = tot.Div(decimal.NewFromInt(1).Add(t.Div(cien)))
	}
	d.base = formato(base.Round(2))
	if d.Espejo != nil {
		d.Espejo(d.base, d.total)
	}
}

// parseMonto interpreta el contenido de un campo de texto como monto:
// vacío o no numérico equivale a 0.
func parseMonto(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// formato presenta el monto en el campo; los negativos se vacían.
func formato(v decimal.Decimal) string {
	if v.IsNegative() {
		return ""
	}
	return v.StringFixed(2)
}
