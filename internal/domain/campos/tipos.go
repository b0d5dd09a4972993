package campos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ValidarValor comprueba que un valor no vacío sea representable en el
// tipo de dato del campo. El valor vacío se valida aparte (ValidarEnvio).
func ValidarValor(def entity.CampoExtra, valor string) error {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return nil
	}
	switch def.Tipo {
	case entity.TipoTexto:
		return nil
	case entity.TipoEntero:
		if _, err := strconv.ParseInt(valor, 10, 64); err != nil {
			return fmt.Errorf("el campo %q requiere un número entero", def.Nombre)
		}
	case entity.TipoDecimal:
		if _, err := decimal.NewFromString(valor); err != nil {
			return fmt.Errorf("el campo %q requiere un número decimal", def.Nombre)
		}
	case entity.TipoFecha:
		if _, err := time.Parse("2006-01-02", valor); err != nil {
			return fmt.Errorf("el campo %q requiere una fecha YYYY-MM-DD", def.Nombre)
		}
	case entity.TipoBooleano:
		if valor != "true" && valor != "false" {
			return fmt.Errorf("el campo %q requiere true o false", def.Nombre)
		}
	}
	return nil
}
