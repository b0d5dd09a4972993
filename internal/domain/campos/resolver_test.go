package campos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain/campos"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

func catalogo() []entity.CampoExtra {
	return []entity.CampoExtra{
		{ID: 1, Nombre: "Color", Tipo: entity.TipoTexto, ValorDefecto: "Blanco", Requerido: true, Activo: true},
		{ID: 2, Nombre: "Garantía", Tipo: entity.TipoEntero, ValorDefecto: "12", Activo: true},
		{ID: 3, Nombre: "Vencimiento", Tipo: entity.TipoFecha, Activo: true},
		{ID: 4, Nombre: "Descontinuado", Tipo: entity.TipoTexto, Activo: false},
	}
}

func TestResolver_RequeridoSiempreSeleccionado(t *testing.T) {
	est := campos.Resolver(catalogo(), nil, campos.NewEstado())

	assert.True(t, est.Seleccionados[1], "un campo requerido y activo siempre está en el conjunto")
	assert.Equal(t, "Blanco", est.Valores[1], "sin valor persistido aplica el defecto del catálogo")
	assert.False(t, est.Seleccionados[2], "un opcional sin persistir queda fuera")
	assert.False(t, est.Seleccionados[4], "un campo inactivo nunca entra")
}

func TestResolver_PersistidoGanaAlDefecto(t *testing.T) {
	persistidos := []campos.ValorPersistido{{CampoExtraID: 1, Valor: "Gris"}}

	est := campos.Resolver(catalogo(), persistidos, campos.NewEstado())

	assert.Equal(t, "Gris", est.Valores[1], "el valor del backend gana sobre el defecto")
}

func TestResolver_PersistidoVacioTambienGana(t *testing.T) {
	persistidos := []campos.ValorPersistido{{CampoExtraID: 1, Valor: ""}}

	est := campos.Resolver(catalogo(), persistidos, campos.NewEstado())

	assert.Equal(t, "", est.Valores[1], "incluso una cadena vacía persistida gana sobre el defecto")
}

func TestResolver_EdicionDelUsuarioNoSePisa(t *testing.T) {
	est := campos.NewEstado()
	est.Seleccionados[1] = true
	est.Valores[1] = "Rojo"
	est.Editados[1] = true

	persistidos := []campos.ValorPersistido{{CampoExtraID: 1, Valor: "Gris"}}
	sig := campos.Resolver(catalogo(), persistidos, est)

	assert.Equal(t, "Rojo", sig.Valores[1], "lo tecleado por el usuario sobrevive a la reconciliación")
}

func TestResolver_Idempotente(t *testing.T) {
	persistidos := []campos.ValorPersistido{{CampoExtraID: 2, Valor: "24"}}

	una := campos.Resolver(catalogo(), persistidos, campos.NewEstado())
	dos := campos.Resolver(catalogo(), persistidos, una)

	assert.Equal(t, una, dos)
}

func TestValidarEnvio_EnumeraIncompletosOrdenados(t *testing.T) {
	est := campos.NewEstado()
	est.Seleccionados[3] = true // Vencimiento sin valor
	// Color (requerido) tampoco tiene valor

	err := campos.ValidarEnvio(catalogo(), est)

	require.Error(t, err)
	assert.EqualError(t, err, "campos incompletos: Color, Vencimiento")
}

func TestValidarEnvio_CompletoPasa(t *testing.T) {
	est := campos.Resolver(catalogo(), nil, campos.NewEstado())

	assert.NoError(t, campos.ValidarEnvio(catalogo(), est))
}

func TestPlanGuardado_EliminaDesseleccionadosYConservaRequeridos(t *testing.T) {
	persistidos := []campos.ValorPersistido{
		{CampoExtraID: 1, Valor: "Gris"},
		{CampoExtraID: 2, Valor: "24"},
	}
	est := campos.Resolver(catalogo(), persistidos, campos.NewEstado())
	delete(est.Seleccionados, 2) // el usuario quitó Garantía

	plan := campos.PlanGuardado(catalogo(), persistidos, est)

	assert.Equal(t, []int64{2}, plan.Eliminar, "el opcional quitado se borra del backend")
	require.Len(t, plan.Upserts, 1)
	assert.Equal(t, int64(1), plan.Upserts[0].CampoExtraID, "el requerido nunca entra a Eliminar")
	assert.Equal(t, "Gris", plan.Upserts[0].Valor)
}

func TestValidarValor_PorTipo(t *testing.T) {
	casos := []struct {
		nombre string
		def    entity.CampoExtra
		valor  string
		valido bool
	}{
		{"texto siempre pasa", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoTexto}, "lo que sea", true},
		{"entero válido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoEntero}, "42", true},
		{"entero inválido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoEntero}, "4.2", false},
		{"decimal válido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoDecimal}, "4.20", true},
		{"decimal inválido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoDecimal}, "abc", false},
		{"fecha válida", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoFecha}, "2025-12-31", true},
		{"fecha inválida", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoFecha}, "31/12/2025", false},
		{"booleano válido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoBooleano}, "true", true},
		{"booleano inválido", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoBooleano}, "sí", false},
		{"vacío se valida aparte", entity.CampoExtra{Nombre: "n", Tipo: entity.TipoEntero}, "", true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := campos.ValidarValor(c.def, c.valor)
			if c.valido {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
