package reporting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// Gastos [{monto:100},{monto:"abc"},{monto:50}]: la entrada malformada
// aporta 0 a la suma pero cuenta en el denominador, así que el promedio es
// 150 / 3 = 50.
func TestResumir_MontoMalformadoCuentaEnElDenominador(t *testing.T) {
	rows := decode(t, `[{"monto":100},{"monto":"abc"},{"monto":50}]`)

	r := reporting.Resumir(rows, "monto")

	assert.Equal(t, 3, r.Cantidad)
	assert.True(t, r.Suma.Equal(decimal.NewFromInt(150)), "suma fue %s", r.Suma)
	assert.True(t, r.Promedio.Equal(decimal.NewFromInt(50)), "promedio fue %s", r.Promedio)
}

// Suma y promedio sobre un conjunto vacío valen 0, nunca NaN ni pánico.
func TestResumir_ConjuntoVacio(t *testing.T) {
	assert.NotPanics(t, func() {
		r := reporting.Resumir(nil, "monto")
		assert.Equal(t, 0, r.Cantidad)
		assert.True(t, r.Suma.IsZero())
		assert.True(t, r.Promedio.IsZero())
	})
}

func TestResumir_CampoAusenteValeCero(t *testing.T) {
	rows := decode(t, `[{"otro_campo":1},{"monto":25}]`)
	r := reporting.Resumir(rows, "monto")
	assert.True(t, r.Suma.Equal(decimal.NewFromInt(25)))
}

// Tres facturas ["Pendiente","Entregado","Entregado"]: filtrar por estado
// Entregado entrega exactamente las 2 que coinciden.
func TestContarEstado_CuentaCoincidenciasExactas(t *testing.T) {
	rows := facturas(t)

	filtradas := reporting.Filtrar(rows, "", reporting.Filters{Estado: "Entregado"}, perfilFactura)
	assert.Len(t, filtradas, 2)

	assert.Equal(t, 2, reporting.ContarEstado(rows, "estado", "Entregado"))
	assert.Equal(t, 1, reporting.ContarEstado(rows, "estado", "Pendiente"))
	assert.Equal(t, 0, reporting.ContarEstado(rows, "estado", "Anulada"))
}
