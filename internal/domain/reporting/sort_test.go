package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

func codigos(rows []reporting.Record) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i], _ = r["cod_factura"].(string)
	}
	return out
}

func TestOrdenar_SinClaveConservaOrdenDelFetch(t *testing.T) {
	rows := facturas(t)
	out := reporting.Ordenar(rows, reporting.SortState{})
	assert.Equal(t, codigos(rows), codigos(out))
}

func TestOrdenar_PorMontoAscendente(t *testing.T) {
	out := reporting.Ordenar(facturas(t), reporting.SortState{Key: "valor_fact", Direction: reporting.Asc})
	assert.Equal(t, []string{"F-003", "F-001", "F-002"}, codigos(out))
}

func TestOrdenar_PorFechaDescendente(t *testing.T) {
	out := reporting.Ordenar(facturas(t), reporting.SortState{Key: "fecha_creacion_fact", Direction: reporting.Desc})
	assert.Equal(t, []string{"F-003", "F-002", "F-001"}, codigos(out))
}

// La clave puede ser una ruta anidada; el texto compara sin mayúsculas.
func TestOrdenar_PorRutaAnidada(t *testing.T) {
	out := reporting.Ordenar(facturas(t), reporting.SortState{Key: "cliente.nombre_cliente", Direction: reporting.Asc})
	assert.Equal(t, []string{"F-001", "F-003", "F-002"}, codigos(out))
}

// Filas iguales bajo la clave conservan su orden de llegada (orden estable):
// F-001 y F-003 comparten cliente y deben quedar en ese orden.
func TestOrdenar_EsEstable(t *testing.T) {
	out := reporting.Ordenar(facturas(t), reporting.SortState{Key: "cliente.nombre_cliente", Direction: reporting.Asc})
	assert.Equal(t, []string{"F-001", "F-003"}, codigos(out)[:2])
}

// Un monto que no parsea compara como 0 y queda de primero ascendente.
func TestOrdenar_MontoMalformadoCompareComoCero(t *testing.T) {
	rows := decode(t, `[
		{"cod_factura":"F-A","valor_fact":500},
		{"cod_factura":"F-B","valor_fact":"basura"}
	]`)
	out := reporting.Ordenar(rows, reporting.SortState{Key: "valor_fact", Direction: reporting.Asc})
	assert.Equal(t, []string{"F-B", "F-A"}, codigos(out))
}

// Filas sin el campo de orden comparan iguales entre sí: no hay pánico y se
// conserva su orden relativo.
func TestOrdenar_CampoAusenteNoRevienta(t *testing.T) {
	rows := decode(t, `[
		{"cod_factura":"F-A"},
		{"cod_factura":"F-B"}
	]`)
	assert.NotPanics(t, func() {
		out := reporting.Ordenar(rows, reporting.SortState{Key: "fecha_creacion_fact", Direction: reporting.Asc})
		assert.Equal(t, []string{"F-A", "F-B"}, codigos(out))
	})
}

func TestOrdenar_NoMutaLaListaDeOrigen(t *testing.T) {
	rows := facturas(t)
	antes := codigos(rows)
	reporting.Ordenar(rows, reporting.SortState{Key: "valor_fact", Direction: reporting.Desc})
	assert.Equal(t, antes, codigos(rows))
}

// ──────────────────────────────────────────────────────────────────────────────
// Toggle de columna
// ──────────────────────────────────────────────────────────────────────────────

func TestSortState_ToggleInvierteYReinicia(t *testing.T) {
	var s reporting.SortState

	s.Toggle("valor_fact")
	assert.Equal(t, reporting.SortState{Key: "valor_fact", Direction: reporting.Asc}, s)

	s.Toggle("valor_fact")
	assert.Equal(t, reporting.SortState{Key: "valor_fact", Direction: reporting.Desc}, s)

	// columna nueva: vuelve a ascendente
	s.Toggle("estado")
	assert.Equal(t, reporting.SortState{Key: "estado", Direction: reporting.Asc}, s)
}

// Dos toggles sobre la misma columna vuelven a la dirección inicial y, sin
// otros cambios, al mismo orden.
func TestSortState_DobleToggleVuelveAlOrdenInicial(t *testing.T) {
	rows := facturas(t)
	var s reporting.SortState

	s.Toggle("valor_fact")
	primero := reporting.Ordenar(rows, s)

	s.Toggle("valor_fact")
	s.Toggle("valor_fact") // desc -> columna ya activa en desc: Toggle repone asc
	segundo := reporting.Ordenar(rows, s)

	assert.Equal(t, codigos(primero), codigos(segundo))
}
