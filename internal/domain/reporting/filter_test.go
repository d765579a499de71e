package reporting_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// decode arma registros desde JSON literal, igual que llegan del backend.
func decode(t *testing.T, raw string) []reporting.Record {
	t.Helper()
	var rows []reporting.Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	return rows
}

func facturas(t *testing.T) []reporting.Record {
	t.Helper()
	return decode(t, `[
		{"cod_factura":"F-001","fecha_creacion_fact":"2024-03-01","valor_fact":1000,"estado":"Pendiente",
		 "cliente":{"nombre_cliente":"Ana Díaz","tel_cliente":"3001234567",
		  "sucursal_cliente":[{"sucursal":{"nom_sucursal":"Sucursal Cedritos","direccion_suc":"Carrera 11#146-08"}}]}},
		{"cod_factura":"F-002","fecha_creacion_fact":"2024-03-10","valor_fact":2500,"estado":"Entregado",
		 "cliente":{"nombre_cliente":"Carlos Ruiz","tel_cliente":"3017654321",
		  "sucursal_cliente":[{"sucursal":{"nom_sucursal":"Sucursal Almacen","direccion_suc":"Calle 161#16C-27"}}]}},
		{"cod_factura":"F-003","fecha_creacion_fact":"2024-03-20","valor_fact":800,"estado":"Entregado",
		 "cliente":{"nombre_cliente":"Ana Díaz","tel_cliente":"3001234567"}}
	]`)
}

var perfilFactura = reporting.Profiles["factura"]
var perfilGastos = reporting.Profiles["gastos"]

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por texto
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltrar_TerminoVacioDevuelveTodo(t *testing.T) {
	rows := facturas(t)
	out := reporting.Filtrar(rows, "", reporting.Filters{}, perfilFactura)
	assert.Len(t, out, len(rows))
}

func TestFiltrar_BuscaEnCamposDePrimerNivel(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "f-002", reporting.Filters{}, perfilFactura)
	assert.Len(t, out, 1)
	assert.Equal(t, "F-002", out[0]["cod_factura"])
}

func TestFiltrar_BuscaEnObjetoAnidado(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "carlos", reporting.Filters{}, perfilFactura)
	assert.Len(t, out, 1)
	assert.Equal(t, "F-002", out[0]["cod_factura"])
}

// Un término que solo aparece en el nombre de la sucursal (anidado bajo
// cliente.sucursal_cliente[0].sucursal) también debe traer la factura.
func TestFiltrar_BuscaEnSucursalDelCliente(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "cedritos", reporting.Filters{}, perfilFactura)
	assert.Len(t, out, 1)
	assert.Equal(t, "F-001", out[0]["cod_factura"])
}

func TestFiltrar_SinCoincidenciasDevuelveVacio(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "zzz-no-existe", reporting.Filters{}, perfilFactura)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del filtrado
// ──────────────────────────────────────────────────────────────────────────────

// Filtrar nunca agrega filas y es idempotente.
func TestFiltrar_SubconjuntoEIdempotente(t *testing.T) {
	rows := facturas(t)
	f := reporting.Filters{Estado: "Entregado"}

	una := reporting.Filtrar(rows, "ana", f, perfilFactura)
	assert.LessOrEqual(t, len(una), len(rows))
	for _, rec := range una {
		assert.Contains(t, rows, rec)
	}

	dos := reporting.Filtrar(una, "ana", f, perfilFactura)
	assert.Equal(t, una, dos)
}

func TestFiltrar_NoMutaLaListaDeOrigen(t *testing.T) {
	rows := facturas(t)
	original := decode(t, `[
		{"cod_factura":"F-001","fecha_creacion_fact":"2024-03-01","valor_fact":1000,"estado":"Pendiente",
		 "cliente":{"nombre_cliente":"Ana Díaz","tel_cliente":"3001234567",
		  "sucursal_cliente":[{"sucursal":{"nom_sucursal":"Sucursal Cedritos","direccion_suc":"Carrera 11#146-08"}}]}},
		{"cod_factura":"F-002","fecha_creacion_fact":"2024-03-10","valor_fact":2500,"estado":"Entregado",
		 "cliente":{"nombre_cliente":"Carlos Ruiz","tel_cliente":"3017654321",
		  "sucursal_cliente":[{"sucursal":{"nom_sucursal":"Sucursal Almacen","direccion_suc":"Calle 161#16C-27"}}]}},
		{"cod_factura":"F-003","fecha_creacion_fact":"2024-03-20","valor_fact":800,"estado":"Entregado",
		 "cliente":{"nombre_cliente":"Ana Díaz","tel_cliente":"3001234567"}}
	]`)

	reporting.Filtrar(rows, "ana", reporting.Filters{Estado: "Entregado"}, perfilFactura)

	assert.Equal(t, original, rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de rango
// ──────────────────────────────────────────────────────────────────────────────

func TestFiltrar_PorEstadoExacto(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "", reporting.Filters{Estado: "Entregado"}, perfilFactura)
	assert.Len(t, out, 2)
	for _, rec := range out {
		assert.Equal(t, "Entregado", rec["estado"])
	}
}

func TestFiltrar_EstadoTodosAceptaTodo(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "", reporting.Filters{Estado: reporting.EstadoTodos}, perfilFactura)
	assert.Len(t, out, 3)
}

func TestFiltrar_RangoDeFechas(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "", reporting.Filters{
		DateFrom: "2024-03-05",
		DateTo:   "2024-03-15",
	}, perfilFactura)
	assert.Len(t, out, 1)
	assert.Equal(t, "F-002", out[0]["cod_factura"])
}

// Desde > Hasta no puede satisfacerse: resultado vacío, sin pánico.
func TestFiltrar_DesdeMayorQueHastaDevuelveVacio(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "", reporting.Filters{
		DateFrom: "2024-12-31",
		DateTo:   "2024-01-01",
	}, perfilFactura)
	assert.Empty(t, out)
}

func TestFiltrar_RangoDeMonto(t *testing.T) {
	out := reporting.Filtrar(facturas(t), "", reporting.Filters{
		MinAmount: "900",
		MaxAmount: "2000",
	}, perfilFactura)
	assert.Len(t, out, 1)
	assert.Equal(t, "F-001", out[0]["cod_factura"])
}

// Un monto malformado vale 0: queda por debajo de cualquier mínimo positivo
// pero no se excluye del resultado cuando no hay mínimo.
func TestFiltrar_MontoMalformadoValeCero(t *testing.T) {
	rows := decode(t, `[
		{"concepto_gasto":"Detergente","fecha_compra":"2024-02-01","total_gastos":"abc"},
		{"concepto_gasto":"Ganchos","fecha_compra":"2024-02-02","total_gastos":100}
	]`)

	conMinimo := reporting.Filtrar(rows, "", reporting.Filters{MinAmount: "50"}, perfilGastos)
	assert.Len(t, conMinimo, 1)
	assert.Equal(t, "Ganchos", conMinimo[0]["concepto_gasto"])

	sinMinimo := reporting.Filtrar(rows, "", reporting.Filters{}, perfilGastos)
	assert.Len(t, sinMinimo, 2)
}

func TestFiltrar_CamposFaltantesNoRevientan(t *testing.T) {
	rows := decode(t, `[{"cod_factura":"F-009"},{}]`)
	assert.NotPanics(t, func() {
		out := reporting.Filtrar(rows, "f-009", reporting.Filters{
			DateFrom: "2024-01-01",
			Estado:   reporting.EstadoTodos,
		}, perfilFactura)
		// fecha ausente vale epoch 0, queda fuera del rango
		assert.Empty(t, out)
	})
}
