package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lavaseco-primavera/panel/internal/domain/billing"
	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// Dos prendas a $10 más una a $5 deben totalizar $25 antes de enviar.
func TestTotalFactura_SumaCantidadPorValor(t *testing.T) {
	detalles := []entity.FacturaDetalle{
		{Cantidad: 2, Especificacion: "Camisa", ValorUnitario: decimal.NewFromInt(10)},
		{Cantidad: 1, Especificacion: "Pantalón", ValorUnitario: decimal.NewFromInt(5)},
	}

	total := billing.TotalFactura(detalles)

	assert.True(t, total.Equal(decimal.NewFromInt(25)),
		"el total debe ser 25, fue %s", total)
}

func TestTotalFactura_SinDetallesEsCero(t *testing.T) {
	assert.True(t, billing.TotalFactura(nil).IsZero())
}

func TestTotalFactura_ValoresDecimales(t *testing.T) {
	detalles := []entity.FacturaDetalle{
		{Cantidad: 3, ValorUnitario: decimal.RequireFromString("1500.50")},
	}
	assert.True(t, billing.TotalFactura(detalles).Equal(decimal.RequireFromString("4501.50")))
}

// Registrar fecha de entrega debe forzar el estado a Entregado aunque el
// usuario no haya tocado el campo.
func TestAplicarEntrega_FechaFinalFuerzaEntregado(t *testing.T) {
	f := &entity.Factura{
		Estado:     entity.EstadoPendiente,
		FechaFinal: entity.ParseFecha("2024-03-15"),
	}

	billing.AplicarEntrega(f)

	assert.Equal(t, entity.EstadoEntregado, f.Estado)
}

func TestAplicarEntrega_SinFechaNoTocaElEstado(t *testing.T) {
	f := &entity.Factura{Estado: entity.EstadoPendiente}

	billing.AplicarEntrega(f)

	assert.Equal(t, entity.EstadoPendiente, f.Estado)
}

// La misma regla para ediciones parciales, donde no hay factura completa.
func TestEstadoTrasEntrega(t *testing.T) {
	con := entity.ParseFecha("2024-03-15")

	assert.Equal(t, entity.EstadoEntregado, billing.EstadoTrasEntrega(con, entity.EstadoPendiente))
	assert.Equal(t, entity.EstadoEntregado, billing.EstadoTrasEntrega(con, ""))
	assert.Equal(t, entity.EstadoPendiente, billing.EstadoTrasEntrega(entity.Fecha{}, entity.EstadoPendiente))
	assert.Equal(t, "", billing.EstadoTrasEntrega(entity.Fecha{}, ""))
}
