// Package billing concentra las reglas de negocio de facturación que el
// panel aplica del lado del cliente. El backend sigue siendo la fuente de
// verdad; estas reglas son una conveniencia de la interfaz.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// TotalFactura calcula el valor de la factura: Σ cantidad × valor unitario.
func TotalFactura(detalles []entity.FacturaDetalle) decimal.Decimal {
	total := decimal.Zero
	for _, d := range detalles {
		linea := d.ValorUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(linea)
	}
	return total
}

// EstadoTrasEntrega devuelve el estado que corresponde tras fijar la fecha
// de entrega: "Entregado" si la fecha quedó puesta, el estado dado si no.
func EstadoTrasEntrega(fechaFinal entity.Fecha, estado string) string {
	if !fechaFinal.IsZero() {
		return entity.EstadoEntregado
	}
	return estado
}

// AplicarEntrega fuerza el estado a "Entregado" cuando la factura tiene
// fecha de entrega, aunque el usuario no haya tocado el campo estado.
func AplicarEntrega(f *entity.Factura) {
	f.Estado = EstadoTrasEntrega(f.FechaFinal, f.Estado)
}
