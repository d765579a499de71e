package reporting

import "github.com/shopspring/decimal"

// Resumen estadísticas sobre el conjunto filtrado.
type Resumen struct {
	Cantidad int
	Suma     decimal.Decimal
	Promedio decimal.Decimal
}

// Resumir cuenta las filas y acumula el campo de monto. Un monto que no
// parsea aporta 0 a la suma pero sí cuenta en el denominador del promedio.
// Con cero filas el promedio es 0, no una división por cero.
func Resumir(rows []Record, amountField string) Resumen {
	r := Resumen{Cantidad: len(rows), Suma: decimal.Zero, Promedio: decimal.Zero}
	for _, rec := range rows {
		r.Suma = r.Suma.Add(asDecimal(Resolve(rec, amountField)))
	}
	if r.Cantidad > 0 {
		r.Promedio = r.Suma.Div(decimal.NewFromInt(int64(r.Cantidad)))
	}
	return r
}

// ContarEstado cuenta las filas cuyo campo de estado vale exactamente valor.
func ContarEstado(rows []Record, estadoField, valor string) int {
	n := 0
	for _, rec := range rows {
		if asString(Resolve(rec, estadoField)) == valor {
			n++
		}
	}
	return n
}
