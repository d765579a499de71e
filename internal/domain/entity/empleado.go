package entity

import "github.com/shopspring/decimal"

// Frecuencias de pago válidas para un empleado.
const (
	FrecuenciaQuincenal = "quincenal"
	FrecuenciaMensual   = "mensual"
)

// Tipos de pago de nómina (acciones sobre un empleado, no campos de este).
const (
	PagoLiquidacion = "liquidacion"
	PagoPrima       = "prima"
)

// Empleado empleado del lavaseco (/api/cost/employee).
type Empleado struct {
	ID         int64           `json:"id_empleado,omitempty"`
	Nombre     string          `json:"nom_empleado"`
	Cargo      string          `json:"tipo_emp"`
	Salario    decimal.Decimal `json:"salario"`
	Telefono   string          `json:"tel_empleado"`
	Frecuencia string          `json:"frecuencia_pago"`
}

// PagoNomina liquidación o prima registrada contra un empleado.
type PagoNomina struct {
	Tipo  string          `json:"tipo_pago"` // liquidacion | prima
	Monto decimal.Decimal `json:"monto"`
}
