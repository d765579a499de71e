package entity

import "github.com/shopspring/decimal"

// GastoEspecifico gasto puntual con nombre y monto (/api/cost/specific).
type GastoEspecifico struct {
	ID     int64           `json:"id_gasto_esp,omitempty"`
	Nombre string          `json:"nom_gasto"`
	Monto  decimal.Decimal `json:"monto"`
}

// Gasto gasto operativo mensual (/api/cost/).
type Gasto struct {
	ID          int64           `json:"id_gastos,omitempty"`
	Concepto    string          `json:"concepto_gasto"`
	FechaCompra Fecha           `json:"fecha_compra"`
	Total       decimal.Decimal `json:"total_gastos"`
}
