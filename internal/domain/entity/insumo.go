package entity

import "github.com/shopspring/decimal"

// Insumo consumible del negocio con su desglose por concepto y peso.
type Insumo struct {
	ID       int64           `json:"id_insumo,omitempty"`
	Nombre   string          `json:"nom_insumo"`
	Valor    decimal.Decimal `json:"valor_insumo"`
	Detalles []InsumoDetalle `json:"detalle_insumo"`
}

// InsumoDetalle una entrada del desglose (concepto + peso en kg).
type InsumoDetalle struct {
	ID       int64           `json:"id_detalle_insumo,omitempty"`
	Concepto string          `json:"concepto"`
	Peso     decimal.Decimal `json:"peso"`
}
