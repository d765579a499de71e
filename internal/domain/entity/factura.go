package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de entrega de una factura.
const (
	EstadoPendiente = "Pendiente"
	EstadoEntregado = "Entregado"
)

// NormalizarEstado mapea el estado del backend a las constantes conocidas.
// Cualquier valor no reconocido se devuelve tal cual (estado desconocido).
func NormalizarEstado(s string) string {
	switch {
	case strings.EqualFold(s, EstadoPendiente):
		return EstadoPendiente
	case strings.EqualFold(s, EstadoEntregado):
		return EstadoEntregado
	default:
		return s
	}
}

// Factura representa una factura con cliente, sucursal y detalle de prendas.
type Factura struct {
	ID            int64            `json:"id_factura,omitempty"`
	Codigo        string           `json:"cod_factura"`
	FechaCreacion Fecha            `json:"fecha_creacion_fact"`
	FechaFinal    Fecha            `json:"fecha_final_fact,omitempty"`
	Valor         decimal.Decimal  `json:"valor_fact"`
	Estado        string           `json:"estado,omitempty"`
	Cliente       *Cliente         `json:"cliente,omitempty"`
	Sucursal      *Sucursal        `json:"sucursal,omitempty"`
	Detalles      []FacturaDetalle `json:"factura_detalle"`
}

// FacturaDetalle una línea de la factura (prendas).
type FacturaDetalle struct {
	ID             int64           `json:"id_detalle,omitempty"`
	Cantidad       int             `json:"cantidad_prendas"`
	Especificacion string          `json:"especificacion_prenda"`
	CaractOtras    string          `json:"caract_otras,omitempty"`
	ValorUnitario  decimal.Decimal `json:"valor_uni_prenda"`
}

// Cliente cliente de la factura, con sus sucursales asociadas.
type Cliente struct {
	ID         int64             `json:"id_cliente,omitempty"`
	Nombre     string            `json:"nombre_cliente"`
	Telefono   string            `json:"tel_cliente"`
	Sucursales []SucursalCliente `json:"sucursal_cliente,omitempty"`
}

// SucursalCliente asociación cliente-sucursal tal como la anida el backend.
type SucursalCliente struct {
	Sucursal Sucursal `json:"sucursal"`
}

// Sucursal punto de atención del negocio.
type Sucursal struct {
	Nombre    string `json:"nom_sucursal"`
	Direccion string `json:"direccion_suc,omitempty"`
}

// Sucursales catálogo fijo que ofrece el formulario de facturas.
var Sucursales = []Sucursal{
	{Nombre: "Sucursal Cedritos", Direccion: "Carrera 11#146-08"},
	{Nombre: "Sucursal Almacen", Direccion: "Calle 161#16C-27"},
	{Nombre: "Sucursal Domicilio", Direccion: "Domicilio"},
}

// BuscarSucursal devuelve la sucursal del catálogo por nombre, o nil.
func BuscarSucursal(nombre string) *Sucursal {
	for i := range Sucursales {
		if Sucursales[i].Nombre == nombre {
			return &Sucursales[i]
		}
	}
	return nil
}

// NombreSucursal devuelve la primera sucursal asociada al cliente de la
// factura, o "Sin sucursal" si no tiene ninguna.
func (f *Factura) NombreSucursal() string {
	if f.Cliente != nil && len(f.Cliente.Sucursales) > 0 {
		return f.Cliente.Sucursales[0].Sucursal.Nombre
	}
	return "Sin sucursal"
}
