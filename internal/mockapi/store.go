// Package mockapi implementa un backend simulado en memoria con la misma
// superficie REST que consume el panel. Lo usan el comando `lavactl
// mock-server` y los tests de integración del cliente; no es el backend real.
package mockapi

import (
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// pagoRegistrado un pago de nómina guardado contra un empleado.
type pagoRegistrado struct {
	EmpleadoID int64           `json:"id_empleado"`
	Tipo       string          `json:"tipo_pago"`
	Monto      decimal.Decimal `json:"monto"`
}

// Store estado en memoria del backend simulado. Un mutex por todo el estado
// alcanza: es una herramienta de desarrollo, no un servidor de producción.
type Store struct {
	mu     sync.Mutex
	nextID int64

	usuarios  []entity.Usuario
	passwords map[string]string // email -> hash bcrypt
	facturas  []entity.Factura
	gastos    []entity.Gasto
	gastosEsp []entity.GastoEspecifico
	insumos   []entity.Insumo
	empleados []entity.Empleado
	pagos     []pagoRegistrado
}

// NewStore crea el estado con la cuenta admin y datos de ejemplo.
func NewStore() *Store {
	s := &Store{nextID: 1, passwords: map[string]string{}}
	s.seed()
	return s
}

func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) seed() {
	s.seedUsuario("Administrador", "admin@admin", "admin123", entity.RolAdmin)
	s.seedUsuario("Cajero", "cajero@lavaseco.co", "cajero123", entity.RolUser)

	s.gastos = []entity.Gasto{
		{ID: s.id(), Concepto: "Arriendo local", FechaCompra: entity.ParseFecha("2024-03-01"), Total: decimal.NewFromInt(2500000)},
		{ID: s.id(), Concepto: "Servicios públicos", FechaCompra: entity.ParseFecha("2024-03-05"), Total: decimal.NewFromInt(480000)},
		{ID: s.id(), Concepto: "Detergente industrial", FechaCompra: entity.ParseFecha("2024-03-12"), Total: decimal.NewFromInt(320000)},
	}

	cliente := &entity.Cliente{
		Nombre:   "Ana Díaz",
		Telefono: "3001234567",
		Sucursales: []entity.SucursalCliente{
			{Sucursal: entity.Sucursales[0]},
		},
	}
	s.facturas = []entity.Factura{
		{
			ID:            s.id(),
			Codigo:        "F-001",
			FechaCreacion: entity.ParseFecha("2024-03-02"),
			Valor:         decimal.NewFromInt(45000),
			Estado:        entity.EstadoPendiente,
			Cliente:       cliente,
			Detalles: []entity.FacturaDetalle{
				{Cantidad: 3, Especificacion: "Camisa", ValorUnitario: decimal.NewFromInt(15000)},
			},
		},
	}

	s.empleados = []entity.Empleado{
		{ID: s.id(), Nombre: "Luisa Romero", Cargo: "Operaria", Salario: decimal.NewFromInt(1300000), Telefono: "3109876543", Frecuencia: entity.FrecuenciaQuincenal},
	}

	s.insumos = []entity.Insumo{
		{ID: s.id(), Nombre: "Detergente", Valor: decimal.NewFromInt(85000), Detalles: []entity.InsumoDetalle{
			{ID: s.id(), Concepto: "Ropa blanca", Peso: decimal.NewFromInt(20)},
		}},
	}
}

func (s *Store) seedUsuario(nombre, email, password, rol string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	s.usuarios = append(s.usuarios, entity.Usuario{ID: s.id(), Nombre: nombre, Email: email, Rol: rol})
	s.passwords[email] = string(hash)
}
