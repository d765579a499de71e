package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// EmpleadosService llamadas a /api/cost/employee.
type EmpleadosService struct {
	c *Client
}

// EstadisticasNomina agregados que entrega el backend sobre la nómina.
type EstadisticasNomina struct {
	Total           int             `json:"total"`
	NominaMensual   decimal.Decimal `json:"nomina_mensual"`
	SalarioPromedio decimal.Decimal `json:"salario_promedio"`
}

// Listar devuelve todos los empleados.
func (s *EmpleadosService) Listar(ctx context.Context) ([]entity.Empleado, error) {
	var out []entity.Empleado
	if err := s.c.call(ctx, http.MethodGet, "/api/cost/employee", nil, &out, false, "Failed to fetch employees"); err != nil {
		return nil, err
	}
	return out, nil
}

// Obtener devuelve un empleado por id.
func (s *EmpleadosService) Obtener(ctx context.Context, id int64) (*entity.Empleado, error) {
	var out entity.Empleado
	if err := s.c.call(ctx, http.MethodGet, fmt.Sprintf("/api/cost/employee/%d", id), nil, &out, false, "Failed to fetch employee"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crear registra un empleado.
func (s *EmpleadosService) Crear(ctx context.Context, e entity.Empleado) (*entity.Empleado, error) {
	var out entity.Empleado
	if err := s.c.call(ctx, http.MethodPost, "/api/cost/employee", e, &out, false, "Failed to create employee"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar edita los datos del empleado.
func (s *EmpleadosService) Actualizar(ctx context.Context, id int64, e entity.Empleado) (*entity.Empleado, error) {
	var out entity.Empleado
	if err := s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/cost/employee/%d", id), e, &out, false, "Failed to update employee"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar borra un empleado.
func (s *EmpleadosService) Eliminar(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/cost/employee/%d", id), nil, nil, false, "Failed to delete employee")
}

// RegistrarPago registra una liquidación o prima contra el empleado. Es una
// operación de solo escritura sobre la misma ruta del update.
func (s *EmpleadosService) RegistrarPago(ctx context.Context, id int64, pago entity.PagoNomina) error {
	return s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/cost/employee/%d", id), pago, nil, false, "Failed to update employee")
}

// Buscar búsqueda por término en el backend.
func (s *EmpleadosService) Buscar(ctx context.Context, termino string) ([]entity.Empleado, error) {
	var out []entity.Empleado
	path := "/api/cost/employee/search?term=" + url.QueryEscape(termino)
	if err := s.c.call(ctx, http.MethodGet, path, nil, &out, false, "Failed to search employees"); err != nil {
		return nil, err
	}
	return out, nil
}

// FiltrarPorTipo filtra por frecuencia de pago en el backend.
func (s *EmpleadosService) FiltrarPorTipo(ctx context.Context, tipo string) ([]entity.Empleado, error) {
	var out []entity.Empleado
	path := "/api/cost/employee/filter?type=" + url.QueryEscape(tipo)
	if err := s.c.call(ctx, http.MethodGet, path, nil, &out, false, "Failed to filter employees"); err != nil {
		return nil, err
	}
	return out, nil
}

// Estadisticas agregados de nómina calculados por el backend.
func (s *EmpleadosService) Estadisticas(ctx context.Context) (*EstadisticasNomina, error) {
	var out EstadisticasNomina
	if err := s.c.call(ctx, http.MethodGet, "/api/cost/employee/stats", nil, &out, false, "Failed to fetch employee statistics"); err != nil {
		return nil, err
	}
	return &out, nil
}

// GastosDe pagos de nómina (liquidaciones y primas) registrados contra el empleado.
func (s *EmpleadosService) GastosDe(ctx context.Context, id int64) ([]entity.PagoNomina, error) {
	var out []entity.PagoNomina
	if err := s.c.call(ctx, http.MethodGet, fmt.Sprintf("/api/cost/employee/%d/expenses", id), nil, &out, false, "Failed to fetch employee expenses"); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalGastosDe total acumulado de pagos contra el empleado.
func (s *EmpleadosService) TotalGastosDe(ctx context.Context, id int64) (decimal.Decimal, error) {
	var out struct {
		Total decimal.Decimal `json:"total"`
	}
	if err := s.c.call(ctx, http.MethodGet, fmt.Sprintf("/api/cost/employee/%d/total-expenses", id), nil, &out, false, "Failed to fetch employee total expenses"); err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}
