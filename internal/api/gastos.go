package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// GastosService llamadas a /api/cost (gastos mensuales) y
// /api/cost/specific (gastos puntuales).
type GastosService struct {
	c *Client
}

// ListarMensuales devuelve los gastos operativos del negocio.
func (s *GastosService) ListarMensuales(ctx context.Context) ([]entity.Gasto, error) {
	var out []entity.Gasto
	if err := s.c.call(ctx, http.MethodGet, "/api/cost/", nil, &out, false, "Failed to fetch expenses"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListarEspecificos devuelve los gastos puntuales.
func (s *GastosService) ListarEspecificos(ctx context.Context) ([]entity.GastoEspecifico, error) {
	var out []entity.GastoEspecifico
	if err := s.c.call(ctx, http.MethodGet, "/api/cost/specific", nil, &out, false, "Failed to fetch expenses"); err != nil {
		return nil, err
	}
	return out, nil
}

// CrearEspecifico registra un gasto puntual.
func (s *GastosService) CrearEspecifico(ctx context.Context, g entity.GastoEspecifico) (*entity.GastoEspecifico, error) {
	var out entity.GastoEspecifico
	if err := s.c.call(ctx, http.MethodPost, "/api/cost/specific", g, &out, false, "Failed to create expense"); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActualizarEspecifico edita un gasto puntual.
func (s *GastosService) ActualizarEspecifico(ctx context.Context, id int64, g entity.GastoEspecifico) (*entity.GastoEspecifico, error) {
	var out entity.GastoEspecifico
	if err := s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/cost/specific/%d", id), g, &out, false, "Failed to update expense"); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarEspecifico borra un gasto puntual.
func (s *GastosService) EliminarEspecifico(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/cost/specific/%d", id), nil, nil, false, "Failed to delete expense")
}
