package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// InsumosService llamadas a /api/cost/supply.
type InsumosService struct {
	c *Client
}

// Listar devuelve los insumos con su desglose.
func (s *InsumosService) Listar(ctx context.Context) ([]entity.Insumo, error) {
	var out []entity.Insumo
	if err := s.c.call(ctx, http.MethodGet, "/api/cost/supply", nil, &out, false, "Failed to fetch supplies"); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra un insumo.
func (s *InsumosService) Crear(ctx context.Context, in entity.Insumo) (*entity.Insumo, error) {
	var out entity.Insumo
	if err := s.c.call(ctx, http.MethodPost, "/api/cost/supply", in, &out, false, "Failed to create supply"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Actualizar edita un insumo y su desglose.
func (s *InsumosService) Actualizar(ctx context.Context, id int64, in entity.Insumo) (*entity.Insumo, error) {
	var out entity.Insumo
	if err := s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/cost/supply/%d", id), in, &out, false, "Failed to update supply"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar borra un insumo.
func (s *InsumosService) Eliminar(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/cost/supply/%d", id), nil, nil, false, "Failed to delete supply")
}
