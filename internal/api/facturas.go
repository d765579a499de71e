package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// FacturasService llamadas a /api/bill.
type FacturasService struct {
	c *Client
}

// Listar devuelve todas las facturas con cliente y detalle embebidos.
func (s *FacturasService) Listar(ctx context.Context) ([]entity.Factura, error) {
	var out []entity.Factura
	if err := s.c.call(ctx, http.MethodGet, "/api/bill/", nil, &out, false, "Failed to fetch bills"); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra una factura nueva.
func (s *FacturasService) Crear(ctx context.Context, f entity.Factura) (*entity.Factura, error) {
	var out entity.Factura
	if err := s.c.call(ctx, http.MethodPost, "/api/bill/", f, &out, false, "Failed to create bill"); err != nil {
		return nil, err
	}
	return &out, nil
}

// FacturaCambios campos editables de una factura. Solo viajan los campos
// fijados; un nil no aparece en el payload y el backend conserva el valor
// que tenga almacenado.
type FacturaCambios struct {
	FechaFinal *entity.Fecha    `json:"fecha_final_fact,omitempty"`
	Estado     string           `json:"estado,omitempty"`
	Valor      *decimal.Decimal `json:"valor_fact,omitempty"`
}

// Actualizar envía los campos editados de la factura.
func (s *FacturasService) Actualizar(ctx context.Context, id int64, cambios FacturaCambios) (*entity.Factura, error) {
	var out entity.Factura
	if err := s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/bill/%d", id), cambios, &out, false, "Failed to update bill"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CambiarEstado alterna el estado de entrega en el backend.
func (s *FacturasService) CambiarEstado(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodPut, fmt.Sprintf("/api/bill/%d/status", id), nil, nil, false, "Failed to update bill status")
}

// Eliminar borra la factura.
func (s *FacturasService) Eliminar(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/bill/%d", id), nil, nil, false, "Failed to delete bill")
}
