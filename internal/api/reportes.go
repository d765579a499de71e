package api

import (
	"context"
	"net/http"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// ReportesService llamadas a /api/reports. Los reportes llegan como filas
// JSON heterogéneas; el filtrado y orden son locales (paquete reporting).
type ReportesService struct {
	c *Client
}

// Obtener trae las filas crudas del reporte ("gastos" o "factura").
func (s *ReportesService) Obtener(ctx context.Context, tipo string) ([]reporting.Record, error) {
	var out []reporting.Record
	if err := s.c.call(ctx, http.MethodGet, "/api/reports/"+tipo, nil, &out, false, "Error al cargar los datos"); err != nil {
		return nil, err
	}
	return out, nil
}

// PDF pide al backend el PDF del reporte sobre las filas ya filtradas y
// devuelve el blob.
func (s *ReportesService) PDF(ctx context.Context, tipo string, filas []reporting.Record) ([]byte, error) {
	body := map[string]any{"data": filas}
	data, err := s.c.callRaw(ctx, http.MethodPost, "/api/reports/"+tipo+"/pdf", body, false, "application/pdf", "Error al generar el PDF")
	if err != nil {
		return nil, err
	}
	return data, nil
}
