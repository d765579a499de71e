package mockapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// ObtenerReporte GET /api/reports/:tipo
func (s *Server) ObtenerReporte(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	switch c.Params("tipo") {
	case "gastos":
		return c.JSON(s.store.gastos)
	case "factura":
		return c.JSON(s.store.facturas)
	default:
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "tipo de reporte desconocido"})
	}
}

type reportePDFRequest struct {
	Data []reporting.Record `json:"data"`
}

// ReportePDF POST /api/reports/:tipo/pdf
// Recibe las filas ya filtradas por el panel y devuelve el blob del PDF.
func (s *Server) ReportePDF(c *fiber.Ctx) error {
	tipo := c.Params("tipo")
	perfil, ok := reporting.Profiles[tipo]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "tipo de reporte desconocido"})
	}

	var in reportePDFRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	pdf, err := GenerarReportePDF(tipo, perfil, in.Data)
	if err != nil {
		s.log.Error().Err(err).Str("tipo", tipo).Msg("generación de PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
