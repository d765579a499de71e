package mockapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lavaseco-primavera/panel/internal/domain/billing"
	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// ListarFacturas GET /api/bill/
func (s *Server) ListarFacturas(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.facturas)
}

// CrearFactura POST /api/bill/
func (s *Server) CrearFactura(c *fiber.Ctx) error {
	var in entity.Factura
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "cod_factura es requerido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	in.ID = s.store.id()
	if in.Estado == "" {
		in.Estado = entity.EstadoPendiente
	}
	// El formulario asocia la sucursal elegida al cliente de la factura.
	if in.Sucursal != nil && in.Cliente != nil && len(in.Cliente.Sucursales) == 0 {
		in.Cliente.Sucursales = []entity.SucursalCliente{{Sucursal: *in.Sucursal}}
	}
	billing.AplicarEntrega(&in)
	s.store.facturas = append(s.store.facturas, in)

	return c.Status(fiber.StatusCreated).JSON(in)
}

// ActualizarFactura PUT /api/bill/:id
func (s *Server) ActualizarFactura(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in entity.Factura
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.facturas {
		if s.store.facturas[i].ID != id {
			continue
		}
		f := &s.store.facturas[i]
		if !in.FechaFinal.IsZero() {
			f.FechaFinal = in.FechaFinal
		}
		if in.Estado != "" {
			f.Estado = entity.NormalizarEstado(in.Estado)
		}
		if !in.Valor.IsZero() {
			f.Valor = in.Valor
		}
		billing.AplicarEntrega(f)
		return c.JSON(f)
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
}

// CambiarEstadoFactura PUT /api/bill/:id/status
func (s *Server) CambiarEstadoFactura(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.facturas {
		if s.store.facturas[i].ID != id {
			continue
		}
		f := &s.store.facturas[i]
		if f.Estado == entity.EstadoPendiente {
			f.Estado = entity.EstadoEntregado
		} else {
			f.Estado = entity.EstadoPendiente
		}
		return c.JSON(f)
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
}

// EliminarFactura DELETE /api/bill/:id
func (s *Server) EliminarFactura(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i, f := range s.store.facturas {
		if f.ID == id {
			s.store.facturas = append(s.store.facturas[:i], s.store.facturas[i+1:]...)
			return c.JSON(fiber.Map{"deleted": id})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
}
