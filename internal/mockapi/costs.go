package mockapi

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListarGastos GET /api/cost/
func (s *Server) ListarGastos(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.gastos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos específicos
// ──────────────────────────────────────────────────────────────────────────────

// ListarGastosEspecificos GET /api/cost/specific
func (s *Server) ListarGastosEspecificos(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.gastosEsp)
}

// CrearGastoEspecifico POST /api/cost/specific
func (s *Server) CrearGastoEspecifico(c *fiber.Ctx) error {
	var in entity.GastoEspecifico
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "nom_gasto es requerido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	in.ID = s.store.id()
	s.store.gastosEsp = append(s.store.gastosEsp, in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// ActualizarGastoEspecifico PUT /api/cost/specific/:id
func (s *Server) ActualizarGastoEspecifico(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in entity.GastoEspecifico
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.gastosEsp {
		if s.store.gastosEsp[i].ID == id {
			in.ID = id
			s.store.gastosEsp[i] = in
			return c.JSON(in)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
}

// EliminarGastoEspecifico DELETE /api/cost/specific/:id
func (s *Server) EliminarGastoEspecifico(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i, g := range s.store.gastosEsp {
		if g.ID == id {
			s.store.gastosEsp = append(s.store.gastosEsp[:i], s.store.gastosEsp[i+1:]...)
			return c.JSON(fiber.Map{"deleted": id})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Insumos
// ──────────────────────────────────────────────────────────────────────────────

// ListarInsumos GET /api/cost/supply
func (s *Server) ListarInsumos(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.insumos)
}

// CrearInsumo POST /api/cost/supply
func (s *Server) CrearInsumo(c *fiber.Ctx) error {
	var in entity.Insumo
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "nom_insumo es requerido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	in.ID = s.store.id()
	for i := range in.Detalles {
		in.Detalles[i].ID = s.store.id()
	}
	s.store.insumos = append(s.store.insumos, in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// ActualizarInsumo PUT /api/cost/supply/:id
func (s *Server) ActualizarInsumo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in entity.Insumo
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.insumos {
		if s.store.insumos[i].ID == id {
			in.ID = id
			for j := range in.Detalles {
				if in.Detalles[j].ID == 0 {
					in.Detalles[j].ID = s.store.id()
				}
			}
			s.store.insumos[i] = in
			return c.JSON(in)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
}

// EliminarInsumo DELETE /api/cost/supply/:id
func (s *Server) EliminarInsumo(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i, in := range s.store.insumos {
		if in.ID == id {
			s.store.insumos = append(s.store.insumos[:i], s.store.insumos[i+1:]...)
			return c.JSON(fiber.Map{"deleted": id})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados y nómina
// ──────────────────────────────────────────────────────────────────────────────

// ListarEmpleados GET /api/cost/employee
func (s *Server) ListarEmpleados(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.empleados)
}

// ObtenerEmpleado GET /api/cost/employee/:id
func (s *Server) ObtenerEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, e := range s.store.empleados {
		if e.ID == id {
			return c.JSON(e)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
}

// CrearEmpleado POST /api/cost/employee
func (s *Server) CrearEmpleado(c *fiber.Ctx) error {
	var in entity.Empleado
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Cargo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "nom_empleado y tipo_emp son requeridos"})
	}
	if in.Frecuencia == "" {
		in.Frecuencia = entity.FrecuenciaQuincenal
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	in.ID = s.store.id()
	s.store.empleados = append(s.store.empleados, in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// empleadoUpdate el PUT de empleado transporta dos operaciones distintas:
// editar los datos del empleado o registrar un pago de nómina (tipo_pago).
type empleadoUpdate struct {
	entity.Empleado
	TipoPago string          `json:"tipo_pago"`
	Monto    decimal.Decimal `json:"monto"`
}

// ActualizarEmpleado PUT /api/cost/employee/:id
func (s *Server) ActualizarEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in empleadoUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i := range s.store.empleados {
		if s.store.empleados[i].ID != id {
			continue
		}
		if in.TipoPago != "" {
			if in.TipoPago != entity.PagoLiquidacion && in.TipoPago != entity.PagoPrima {
				return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "tipo_pago debe ser liquidacion o prima"})
			}
			s.store.pagos = append(s.store.pagos, pagoRegistrado{EmpleadoID: id, Tipo: in.TipoPago, Monto: in.Monto})
			return c.JSON(fiber.Map{"id_empleado": id, "tipo_pago": in.TipoPago, "monto": in.Monto})
		}
		in.Empleado.ID = id
		s.store.empleados[i] = in.Empleado
		return c.JSON(in.Empleado)
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
}

// EliminarEmpleado DELETE /api/cost/employee/:id
func (s *Server) EliminarEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i, e := range s.store.empleados {
		if e.ID == id {
			s.store.empleados = append(s.store.empleados[:i], s.store.empleados[i+1:]...)
			return c.JSON(fiber.Map{"deleted": id})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
}

// BuscarEmpleados GET /api/cost/employee/search?term=
func (s *Server) BuscarEmpleados(c *fiber.Ctx) error {
	term := strings.ToLower(c.Query("term"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]entity.Empleado, 0)
	for _, e := range s.store.empleados {
		if strings.Contains(strings.ToLower(e.Nombre), term) || strings.Contains(strings.ToLower(e.Cargo), term) {
			out = append(out, e)
		}
	}
	return c.JSON(out)
}

// FiltrarEmpleados GET /api/cost/employee/filter?type=
func (s *Server) FiltrarEmpleados(c *fiber.Ctx) error {
	tipo := c.Query("type")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]entity.Empleado, 0)
	for _, e := range s.store.empleados {
		if tipo == "" || e.Frecuencia == tipo {
			out = append(out, e)
		}
	}
	return c.JSON(out)
}

// EstadisticasEmpleados GET /api/cost/employee/stats
func (s *Server) EstadisticasEmpleados(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	total := len(s.store.empleados)
	suma := decimal.Zero
	for _, e := range s.store.empleados {
		suma = suma.Add(e.Salario)
	}
	promedio := decimal.Zero
	if total > 0 {
		promedio = suma.Div(decimal.NewFromInt(int64(total)))
	}
	return c.JSON(fiber.Map{
		"total":            total,
		"nomina_mensual":   suma,
		"salario_promedio": promedio,
	})
}

// GastosDeEmpleado GET /api/cost/employee/:id/expenses
func (s *Server) GastosDeEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]entity.PagoNomina, 0)
	for _, p := range s.store.pagos {
		if p.EmpleadoID == id {
			out = append(out, entity.PagoNomina{Tipo: p.Tipo, Monto: p.Monto})
		}
	}
	return c.JSON(out)
}

// TotalGastosDeEmpleado GET /api/cost/employee/:id/total-expenses
func (s *Server) TotalGastosDeEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	total := decimal.Zero
	for _, p := range s.store.pagos {
		if p.EmpleadoID == id {
			total = total.Add(p.Monto)
		}
	}
	return c.JSON(fiber.Map{"total": total})
}
