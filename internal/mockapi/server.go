package mockapi

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lavaseco-primavera/panel/pkg/logger"
	"github.com/lavaseco-primavera/panel/pkg/token"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Config opciones del backend simulado.
type Config struct {
	JWTSecret string
	Issuer    string
}

// Server el backend simulado: estado en memoria más los handlers fiber.
type Server struct {
	store *Store
	cfg   Config
	log   *logger.Logger
}

// New construye la aplicación fiber con todas las rutas que consume el panel.
func New(cfg Config, log *logger.Logger) (*fiber.App, *Server) {
	if cfg.Issuer == "" {
		cfg.Issuer = "lavaseco-mock"
	}
	s := &Server{store: NewStore(), cfg: cfg, log: log}

	app := fiber.New(fiber.Config{
		AppName:      "lavaseco-mock",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
	})
	app.Use(recover.New())

	api := app.Group("/api")

	// Solo las rutas de usuarios verifican el token; el resto de la
	// superficie replica la laxitud del backend real.
	user := api.Group("/user")
	user.Post("/login", s.Login)
	user.Post("/register", s.RegistrarUsuario)
	user.Get("/", s.verificarToken, s.ListarUsuarios)
	user.Delete("/:id", s.verificarToken, s.EliminarUsuario)

	bill := api.Group("/bill")
	bill.Get("/", s.ListarFacturas)
	bill.Post("/", s.CrearFactura)
	bill.Put("/:id/status", s.CambiarEstadoFactura)
	bill.Put("/:id", s.ActualizarFactura)
	bill.Delete("/:id", s.EliminarFactura)

	cost := api.Group("/cost")
	cost.Get("/", s.ListarGastos)

	specific := cost.Group("/specific")
	specific.Get("/", s.ListarGastosEspecificos)
	specific.Post("/", s.CrearGastoEspecifico)
	specific.Put("/:id", s.ActualizarGastoEspecifico)
	specific.Delete("/:id", s.EliminarGastoEspecifico)

	supply := cost.Group("/supply")
	supply.Get("/", s.ListarInsumos)
	supply.Post("/", s.CrearInsumo)
	supply.Put("/:id", s.ActualizarInsumo)
	supply.Delete("/:id", s.EliminarInsumo)

	// Las rutas fijas van antes que /:id.
	employee := cost.Group("/employee")
	employee.Get("/search", s.BuscarEmpleados)
	employee.Get("/stats", s.EstadisticasEmpleados)
	employee.Get("/filter", s.FiltrarEmpleados)
	employee.Get("/", s.ListarEmpleados)
	employee.Post("/", s.CrearEmpleado)
	employee.Get("/:id/expenses", s.GastosDeEmpleado)
	employee.Get("/:id/total-expenses", s.TotalGastosDeEmpleado)
	employee.Get("/:id", s.ObtenerEmpleado)
	employee.Put("/:id", s.ActualizarEmpleado)
	employee.Delete("/:id", s.EliminarEmpleado)

	reports := api.Group("/reports")
	reports.Get("/:tipo", s.ObtenerReporte)
	reports.Post("/:tipo/pdf", s.ReportePDF)

	return app, s
}

// verificarToken exige un Bearer token firmado con el secreto del servidor.
func (s *Server) verificarToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "UNAUTHORIZED", Message: "token requerido"})
	}
	if _, err := token.Parse(s.cfg.JWTSecret, strings.TrimPrefix(header, "Bearer ")); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	return c.Next()
}
