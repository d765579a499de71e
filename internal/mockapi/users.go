package mockapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/pkg/token"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Nombre string `json:"nombre,omitempty"`
	Email  string `json:"email"`
	Rol    string `json:"rol,omitempty"`
	Token  string `json:"token"`
}

// Login POST /api/user/login
func (s *Server) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	hash, ok := s.store.passwords[in.Email]
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}

	var usuario entity.Usuario
	for _, u := range s.store.usuarios {
		if u.Email == in.Email {
			usuario = u
			break
		}
	}

	tok, err := token.Generate(s.cfg.JWTSecret, usuario.Email, usuario.Rol, usuario.Rol == entity.RolAdmin, s.cfg.Issuer, 60)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(loginResponse{Nombre: usuario.Nombre, Email: usuario.Email, Rol: usuario.Rol, Token: tok})
}

// RegistrarUsuario POST /api/user/register
func (s *Server) RegistrarUsuario(c *fiber.Ctx) error {
	var in entity.Usuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, existe := s.store.passwords[in.Email]; existe {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if in.Rol == "" {
		in.Rol = entity.RolUser
	}
	in.ID = s.store.id()
	in.Password = ""
	s.store.usuarios = append(s.store.usuarios, in)
	s.store.passwords[in.Email] = string(hash)

	return c.Status(fiber.StatusCreated).JSON(in)
}

// ListarUsuarios GET /api/user/
func (s *Server) ListarUsuarios(c *fiber.Ctx) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return c.JSON(s.store.usuarios)
}

// EliminarUsuario DELETE /api/user/:id
func (s *Server) EliminarUsuario(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for i, u := range s.store.usuarios {
		if u.ID == id {
			delete(s.store.passwords, u.Email)
			s.store.usuarios = append(s.store.usuarios[:i], s.store.usuarios[i+1:]...)
			return c.JSON(fiber.Map{"deleted": id})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
}
