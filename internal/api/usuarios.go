package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/session"
)

// UsuariosService llamadas a /api/user. Estas son las únicas rutas a las
// que el frontend original adjuntaba el Bearer token.
type UsuariosService struct {
	c *Client
}

type credenciales struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login autentica y devuelve la respuesta de login tal cual (la sesión).
func (s *UsuariosService) Login(ctx context.Context, email, password string) (*session.Sesion, error) {
	var ses session.Sesion
	err := s.c.call(ctx, http.MethodPost, "/api/user/login", credenciales{Email: email, Password: password}, &ses, false, "Failed to login")
	if err != nil {
		return nil, err
	}
	return &ses, nil
}

// Listar devuelve todas las cuentas (solo lo usa la pantalla de admin).
func (s *UsuariosService) Listar(ctx context.Context) ([]entity.Usuario, error) {
	var out []entity.Usuario
	if err := s.c.call(ctx, http.MethodGet, "/api/user/", nil, &out, true, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return out, nil
}

// Registrar crea una cuenta nueva.
func (s *UsuariosService) Registrar(ctx context.Context, u entity.Usuario) (*entity.Usuario, error) {
	var out entity.Usuario
	if err := s.c.call(ctx, http.MethodPost, "/api/user/register", u, &out, true, "Failed to create user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Eliminar borra una cuenta por id.
func (s *UsuariosService) Eliminar(ctx context.Context, id int64) error {
	return s.c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/user/%d", id), nil, nil, true, "Failed to delete user")
}
