// Package session maneja la copia local de la respuesta de login, la única
// señal de autenticación del panel. En el SPA original vivía en
// sessionStorage; aquí es un archivo que se escribe al iniciar sesión y se
// borra al cerrarla.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/lavaseco-primavera/panel/internal/domain"
)

// Sesion la respuesta de login serializada: email y token como mínimo.
type Sesion struct {
	Nombre string `json:"nombre,omitempty"`
	Email  string `json:"email"`
	Rol    string `json:"rol,omitempty"`
	Token  string `json:"token"`
}

// Store acceso tipado al archivo de sesión.
type Store struct {
	path string
}

// NewStore construye el store sobre la ruta configurada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persiste la sesión (se llama una sola vez, al iniciar sesión).
func (s *Store) Save(ses *Sesion) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(ses)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load lee la sesión vigente. Sin archivo o con contenido ilegible devuelve
// ErrNoSession: para los guards es lo mismo que no estar autenticado.
func (s *Store) Load() (*Sesion, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoSession
		}
		return nil, err
	}
	var ses Sesion
	if err := json.Unmarshal(data, &ses); err != nil {
		return nil, domain.ErrNoSession
	}
	return &ses, nil
}

// Clear borra la sesión (logout). Que no exista no es un error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
