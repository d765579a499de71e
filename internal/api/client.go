// Package api implementa el cliente REST del backend del panel: un wrapper
// por recurso, cada uno con una petición HTTP por operación. Un fallo de
// transporte o un status no exitoso se normalizan a un Error con el mensaje
// plano fijo de la operación; no hay reintentos ni clasificación.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lavaseco-primavera/panel/pkg/config"
	"github.com/lavaseco-primavera/panel/pkg/logger"
)

// Error fallo de una operación del cliente. El mensaje es el texto plano
// que muestra la interfaz; Status es 0 en fallos de transporte.
type Error struct {
	Mensaje string
	Status  int
	Err     error
}

func (e *Error) Error() string { return e.Mensaje }
func (e *Error) Unwrap() error { return e.Err }

// TokenSource entrega el token de la sesión vigente ("" si no hay sesión).
type TokenSource func() string

// Client cliente HTTP compartido por los wrappers de recurso.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *logger.Logger

	Usuarios  *UsuariosService
	Facturas  *FacturasService
	Gastos    *GastosService
	Insumos   *InsumosService
	Empleados *EmpleadosService
	Reportes  *ReportesService
}

// New construye el cliente sobre la URL base configurada. token puede ser
// nil si no hay sesión (solo login queda disponible en la práctica).
func New(cfg config.APIConfig, token TokenSource, log *logger.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		token:   token,
		log:     log,
	}
	c.Usuarios = &UsuariosService{c: c}
	c.Facturas = &FacturasService{c: c}
	c.Gastos = &GastosService{c: c}
	c.Insumos = &InsumosService{c: c}
	c.Empleados = &EmpleadosService{c: c}
	c.Reportes = &ReportesService{c: c}
	return c
}

// call ejecuta una petición JSON. authed controla si se adjunta el header
// Authorization (en el frontend original solo lo llevaban las llamadas de
// usuarios; se conserva ese comportamiento, ver DESIGN.md). failMsg es el
// mensaje fijo de la operación.
func (c *Client) call(ctx context.Context, method, path string, body, out any, authed bool, failMsg string) error {
	data, err := c.callRaw(ctx, method, path, body, authed, "application/json", failMsg)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Mensaje: failMsg, Err: err}
	}
	return nil
}

// callRaw igual que call pero devuelve el cuerpo sin decodificar (PDFs).
func (c *Client) callRaw(ctx context.Context, method, path string, body any, authed bool, accept, failMsg string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Mensaje: failMsg, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &Error{Mensaje: failMsg, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if authed {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("petición al backend")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Mensaje: failMsg, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Mensaje: failMsg, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("respuesta no exitosa")
		return nil, &Error{
			Mensaje: failMsg,
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}
	return data, nil
}
