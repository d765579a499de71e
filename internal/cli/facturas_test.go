package cli_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/cli"
	"github.com/lavaseco-primavera/panel/internal/session"
	"github.com/lavaseco-primavera/panel/pkg/config"
	"github.com/lavaseco-primavera/panel/pkg/logger"
)

// entornoCaptura levanta un backend que solo graba los payloads recibidos
// (respondiendo con un eco) y devuelve la raíz apuntando a él, con una
// sesión ya iniciada. Sirve para verificar qué viaja exactamente al backend.
func entornoCaptura(t *testing.T) (*cobra.Command, func(metodo, ruta string) map[string]any) {
	t.Helper()

	var mu sync.Mutex
	cuerpos := map[string]map[string]any{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		mu.Lock()
		cuerpos[r.Method+" "+r.URL.Path] = body
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)

	sesPath := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, session.NewStore(sesPath).Save(&session.Sesion{
		Email: "admin@admin",
		Token: "token-de-pruebas",
	}))

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	cfg := &config.Config{
		App:     config.AppConfig{Env: "development", Name: "lavaseco-panel", LogLevel: "error"},
		API:     config.APIConfig{BaseURL: srv.URL, TimeoutSec: 5},
		Session: config.SessionConfig{Path: sesPath},
	}

	capturado := func(metodo, ruta string) map[string]any {
		mu.Lock()
		defer mu.Unlock()
		return cuerpos[metodo+" "+ruta]
	}
	return cli.NewRoot(cfg, log), capturado
}

// Fijar la fecha de entrega al crear debe mandar la factura ya entregada:
// el backend no aplica esa regla, el panel sí.
func TestCrearConEntrega_ElPayloadViajaEntregado(t *testing.T) {
	root, capturado := entornoCaptura(t)

	_, err := ejecutar(t, root, "facturas", "crear",
		"--cliente", "Ana Díaz", "--telefono", "3001234567",
		"--detalle", "2:Camisa:10000", "--entrega", "2024-05-01")
	require.NoError(t, err)

	body := capturado(http.MethodPost, "/api/bill/")
	require.NotNil(t, body)
	assert.Equal(t, "Entregado", body["estado"])
	assert.Equal(t, "2024-05-01", body["fecha_final_fact"])
}

func TestCrearSinEntrega_ElPayloadNoFijaEstado(t *testing.T) {
	root, capturado := entornoCaptura(t)

	_, err := ejecutar(t, root, "facturas", "crear",
		"--cliente", "Ana Díaz", "--telefono", "3001234567",
		"--detalle", "2:Camisa:10000")
	require.NoError(t, err)

	body := capturado(http.MethodPost, "/api/bill/")
	require.NotNil(t, body)
	_, tiene := body["estado"]
	assert.False(t, tiene)
}

func TestEditarConEntrega_ElPayloadViajaEntregado(t *testing.T) {
	root, capturado := entornoCaptura(t)

	_, err := ejecutar(t, root, "facturas", "editar", "1", "--entrega", "2024-05-01")
	require.NoError(t, err)

	body := capturado(http.MethodPut, "/api/bill/1")
	require.NotNil(t, body)
	assert.Equal(t, "Entregado", body["estado"])
	assert.Equal(t, "2024-05-01", body["fecha_final_fact"])
}

// Las banderas no usadas no viajan: un backend que aplique el payload campo
// a campo no debe pisar el valor almacenado con un cero.
func TestEditar_SoloViajanLosCamposTocados(t *testing.T) {
	root, capturado := entornoCaptura(t)

	_, err := ejecutar(t, root, "facturas", "editar", "1", "--entrega", "2024-05-01")
	require.NoError(t, err)

	body := capturado(http.MethodPut, "/api/bill/1")
	require.NotNil(t, body)
	_, tiene := body["valor_fact"]
	assert.False(t, tiene)
	_, tiene = body["cod_factura"]
	assert.False(t, tiene)
}
