package cli_test

import (
	"bytes"
	"net"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/cli"
	"github.com/lavaseco-primavera/panel/internal/mockapi"
	"github.com/lavaseco-primavera/panel/pkg/config"
	"github.com/lavaseco-primavera/panel/pkg/logger"
)

// entorno levanta el backend simulado y devuelve una raíz de comandos
// apuntando a él, con el archivo de sesión en un directorio temporal.
func entorno(t *testing.T) *cobra.Command {
	t.Helper()

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	app, _ := mockapi.New(mockapi.Config{JWTSecret: "secret-de-pruebas"}, log)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	cfg := &config.Config{
		App:     config.AppConfig{Env: "development", Name: "lavaseco-panel", LogLevel: "error"},
		API:     config.APIConfig{BaseURL: "http://" + ln.Addr().String(), TimeoutSec: 5},
		Session: config.SessionConfig{Path: filepath.Join(t.TempDir(), "session.json")},
	}
	return cli.NewRoot(cfg, log)
}

// ejecutar corre la raíz con los argumentos dados y devuelve la salida.
func ejecutar(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestComandosPrivadosSinSesion(t *testing.T) {
	root := entorno(t)

	_, err := ejecutar(t, root, "facturas", "listar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lavactl login")
}

func TestLoginYListadoDeFacturas(t *testing.T) {
	root := entorno(t)

	out, err := ejecutar(t, root, "login", "--email", "admin@admin", "--password", "admin123")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión iniciada")

	out, err = ejecutar(t, root, "facturas", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "F-001")
	assert.Contains(t, out, "Sucursal Cedritos")
}

func TestUsuariosExigeAdmin(t *testing.T) {
	root := entorno(t)

	_, err := ejecutar(t, root, "login", "--email", "cajero@lavaseco.co", "--password", "cajero123")
	require.NoError(t, err)

	_, err = ejecutar(t, root, "usuarios", "listar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "administrador")
}

func TestReporteDeGastosConFiltros(t *testing.T) {
	root := entorno(t)

	_, err := ejecutar(t, root, "login", "--email", "admin@admin", "--password", "admin123")
	require.NoError(t, err)

	out, err := ejecutar(t, root, "reportes", "gastos", "--orden", "total_gastos", "--dir", "desc")
	require.NoError(t, err)
	assert.Contains(t, out, "Registros:")
	assert.Contains(t, out, "Total:")
}

func TestLogoutCierraLaSesion(t *testing.T) {
	root := entorno(t)

	_, err := ejecutar(t, root, "login", "--email", "admin@admin", "--password", "admin123")
	require.NoError(t, err)

	out, err := ejecutar(t, root, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")

	_, err = ejecutar(t, root, "gastos", "mes")
	require.Error(t, err)
}
