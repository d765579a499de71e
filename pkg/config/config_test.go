package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 5000, cfg.Mock.Port)
}

// Con .env y config.env presentes, los valores de ambos conviven: la
// segunda lectura complementa a la primera, no la reemplaza.
func TestLoad_CombinaDotEnvYConfigEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("APP_NAME=panel-desde-dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"),
		[]byte("LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "panel-desde-dotenv", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}
