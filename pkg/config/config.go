package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Mock    MockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración del backend REST que consume el panel.
// El default replica el endpoint local que el frontend original traía quemado.
type APIConfig struct {
	BaseURL    string
	TimeoutSec int
}

// SessionConfig ubicación del archivo de sesión (respuesta de login serializada).
type SessionConfig struct {
	Path string
}

// MockConfig configuración del backend simulado (comando mock-server).
type MockConfig struct {
	Host      string
	Port      int
	JWTSecret string
}

// Addr devuelve la dirección de escucha del mock (host:port).
func (c MockConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env, sin pisar lo ya leído del .env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lavaseco-panel"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:    getString(v, "API_BASE_URL", "http://localhost:5000"),
			TimeoutSec: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			Path: getString(v, "SESSION_PATH", defaultSessionPath()),
		},
		Mock: MockConfig{
			Host:      getString(v, "MOCK_HOST", "127.0.0.1"),
			Port:      getInt(v, "MOCK_PORT", 5000),
			JWTSecret: getString(v, "MOCK_JWT_SECRET", "lavaseco-dev-secret"),
		},
	}

	return cfg, nil
}

// defaultSessionPath ubica la sesión bajo el directorio de configuración del usuario.
func defaultSessionPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "lavactl", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
