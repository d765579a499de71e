package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/lavaseco-primavera/panel/internal/cli"
	"github.com/lavaseco-primavera/panel/pkg/config"
	"github.com/lavaseco-primavera/panel/pkg/logger"
)

func main() {
	// El .env es opcional: en producción la configuración llega por entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	root := cli.NewRoot(cfg, log)
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("comando finalizado con error")
		os.Exit(1)
	}
}
