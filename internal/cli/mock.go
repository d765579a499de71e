package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/mockapi"
)

func (a *App) mockServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mock-server",
		Short: "Levanta un backend simulado con datos de ejemplo",
		Long: `Levanta un backend simulado en memoria con las mismas rutas que el
backend real y datos de ejemplo, para desarrollar y probar el panel sin
infraestructura. Las cuentas sembradas son admin@admin/admin123 y
cajero@lavaseco.co/cajero123.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _ := mockapi.New(mockapi.Config{
				JWTSecret: a.cfg.Mock.JWTSecret,
				Issuer:    a.cfg.App.Name,
			}, a.log)

			addr := a.cfg.Mock.Addr()
			a.log.Info().Str("addr", addr).Msg("backend simulado escuchando")
			fmt.Fprintf(cmd.OutOrStdout(), "Backend simulado en http://%s (Ctrl-C para detener)\n", addr)

			go func() {
				if err := app.Listen(addr); err != nil {
					a.log.Error().Err(err).Msg("servidor simulado finalizado")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case <-cmd.Context().Done():
			}

			a.log.Info().Msg("señal de apagado recibida, cerrando servidor...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.ShutdownWithContext(shutdownCtx)
		},
	}
}
