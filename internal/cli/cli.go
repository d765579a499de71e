// Package cli implementa los comandos del panel de administración: sesión,
// facturación, gastos, insumos, nómina, usuarios y el visor de reportes.
// Cada comando es una pantalla del panel original traducida a terminal.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/api"
	"github.com/lavaseco-primavera/panel/internal/auth"
	"github.com/lavaseco-primavera/panel/internal/domain"
	"github.com/lavaseco-primavera/panel/internal/session"
	"github.com/lavaseco-primavera/panel/pkg/config"
	"github.com/lavaseco-primavera/panel/pkg/logger"
)

// App dependencias compartidas por todos los comandos.
type App struct {
	cfg   *config.Config
	log   *logger.Logger
	store *session.Store
}

// NewRoot construye el árbol de comandos de lavactl.
func NewRoot(cfg *config.Config, log *logger.Logger) *cobra.Command {
	a := &App{cfg: cfg, log: log, store: session.NewStore(cfg.Session.Path)}

	root := &cobra.Command{
		Use:   "lavactl",
		Short: "Panel de administración de Lavaseco Primavera",
		Long: `lavactl es el panel de administración de Lavaseco Primavera:
facturación, gastos, insumos, nómina, usuarios y reportes, contra el
backend REST del negocio.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.facturasCmd(),
		a.gastosCmd(),
		a.insumosCmd(),
		a.nominaCmd(),
		a.usuariosCmd(),
		a.reportesCmd(),
		a.mockServerCmd(),
	)
	return root
}

// client construye el cliente REST. El token sale del archivo de sesión en
// el momento de cada petición, no al construir el cliente.
func (a *App) client() *api.Client {
	return api.New(a.cfg.API, func() string {
		ses, err := a.store.Load()
		if err != nil {
			return ""
		}
		return ses.Token
	}, a.log)
}

// sesion devuelve la sesión vigente o un error accionable si no la hay.
func (a *App) sesion() (*session.Sesion, error) {
	ses, err := a.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, fmt.Errorf("no hay sesión activa, ejecuta `lavactl login`")
		}
		return nil, err
	}
	return ses, nil
}

// requiereSesion el guard de ruta privada: basta con que exista sesión.
func (a *App) requiereSesion() error {
	_, err := a.sesion()
	return err
}

// requiereAdmin el guard de ruta de administrador.
func (a *App) requiereAdmin() error {
	ses, err := a.sesion()
	if err != nil {
		return err
	}
	if !auth.EsAdmin(ses) {
		return fmt.Errorf("esta sección requiere rol de administrador: %w", domain.ErrForbidden)
	}
	return nil
}
