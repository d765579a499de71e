package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión contra el backend y guarda la sesión local",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Email(email); err != nil {
				return err
			}
			if err := validate.Requerido(password, "password"); err != nil {
				return err
			}

			ses, err := a.client().Usuarios.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.store.Save(ses); err != nil {
				return fmt.Errorf("guardar sesión: %w", err)
			}

			nombre := ses.Nombre
			if nombre == "" {
				nombre = ses.Email
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada como %s\n", nombre)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "contraseña de la cuenta")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión local",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}
