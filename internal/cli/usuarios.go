package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) usuariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuarios",
		Short: "Cuentas del panel (solo administradores)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereAdmin()
		},
	}
	cmd.AddCommand(
		a.usuariosListarCmd(),
		a.usuariosRegistrarCmd(),
		a.usuariosEliminarCmd(),
	)
	return cmd
}

func (a *App) usuariosListarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista las cuentas registradas",
		RunE: func(cmd *cobra.Command, args []string) error {
			usuarios, err := a.client().Usuarios.Listar(cmd.Context())
			if err != nil {
				return err
			}

			filas := make([][]string, 0, len(usuarios))
			for _, u := range usuarios {
				filas = append(filas, []string{
					strconv.FormatInt(u.ID, 10),
					u.Nombre,
					u.Email,
					u.Rol,
				})
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "NOMBRE", "EMAIL", "ROL"}, filas)
			return nil
		},
	}
}

func (a *App) usuariosRegistrarCmd() *cobra.Command {
	var nombre, email, password, rol string

	cmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registra una cuenta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Email(email); err != nil {
				return err
			}
			if err := validate.Password(password); err != nil {
				return err
			}
			if rol != entity.RolUser && rol != entity.RolAdmin {
				return fmt.Errorf("rol %q inválido, opciones: %s, %s", rol, entity.RolUser, entity.RolAdmin)
			}

			creado, err := a.client().Usuarios.Registrar(cmd.Context(), entity.Usuario{
				Nombre:   nombre,
				Email:    email,
				Password: password,
				Rol:      rol,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cuenta %s registrada (id %d) con rol %s\n",
				creado.Email, creado.ID, creado.Rol)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre de la persona")
	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "contraseña de la cuenta")
	cmd.Flags().StringVar(&rol, "rol", entity.RolUser, "rol de la cuenta (user o admin)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *App) usuariosEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if err := a.client().Usuarios.Eliminar(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cuenta %d eliminada\n", id)
			return nil
		},
	}
}
