package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) gastosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gastos",
		Short: "Gastos: mensuales del negocio y gastos específicos",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereSesion()
		},
	}
	cmd.AddCommand(
		a.gastosMesCmd(),
		a.gastosListarCmd(),
		a.gastosCrearCmd(),
		a.gastosEditarCmd(),
		a.gastosEliminarCmd(),
	)
	return cmd
}

func (a *App) gastosMesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mes",
		Short: "Muestra los gastos operativos del mes y su total",
		RunE: func(cmd *cobra.Command, args []string) error {
			gastos, err := a.client().Gastos.ListarMensuales(cmd.Context())
			if err != nil {
				return err
			}

			total := decimal.Zero
			filas := make([][]string, 0, len(gastos))
			for _, g := range gastos {
				total = total.Add(g.Total)
				filas = append(filas, []string{
					strconv.FormatInt(g.ID, 10),
					g.Concepto,
					fecha(g.FechaCompra),
					Moneda(g.Total),
				})
			}
			out := cmd.OutOrStdout()
			tabla(out, []string{"ID", "CONCEPTO", "FECHA", "TOTAL"}, filas)
			fmt.Fprintf(out, "\nTotal del mes: %s\n", Moneda(total))
			return nil
		},
	}
}

func (a *App) gastosListarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista los gastos específicos",
		RunE: func(cmd *cobra.Command, args []string) error {
			gastos, err := a.client().Gastos.ListarEspecificos(cmd.Context())
			if err != nil {
				return err
			}

			filas := make([][]string, 0, len(gastos))
			for _, g := range gastos {
				filas = append(filas, []string{
					strconv.FormatInt(g.ID, 10),
					g.Nombre,
					Moneda(g.Monto),
				})
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "GASTO", "MONTO"}, filas)
			return nil
		},
	}
}

func (a *App) gastosCrearCmd() *cobra.Command {
	var (
		nombre string
		monto  float64
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra un gasto específico",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := decimal.NewFromFloat(monto)
			if err := validate.Requerido(nombre, "nombre del gasto"); err != nil {
				return err
			}
			if err := validate.MontoPositivo(m, "monto"); err != nil {
				return err
			}

			creado, err := a.client().Gastos.CrearEspecifico(cmd.Context(), entity.GastoEspecifico{
				Nombre: nombre,
				Monto:  m,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gasto %q registrado (id %d) por %s\n",
				creado.Nombre, creado.ID, Moneda(creado.Monto))
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del gasto")
	cmd.Flags().Float64Var(&monto, "monto", 0, "monto del gasto")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("monto")
	return cmd
}

func (a *App) gastosEditarCmd() *cobra.Command {
	var (
		nombre string
		monto  float64
	)

	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza un gasto específico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			m := decimal.NewFromFloat(monto)
			if err := validate.Requerido(nombre, "nombre del gasto"); err != nil {
				return err
			}
			if err := validate.MontoPositivo(m, "monto"); err != nil {
				return err
			}

			actualizado, err := a.client().Gastos.ActualizarEspecifico(cmd.Context(), id, entity.GastoEspecifico{
				Nombre: nombre,
				Monto:  m,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gasto %d actualizado: %s por %s\n",
				actualizado.ID, actualizado.Nombre, Moneda(actualizado.Monto))
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del gasto")
	cmd.Flags().Float64Var(&monto, "monto", 0, "monto del gasto")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("monto")
	return cmd
}

func (a *App) gastosEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un gasto específico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if err := a.client().Gastos.EliminarEspecifico(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gasto %d eliminado\n", id)
			return nil
		},
	}
}
