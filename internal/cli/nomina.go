package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) nominaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nomina",
		Short: "Nómina: empleados, pagos de liquidación y prima, estadísticas",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereSesion()
		},
	}
	cmd.AddCommand(
		a.nominaListarCmd(),
		a.nominaCrearCmd(),
		a.nominaEditarCmd(),
		a.nominaEliminarCmd(),
		a.nominaPagoCmd(),
		a.nominaBuscarCmd(),
		a.nominaStatsCmd(),
		a.nominaGastosCmd(),
	)
	return cmd
}

func filasEmpleados(empleados []entity.Empleado) [][]string {
	filas := make([][]string, 0, len(empleados))
	for _, e := range empleados {
		filas = append(filas, []string{
			strconv.FormatInt(e.ID, 10),
			e.Nombre,
			e.Cargo,
			Moneda(e.Salario),
			e.Telefono,
			e.Frecuencia,
		})
	}
	return filas
}

var encabezadosEmpleados = []string{"ID", "NOMBRE", "CARGO", "SALARIO", "TELÉFONO", "FRECUENCIA"}

func (a *App) nominaListarCmd() *cobra.Command {
	var tipo string

	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista los empleados, opcionalmente por frecuencia de pago",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				empleados []entity.Empleado
				err       error
			)
			if tipo != "" {
				empleados, err = a.client().Empleados.FiltrarPorTipo(cmd.Context(), tipo)
			} else {
				empleados, err = a.client().Empleados.Listar(cmd.Context())
			}
			if err != nil {
				return err
			}
			tabla(cmd.OutOrStdout(), encabezadosEmpleados, filasEmpleados(empleados))
			return nil
		},
	}

	cmd.Flags().StringVar(&tipo, "tipo", "", "frecuencia de pago (quincenal o mensual)")
	return cmd
}

func construirEmpleado(nombre, cargo, telefono, frecuencia string, salario float64) (entity.Empleado, error) {
	s := decimal.NewFromFloat(salario)
	if err := validate.Requerido(nombre, "nombre del empleado"); err != nil {
		return entity.Empleado{}, err
	}
	if err := validate.Requerido(cargo, "cargo"); err != nil {
		return entity.Empleado{}, err
	}
	if err := validate.Telefono(telefono); err != nil {
		return entity.Empleado{}, err
	}
	if err := validate.MontoPositivo(s, "salario"); err != nil {
		return entity.Empleado{}, err
	}
	if frecuencia != entity.FrecuenciaQuincenal && frecuencia != entity.FrecuenciaMensual {
		return entity.Empleado{}, fmt.Errorf("frecuencia %q inválida, opciones: %s, %s",
			frecuencia, entity.FrecuenciaQuincenal, entity.FrecuenciaMensual)
	}
	return entity.Empleado{
		Nombre:     nombre,
		Cargo:      cargo,
		Salario:    s,
		Telefono:   telefono,
		Frecuencia: frecuencia,
	}, nil
}

func (a *App) nominaCrearCmd() *cobra.Command {
	var (
		nombre, cargo, telefono, frecuencia string
		salario                             float64
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra un empleado",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := construirEmpleado(nombre, cargo, telefono, frecuencia, salario)
			if err != nil {
				return err
			}
			creado, err := a.client().Empleados.Crear(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empleado %s registrado (id %d)\n", creado.Nombre, creado.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del empleado")
	cmd.Flags().StringVar(&cargo, "cargo", "", "cargo o tipo de empleado")
	cmd.Flags().StringVar(&telefono, "telefono", "", "teléfono del empleado")
	cmd.Flags().Float64Var(&salario, "salario", 0, "salario del empleado")
	cmd.Flags().StringVar(&frecuencia, "frecuencia", entity.FrecuenciaQuincenal, "frecuencia de pago (quincenal o mensual)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("cargo")
	_ = cmd.MarkFlagRequired("salario")
	return cmd
}

func (a *App) nominaEditarCmd() *cobra.Command {
	var (
		nombre, cargo, telefono, frecuencia string
		salario                             float64
	)

	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza los datos de un empleado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			e, err := construirEmpleado(nombre, cargo, telefono, frecuencia, salario)
			if err != nil {
				return err
			}
			actualizado, err := a.client().Empleados.Actualizar(cmd.Context(), id, e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empleado %d actualizado\n", actualizado.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del empleado")
	cmd.Flags().StringVar(&cargo, "cargo", "", "cargo o tipo de empleado")
	cmd.Flags().StringVar(&telefono, "telefono", "", "teléfono del empleado")
	cmd.Flags().Float64Var(&salario, "salario", 0, "salario del empleado")
	cmd.Flags().StringVar(&frecuencia, "frecuencia", entity.FrecuenciaQuincenal, "frecuencia de pago (quincenal o mensual)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("cargo")
	_ = cmd.MarkFlagRequired("salario")
	return cmd
}

func (a *App) nominaEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un empleado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if err := a.client().Empleados.Eliminar(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Empleado %d eliminado\n", id)
			return nil
		},
	}
}

func (a *App) nominaPagoCmd() *cobra.Command {
	var (
		tipo      string
		monto     float64
		confirmar bool
	)

	cmd := &cobra.Command{
		Use:   "pago <id>",
		Short: "Registra un pago de liquidación o prima a un empleado",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if tipo != entity.PagoLiquidacion && tipo != entity.PagoPrima {
				return fmt.Errorf("tipo de pago %q inválido, opciones: %s, %s",
					tipo, entity.PagoLiquidacion, entity.PagoPrima)
			}
			m := decimal.NewFromFloat(monto)
			if err := validate.MontoPositivo(m, "monto"); err != nil {
				return err
			}

			empleado, err := a.client().Empleados.Obtener(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !confirmar {
				fmt.Fprintf(out, "¿Registrar pago de %s por %s a %s? [s/N]: ", tipo, Moneda(m), empleado.Nombre)
				lector := bufio.NewReader(cmd.InOrStdin())
				linea, _ := lector.ReadString('\n')
				respuesta := strings.ToLower(strings.TrimSpace(linea))
				if respuesta != "s" && respuesta != "si" {
					fmt.Fprintln(out, "Pago cancelado")
					return nil
				}
			}

			pago := entity.PagoNomina{Tipo: tipo, Monto: m}
			if err := a.client().Empleados.RegistrarPago(cmd.Context(), id, pago); err != nil {
				return err
			}
			fmt.Fprintf(out, "Pago de %s por %s registrado a %s\n", tipo, Moneda(m), empleado.Nombre)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&tipo, "tipo", "", "tipo de pago (liquidacion o prima)")
	cmd.Flags().Float64Var(&monto, "monto", 0, "monto del pago")
	cmd.Flags().BoolVar(&confirmar, "confirmar", false, "omite la confirmación interactiva")
	_ = cmd.MarkFlagRequired("tipo")
	_ = cmd.MarkFlagRequired("monto")
	return cmd
}

func (a *App) nominaBuscarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buscar <término>",
		Short: "Busca empleados por nombre o cargo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			empleados, err := a.client().Empleados.Buscar(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tabla(cmd.OutOrStdout(), encabezadosEmpleados, filasEmpleados(empleados))
			return nil
		},
	}
}

func (a *App) nominaStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Muestra el total de empleados, la nómina mensual y el salario promedio",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.client().Empleados.Estadisticas(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Empleados:        %d\n", stats.Total)
			fmt.Fprintf(out, "Nómina mensual:   %s\n", Moneda(stats.NominaMensual))
			fmt.Fprintf(out, "Salario promedio: %s\n", Moneda(stats.SalarioPromedio))
			return nil
		},
	}
}

func (a *App) nominaGastosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gastos <id>",
		Short: "Lista los pagos registrados a un empleado y su total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			pagos, err := a.client().Empleados.GastosDe(cmd.Context(), id)
			if err != nil {
				return err
			}
			total, err := a.client().Empleados.TotalGastosDe(cmd.Context(), id)
			if err != nil {
				return err
			}

			filas := make([][]string, 0, len(pagos))
			for _, p := range pagos {
				filas = append(filas, []string{p.Tipo, Moneda(p.Monto)})
			}
			out := cmd.OutOrStdout()
			tabla(out, []string{"TIPO", "MONTO"}, filas)
			fmt.Fprintf(out, "\nTotal pagado: %s\n", Moneda(total))
			return nil
		},
	}
}
