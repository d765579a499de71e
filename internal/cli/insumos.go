package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) insumosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insumos",
		Short: "Insumos del negocio con su desglose por concepto y peso",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereSesion()
		},
	}
	cmd.AddCommand(
		a.insumosListarCmd(),
		a.insumosCrearCmd(),
		a.insumosEditarCmd(),
		a.insumosEliminarCmd(),
	)
	return cmd
}

func (a *App) insumosListarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista los insumos y su desglose",
		RunE: func(cmd *cobra.Command, args []string) error {
			insumos, err := a.client().Insumos.Listar(cmd.Context())
			if err != nil {
				return err
			}

			filas := make([][]string, 0, len(insumos))
			for _, in := range insumos {
				desglose := make([]string, 0, len(in.Detalles))
				for _, d := range in.Detalles {
					desglose = append(desglose, fmt.Sprintf("%s (%s kg)", d.Concepto, d.Peso))
				}
				filas = append(filas, []string{
					strconv.FormatInt(in.ID, 10),
					in.Nombre,
					Moneda(in.Valor),
					strings.Join(desglose, ", "),
				})
			}
			tabla(cmd.OutOrStdout(), []string{"ID", "INSUMO", "VALOR", "DESGLOSE"}, filas)
			return nil
		},
	}
}

// parseInsumoDetalle interpreta una entrada de desglose "concepto:peso".
func parseInsumoDetalle(s string) (entity.InsumoDetalle, error) {
	partes := strings.SplitN(s, ":", 2)
	if len(partes) != 2 {
		return entity.InsumoDetalle{}, fmt.Errorf("detalle %q: se espera concepto:peso", s)
	}
	peso, err := decimal.NewFromString(strings.TrimSpace(partes[1]))
	if err != nil {
		return entity.InsumoDetalle{}, fmt.Errorf("detalle %q: peso inválido", s)
	}
	return entity.InsumoDetalle{Concepto: strings.TrimSpace(partes[0]), Peso: peso}, nil
}

func construirInsumo(nombre string, valor float64, detalles []string) (entity.Insumo, error) {
	v := decimal.NewFromFloat(valor)
	if err := validate.Requerido(nombre, "nombre del insumo"); err != nil {
		return entity.Insumo{}, err
	}
	if err := validate.MontoPositivo(v, "valor"); err != nil {
		return entity.Insumo{}, err
	}
	in := entity.Insumo{Nombre: nombre, Valor: v}
	for _, s := range detalles {
		d, err := parseInsumoDetalle(s)
		if err != nil {
			return entity.Insumo{}, err
		}
		in.Detalles = append(in.Detalles, d)
	}
	return in, nil
}

func (a *App) insumosCrearCmd() *cobra.Command {
	var (
		nombre   string
		valor    float64
		detalles []string
	)

	cmd := &cobra.Command{
		Use:     "crear",
		Short:   "Registra un insumo",
		Example: `  lavactl insumos crear --nombre Detergente --valor 80000 --detalle "Detergente líquido:20"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := construirInsumo(nombre, valor, detalles)
			if err != nil {
				return err
			}
			creado, err := a.client().Insumos.Crear(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Insumo %q registrado (id %d) por %s\n",
				creado.Nombre, creado.ID, Moneda(creado.Valor))
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del insumo")
	cmd.Flags().Float64Var(&valor, "valor", 0, "valor del insumo")
	cmd.Flags().StringArrayVar(&detalles, "detalle", nil, "entrada del desglose en la forma concepto:peso")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("valor")
	return cmd
}

func (a *App) insumosEditarCmd() *cobra.Command {
	var (
		nombre   string
		valor    float64
		detalles []string
	)

	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza un insumo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			in, err := construirInsumo(nombre, valor, detalles)
			if err != nil {
				return err
			}
			actualizado, err := a.client().Insumos.Actualizar(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Insumo %d actualizado: %s por %s\n",
				actualizado.ID, actualizado.Nombre, Moneda(actualizado.Valor))
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "nombre del insumo")
	cmd.Flags().Float64Var(&valor, "valor", 0, "valor del insumo")
	cmd.Flags().StringArrayVar(&detalles, "detalle", nil, "entrada del desglose en la forma concepto:peso")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("valor")
	return cmd
}

func (a *App) insumosEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un insumo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if err := a.client().Insumos.Eliminar(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Insumo %d eliminado\n", id)
			return nil
		},
	}
}
