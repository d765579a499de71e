package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/api"
	"github.com/lavaseco-primavera/panel/internal/domain/billing"
	"github.com/lavaseco-primavera/panel/internal/domain/entity"
	"github.com/lavaseco-primavera/panel/internal/validate"
)

func (a *App) facturasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facturas",
		Short: "Facturación: listado, creación y entrega de facturas",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereSesion()
		},
	}
	cmd.AddCommand(
		a.facturasListarCmd(),
		a.facturasCrearCmd(),
		a.facturasEditarCmd(),
		a.facturasEstadoCmd(),
		a.facturasEliminarCmd(),
	)
	return cmd
}

func (a *App) facturasListarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista las facturas registradas",
		RunE: func(cmd *cobra.Command, args []string) error {
			facturas, err := a.client().Facturas.Listar(cmd.Context())
			if err != nil {
				return err
			}

			filas := make([][]string, 0, len(facturas))
			for i := range facturas {
				f := &facturas[i]
				cliente := "-"
				if f.Cliente != nil {
					cliente = f.Cliente.Nombre
				}
				filas = append(filas, []string{
					strconv.FormatInt(f.ID, 10),
					f.Codigo,
					cliente,
					f.NombreSucursal(),
					fecha(f.FechaCreacion),
					fecha(f.FechaFinal),
					Moneda(f.Valor),
					f.Estado,
				})
			}
			tabla(cmd.OutOrStdout(),
				[]string{"ID", "CÓDIGO", "CLIENTE", "SUCURSAL", "CREACIÓN", "ENTREGA", "VALOR", "ESTADO"},
				filas)
			return nil
		},
	}
}

// parseDetalle interpreta una línea de prenda "cantidad:prenda:valor[:otras]".
func parseDetalle(s string) (entity.FacturaDetalle, error) {
	partes := strings.SplitN(s, ":", 4)
	if len(partes) < 3 {
		return entity.FacturaDetalle{}, fmt.Errorf("detalle %q: se espera cantidad:prenda:valor_unitario", s)
	}
	cantidad, err := strconv.Atoi(strings.TrimSpace(partes[0]))
	if err != nil {
		return entity.FacturaDetalle{}, fmt.Errorf("detalle %q: cantidad inválida", s)
	}
	valor, err := decimal.NewFromString(strings.TrimSpace(partes[2]))
	if err != nil {
		return entity.FacturaDetalle{}, fmt.Errorf("detalle %q: valor unitario inválido", s)
	}
	d := entity.FacturaDetalle{
		Cantidad:       cantidad,
		Especificacion: strings.TrimSpace(partes[1]),
		ValorUnitario:  valor,
	}
	if len(partes) == 4 {
		d.CaractOtras = strings.TrimSpace(partes[3])
	}
	return d, nil
}

func (a *App) facturasCrearCmd() *cobra.Command {
	var (
		codigo, cliente, telefono string
		fechaCreacion, entrega    string
		sucursal                  string
		detalles                  []string
	)

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Registra una factura nueva",
		Long: `Registra una factura nueva. Cada prenda se pasa con --detalle en la
forma cantidad:prenda:valor_unitario[:otras]; el valor total se calcula
como la suma de cantidad por valor unitario.`,
		Example: `  lavactl facturas crear --codigo F-101 --cliente "Ana Díaz" --telefono 3001234567 \
    --sucursal "Sucursal Cedritos" --detalle "2:Camisa:10000" --detalle "1:Pantalón:5000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if codigo == "" {
				codigo = "F-" + strings.ToUpper(uuid.NewString()[:8])
			}
			if err := validate.Requerido(cliente, "cliente"); err != nil {
				return err
			}
			if err := validate.Telefono(telefono); err != nil {
				return err
			}
			if len(detalles) == 0 {
				return fmt.Errorf("la factura necesita al menos un --detalle")
			}

			f := entity.Factura{
				Codigo:        codigo,
				FechaCreacion: entity.ParseFecha(fechaCreacion),
				FechaFinal:    entity.ParseFecha(entrega),
				Cliente:       &entity.Cliente{Nombre: cliente, Telefono: telefono},
			}
			if fechaCreacion == "" {
				f.FechaCreacion = entity.Fecha{Time: time.Now()}
			}
			for _, s := range detalles {
				d, err := parseDetalle(s)
				if err != nil {
					return err
				}
				if err := validate.CantidadMinima(d.Cantidad, "cantidad de prendas"); err != nil {
					return err
				}
				if err := validate.MontoPositivo(d.ValorUnitario, "valor unitario"); err != nil {
					return err
				}
				f.Detalles = append(f.Detalles, d)
			}
			f.Valor = billing.TotalFactura(f.Detalles)
			// La fecha de entrega fijada manda sobre el estado, como en el
			// formulario original: la factura viaja ya entregada.
			billing.AplicarEntrega(&f)

			if sucursal != "" {
				suc := entity.BuscarSucursal(sucursal)
				if suc == nil {
					nombres := make([]string, len(entity.Sucursales))
					for i, s := range entity.Sucursales {
						nombres[i] = s.Nombre
					}
					return fmt.Errorf("sucursal desconocida %q, opciones: %s", sucursal, strings.Join(nombres, ", "))
				}
				f.Sucursal = suc
			}

			creada, err := a.client().Facturas.Crear(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Factura %s creada (id %d) por %s, estado %s\n",
				creada.Codigo, creada.ID, Moneda(creada.Valor), creada.Estado)
			return nil
		},
	}

	cmd.Flags().StringVar(&codigo, "codigo", "", "código de la factura (se genera uno si se omite)")
	cmd.Flags().StringVar(&cliente, "cliente", "", "nombre del cliente")
	cmd.Flags().StringVar(&telefono, "telefono", "", "teléfono del cliente")
	cmd.Flags().StringVar(&fechaCreacion, "fecha", "", "fecha de creación (2006-01-02, hoy si se omite)")
	cmd.Flags().StringVar(&entrega, "entrega", "", "fecha de entrega; si se indica, la factura queda Entregada")
	cmd.Flags().StringVar(&sucursal, "sucursal", "", "sucursal que recibe la orden")
	cmd.Flags().StringArrayVar(&detalles, "detalle", nil, "prenda en la forma cantidad:prenda:valor_unitario[:otras]")
	return cmd
}

func (a *App) facturasEditarCmd() *cobra.Command {
	var (
		entrega, estado string
		valor           float64
	)

	cmd := &cobra.Command{
		Use:   "editar <id>",
		Short: "Actualiza una factura: entrega, estado o valor",
		Long: `Actualiza los campos indicados de una factura. Al fijar la fecha de
entrega el estado pasa a Entregado sin importar lo que se envíe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}

			// Solo viajan los campos cuyas banderas se usaron; un backend que
			// aplique el payload campo a campo no pisa lo que no se tocó.
			var cambios api.FacturaCambios
			if cmd.Flags().Changed("entrega") {
				ff := entity.ParseFecha(entrega)
				cambios.FechaFinal = &ff
			}
			if cmd.Flags().Changed("estado") {
				cambios.Estado = entity.NormalizarEstado(estado)
			}
			if cmd.Flags().Changed("valor") {
				v := decimal.NewFromFloat(valor)
				cambios.Valor = &v
			}
			if cambios.FechaFinal != nil {
				cambios.Estado = billing.EstadoTrasEntrega(*cambios.FechaFinal, cambios.Estado)
			}

			actualizada, err := a.client().Facturas.Actualizar(cmd.Context(), id, cambios)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Factura %s actualizada, estado %s\n",
				actualizada.Codigo, actualizada.Estado)
			return nil
		},
	}

	cmd.Flags().StringVar(&entrega, "entrega", "", "fecha de entrega (2006-01-02)")
	cmd.Flags().StringVar(&estado, "estado", "", "estado (Pendiente o Entregado)")
	cmd.Flags().Float64Var(&valor, "valor", 0, "valor total de la factura")
	return cmd
}

func (a *App) facturasEstadoCmd() *cobra.Command {
	var confirmar bool

	cmd := &cobra.Command{
		Use:   "estado <id>",
		Short: "Alterna el estado de una factura entre Pendiente y Entregado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}

			out := cmd.OutOrStdout()
			if !confirmar {
				fmt.Fprintf(out, "¿Cambiar el estado de la factura %d? [s/N]: ", id)
				lector := bufio.NewReader(cmd.InOrStdin())
				linea, _ := lector.ReadString('\n')
				respuesta := strings.ToLower(strings.TrimSpace(linea))
				if respuesta != "s" && respuesta != "si" {
					fmt.Fprintln(out, "Cambio cancelado")
					return nil
				}
			}

			if err := a.client().Facturas.CambiarEstado(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Estado de la factura %d actualizado\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmar, "confirmar", false, "omite la confirmación interactiva")
	return cmd
}

func (a *App) facturasEliminarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina una factura",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id inválido %q", args[0])
			}
			if err := a.client().Facturas.Eliminar(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Factura %d eliminada\n", id)
			return nil
		},
	}
}
