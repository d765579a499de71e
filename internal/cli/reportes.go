package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// columnaVisor una columna del visor de reportes: etiqueta y ruta del campo.
type columnaVisor struct {
	Etiqueta string
	Ruta     string
}

var columnasVisor = map[string][]columnaVisor{
	"gastos": {
		{"Concepto", "concepto_gasto"},
		{"Fecha", "fecha_compra"},
		{"Total", "total_gastos"},
	},
	"factura": {
		{"Código", "cod_factura"},
		{"Cliente", "cliente.nombre_cliente"},
		{"Sucursal", "cliente.sucursal_cliente.0.sucursal.nom_sucursal"},
		{"Fecha", "fecha_creacion_fact"},
		{"Estado", "estado"},
		{"Valor", "valor_fact"},
	},
}

func celda(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}

func (a *App) reportesCmd() *cobra.Command {
	var (
		buscar, desde, hasta string
		min, max             string
		estado               string
		orden, dir           string
		pdfSalida            string
	)

	cmd := &cobra.Command{
		Use:   "reportes <gastos|factura>",
		Short: "Visor de reportes: búsqueda, filtros, orden y exportación a PDF",
		Long: `Visor de reportes sobre los datos del backend. El filtrado, el orden
y el resumen se calculan localmente sobre las filas recibidas; con --pdf
las filas ya filtradas se envían al backend para generar el documento.`,
		Example: `  lavactl reportes gastos --desde 2024-01-01 --hasta 2024-03-31 --orden total_gastos --dir desc
  lavactl reportes factura --buscar cedritos --estado Entregado --pdf reporte.pdf`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"gastos", "factura"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.requiereSesion()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tipo := args[0]
			perfil, ok := reporting.Profiles[tipo]
			if !ok {
				return fmt.Errorf("tipo de reporte %q desconocido, opciones: gastos, factura", tipo)
			}
			if dir != reporting.Asc && dir != reporting.Desc {
				return fmt.Errorf("dirección %q inválida, opciones: %s, %s", dir, reporting.Asc, reporting.Desc)
			}

			filas, err := a.client().Reportes.Obtener(cmd.Context(), tipo)
			if err != nil {
				return err
			}

			filtradas := reporting.Filtrar(filas, buscar, reporting.Filters{
				DateFrom:  desde,
				DateTo:    hasta,
				MinAmount: min,
				MaxAmount: max,
				Estado:    estado,
			}, perfil)
			if orden != "" {
				filtradas = reporting.Ordenar(filtradas, reporting.SortState{Key: orden, Direction: dir})
			}

			cols := columnasVisor[tipo]
			encabezados := make([]string, len(cols))
			for i, c := range cols {
				encabezados[i] = c.Etiqueta
			}
			cuerpo := make([][]string, 0, len(filtradas))
			for _, fila := range filtradas {
				celdas := make([]string, len(cols))
				for i, c := range cols {
					celdas[i] = celda(reporting.Resolve(fila, c.Ruta))
				}
				cuerpo = append(cuerpo, celdas)
			}

			out := cmd.OutOrStdout()
			tabla(out, encabezados, cuerpo)

			resumen := reporting.Resumir(filtradas, perfil.AmountField)
			fmt.Fprintf(out, "\nRegistros: %d  Total: %s  Promedio: %s\n",
				resumen.Cantidad, Moneda(resumen.Suma), Moneda(resumen.Promedio))
			if perfil.EstadoField != "" {
				entregadas := reporting.ContarEstado(filtradas, perfil.EstadoField, "Entregado")
				pendientes := reporting.ContarEstado(filtradas, perfil.EstadoField, "Pendiente")
				fmt.Fprintf(out, "Entregadas: %d  Pendientes: %d\n", entregadas, pendientes)
			}

			if pdfSalida != "" {
				blob, err := a.client().Reportes.PDF(cmd.Context(), tipo, filtradas)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfSalida, blob, 0o644); err != nil {
					return fmt.Errorf("escribir PDF: %w", err)
				}
				fmt.Fprintf(out, "\nPDF guardado en %s\n", pdfSalida)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&buscar, "buscar", "", "término de búsqueda libre")
	cmd.Flags().StringVar(&desde, "desde", "", "fecha mínima (2006-01-02)")
	cmd.Flags().StringVar(&hasta, "hasta", "", "fecha máxima (2006-01-02)")
	cmd.Flags().StringVar(&min, "min", "", "monto mínimo")
	cmd.Flags().StringVar(&max, "max", "", "monto máximo")
	cmd.Flags().StringVar(&estado, "estado", reporting.EstadoTodos, "estado exacto o todos")
	cmd.Flags().StringVar(&orden, "orden", "", "campo de ordenamiento (p. ej. total_gastos)")
	cmd.Flags().StringVar(&dir, "dir", reporting.Asc, "dirección del orden (asc o desc)")
	cmd.Flags().StringVar(&pdfSalida, "pdf", "", "ruta del PDF a generar")
	return cmd
}
