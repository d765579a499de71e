package mockapi

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 109, Green: 40, Blue: 217}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// columnaReporte una columna de la tabla: etiqueta y ruta dentro de la fila.
type columnaReporte struct {
	Etiqueta string
	Ruta     string
}

var columnasReporte = map[string][]columnaReporte{
	"gastos": {
		{"Concepto", "concepto_gasto"},
		{"Fecha", "fecha_compra"},
		{"Total", "total_gastos"},
	},
	"factura": {
		{"Código", "cod_factura"},
		{"Cliente", "cliente.nombre_cliente"},
		{"Fecha", "fecha_creacion_fact"},
		{"Estado", "estado"},
		{"Valor", "valor_fact"},
	},
}

// GenerarReportePDF arma el PDF del reporte: título, tabla de filas y el
// resumen (cantidad, suma y promedio del campo de monto del perfil).
func GenerarReportePDF(tipo string, perfil reporting.Profile, filas []reporting.Record) ([]byte, error) {
	cols, ok := columnasReporte[tipo]
	if !ok {
		return nil, fmt.Errorf("pdf: tipo de reporte %q", tipo)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lavaseco Primavera — Reporte", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tipo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tablaHeaderRow(cols))
	for _, fila := range filas {
		m.AddRows(tablaFilaRow(cols, fila))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resumenRow(perfil, filas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(tipo string) core.Row {
	titulo := "REPORTE DE GASTOS"
	if tipo == "factura" {
		titulo = "REPORTE DE FACTURACIÓN"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Lavaseco Primavera", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(titulo, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func anchoColumna(n int) int {
	// maroto reparte 12 unidades de grilla entre las columnas del reporte.
	if n == 0 {
		return 12
	}
	return 12 / n
}

func tablaHeaderRow(cols []columnaReporte) core.Row {
	w := anchoColumna(len(cols))
	r := row.New(8)
	for _, c := range cols {
		r = r.Add(col.New(w).Add(text.New(c.Etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})))
	}
	return r
}

func tablaFilaRow(cols []columnaReporte, fila reporting.Record) core.Row {
	w := anchoColumna(len(cols))
	r := row.New(7)
	for _, c := range cols {
		valor := reporting.Resolve(fila, c.Ruta)
		r = r.Add(col.New(w).Add(text.New(textoCelda(valor), props.Text{Size: 8, Top: 1})))
	}
	return r
}

func textoCelda(v any) string {
	if v == nil {
		return "—"
	}
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.0f", n)
	case string:
		return n
	default:
		return fmt.Sprint(n)
	}
}

func resumenRow(perfil reporting.Profile, filas []reporting.Record) core.Row {
	resumen := reporting.Resumir(filas, perfil.AmountField)
	texto := fmt.Sprintf("Registros: %d   |   Total: $%s   |   Promedio: $%s",
		resumen.Cantidad, resumen.Suma.StringFixed(0), resumen.Promedio.StringFixed(0))
	return row.New(10).Add(
		col.New(12).Add(text.New(texto, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
		})),
	)
}
