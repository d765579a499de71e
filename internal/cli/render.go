package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// impresorCOP formatea números con la puntuación colombiana (1.500.000).
var impresorCOP = message.NewPrinter(language.MustParse("es-CO"))

// Moneda renderiza un monto en pesos, sin centavos, como en el panel.
func Moneda(d decimal.Decimal) string {
	return impresorCOP.Sprintf("$ %v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// fecha renderiza una Fecha o "-" si está vacía.
func fecha(f entity.Fecha) string {
	if f.IsZero() {
		return "-"
	}
	return f.String()
}

// tabla imprime filas alineadas con tabwriter.
func tabla(w io.Writer, encabezados []string, filas [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(encabezados, "\t"))
	for _, f := range filas {
		fmt.Fprintln(tw, strings.Join(f, "\t"))
	}
	tw.Flush()
}
