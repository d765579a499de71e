package reporting

import (
	"strings"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// EstadoTodos sentinela del filtro de estado: acepta cualquier fila.
const EstadoTodos = "todos"

// rutaSucursal la sucursal del cliente vive anidada más profundo de lo que
// alcanza la búsqueda genérica, igual que en las tablas del panel.
const rutaSucursal = "cliente.sucursal_cliente.0.sucursal.nom_sucursal"

// Profile indica qué campos de fecha, monto y estado usa cada tipo de reporte.
type Profile struct {
	DateField   string
	AmountField string
	EstadoField string // vacío si el tipo no maneja estado
}

// Perfiles por tipo de reporte del backend.
var Profiles = map[string]Profile{
	"gastos":  {DateField: "fecha_compra", AmountField: "total_gastos"},
	"factura": {DateField: "fecha_creacion_fact", AmountField: "valor_fact", EstadoField: "estado"},
}

// Filters restricciones de rango del visor. Los campos vacíos no restringen.
type Filters struct {
	DateFrom  string // "2006-01-02"
	DateTo    string
	MinAmount string
	MaxAmount string
	Estado    string // valor exacto o "todos"
}

// Filtrar devuelve las filas que contienen el término de búsqueda y cumplen
// todas las restricciones de rango. Nunca muta rows.
func Filtrar(rows []Record, termino string, f Filters, p Profile) []Record {
	out := make([]Record, 0, len(rows))
	for _, rec := range rows {
		if !MatchTermino(rec, termino) {
			continue
		}
		if !matchRangos(rec, f, p) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// MatchTermino busca el término como subcadena (sin distinguir mayúsculas)
// en cualquier valor escalar del registro, en los valores anidados un nivel
// dentro de objetos embebidos y en la sucursal del cliente. Término vacío
// empata con todo.
func MatchTermino(rec Record, termino string) bool {
	if termino == "" {
		return true
	}
	t := strings.ToLower(termino)
	for _, v := range rec {
		if matchValor(v, t, 0) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(asString(Resolve(rec, rutaSucursal))), t)
}

// matchValor desciende hasta dos niveles; de los arreglos solo mira el
// primer elemento, como hacía la tabla original.
func matchValor(v any, t string, depth int) bool {
	switch nested := v.(type) {
	case map[string]any:
		if depth >= 2 {
			return false
		}
		for _, nv := range nested {
			if matchValor(nv, t, depth+1) {
				return true
			}
		}
		return false
	case []any:
		if depth >= 2 || len(nested) == 0 {
			return false
		}
		return matchValor(nested[0], t, depth+1)
	default:
		s := asString(v)
		return s != "" && strings.Contains(strings.ToLower(s), t)
	}
}

func matchRangos(rec Record, f Filters, p Profile) bool {
	fecha := asTimestamp(Resolve(rec, p.DateField))
	if f.DateFrom != "" {
		if desde := entity.ParseFecha(f.DateFrom); !desde.IsZero() && desde.Unix() > fecha {
			return false
		}
	}
	if f.DateTo != "" {
		if hasta := entity.ParseFecha(f.DateTo); !hasta.IsZero() && hasta.Unix() < fecha {
			return false
		}
	}

	monto := asFloat(Resolve(rec, p.AmountField))
	if f.MinAmount != "" && asFloat(f.MinAmount) > monto {
		return false
	}
	if f.MaxAmount != "" && asFloat(f.MaxAmount) < monto {
		return false
	}

	if p.EstadoField != "" && f.Estado != "" && f.Estado != EstadoTodos {
		if asString(Resolve(rec, p.EstadoField)) != f.Estado {
			return false
		}
	}
	return true
}
