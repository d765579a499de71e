// Package reporting implementa el motor de filtrado, ordenamiento y
// agregación que comparten el visor de reportes, la tabla de facturación y
// la nómina. Trabaja sobre registros JSON ya traídos del backend y nunca
// muta la lista de origen.
package reporting

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

// Record una fila del reporte tal como la decodifica encoding/json.
type Record = map[string]any

// Resolve navega una ruta con puntos dentro del registro, aceptando índices
// numéricos para arreglos ("cliente.sucursal_cliente.0.sucursal.nom_sucursal").
// Una ruta ausente o un valor null resuelven a nil, nunca a un pánico.
func Resolve(rec Record, path string) any {
	if path == "" {
		return nil
	}
	var cur any = rec
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			cur = v[seg]
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(v) {
				return nil
			}
			cur = v[idx]
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// asString coerciona un valor escalar a texto; nil resuelve a cadena vacía.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// asDecimal coerciona un monto; lo que no parsea vale 0 (no se excluye la fila).
func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// asFloat versión float64 de asDecimal, para comparaciones de orden.
func asFloat(v any) float64 {
	f, _ := asDecimal(v).Float64()
	return f
}

// asTimestamp coerciona una fecha a epoch en segundos; lo inválido vale 0.
func asTimestamp(v any) int64 {
	f := entity.ParseFecha(asString(v))
	if f.IsZero() {
		return 0
	}
	return f.Unix()
}
