package reporting

import (
	"sort"
	"strings"
)

// Direcciones de ordenamiento.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Campos que se comparan como fecha o como número; el resto compara como
// texto sin distinguir mayúsculas.
var (
	camposFecha = map[string]bool{
		"fecha_compra":        true,
		"fecha_creacion_fact": true,
		"fecha_final_fact":    true,
	}
	camposMonto = map[string]bool{
		"total_gastos": true,
		"valor_fact":   true,
		"monto":        true,
		"salario":      true,
		"valor_insumo": true,
	}
)

// SortState la columna activa y su dirección. El valor cero no ordena.
type SortState struct {
	Key       string
	Direction string
}

// Toggle repite la columna para invertir la dirección; una columna nueva
// arranca ascendente.
func (s *SortState) Toggle(key string) {
	if s.Key == key && s.Direction == Asc {
		s.Direction = Desc
		return
	}
	s.Key = key
	s.Direction = Asc
}

// Ordenar devuelve una copia ordenada de rows según el estado. El orden es
// estable: filas iguales bajo la clave conservan su orden de llegada. Sin
// clave activa se conserva el orden del fetch.
func Ordenar(rows []Record, s SortState) []Record {
	out := make([]Record, len(rows))
	copy(out, rows)
	if s.Key == "" {
		return out
	}

	cmp := comparador(s.Key)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(Resolve(out[i], s.Key), Resolve(out[j], s.Key))
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// comparador elige la comparación tipada según el campo (la clave puede ser
// una ruta anidada; decide el último segmento).
func comparador(key string) func(a, b any) int {
	leaf := key
	if i := strings.LastIndex(key, "."); i >= 0 {
		leaf = key[i+1:]
	}
	switch {
	case camposFecha[leaf]:
		return func(a, b any) int {
			return cmpInt64(asTimestamp(a), asTimestamp(b))
		}
	case camposMonto[leaf]:
		return func(a, b any) int {
			fa, fb := asFloat(a), asFloat(b)
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b any) int {
			return strings.Compare(strings.ToLower(asString(a)), strings.ToLower(asString(b)))
		}
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
