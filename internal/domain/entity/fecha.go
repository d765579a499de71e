package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// Formatos de fecha que devuelve el backend: a veces solo día, a veces ISO completo.
var fechaLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Fecha es una fecha tolerante al formato del backend.
// Se serializa siempre como "2006-01-02"; el valor cero serializa como null.
type Fecha struct {
	time.Time
}

// ParseFecha intenta los formatos conocidos. Una cadena vacía o inválida
// devuelve la Fecha cero, nunca error (el backend es la fuente de verdad).
func ParseFecha(s string) Fecha {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fecha{}
	}
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Fecha{t}
		}
	}
	return Fecha{}
}

// MarshalJSON serializa como "2006-01-02" (null si es la fecha cero).
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Format("2006-01-02"))
}

// UnmarshalJSON acepta null, cadena vacía y los formatos conocidos.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Fecha{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Valor no textual: se trata como ausente, el panel no valida al backend.
		*f = Fecha{}
		return nil
	}
	*f = ParseFecha(s)
	return nil
}

// String devuelve "2006-01-02" o cadena vacía si la fecha es cero.
func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format("2006-01-02")
}
