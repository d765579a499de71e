// Package validate reúne las validaciones que los formularios del panel
// aplicaban antes de enviar cualquier petición. Los mensajes son los textos
// planos que se mostraban en cada campo.
package validate

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
	telefonoRe = regexp.MustCompile(`^\d{7,10}$`)
)

// Requerido valida un campo obligatorio.
func Requerido(valor, campo string) error {
	if strings.TrimSpace(valor) == "" {
		return &Error{Campo: campo, Mensaje: "El campo " + campo + " es obligatorio"}
	}
	return nil
}

// Email valida la forma del correo.
func Email(valor string) error {
	if strings.TrimSpace(valor) == "" {
		return &Error{Campo: "email", Mensaje: "El correo electrónico es requerido"}
	}
	if !emailRe.MatchString(strings.TrimSpace(valor)) {
		return &Error{Campo: "email", Mensaje: "Ingresa un correo electrónico válido"}
	}
	return nil
}

// Password exige al menos 6 caracteres, como el formulario de usuarios.
func Password(valor string) error {
	if valor == "" {
		return &Error{Campo: "password", Mensaje: "La contraseña es requerida"}
	}
	if len(valor) < 6 {
		return &Error{Campo: "password", Mensaje: "La contraseña debe tener al menos 6 caracteres"}
	}
	return nil
}

// Telefono valida la forma del teléfono: solo dígitos, entre 7 y 10.
func Telefono(valor string) error {
	if !telefonoRe.MatchString(strings.TrimSpace(valor)) {
		return &Error{Campo: "telefono", Mensaje: "El teléfono debe tener entre 7 y 10 dígitos"}
	}
	return nil
}

// MontoPositivo valida un monto mayor a cero.
func MontoPositivo(valor decimal.Decimal, campo string) error {
	if valor.LessThanOrEqual(decimal.Zero) {
		return &Error{Campo: campo, Mensaje: "El " + campo + " debe ser un número mayor a 0"}
	}
	return nil
}

// CantidadMinima valida una cantidad de al menos una unidad.
func CantidadMinima(valor int, campo string) error {
	if valor < 1 {
		return &Error{Campo: campo, Mensaje: "La " + campo + " debe ser al menos 1"}
	}
	return nil
}

// Error una violación de regla de un campo, con su mensaje plano.
type Error struct {
	Campo   string
	Mensaje string
}

func (e *Error) Error() string { return e.Mensaje }
