package entity

// Roles válidos para Usuario.
const (
	RolUser  = "user"
	RolAdmin = "admin"
)

// Usuario cuenta del panel (/api/user). Password solo viaja hacia el backend.
type Usuario struct {
	ID       int64  `json:"id_usuario,omitempty"`
	Nombre   string `json:"nombre,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol"`
}
