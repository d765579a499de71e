package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/auth"
	"github.com/lavaseco-primavera/panel/internal/session"
	"github.com/lavaseco-primavera/panel/pkg/token"
)

const testSecret = "secret-de-pruebas"

func tokenCon(t *testing.T, email, rol string, isAdmin bool) string {
	t.Helper()
	tok, err := token.Generate(testSecret, email, rol, isAdmin, "lavaseco-test", 60)
	require.NoError(t, err)
	return tok
}

func TestAutenticado(t *testing.T) {
	assert.False(t, auth.Autenticado(nil))
	assert.True(t, auth.Autenticado(&session.Sesion{Email: "user@lavaseco.co"}))
}

// La sesión con email exactamente "admin@admin" es admin; cualquier otra,
// incluida una sesión ausente, no lo es.
func TestEsAdmin_PorEmailDeSesion(t *testing.T) {
	assert.True(t, auth.EsAdmin(&session.Sesion{Email: "admin@admin"}))
	assert.False(t, auth.EsAdmin(&session.Sesion{Email: "otro@lavaseco.co"}))
	assert.False(t, auth.EsAdmin(nil))
}

// Si el email de la sesión no alcanza, el payload del token decide: valen
// las tres formas de claim (email, role, isAdmin).
func TestEsAdmin_PorClaimsDelToken(t *testing.T) {
	casos := []struct {
		nombre string
		token  string
		admin  bool
	}{
		{"claim email", tokenCon(t, "admin@admin", "", false), true},
		{"claim role", tokenCon(t, "user@lavaseco.co", "admin", false), true},
		{"claim isAdmin", tokenCon(t, "user@lavaseco.co", "user", true), true},
		{"sin señal de admin", tokenCon(t, "user@lavaseco.co", "user", false), false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			ses := &session.Sesion{Email: "user@lavaseco.co", Token: c.token}
			assert.Equal(t, c.admin, auth.EsAdmin(ses))
		})
	}
}

// Un token ilegible se trata como no-admin, jamás como un error.
func TestEsAdmin_TokenMalformadoEsNoAdmin(t *testing.T) {
	casos := []string{"", "no-es-un-jwt", "a.b", "x.%%%.z"}
	for _, tok := range casos {
		ses := &session.Sesion{Email: "user@lavaseco.co", Token: tok}
		assert.False(t, auth.EsAdmin(ses), "token %q", tok)
	}
}
