package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/domain"
	"github.com/lavaseco-primavera/panel/internal/session"
)

func TestStore_GuardaYRecupera(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "lavactl", "session.json"))

	ses := &session.Sesion{Nombre: "Admin", Email: "admin@admin", Rol: "admin", Token: "abc.def.ghi"}
	require.NoError(t, store.Save(ses))

	leida, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ses, leida)
}

func TestStore_SinArchivoEsErrNoSession(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "no-existe.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

// Un archivo corrupto equivale a no tener sesión, no a un crash.
func TestStore_ContenidoIlegibleEsErrNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := session.NewStore(path).Load()
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStore_ClearBorraYEsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path)

	require.NoError(t, store.Save(&session.Sesion{Email: "user@lavaseco.co", Token: "t"}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// segundo Clear sin archivo: tampoco es error
	assert.NoError(t, store.Clear())
}
