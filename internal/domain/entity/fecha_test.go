package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavaseco-primavera/panel/internal/domain/entity"
)

func TestParseFecha_FormatosDelBackend(t *testing.T) {
	casos := []struct {
		entrada string
		dia     string
	}{
		{"2024-03-15", "2024-03-15"},
		{"2024-03-15T10:30:00Z", "2024-03-15"},
		{"2024-03-15T10:30:00", "2024-03-15"},
	}
	for _, c := range casos {
		f := entity.ParseFecha(c.entrada)
		assert.Equal(t, c.dia, f.String(), "entrada %s", c.entrada)
	}
}

func TestParseFecha_EntradaInvalidaEsFechaCero(t *testing.T) {
	assert.True(t, entity.ParseFecha("").IsZero())
	assert.True(t, entity.ParseFecha("no-es-fecha").IsZero())
	assert.True(t, entity.ParseFecha("15/03/2024").IsZero())
}

func TestFecha_JSON(t *testing.T) {
	data, err := json.Marshal(entity.ParseFecha("2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	data, err = json.Marshal(entity.Fecha{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var f entity.Fecha
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.True(t, f.IsZero())

	// Un valor no textual se trata como ausente, no como error.
	require.NoError(t, json.Unmarshal([]byte("12345"), &f))
	assert.True(t, f.IsZero())
}
