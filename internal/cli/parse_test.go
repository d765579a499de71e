package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetalle(t *testing.T) {
	d, err := parseDetalle("2:Camisa:10000")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Cantidad)
	assert.Equal(t, "Camisa", d.Especificacion)
	assert.True(t, d.ValorUnitario.Equal(decimal.NewFromInt(10000)))
	assert.Empty(t, d.CaractOtras)

	d, err = parseDetalle("1:Vestido:25000:delicado")
	require.NoError(t, err)
	assert.Equal(t, "delicado", d.CaractOtras)

	_, err = parseDetalle("Camisa:10000")
	assert.Error(t, err)
	_, err = parseDetalle("dos:Camisa:10000")
	assert.Error(t, err)
	_, err = parseDetalle("2:Camisa:mucho")
	assert.Error(t, err)
}

func TestParseInsumoDetalle(t *testing.T) {
	d, err := parseInsumoDetalle("Detergente líquido:20")
	require.NoError(t, err)
	assert.Equal(t, "Detergente líquido", d.Concepto)
	assert.True(t, d.Peso.Equal(decimal.NewFromInt(20)))

	_, err = parseInsumoDetalle("sin-peso")
	assert.Error(t, err)
	_, err = parseInsumoDetalle("Jabón:pesado")
	assert.Error(t, err)
}
