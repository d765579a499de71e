package reporting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lavaseco-primavera/panel/internal/domain/reporting"
)

func TestResolve_RutaConIndiceNumerico(t *testing.T) {
	rows := facturas(t)

	v := reporting.Resolve(rows[0], "cliente.sucursal_cliente.0.sucursal.nom_sucursal")

	assert.Equal(t, "Sucursal Cedritos", v)
}

func TestResolve_RutaAusenteResuelveANil(t *testing.T) {
	rows := facturas(t)

	assert.Nil(t, reporting.Resolve(rows[0], "cliente.no_existe"))
	assert.Nil(t, reporting.Resolve(rows[0], "cliente.sucursal_cliente.5.sucursal"))
	assert.Nil(t, reporting.Resolve(rows[0], "cod_factura.mas_alla_de_un_escalar"))
	assert.Nil(t, reporting.Resolve(rows[0], ""))
}

func TestResolve_IndiceNoNumericoSobreArreglo(t *testing.T) {
	rows := facturas(t)
	assert.Nil(t, reporting.Resolve(rows[0], "cliente.sucursal_cliente.primera"))
}
