package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervotec/patrimonio-api/internal/domain/filter"
)

// TestBuildWhere_SoloPropietario sin restricciones el WHERE solo acota por
// organización.
func TestBuildWhere_SoloPropietario(t *testing.T) {
	where, args, err := buildWhere("org-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "owner_id = $1", where)
	assert.Equal(t, []any{"org-1"}, args)
}

// TestBuildWhere_BusquedaYCampos la búsqueda de texto expande al OR
// name/code con ILIKE; el resto iguala contra columnas de la lista cerrada.
// Todo valor viaja como parámetro, nunca interpolado.
func TestBuildWhere_BusquedaYCampos(t *testing.T) {
	cons := []filter.Constraint{
		{Field: "search", Op: filter.OpContains, Value: "note"},
		{Field: "status", Op: filter.OpEq, Value: "active"},
		{Field: "unit", Op: filter.OpEq, Value: "Sistemas"},
	}

	where, args, err := buildWhere("org-1", cons)
	require.NoError(t, err)
	assert.Equal(t,
		"owner_id = $1 AND (name ILIKE '%' || $2 || '%' OR code ILIKE '%' || $2 || '%') AND status = $3 AND unit = $4",
		where)
	assert.Equal(t, []any{"org-1", "note", "active", "Sistemas"}, args)
}

// TestBuildWhere_CampoFueraDeListaEsError un campo desconocido jamás se
// interpola como columna.
func TestBuildWhere_CampoFueraDeListaEsError(t *testing.T) {
	cons := []filter.Constraint{{Field: "owner_id", Op: filter.OpEq, Value: "x"}}

	_, _, err := buildWhere("org-1", cons)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no soportado")
}

// TestBuildWhere_OperadorDesconocidoEsError
func TestBuildWhere_OperadorDesconocidoEsError(t *testing.T) {
	cons := []filter.Constraint{{Field: "status", Op: filter.Op("between"), Value: "x"}}

	_, _, err := buildWhere("org-1", cons)
	require.Error(t, err)
}
