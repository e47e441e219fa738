package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervotec/patrimonio-api/internal/application/importer"
)

// TestParseDelimited_NormalizaCabeceras las cabeceras se traducen a claves
// canónicas y las desconocidas se conservan como claves extra.
func TestParseDelimited_NormalizaCabeceras(t *testing.T) {
	data := []byte("Nome,Código,Valor,Centro de Costo\nNotebook,NB001,\"2.500,00\",CC-9\n")

	rows, err := importer.ParseDelimited(data, importer.NewHeaderNormalizer())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Notebook", rows[0][importer.FieldName])
	assert.Equal(t, "NB001", rows[0][importer.FieldCode])
	assert.Equal(t, "2.500,00", rows[0][importer.FieldValue])
	assert.Equal(t, "CC-9", rows[0]["Centro de Costo"], "columna desconocida preservada")
}

// TestParseDelimited_IgnoraLineasEnBlanco las líneas vacías no cuentan como filas.
func TestParseDelimited_IgnoraLineasEnBlanco(t *testing.T) {
	data := []byte("name,code\n\nSilla,S1\n\n\nMesa,M1\n")

	rows, err := importer.ParseDelimited(data, importer.NewHeaderNormalizer())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Silla", rows[0][importer.FieldName])
	assert.Equal(t, "Mesa", rows[1][importer.FieldName])
}

// TestParseDelimited_FilaCorta una fila con menos celdas que cabeceras deja
// ausentes las claves sin celda, sin error.
func TestParseDelimited_FilaCorta(t *testing.T) {
	data := []byte("name,code,location\nSilla,S1\n")

	rows, err := importer.ParseDelimited(data, importer.NewHeaderNormalizer())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S1", rows[0][importer.FieldCode])
	_, present := rows[0][importer.FieldLocation]
	assert.False(t, present)
}

// TestParseDelimited_ArchivoVacioEsErrorEstructural sin cabecera no hay
// import: el error se reporta una sola vez, antes de procesar fila alguna.
func TestParseDelimited_ArchivoVacioEsErrorEstructural(t *testing.T) {
	_, err := importer.ParseDelimited([]byte(""), importer.NewHeaderNormalizer())
	assert.Error(t, err)
}

// TestParseDelimited_UTF8Corrupto bytes inválidos se reemplazan, el archivo
// no se corta.
func TestParseDelimited_UTF8Corrupto(t *testing.T) {
	data := append([]byte("name,code\nSilla"), 0xFF, 0xFE)
	data = append(data, []byte(",S1\n")...)

	rows, err := importer.ParseDelimited(data, importer.NewHeaderNormalizer())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S1", rows[0][importer.FieldCode])
}
