package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acervotec/patrimonio-api/internal/application/importer"
)

// TestNormalize_SinonimosLocalizados verifica que las variantes en español,
// portugués e inglés (con y sin acentos) caen en la misma clave canónica.
func TestNormalize_SinonimosLocalizados(t *testing.T) {
	n := importer.NewHeaderNormalizer()

	cases := []struct {
		header string
		want   string
	}{
		{"Nombre", importer.FieldName},
		{"nome", importer.FieldName},
		{"NAME", importer.FieldName},
		{"Código", importer.FieldCode},
		{"codigo", importer.FieldCode},
		{"CÓDIGO", importer.FieldCode},
		{"placa", importer.FieldCode},
		{"Localização", importer.FieldLocation},
		{"ubicacion", importer.FieldLocation},
		{"Situação", importer.FieldStatus},
		{"Estado", importer.FieldStatus},
		{"Valor", importer.FieldValue},
		{"Data de Aquisição", importer.FieldAcquisitionDate},
		{"Fecha de Adquisición", importer.FieldAcquisitionDate},
		{"Número de Série", importer.FieldSerialNumber},
		{"numero de serie", importer.FieldSerialNumber},
		{"Responsável", importer.FieldHolder},
		{"Inalienável", importer.FieldInalienable},
		{"Observações", importer.FieldNotes},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, n.Normalize(tc.header), "cabecera %q", tc.header)
	}
}

// TestNormalize_DesconocidaPasaSinCambios las cabeceras no reconocidas se
// conservan tal cual (recortadas), no se descartan.
func TestNormalize_DesconocidaPasaSinCambios(t *testing.T) {
	n := importer.NewHeaderNormalizer()

	assert.Equal(t, "columna_rara", n.Normalize("columna_rara"))
	assert.Equal(t, "Centro de Costo", n.Normalize("  Centro de Costo  "))
}

// TestNormalize_VocabularioInyectado los tests pueden suministrar un
// vocabulario alternativo; no hay estado global.
func TestNormalize_VocabularioInyectado(t *testing.T) {
	n := importer.NewHeaderNormalizerWith(map[string]string{
		"Étiquette": importer.FieldName,
	})

	assert.Equal(t, importer.FieldName, n.Normalize("etiquette"), "la búsqueda ignora acentos también en el vocabulario inyectado")
	assert.Equal(t, "nombre", n.Normalize("nombre"), "el vocabulario por defecto no aplica")
}
