package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/application/importer"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
	"github.com/acervotec/patrimonio-api/internal/infrastructure/export"
)

func sampleAssets() []*entity.Asset {
	acq := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []*entity.Asset{
		{
			Name:            "Notebook Dell, 14\"",
			Code:            "NB001",
			Status:          entity.StatusActive,
			Location:        "Sede Norte",
			Unit:            "Sistemas",
			Value:           decimal.NullDecimal{Decimal: decimal.RequireFromString("2500"), Valid: true},
			AcquisitionDate: &acq,
			Manufacturer:    "Dell",
			Inalienable:     true,
		},
		{
			Name:   "Silla giratoria",
			Code:   "SG010",
			Status: entity.StatusMaintenance,
		},
	}
}

// TestCSV_RenderConQuoting campos con coma o comillas salen entrecomillados
// según RFC 4180; los null salen como cadena vacía.
func TestCSV_RenderConQuoting(t *testing.T) {
	payload, err := export.NewCSVSerializer().Render(sampleAssets(), time.Now())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(payload), "\n"), "\n")
	require.Len(t, lines, 3, "cabecera + dos filas")

	assert.True(t, strings.HasPrefix(lines[0], "Nombre,Código,Estado,"))
	assert.Contains(t, lines[1], `"Notebook Dell, 14""`+`"`, "coma y comilla interna disparan quoting")
	assert.Contains(t, lines[1], "2500.00")
	assert.Contains(t, lines[1], "15/03/2024")
	assert.Contains(t, lines[1], "Sí")
	assert.Contains(t, lines[2], "No", "booleano falso sale como No")
	assert.Contains(t, lines[2], ",,", "valor null como cadena vacía")
}

// TestCSV_ViajeRedondoConImport un CSV exportado se puede re-importar sin
// pérdida: las cabeceras en español resuelven a los campos canónicos y los
// valores renderizados se re-parsean al mismo dato.
func TestCSV_ViajeRedondoConImport(t *testing.T) {
	payload, err := export.NewCSVSerializer().Render(sampleAssets(), time.Now())
	require.NoError(t, err)

	rows, err := importer.ParseDelimited(payload, importer.NewHeaderNormalizer())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	asset, err := importer.MapRow(rows[0], "org-1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Notebook Dell, 14\"", asset.Name)
	assert.Equal(t, "NB001", asset.Code)
	assert.Equal(t, entity.StatusActive, asset.Status)
	assert.Equal(t, "Sede Norte", asset.Location)
	require.True(t, asset.Value.Valid)
	assert.True(t, asset.Value.Decimal.Equal(decimal.RequireFromString("2500")))
	require.NotNil(t, asset.AcquisitionDate)
	assert.Equal(t, "15/03/2024", asset.AcquisitionDate.Format("02/01/2006"))
	assert.True(t, asset.Inalienable, "\"Sí\" se re-parsea como afirmativo")
}

// TestCSV_MetadatosDeFormato
func TestCSV_MetadatosDeFormato(t *testing.T) {
	s := export.NewCSVSerializer()
	assert.Equal(t, "csv", s.Extension())
	assert.Equal(t, "text/csv; charset=utf-8", s.ContentType())

	var _ exporter.Serializer = s
}
