package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervotec/patrimonio-api/internal/infrastructure/export"
)

// TestPDF_DocumentoValido el documento generado es un PDF no vacío.
func TestPDF_DocumentoValido(t *testing.T) {
	s := export.NewPDFSerializer("Inventario de Bienes", "Patrimonio API")

	payload, err := s.Render(sampleAssets(), time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF-")), "magic number de PDF")
	assert.Greater(t, len(payload), 1000)
}

// TestPDF_MuchasFilasNoFalla la tabla pagina sola; un catálogo grande no debe
// romper el layout.
func TestPDF_MuchasFilasNoFalla(t *testing.T) {
	assets := sampleAssets()
	for i := 0; i < 120; i++ {
		assets = append(assets, sampleAssets()...)
	}

	s := export.NewPDFSerializer("Inventario de Bienes", "Patrimonio API")
	payload, err := s.Render(assets, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF-")))
}

// TestPDF_MetadatosDeFormato
func TestPDF_MetadatosDeFormato(t *testing.T) {
	s := export.NewPDFSerializer("t", "p")
	assert.Equal(t, "pdf", s.Extension())
	assert.Equal(t, "application/pdf", s.ContentType())
}
