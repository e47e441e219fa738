package exporter

import (
	"fmt"
	"time"

	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

// Format formato de salida de una exportación.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat valida el formato pedido por el caller.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("formato de exportación no soportado: %q", s)
	}
}

// Serializer puerto de render por formato. Recibe registros ya consultados
// (nunca vuelve a consultar) y los renderiza completos o falla; jamás
// devuelve un artefacto parcial. generatedAt lo usa el PDF para la banda de
// título; los demás formatos lo ignoran.
type Serializer interface {
	Render(assets []*entity.Asset, generatedAt time.Time) ([]byte, error)
	Extension() string
	ContentType() string
}
