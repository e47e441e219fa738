// Package export implementa los tres serializadores de exportación del
// catálogo de bienes (CSV, libro XLSX y PDF paginado). Los tres consumen el
// mismo contrato de columnas de exporter.Columns(), así que el orden y el
// formato de los campos coinciden siempre entre formatos.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

var _ exporter.Serializer = (*CSVSerializer)(nil)

// CSVSerializer render de texto delimitado por comas. El writer estándar
// aplica el quoting RFC 4180: campos con coma van entre comillas y las
// comillas internas se duplican.
type CSVSerializer struct{}

// NewCSVSerializer construye el serializador CSV.
func NewCSVSerializer() *CSVSerializer { return &CSVSerializer{} }

// Render escribe la cabecera compartida y una línea por bien.
func (s *CSVSerializer) Render(assets []*entity.Asset, _ time.Time) ([]byte, error) {
	cols := exporter.Columns()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}

	record := make([]string, len(cols))
	for _, a := range assets {
		for i, c := range cols {
			record[i] = c.Value(a)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *CSVSerializer) Extension() string { return "csv" }

func (s *CSVSerializer) ContentType() string { return "text/csv; charset=utf-8" }
