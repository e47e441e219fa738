package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

var _ exporter.Serializer = (*XLSXSerializer)(nil)

const (
	sheetName = "Bienes"
	// Ancho mínimo de columna; por debajo de esto las cabeceras cortas quedan ilegibles.
	minColWidth = 12.0
)

// XLSXSerializer render de libro de cálculo con una sola hoja. La fila de
// cabecera y el orden de columnas vienen del contrato compartido; los anchos
// se ajustan al largo de cada cabecera con un piso.
type XLSXSerializer struct{}

// NewXLSXSerializer construye el serializador de libro.
func NewXLSXSerializer() *XLSXSerializer { return &XLSXSerializer{} }

// Render genera el libro en memoria y devuelve sus bytes.
func (s *XLSXSerializer) Render(assets []*entity.Asset, _ time.Time) ([]byte, error) {
	cols := exporter.Columns()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	for i, c := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, c.Header); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera %q: %w", c.Header, err)
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: nombre de columna: %w", err)
		}
		width := float64(len([]rune(c.Header))) + 2
		if width < minColWidth {
			width = minColWidth
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	for rowIdx, a := range assets {
		for i, c := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, c.Value(a)); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: generar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *XLSXSerializer) Extension() string { return "xlsx" }

func (s *XLSXSerializer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
