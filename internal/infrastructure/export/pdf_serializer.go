package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/acervotec/patrimonio-api/internal/application/exporter"
	"github.com/acervotec/patrimonio-api/internal/domain/entity"
)

var _ exporter.Serializer = (*PDFSerializer)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Rejilla ampliada: 18 columnas no caben en la rejilla 12 por defecto de Maroto.
const pdfGridSize = 36

// Anchos fijos por columna (en unidades de rejilla), alineados uno a uno con
// exporter.Columns(). Fijos para que el layout de la tabla sea estable sin
// importar el largo del contenido. Deben sumar pdfGridSize.
var pdfColWidths = []int{3, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 2, 2, 2, 1, 5}

// PDFSerializer render del documento imprimible: A4 apaisado, banda de título
// con marca de tiempo de generación, tabla multipágina y pie en cada página
// con número de página e identificador del producto.
type PDFSerializer struct {
	title       string
	productName string
}

// NewPDFSerializer construye el serializador PDF con los textos fijos del reporte.
func NewPDFSerializer(title, productName string) *PDFSerializer {
	return &PDFSerializer{title: title, productName: productName}
}

// Render genera el PDF y devuelve sus bytes.
func (s *PDFSerializer) Render(assets []*entity.Asset, generatedAt time.Time) ([]byte, error) {
	cols := exporter.Columns()
	if len(pdfColWidths) != len(cols) {
		return nil, fmt.Errorf("pdf: anchos de columna desalineados con el contrato (%d != %d)", len(pdfColWidths), len(cols))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(pdfGridSize).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 6}).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    6,
			Color:   colorGray,
		}).
		WithTitle(s.title, true).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(s.footerRow()); err != nil {
		return nil, fmt.Errorf("pdf: registrar pie de página: %w", err)
	}

	// Banda de título
	m.AddRows(s.titleRow(generatedAt, len(assets)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))

	// Tabla
	m.AddRows(tableHeaderRow(cols))
	for _, a := range assets {
		m.AddRows(tableDataRow(cols, a))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (s *PDFSerializer) Extension() string { return "pdf" }

func (s *PDFSerializer) ContentType() string { return "application/pdf" }

// titleRow: título del reporte (izq) + fecha de generación y total (der).
func (s *PDFSerializer) titleRow(generatedAt time.Time, total int) core.Row {
	return row.New(10).Add(
		col.New(pdfGridSize/2).Add(
			text.New(s.title, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(pdfGridSize/2).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d bienes", total), props.Text{
				Size: 7, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// footerRow: identificador fijo del producto, repetido en cada página.
// El número de página lo añade WithPageNumber.
func (s *PDFSerializer) footerRow() core.Row {
	return row.New(5).Add(
		col.New(pdfGridSize).Add(
			text.New(s.productName, props.Text{Size: 6, Color: colorGray, Top: 1}),
		),
	)
}

func tableHeaderRow(cols []exporter.Column) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(col.New(pdfColWidths[i]).Add(
			text.New(c.Header, props.Text{
				Style: fontstyle.Bold, Size: 6, Color: colorPrimary, Top: 1,
			}),
		))
	}
	return r
}

func tableDataRow(cols []exporter.Column, a *entity.Asset) core.Row {
	r := row.New(5)
	for i, c := range cols {
		r.Add(col.New(pdfColWidths[i]).Add(
			text.New(c.Value(a), props.Text{Size: 5.5, Top: 0.5}),
		))
	}
	return r
}
