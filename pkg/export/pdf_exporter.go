package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Field is one labelled value on a printable sheet.
type Field struct {
	Label string
	Value string
}

// Section groups related fields under a heading.
type Section struct {
	Title  string
	Fields []Field
}

// PDFExporter renders sectioned label/value sheets, used for printable
// work-order documents handed to field crews.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// RenderSheet creates a single-page A4 document with a title and one
// two-column block per section. Empty values render as a dash so the
// printed form keeps its shape.
func (e *PDFExporter) RenderSheet(title string, sections []Section) ([]byte, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("pdf requires at least one section")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	const labelWidth = 60.0
	const valueWidth = 120.0

	for _, section := range sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(labelWidth+valueWidth, 8, section.Title, "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, field := range section.Fields {
			value := field.Value
			if value == "" {
				value = "-"
			}
			pdf.CellFormat(labelWidth, 7, field.Label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(valueWidth, 7, value, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
