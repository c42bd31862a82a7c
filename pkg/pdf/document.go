package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Page layout constants (millimetres, A4 portrait).
const (
	marginLeft  = 15.0
	marginTop   = 15.0
	marginRight = 15.0
	lineHeight  = 6.0
)

// Document builds a paginated PDF using a small receipt-oriented vocabulary:
// titles, key/value lines, separators, and table rows.
type Document struct {
	pdf   *gofpdf.Fpdf
	width float64 // usable width inside margins
}

// NewDocument creates an A4 portrait document with the first page added.
func NewDocument() *Document {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(marginLeft, marginTop, marginRight)
	p.SetAutoPageBreak(true, marginTop)
	p.AddPage()

	pageWidth, _ := p.GetPageSize()
	return &Document{
		pdf:   p,
		width: pageWidth - marginLeft - marginRight,
	}
}

// Title writes a centered bold heading.
func (d *Document) Title(s string) *Document {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(d.width, lineHeight+2, s, "", 1, "C", false, 0, "")
	return d
}

// Subtitle writes a centered secondary heading.
func (d *Document) Subtitle(s string) *Document {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.CellFormat(d.width, lineHeight, s, "", 1, "C", false, 0, "")
	return d
}

// Text writes a left-aligned line of body text.
func (d *Document) Text(s string) *Document {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(d.width, lineHeight, s, "", 1, "L", false, 0, "")
	return d
}

// KeyValue writes a left-aligned key and right-aligned value on one line.
func (d *Document) KeyValue(key, value string) *Document {
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.CellFormat(d.width/2, lineHeight, key, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(d.width/2, lineHeight, value, "", 1, "R", false, 0, "")
	return d
}

// KeyValueBold is KeyValue with a bold face, used for the payable total.
func (d *Document) KeyValueBold(key, value string) *Document {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(d.width/2, lineHeight, key, "", 0, "L", false, 0, "")
	d.pdf.CellFormat(d.width/2, lineHeight, value, "", 1, "R", false, 0, "")
	return d
}

// Separator draws a full-width horizontal rule.
func (d *Document) Separator() *Document {
	x := marginLeft
	y := d.pdf.GetY() + 1
	d.pdf.SetDrawColor(120, 120, 120)
	d.pdf.Line(x, y, x+d.width, y)
	d.pdf.SetY(y + 2)
	return d
}

// Space advances the cursor by h millimetres.
func (d *Document) Space(h float64) *Document {
	d.pdf.Ln(h)
	return d
}

// TableHeader writes a bold, bordered header row. Widths are fractions of the
// usable width and should sum to 1.
func (d *Document) TableHeader(widths []float64, cols []string) *Document {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetFillColor(230, 230, 230)
	for i, col := range cols {
		d.pdf.CellFormat(d.width*widths[i], lineHeight, col, "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
	return d
}

// TableRow writes a bordered data row. Aligns holds one of "L", "C", "R" per column.
func (d *Document) TableRow(widths []float64, cols []string, aligns []string) *Document {
	d.pdf.SetFont("Helvetica", "", 9)
	for i, col := range cols {
		align := "L"
		if i < len(aligns) {
			align = aligns[i]
		}
		d.pdf.CellFormat(d.width*widths[i], lineHeight, col, "1", 0, align, false, 0, "")
	}
	d.pdf.Ln(-1)
	return d
}

// Bytes renders the document and returns the PDF payload.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
