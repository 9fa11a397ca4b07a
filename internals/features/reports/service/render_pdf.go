package service

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// RenderPDF lays the table out as a simple landscape A4 grid.
func RenderPDF(t Table) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, t.Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, hcell := range t.Headers {
		pdf.CellFormat(colW, 7, hcell, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range t.Rows {
		for _, cell := range row {
			pdf.CellFormat(colW, 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
