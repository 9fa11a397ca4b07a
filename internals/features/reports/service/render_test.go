package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Bills",
		Headers: []string{"Customer", "Amount", "Paid"},
		Rows: [][]string{
			{"Budi Santoso", "131.25", "No"},
			{"Siti Aminah", "850.00", "Yes"},
		},
	}
}

func TestRenderCSV_TabDelimited(t *testing.T) {
	out, err := RenderCSV(sampleTable())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Customer\tAmount\tPaid" {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "\t131.25\t") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestRenderPDF_ProducesDocument(t *testing.T) {
	out, err := RenderPDF(sampleTable())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRenderXLSX_RoundTrip(t *testing.T) {
	out, err := RenderXLSX(sampleTable())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Report", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if got != "131.25" {
		t.Errorf("expected B2 = 131.25, got %q", got)
	}
}
