package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX writes the table as a single styled worksheet.
func RenderXLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	lastCol, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, err
	}

	for ri, row := range t.Rows {
		for ci, cell := range row {
			name, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, name, cell); err != nil {
				return nil, err
			}
		}
	}

	// readable column widths
	endCol, _ := excelize.ColumnNumberToName(len(t.Headers))
	if err := f.SetColWidth(sheet, "A", endCol, 20); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
