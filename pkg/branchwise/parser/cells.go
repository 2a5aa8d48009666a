package parser

import (
	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells reads a sheet back into a table.
// The first row is the header; cell values go through ParseValue.
func ExtractCells(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	table := &models.Table{}
	if len(rows) == 0 {
		return table, nil
	}

	table.Headers = rows[0]
	width := len(table.Headers)
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	// Header cells may be missing at the end if the sheet has unnamed columns
	for len(table.Headers) < width {
		table.Headers = append(table.Headers, "")
	}

	for _, row := range rows[1:] {
		cells := make(models.Row, width)
		for colIdx := range cells {
			if colIdx < len(row) {
				cells[colIdx] = ParseValue(row[colIdx])
			} else {
				cells[colIdx] = models.Text("")
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}
