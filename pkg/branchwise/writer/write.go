// Package writer saves branch views as workbook sheets and styles them.
package writer

import (
	"fmt"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named table to be written as one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Table is written header first, one row per record.
	Table *models.Table
}

// WriteSheets writes each sheet in order to a new workbook saved at path.
// Cell values keep their native types so numbers stay numbers in Excel.
func WriteSheets(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets given")
	}

	f := excelize.NewFile()
	defer f.Close()

	// New workbooks start with a default sheet; reuse it for the first view
	defaultSheet := f.GetSheetName(0)
	for i, s := range sheets {
		if i > 0 {
			// NewSheet returns the existing sheet for a repeated name
			idx, err := f.GetSheetIndex(s.Name)
			if err != nil {
				return fmt.Errorf("invalid sheet name %q: %w", s.Name, err)
			}
			if idx >= 0 {
				return fmt.Errorf("duplicate sheet name %q", s.Name)
			}
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", s.Name, err)
		}

		if err := writeTable(f, s.Name, s.Table); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", s.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheetName string, t *models.Table) error {
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for rowIdx, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for colIdx, v := range row {
			cells[colIdx] = v.Cell()
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return err
		}
	}

	// Record the written range so blank header columns still get styled
	if len(t.Headers) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(t.Headers), len(t.Rows)+1)
	if err != nil {
		return err
	}
	return f.SetSheetDimension(sheetName, "A1:"+last)
}
