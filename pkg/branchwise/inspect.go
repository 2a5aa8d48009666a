package branchwise

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a generated workbook back, one table per sheet.
func Inspect(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.WorkbookData{BookName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		table, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.SheetData{Name: sheetName, Table: table})
	}
	return wb, nil
}
