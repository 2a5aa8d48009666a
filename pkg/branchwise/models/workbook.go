package models

// SheetData is one worksheet read back from a generated workbook.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Table holds the header and data rows.
	Table *Table `json:"-"`
}

// WorkbookData represents a generated workbook with its sheets in order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the worksheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the named sheet.
func (w *WorkbookData) Sheet(name string) (SheetData, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetData{}, false
}
