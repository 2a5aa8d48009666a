package models

// SheetReport describes one sheet written to the output workbook.
type SheetReport struct {
	// Name is the sheet name, equal to its branch code.
	Name string `json:"name"`
	// Rows is the number of data rows below the header.
	Rows int `json:"rows"`
}

// SkippedBranch records a branch whose sheet was left out.
type SkippedBranch struct {
	// Branch is the branch code.
	Branch string `json:"branch"`
	// Reason explains why no sheet was produced.
	Reason string `json:"reason"`
}

// Report is the outcome of a generation run.
type Report struct {
	// Output is the absolute path of the saved workbook.
	Output string `json:"output"`
	// InputRows is the number of station rows read from the CSV.
	InputRows int `json:"input_rows"`
	// Sheets lists written sheets in workbook order.
	Sheets []SheetReport `json:"sheets"`
	// Skipped lists branches without a sheet.
	Skipped []SkippedBranch `json:"skipped,omitempty"`
}
