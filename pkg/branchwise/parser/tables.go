package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bounds is the used range of a sheet anchored at A1.
type Bounds struct {
	// Rows is the last used row (1-based), 0 for an empty sheet.
	Rows int
	// Cols is the last used column (1-based), 0 for an empty sheet.
	Cols int
}

// Empty reports whether the sheet has no cells.
func (b Bounds) Empty() bool {
	return b.Rows == 0 || b.Cols == 0
}

// DataBounds finds the used range of rows returned by GetRows.
// Trailing empty cells do not extend the range.
func DataBounds(rows [][]string) Bounds {
	var b Bounds
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > b.Rows {
				b.Rows = rowIdx + 1
			}
			if colIdx+1 > b.Cols {
				b.Cols = colIdx + 1
			}
		}
	}
	return b
}

// DimensionBounds converts a sheet dimension such as "A1:E4" to bounds.
// A single-cell reference is the placeholder of an untouched sheet and
// yields empty bounds.
func DimensionBounds(ref string) (Bounds, error) {
	_, last, ok := strings.Cut(ref, ":")
	if !ok {
		return Bounds{}, nil
	}
	col, row, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Rows: row, Cols: col}, nil
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{Rows: max(b.Rows, other.Rows), Cols: max(b.Cols, other.Cols)}
}
