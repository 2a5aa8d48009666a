package branchwise

import (
	"strings"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/parser"
)

// CoerceColumn converts every text cell of a column with parser.ParseValue.
// Cells that are already numeric are left alone.
func CoerceColumn(t *models.Table, column string) error {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return columnError(column)
	}
	for _, row := range t.Rows {
		if row[idx].Kind() == models.KindText {
			row[idx] = parser.ParseValue(row[idx].String())
		}
	}
	return nil
}

// TrimColumn strips leading and trailing whitespace from a text column.
func TrimColumn(t *models.Table, column string) error {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return columnError(column)
	}
	for _, row := range t.Rows {
		if row[idx].Kind() == models.KindText {
			row[idx] = models.Text(strings.TrimSpace(row[idx].String()))
		}
	}
	return nil
}
