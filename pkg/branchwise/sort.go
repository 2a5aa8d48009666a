package branchwise

import (
	"sort"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"go.uber.org/zap"
)

// SortByColumn orders rows by a column, largest number first.
// Rows whose value is not numeric follow all numeric rows in their original
// order. A missing column is logged and the table is returned unchanged.
func SortByColumn(t *models.Table, column string, logger *zap.Logger) *models.Table {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		nopIfNil(logger).Warn("Sort column not found, skipping sort",
			zap.String("column", column))
		return t
	}

	numeric := make([]models.Row, 0, len(t.Rows))
	var text []models.Row
	for _, row := range t.Rows {
		if row[idx].IsNumeric() {
			numeric = append(numeric, row)
		} else {
			text = append(text, row)
		}
	}

	sort.SliceStable(numeric, func(i, j int) bool {
		return numeric[i][idx].Float() > numeric[j][idx].Float()
	})

	return &models.Table{
		Headers: t.Headers,
		Rows:    append(numeric, text...),
	}
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
