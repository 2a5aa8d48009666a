package branchwise

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/parser"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/writer"
	"go.uber.org/zap"
)

// Generate reads the station CSV, splits it by branch and writes the
// formatted workbook. Branches whose filter fails are logged and skipped.
func Generate(ctx context.Context, opts Options, logger *zap.Logger) (*models.Report, error) {
	logger = nopIfNil(logger)

	table, err := parser.LoadCSV(opts.InputPath, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", opts.InputPath, err)
	}
	logger.Info("Loaded station table",
		zap.String("input", opts.InputPath),
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Headers)))

	table = Prepare(table, opts, logger)

	sheets, skipped, err := SplitByBranch(ctx, table, opts, logger)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	output, err := filepath.Abs(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path: %w", err)
	}

	// Write pass
	if err := writer.WriteSheets(output, sheets); err != nil {
		return nil, err
	}
	// Styling pass
	if err := writer.ApplyFormatting(output, opts.Format); err != nil {
		return nil, err
	}

	report := &models.Report{
		Output:    output,
		InputRows: table.Len(),
		Skipped:   skipped,
	}
	for _, s := range sheets {
		report.Sheets = append(report.Sheets, models.SheetReport{Name: s.Name, Rows: s.Table.Len()})
	}
	logger.Info("Workbook saved",
		zap.String("output", output),
		zap.Int("sheets", len(report.Sheets)),
		zap.Int("skipped", len(report.Skipped)))

	return report, nil
}

// Prepare renames columns, trims the branch column, coerces numeric columns
// and sorts the table. Missing columns are logged, never fatal.
func Prepare(table *models.Table, opts Options, logger *zap.Logger) *models.Table {
	logger = nopIfNil(logger)

	table.Rename(opts.Renames)

	if err := TrimColumn(table, opts.BranchColumn); err != nil {
		logger.Warn("Cannot trim branch column", zap.Error(err))
	}
	for _, column := range opts.NumericColumns {
		if err := CoerceColumn(table, column); err != nil {
			logger.Warn("Cannot coerce column", zap.Error(err))
		}
	}

	return SortByColumn(table, opts.SortColumn, logger)
}

// SplitByBranch derives one sheet per branch in branch-list order.
// Failed lookups are returned as skipped; empty ones only when opts.SkipEmpty.
func SplitByBranch(ctx context.Context, table *models.Table, opts Options, logger *zap.Logger) ([]writer.Sheet, []models.SkippedBranch, error) {
	logger = nopIfNil(logger)
	filter := NewFilter(opts, logger)

	var sheets []writer.Sheet
	var skipped []models.SkippedBranch
	for _, branch := range opts.Branches() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		res := filter.Apply(table, branch)
		switch res.Status() {
		case StatusFailed:
			logger.Warn("No sheet for branch",
				zap.String("branch", branch),
				zap.String("column", opts.BranchColumn),
				zap.Error(res.Err))
			skipped = append(skipped, models.SkippedBranch{Branch: branch, Reason: res.Err.Error()})
			continue
		case StatusEmpty:
			if opts.SkipEmpty {
				logger.Debug("Skipping empty branch", zap.String("branch", branch))
				skipped = append(skipped, models.SkippedBranch{Branch: branch, Reason: "no matching stations"})
				continue
			}
		}

		logger.Debug("Branch view ready",
			zap.String("branch", branch),
			zap.Int("rows", res.Table.Len()))
		sheets = append(sheets, writer.Sheet{Name: branch, Table: res.Table})
	}
	return sheets, skipped, nil
}
