// Package branchwise splits a station CSV into one spreadsheet sheet per branch.
package branchwise

import (
	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/writer"
)

const (
	// DefaultInput is the station CSV read when no input is given.
	DefaultInput = "StationDetails.csv"
	// DefaultOutput is the workbook written when no output is given.
	DefaultOutput = "Branchwise PS2 Station Details.xlsx"
	// StipendColumn is the sort key after renaming.
	StipendColumn = "Stipend"
	// PGStipendColumn is coerced to numbers but not used for sorting.
	PGStipendColumn = "Stipend (PG)"
	// BranchesColumn holds the comma separated branch preferences.
	BranchesColumn = "Preferred Branches"
	// DefaultSeparator follows a branch code that is not last in the list.
	DefaultSeparator = ", "
)

// Options configures a generation run.
type Options struct {
	// InputPath is the station CSV.
	InputPath string
	// OutputPath is the workbook to write.
	OutputPath string
	// Encoding names the CSV character encoding ("utf-8" when empty).
	Encoding string
	// Renames maps input column names to the names used downstream.
	Renames map[string]string
	// SortColumn is the column rows are ordered by, descending.
	SortColumn string
	// BranchColumn holds the branch preferences matched against branch codes.
	BranchColumn string
	// NumericColumns are coerced from text to numbers where possible.
	NumericColumns []string
	// SingleDegrees lists single-degree codes; dual degrees are derived.
	SingleDegrees []string
	// Separator is the text that follows a branch code inside the list.
	Separator string
	// SkipEmpty leaves out sheets for branches without any station.
	SkipEmpty bool
	// Format controls the styling pass.
	Format writer.Format
}

// DefaultOptions returns options matching the fixed station export layout.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInput,
		OutputPath: DefaultOutput,
		Encoding:   "utf-8",
		Renames: map[string]string{
			"Stipend (UG)":       StipendColumn,
			"Preferred Branches": BranchesColumn,
		},
		SortColumn:     StipendColumn,
		BranchColumn:   BranchesColumn,
		NumericColumns: []string{StipendColumn, PGStipendColumn},
		SingleDegrees:  append([]string(nil), models.DefaultSingleDegrees...),
		Separator:      DefaultSeparator,
		Format:         writer.DefaultFormat(),
	}
}

// Branches returns the ordered branch codes that get a sheet.
func (o Options) Branches() []string {
	return models.Branches(o.SingleDegrees)
}
