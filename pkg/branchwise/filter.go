package branchwise

import (
	"fmt"
	"strings"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"go.uber.org/zap"
)

// Status classifies a FilterResult.
type Status int

const (
	// StatusMatched means at least one row matched the branch.
	StatusMatched Status = iota
	// StatusEmpty means the lookup worked but no row matched.
	StatusEmpty
	// StatusFailed means the lookup itself failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// FilterResult is one branch's view of the station table.
type FilterResult struct {
	// Branch is the branch code the rows were matched against.
	Branch string
	// Table holds the matching rows, sorted. Nil when Err is set.
	Table *models.Table
	// Err is the reason the lookup failed.
	Err error
}

// Status reports whether the result matched rows, matched none, or failed.
func (r FilterResult) Status() Status {
	switch {
	case r.Err != nil || r.Table == nil:
		return StatusFailed
	case r.Table.Len() == 0:
		return StatusEmpty
	}
	return StatusMatched
}

// Filter selects the rows of a table preferring a given branch.
type Filter struct {
	// Column holds the branch preferences.
	Column string
	// SortColumn orders each branch view.
	SortColumn string
	// Separator follows a branch code that is not last in the list.
	Separator string
	// Logger receives sort warnings. Nil discards them.
	Logger *zap.Logger
}

// NewFilter returns a filter configured from opts.
func NewFilter(opts Options, logger *zap.Logger) Filter {
	return Filter{
		Column:     opts.BranchColumn,
		SortColumn: opts.SortColumn,
		Separator:  opts.Separator,
		Logger:     logger,
	}
}

// Apply returns the rows whose preferences match branch, re-sorted.
// Matched rows are copies, so later changes to t do not reach the view.
func (f Filter) Apply(t *models.Table, branch string) FilterResult {
	idx, ok := t.ColumnIndex(f.Column)
	if !ok {
		return FilterResult{Branch: branch, Err: &FilterError{Branch: branch, Column: f.Column, Err: columnError(f.Column)}}
	}

	var rows []models.Row
	for rowIdx, row := range t.Rows {
		cell := row[idx]
		if cell.Kind() != models.KindText {
			return FilterResult{Branch: branch, Err: &FilterError{
				Branch: branch,
				Column: f.Column,
				Err:    fmt.Errorf("%w: row %d holds %s", ErrIncompatibleData, rowIdx+1, cell.String()),
			}}
		}
		if MatchesBranch(cell.String(), branch, f.Separator) {
			rows = append(rows, row)
		}
	}

	view := t.WithRows(rows)
	return FilterResult{Branch: branch, Table: SortByColumn(view, f.SortColumn, f.Logger)}
}

// MatchesBranch reports whether a preference list selects branch.
// The code has to occur exactly once, be followed by sep or end the list,
// and the list must not name the dual-degree code built from it.
func MatchesBranch(prefs, branch, sep string) bool {
	if branch == "" || strings.Count(prefs, branch) != 1 {
		return false
	}
	if !strings.Contains(prefs, branch+sep) && !strings.HasSuffix(prefs, branch) {
		return false
	}
	return !strings.Contains(prefs, models.DualDegree(branch))
}
