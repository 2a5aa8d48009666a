package branchwise

import (
	"errors"
	"fmt"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/parser"
)

// ErrColumnNotFound indicates a required column is missing from the table.
var ErrColumnNotFound = errors.New("column not found")

// ErrIncompatibleData indicates a column holds values an operation cannot use.
var ErrIncompatibleData = errors.New("incompatible column data")

// ErrNoSheets indicates every branch failed, leaving nothing to write.
var ErrNoSheets = errors.New("no sheets to write")

// ErrMalformedCSV indicates the input cannot be read as a station table.
var ErrMalformedCSV = parser.ErrMalformedCSV

// FilterError represents a failure to derive one branch's view.
type FilterError struct {
	Branch string
	Column string
	Err    error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter branch %q on column %q: %v", e.Branch, e.Column, e.Err)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

func columnError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
