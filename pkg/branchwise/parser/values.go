// Package parser reads station data from CSV files and generated workbooks.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
)

// ParseValue coerces text to a number where possible.
// All-digit text becomes an Int, digits with a single decimal point become a
// Float, anything else (signs, spaces, units, empty) stays Text unchanged.
// Digit strings too long for float64 also stay Text.
func ParseValue(s string) models.Value {
	if !isDigits(strings.Replace(s, ".", "", 1)) {
		return models.Text(s)
	}

	if !strings.Contains(s, ".") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return models.Int(i)
		}
	}

	// Single decimal point, or an integer too large for int64
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Float(f)
	}
	return models.Text(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
