// Package models defines data structures for branch-wise station sheets.
package models

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindText is a value that did not parse as a number.
	KindText Kind = iota
	// KindInt is an integer value.
	KindInt
	// KindFloat is a value with a fractional part.
	KindFloat
)

// Value is a cell value that is either numeric (int or float) or text.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether v holds an int or a float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Float returns the numeric magnitude of v. Text values return 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	}
	return 0
}

// String returns the rendered form of v.
// Integral floats keep a trailing ".0" so they stay distinguishable from ints.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if v.f == math.Trunc(v.f) && math.Abs(v.f) < 1e16 {
			return strconv.FormatFloat(v.f, 'f', 1, 64)
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
	return v.s
}

// Cell returns v as the native type a spreadsheet writer expects:
// int64, float64 or string.
func (v Value) Cell() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	}
	return v.s
}
