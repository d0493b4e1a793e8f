// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides typed 1D data columns for tidy data tables.
// A column holds an ordered sequence of values of a single logical type,
// drawn from a closed set of supported types: string, bool, float32,
// float64, int, and int32. All columns provide uniform access to their
// values as floats, ints, and strings, with conversion between the
// column's native type and the access type, so that generic operations
// (sorting, filtering, reshaping, file I/O) do not need to switch on
// the concrete type.
// For float32 and float64 values, use NaN to indicate missing values.
package column

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/core/base/metadata"
)

// DataTypes are the supported column data types.
type DataTypes interface {
	string | bool | float32 | float64 | int | int32
}

// Column is the interface for typed 1D data columns.
// It is implemented by [Number] (generic over the numeric types),
// [String], and [Bool].
type Column interface {
	fmt.Stringer

	// Label satisfies the core Labeler interface for a summary
	// description of the column.
	Label() string

	// Len returns the number of values in the column.
	Len() int

	// DataType returns the type of the values in the column.
	DataType() reflect.Kind

	// IsString returns true if the data type is String; otherwise numeric or bool.
	IsString() bool

	// Float returns the value at index i as a float64.
	Float(i int) float64

	// SetFloat sets the value at index i as a float64.
	SetFloat(val float64, i int)

	// StringValue returns the value at index i as a string.
	// 'String' conflicts with [fmt.Stringer], so we use StringValue here.
	StringValue(i int) string

	// SetString sets the value at index i as a string.
	SetString(val string, i int)

	// Int returns the value at index i as an int.
	Int(i int) int

	// SetInt sets the value at index i as an int.
	SetInt(val int, i int)

	// SetLength sets the number of values, retaining existing values that fit.
	SetLength(n int)

	// SetZeros sets all values to the zero value of the type
	// (empty strings for the String type).
	SetZeros()

	// Clone returns a duplicate copy of this column with its own
	// separate memory representation of all the values.
	Clone() Column

	// CopyFrom copies all available values from the other column into
	// this column, with an optimized implementation if the other column
	// is of the same type, and otherwise going through the appropriate
	// access type (Float or StringValue).
	CopyFrom(from Column)

	// AppendFrom appends all values from the other column to this column,
	// with an optimized implementation if the other column is of the
	// same type.
	AppendFrom(from Column)

	// CopyCellsFrom copies the given range of values from the other column
	// into this column: to = starting index to copy into, start = starting
	// index to copy from, n = number of values to copy. Uses an optimized
	// implementation if the other column is of the same type, and otherwise
	// goes through the appropriate access type.
	CopyCellsFrom(from Column, to, start, n int)

	// Metadata returns the metadata for this column, which can be used
	// to encode documentation, display options, etc.
	Metadata() *metadata.Data
}

// New returns a new column of the given value type, with n values
// initialized to the zero value.
func New[T DataTypes](n int) Column {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(n)
	case bool:
		return NewBool(n)
	case float64:
		return NewNumber[float64](n)
	case float32:
		return NewNumber[float32](n)
	case int:
		return NewNumber[int](n)
	case int32:
		return NewNumber[int32](n)
	default:
		panic("column.New: unexpected error: type not supported")
	}
}

// NewOfType returns a new column of the given [reflect.Kind] type,
// with n values initialized to the zero value.
// Supported types are string, bool, float32, float64, int, and int32.
func NewOfType(typ reflect.Kind, n int) Column {
	switch typ {
	case reflect.String:
		return NewString(n)
	case reflect.Bool:
		return NewBool(n)
	case reflect.Float64:
		return NewNumber[float64](n)
	case reflect.Float32:
		return NewNumber[float32](n)
	case reflect.Int:
		return NewNumber[int](n)
	case reflect.Int32:
		return NewNumber[int32](n)
	default:
		panic("column.NewOfType: type not supported: " + typ.String())
	}
}

// UnifyKind returns the data type capable of holding values of both
// given column data types, used when values of different columns are
// collected into one column:
//   - identical types unify to themselves;
//   - String absorbs every other type, via string conversion;
//   - Int and Int32 unify to Int;
//   - any other mix of numeric and bool types unifies to Float64.
func UnifyKind(a, b reflect.Kind) reflect.Kind {
	if a == b {
		return a
	}
	if a == reflect.String || b == reflect.String {
		return reflect.String
	}
	if (a == reflect.Int && b == reflect.Int32) || (a == reflect.Int32 && b == reflect.Int) {
		return reflect.Int
	}
	return reflect.Float64
}

// MaxSprintLength is the default maximum number of values to print
// in the String representation of a column.
var MaxSprintLength = 1000

// Sprint returns a string representation of the given column, with a
// maximum length in values as given: 0 = [MaxSprintLength].
func Sprint(cl Column, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxSprintLength
	}
	var b strings.Builder
	b.WriteString(cl.Label())
	n := min(cl.Len(), maxLen)
	for i := range n {
		b.WriteString(" ")
		b.WriteString(cl.StringValue(i))
	}
	if cl.Len() > n {
		b.WriteString(" ...")
	}
	return b.String()
}

// CompareAscending compares two ordered values for use in sort
// comparison functions, inverting the result if ascending is false.
func CompareAscending[T cmp.Ordered](a, b T, ascending bool) int {
	if ascending {
		return cmp.Compare(a, b)
	}
	return cmp.Compare(b, a)
}
