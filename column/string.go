// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"strconv"

	"cogentcore.org/core/base/errors"
)

// String is a column of string values.
type String struct {
	Base[string]
}

// NewString returns a new [String] column with n values.
func NewString(n int) *String {
	cl := &String{}
	cl.Values = make([]string, n)
	return cl
}

// NewStringFromValues returns a new [String] column initialized
// directly from the given slice values, which are not copied.
// The resulting column thus "wraps" the given values.
func NewStringFromValues(vals ...string) *String {
	return &String{Base[string]{Values: vals}}
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error.
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts float64 to string value.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of column data.
func (cl *String) String() string { return Sprint(cl, 0) }

func (cl *String) IsString() bool { return true }

func (cl *String) Float(i int) float64 {
	return StringToFloat64(cl.Values[i])
}

func (cl *String) SetFloat(val float64, i int) {
	cl.Values[i] = Float64ToString(val)
}

func (cl *String) SetString(val string, i int) {
	cl.Values[i] = val
}

func (cl *String) Int(i int) int {
	return errors.Ignore1(strconv.Atoi(cl.Values[i]))
}

func (cl *String) SetInt(val int, i int) {
	cl.Values[i] = strconv.Itoa(val)
}

// SetZeros sets all values to the empty string.
func (cl *String) SetZeros() {
	for i := range cl.Values {
		cl.Values[i] = ""
	}
}

// Clone returns a duplicate copy of this column with its own
// separate memory representation of all the values.
func (cl *String) Clone() Column {
	csr := NewString(cl.Len())
	copy(csr.Values, cl.Values)
	csr.Meta.Copy(cl.Meta)
	return csr
}

// CopyFrom copies all available values from the other column into
// this column, with an optimized implementation if the other column
// is of the same type, and otherwise going through the StringValue
// access type, so numbers keep their natural formatting.
func (cl *String) CopyFrom(frm Column) {
	if fsm, ok := frm.(*String); ok {
		copy(cl.Values, fsm.Values)
		return
	}
	sz := min(cl.Len(), frm.Len())
	for i := range sz {
		cl.Values[i] = frm.StringValue(i)
	}
}

// AppendFrom appends all values from the other column to this column,
// with an optimized implementation if the other column is of the same type.
func (cl *String) AppendFrom(frm Column) {
	if fsm, ok := frm.(*String); ok {
		cl.Values = append(cl.Values, fsm.Values...)
		return
	}
	st := cl.Len()
	fn := frm.Len()
	cl.SetLength(st + fn)
	cl.CopyCellsFrom(frm, st, 0, fn)
}

// CopyCellsFrom copies the given range of values from the other column
// into this column: to = starting index to copy into, start = starting
// index to copy from, n = number of values to copy.
func (cl *String) CopyCellsFrom(frm Column, to, start, n int) {
	if fsm, ok := frm.(*String); ok {
		copy(cl.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		cl.Values[to+i] = frm.StringValue(start + i)
	}
}
