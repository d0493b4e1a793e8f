// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"strconv"
)

// Bool is a column of bool values.
type Bool struct {
	Base[bool]
}

// NewBool returns a new [Bool] column with n values.
func NewBool(n int) *Bool {
	cl := &Bool{}
	cl.Values = make([]bool, n)
	return cl
}

// NewBoolFromValues returns a new [Bool] column initialized
// directly from the given slice values, which are not copied.
// The resulting column thus "wraps" the given values.
func NewBoolFromValues(vals ...bool) *Bool {
	return &Bool{Base[bool]{Values: vals}}
}

// BoolToFloat64 converts a bool to a float64: 1 for true, 0 for false.
func BoolToFloat64(bv bool) float64 {
	if bv {
		return 1
	}
	return 0
}

// Float64ToBool converts a float64 to a bool: true for any nonzero value.
func Float64ToBool(val float64) bool {
	return val != 0
}

// String satisfies the fmt.Stringer interface for string of column data.
func (cl *Bool) String() string { return Sprint(cl, 0) }

func (cl *Bool) IsString() bool { return false }

func (cl *Bool) Float(i int) float64 {
	return BoolToFloat64(cl.Values[i])
}

func (cl *Bool) SetFloat(val float64, i int) {
	cl.Values[i] = Float64ToBool(val)
}

// SetString sets the value at index i from the given string,
// parsed with strconv.ParseBool, falling back on float parsing
// with a nonzero value = true. Unparseable values leave the
// current value as is.
func (cl *Bool) SetString(val string, i int) {
	if bv, err := strconv.ParseBool(val); err == nil {
		cl.Values[i] = bv
	} else if fv, err := strconv.ParseFloat(val, 64); err == nil {
		cl.Values[i] = Float64ToBool(fv)
	}
}

func (cl *Bool) Int(i int) int {
	return int(BoolToFloat64(cl.Values[i]))
}

func (cl *Bool) SetInt(val int, i int) {
	cl.Values[i] = val != 0
}

// SetZeros sets all values to false.
func (cl *Bool) SetZeros() {
	for i := range cl.Values {
		cl.Values[i] = false
	}
}

// Clone returns a duplicate copy of this column with its own
// separate memory representation of all the values.
func (cl *Bool) Clone() Column {
	csr := NewBool(cl.Len())
	copy(csr.Values, cl.Values)
	csr.Meta.Copy(cl.Meta)
	return csr
}

// CopyFrom copies all available values from the other column into
// this column, with an optimized implementation if the other column
// is of the same type, and otherwise going through the Float access type.
func (cl *Bool) CopyFrom(frm Column) {
	if fsm, ok := frm.(*Bool); ok {
		copy(cl.Values, fsm.Values)
		return
	}
	sz := min(cl.Len(), frm.Len())
	for i := range sz {
		cl.Values[i] = Float64ToBool(frm.Float(i))
	}
}

// AppendFrom appends all values from the other column to this column,
// with an optimized implementation if the other column is of the same type.
func (cl *Bool) AppendFrom(frm Column) {
	if fsm, ok := frm.(*Bool); ok {
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
func (cl *Bool) CopyCellsFrom(frm Column, to, start, n int) {
	if fsm, ok := frm.(*Bool); ok {
		copy(cl.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	for i := range n {
		cl.Values[to+i] = Float64ToBool(frm.Float(start + i))
	}
}
