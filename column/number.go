// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"strconv"

	"cogentcore.org/core/base/num"
	"cogentcore.org/core/base/reflectx"
)

// Number is a column of numerical values.
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// NewNumber returns a new column of numerical values with n values.
func NewNumber[T num.Number](n int) *Number[T] {
	cl := &Number[T]{}
	cl.Values = make([]T, n)
	return cl
}

// NewNumberFromValues returns a new column of numerical values
// initialized directly from the given slice values, which are not copied.
// The resulting column thus "wraps" the given values.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	return &Number[T]{Base[T]{Values: vals}}
}

// NewFloat64 returns a new [Float64] column with n values.
func NewFloat64(n int) *Float64 {
	return NewNumber[float64](n)
}

// NewFloat32 returns a new [Float32] column with n values.
func NewFloat32(n int) *Float32 {
	return NewNumber[float32](n)
}

// NewInt returns a new [Int] column with n values.
func NewInt(n int) *Int {
	return NewNumber[int](n)
}

// NewInt32 returns a new [Int32] column with n values.
func NewInt32(n int) *Int32 {
	return NewNumber[int32](n)
}

// NewFloat64FromValues returns a new [Float64] column initialized
// directly from the given values, which are not copied.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// NewFloat32FromValues returns a new [Float32] column initialized
// directly from the given values, which are not copied.
func NewFloat32FromValues(vals ...float32) *Float32 {
	return NewNumberFromValues(vals...)
}

// NewIntFromValues returns a new [Int] column initialized
// directly from the given values, which are not copied.
func NewIntFromValues(vals ...int) *Int {
	return NewNumberFromValues(vals...)
}

// String satisfies the fmt.Stringer interface for string of column data.
func (cl *Number[T]) String() string { return Sprint(cl, 0) }

func (cl *Number[T]) IsString() bool { return false }

// SetString sets the value at index i from the given string,
// parsed as a float64. Unparseable values leave the current value as is.
func (cl *Number[T]) SetString(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		cl.Values[i] = T(fv)
	}
}

func (cl *Number[T]) Float(i int) float64 {
	return float64(cl.Values[i])
}

func (cl *Number[T]) SetFloat(val float64, i int) {
	cl.Values[i] = T(val)
}

func (cl *Number[T]) Int(i int) int {
	return int(cl.Values[i])
}

func (cl *Number[T]) SetInt(val int, i int) {
	cl.Values[i] = T(val)
}

// SetZeros sets all values to 0.
func (cl *Number[T]) SetZeros() {
	for i := range cl.Values {
		cl.Values[i] = 0
	}
}

// Clone returns a duplicate copy of this column with its own
// separate memory representation of all the values.
func (cl *Number[T]) Clone() Column {
	csr := NewNumber[T](cl.Len())
	copy(csr.Values, cl.Values)
	csr.Meta.Copy(cl.Meta)
	return csr
}

// CopyFrom copies all available values from the other column into
// this column, with an optimized implementation if the other column
// is of the same type, and otherwise going through the Float access type
// (Int for the integer types, to avoid float64 truncation of large ints).
func (cl *Number[T]) CopyFrom(frm Column) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(cl.Values, fsm.Values)
		return
	}
	sz := min(cl.Len(), frm.Len())
	if reflectx.KindIsInt(cl.DataType()) {
		for i := range sz {
			cl.Values[i] = T(frm.Int(i))
		}
	} else {
		for i := range sz {
			cl.Values[i] = T(frm.Float(i))
		}
	}
}

// AppendFrom appends all values from the other column to this column,
// with an optimized implementation if the other column is of the same type.
func (cl *Number[T]) AppendFrom(frm Column) {
	if fsm, ok := frm.(*Number[T]); ok {
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
func (cl *Number[T]) CopyCellsFrom(frm Column, to, start, n int) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(cl.Values[to:to+n], fsm.Values[start:start+n])
		return
	}
	if reflectx.KindIsInt(cl.DataType()) {
		for i := range n {
			cl.Values[to+i] = T(frm.Int(start + i))
		}
	} else {
		for i := range n {
			cl.Values[to+i] = T(frm.Float(start + i))
		}
	}
}
