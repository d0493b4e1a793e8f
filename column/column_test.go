// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"reflect"
	"testing"

	"cogentcore.org/core/base/metadata"
	"github.com/stretchr/testify/assert"
)

func TestColumnString(t *testing.T) {
	cl := NewString(4)
	assert.Equal(t, 4, cl.Len())
	assert.Equal(t, true, cl.IsString())
	assert.Equal(t, reflect.String, cl.DataType())

	cl.SetString("test", 2)
	assert.Equal(t, "test", cl.StringValue(2))
	cl.SetFloat(3.14, 1)
	assert.Equal(t, "3.14", cl.StringValue(1))
	assert.Equal(t, 3.14, cl.Float(1))
	assert.Equal(t, 0.0, cl.Float(2))
	cl.SetInt(19, 0)
	assert.Equal(t, 19, cl.Int(0))
	assert.Equal(t, 0, cl.Int(2))

	cln := cl.Clone()
	assert.Equal(t, "test", cln.StringValue(2))

	cln.SetZeros()
	assert.Equal(t, "", cln.StringValue(2))
	assert.Equal(t, "test", cl.StringValue(2))

	cln.CopyFrom(cl)
	assert.Equal(t, "test", cln.StringValue(2))

	fl := NewFloat64FromValues(19, 92)
	cln.CopyCellsFrom(fl, 2, 0, 2)
	assert.Equal(t, "19", cln.StringValue(2))
	assert.Equal(t, "92", cln.StringValue(3))

	cln.AppendFrom(fl)
	assert.Equal(t, 6, cln.Len())
	assert.Equal(t, "19", cln.StringValue(4))

	cl.SetLength(2)
	assert.Equal(t, 2, cl.Len())

	cl.Metadata().SetName("test")
	assert.Equal(t, "test", cl.Metadata().GetName())
	_, err := metadata.Get[int](*cl.Metadata(), "Precision")
	assert.Error(t, err)
}

func TestColumnFloat64(t *testing.T) {
	cl := NewFloat64(4)
	assert.Equal(t, 4, cl.Len())
	assert.Equal(t, false, cl.IsString())
	assert.Equal(t, reflect.Float64, cl.DataType())

	cl.SetFloat(3.14, 2)
	assert.Equal(t, 3.14, cl.Float(2))
	assert.Equal(t, "3.14", cl.StringValue(2))
	cl.SetString("2.17", 1)
	assert.Equal(t, 2.17, cl.Float(1))
	cl.SetString("not a number", 1)
	assert.Equal(t, 2.17, cl.Float(1))
	cl.SetInt(3, 0)
	assert.Equal(t, 3, cl.Int(0))
	assert.Equal(t, 3, cl.Int(2))

	cln := cl.Clone()
	assert.Equal(t, 3.14, cln.Float(2))

	cln.SetZeros()
	assert.Equal(t, 0.0, cln.Float(2))
	assert.Equal(t, 3.14, cl.Float(2))

	st := NewStringFromValues("19", "92")
	cln.CopyCellsFrom(st, 2, 0, 2)
	assert.Equal(t, 19.0, cln.Float(2))
	assert.Equal(t, 92.0, cln.Float(3))

	cln.CopyFrom(cl)
	assert.Equal(t, 3.14, cln.Float(2))

	cln.AppendFrom(st)
	assert.Equal(t, 6, cln.Len())
	assert.Equal(t, 92.0, cln.Float(5))

	cl.SetLength(6)
	assert.Equal(t, 6, cl.Len())
	assert.Equal(t, 0.0, cl.Float(5))
}

func TestColumnInt(t *testing.T) {
	cl := NewIntFromValues(19, 28, 24)
	assert.Equal(t, 3, cl.Len())
	assert.Equal(t, false, cl.IsString())
	assert.Equal(t, reflect.Int, cl.DataType())

	assert.Equal(t, 19.0, cl.Float(0))
	assert.Equal(t, "28", cl.StringValue(1))
	cl.SetFloat(4.9, 0)
	assert.Equal(t, 4, cl.Int(0))
	cl.SetString("17", 0)
	assert.Equal(t, 17, cl.Int(0))

	fl := NewFloat64FromValues(1.7, 2.9)
	cl.CopyCellsFrom(fl, 0, 0, 2)
	assert.Equal(t, 1, cl.Int(0))
	assert.Equal(t, 2, cl.Int(1))

	i32 := NewNumberFromValues[int32](3, 4, 5)
	assert.Equal(t, reflect.Int32, i32.DataType())
	cl.CopyFrom(i32)
	assert.Equal(t, 3, cl.Int(0))
	assert.Equal(t, 5, cl.Int(2))

	cln := cl.Clone()
	cln.SetZeros()
	assert.Equal(t, 0, cln.Int(0))
	assert.Equal(t, 3, cl.Int(0))
}

func TestColumnBool(t *testing.T) {
	cl := NewBool(3)
	assert.Equal(t, 3, cl.Len())
	assert.Equal(t, false, cl.IsString())
	assert.Equal(t, reflect.Bool, cl.DataType())

	cl.SetFloat(1, 0)
	assert.Equal(t, true, cl.Values[0])
	assert.Equal(t, 1.0, cl.Float(0))
	cl.SetString("true", 1)
	assert.Equal(t, true, cl.Values[1])
	assert.Equal(t, "true", cl.StringValue(1))
	cl.SetString("0", 2)
	assert.Equal(t, false, cl.Values[2])
	cl.SetInt(2, 2)
	assert.Equal(t, 1, cl.Int(2))
	cl.SetInt(0, 2)
	assert.Equal(t, 0, cl.Int(2))

	iv := NewIntFromValues(0, 3)
	cl.CopyCellsFrom(iv, 0, 0, 2)
	assert.Equal(t, false, cl.Values[0])
	assert.Equal(t, true, cl.Values[1])

	cln := cl.Clone()
	cln.SetZeros()
	assert.Equal(t, 0, cln.Int(1))
	assert.Equal(t, true, cl.Values[1])
}

func TestNewOfType(t *testing.T) {
	kinds := []reflect.Kind{reflect.String, reflect.Bool, reflect.Float64, reflect.Float32, reflect.Int, reflect.Int32}
	for _, k := range kinds {
		cl := NewOfType(k, 2)
		assert.Equal(t, k, cl.DataType())
		assert.Equal(t, 2, cl.Len())
		assert.Equal(t, k == reflect.String, cl.IsString())
	}
	assert.Equal(t, reflect.Float32, New[float32](3).DataType())
	assert.Panics(t, func() { NewOfType(reflect.Complex128, 2) })
}

func TestUnifyKind(t *testing.T) {
	assert.Equal(t, reflect.Float64, UnifyKind(reflect.Float64, reflect.Float64))
	assert.Equal(t, reflect.Int, UnifyKind(reflect.Int, reflect.Int))
	assert.Equal(t, reflect.String, UnifyKind(reflect.String, reflect.Float64))
	assert.Equal(t, reflect.String, UnifyKind(reflect.Bool, reflect.String))
	assert.Equal(t, reflect.Int, UnifyKind(reflect.Int, reflect.Int32))
	assert.Equal(t, reflect.Int, UnifyKind(reflect.Int32, reflect.Int))
	assert.Equal(t, reflect.Float64, UnifyKind(reflect.Float64, reflect.Int))
	assert.Equal(t, reflect.Float64, UnifyKind(reflect.Float32, reflect.Float64))
	assert.Equal(t, reflect.Float64, UnifyKind(reflect.Bool, reflect.Int))
	assert.Equal(t, reflect.Float64, UnifyKind(reflect.Float32, reflect.Int32))
}
