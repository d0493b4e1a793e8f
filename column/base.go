// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/metadata"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/base/slicesx"
)

// Base is the shared representation underlying all concrete column types:
// a flat slice of values plus optional metadata.
type Base[T any] struct {
	// Values is the underlying value storage, in row order.
	Values []T

	// Meta is misc metadata for the column, using CamelCase key names
	// per the [metadata] convention. Standard keys:
	//	- Name string = column name, set by the containing table
	//	- Doc string = documentation, description
	//	- Precision int = precision for writing float values to csv.
	Meta metadata.Data
}

// Len returns the number of values in the column.
func (cl *Base[T]) Len() int { return len(cl.Values) }

// DataType returns the type of the values in the column.
func (cl *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Metadata returns the metadata for this column, which can be used
// to encode name, documentation, display options, etc.
func (cl *Base[T]) Metadata() *metadata.Data { return &cl.Meta }

// SetLength sets the number of values, retaining existing values that fit.
func (cl *Base[T]) SetLength(n int) {
	cl.Values = slicesx.SetLength(cl.Values, n)
}

// Value returns the value at the given index in the native column type.
func (cl *Base[T]) Value(i int) T { return cl.Values[i] }

// Set sets the value at the given index in the native column type.
func (cl *Base[T]) Set(val T, i int) { cl.Values[i] = val }

// Append appends the given value(s) in the native column type.
func (cl *Base[T]) Append(val ...T) {
	cl.Values = append(cl.Values, val...)
}

// StringValue returns the value at index i as a string.
func (cl *Base[T]) StringValue(i int) string {
	return reflectx.ToString(cl.Values[i])
}

// Label satisfies the core Labeler interface for a summary
// description of the column.
func (cl *Base[T]) Label() string {
	return fmt.Sprintf("Column: %v[%d]", cl.DataType(), cl.Len())
}
