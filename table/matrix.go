// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tidy/column"
	"gonum.org/v1/gonum/mat"
)

// AsDense returns the data in the given columns (all non-string columns
// if none specified) as a gonum [mat.Dense] matrix, using the standard
// Float64 interface, with table rows as matrix rows through the current
// indexed view, and matrix columns in the given order.
// Returns an error if a column is not found, a column holds string
// values, or the resulting matrix would be empty.
func (dt *Table) AsDense(columns ...string) (*mat.Dense, error) {
	if len(columns) == 0 {
		for i := range dt.NumColumns() {
			if !dt.ColumnByIndex(i).IsString() {
				columns = append(columns, dt.ColumnName(i))
			}
		}
	}
	nc := len(columns)
	nr := dt.NumRows()
	if nc == 0 || nr == 0 {
		return nil, errors.New("table.AsDense: no data to convert")
	}
	cls := make([]column.Column, nc)
	for i, nm := range columns {
		cl, err := dt.ColumnTry(nm)
		if err != nil {
			return nil, err
		}
		if cl.IsString() {
			return nil, fmt.Errorf("table.AsDense: column %q holds string values", nm)
		}
		cls[i] = cl
	}
	dm := mat.NewDense(nr, nc, nil)
	for ri := range nr {
		rw := dt.RowIndex(ri)
		for ci, cl := range cls {
			dm.Set(ri, ci, cl.Float(rw))
		}
	}
	return dm, nil
}

// FromDense returns a new [Table] with [column.Float64] columns copied
// from the given gonum [mat.Dense] matrix, with matrix rows as table rows.
// Columns are named by the given names, defaulting to col_0, col_1, ...
// for any not specified. Returns an error if the matrix is empty, more
// names are given than matrix columns, or names are not unique.
func FromDense(dm *mat.Dense, names ...string) (*Table, error) {
	nr, nc := dm.Dims()
	if nr == 0 || nc == 0 {
		return nil, errors.New("table.FromDense: matrix is empty")
	}
	if len(names) > nc {
		return nil, fmt.Errorf("table.FromDense: %d names given for %d matrix columns", len(names), nc)
	}
	dt := NewTable()
	for ci := range nc {
		nm := fmt.Sprintf("col_%d", ci)
		if ci < len(names) && names[ci] != "" {
			nm = names[ci]
		}
		cl := column.NewFloat64FromValues(mat.Col(nil, ci, dm)...)
		if err := dt.AddColumn(nm, cl); err != nil {
			return nil, err
		}
	}
	return dt, nil
}
