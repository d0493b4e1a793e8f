// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reshape provides operations that change the layout of
// [table.Table] data between wide and long forms, following the tidy
// data model: [Gather] collects a set of value columns into key and
// value column pairs (wide to long), and [Spread] is its inverse
// (long to wide). Columns to operate on are chosen with a [Selector].
package reshape

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/tidy/column"
	"cogentcore.org/tidy/table"
)

// Gather collects the values of the selected columns into two new
// columns, converting a wide table into a long one: the key column
// (named by keyName) holds the name of the source column each value
// came from, and the value column (named by valueName) holds the
// values themselves. All remaining columns are identifying columns:
// their values are repeated for each gathered column, so every output
// row retains its identifying context.
//
// The output is ordered by gathered column first, in table column
// order, then by row: all rows for the first gathered column, then
// all rows for the second, and so on. Rows are read through the
// current indexed view of the source table; the output is always
// sequential, with identifying columns first (in source order),
// then the key column, then the value column.
//
// The value column type is the common type of the gathered columns:
// identical types are preserved, int and int32 combine to int, any
// other mix of numeric and bool types combines to float64, and a
// string column combined with anything yields string, converting
// the other values to their string form.
//
// The source table is not modified. A nil selector gathers all columns.
// Returns [UnknownColumnError] if the selector names a missing column,
// [EmptyGatherError] if it selects no columns, and [NameCollisionError]
// if keyName equals valueName or either collides with an identifying
// column name (naming a gathered column is allowed, as it is consumed).
func Gather(dt *table.Table, keyName, valueName string, sel Selector) (*table.Table, error) {
	if dt == nil || dt.NumColumns() == 0 {
		return nil, errors.New("reshape.Gather: table has no columns")
	}
	if keyName == "" || valueName == "" {
		return nil, errors.New("reshape.Gather: key and value column names must be non-empty")
	}
	if keyName == valueName {
		return nil, &NameCollisionError{Name: keyName}
	}
	if sel == nil {
		sel = All()
	}
	gather, err := sel.Resolve(dt)
	if err != nil {
		return nil, err
	}
	if len(gather) == 0 {
		return nil, &EmptyGatherError{}
	}
	gset := make(map[string]bool, len(gather))
	for _, nm := range gather {
		gset[nm] = true
	}
	var kept []string
	for i := range dt.NumColumns() {
		nm := dt.ColumnName(i)
		if gset[nm] {
			continue
		}
		if nm == keyName || nm == valueName {
			return nil, &NameCollisionError{Name: nm}
		}
		kept = append(kept, nm)
	}

	nrows := dt.NumRows()
	orows := len(gather) * nrows
	out := table.NewTable()
	for _, nm := range kept {
		scl := dt.Column(nm)
		ocl := column.NewOfType(scl.DataType(), orows)
		for b := range gather {
			copyBlock(ocl, scl, dt, b*nrows, nrows)
		}
		errors.Log(out.AddColumn(nm, ocl))
	}

	kcl := column.NewString(orows)
	for b, gnm := range gather {
		bst := b * nrows
		for r := range nrows {
			kcl.Values[bst+r] = gnm
		}
	}
	errors.Log(out.AddColumn(keyName, kcl))

	vkind := dt.Column(gather[0]).DataType()
	for _, gnm := range gather[1:] {
		vkind = column.UnifyKind(vkind, dt.Column(gnm).DataType())
	}
	vcl := column.NewOfType(vkind, orows)
	for b, gnm := range gather {
		copyBlock(vcl, dt.Column(gnm), dt, b*nrows, nrows)
	}
	errors.Log(out.AddColumn(valueName, vcl))
	return out, nil
}

// copyBlock copies nrows values from the source column, read through
// the current indexed view of the source table, into the destination
// column starting at the given offset, converting between column
// types as needed.
func copyBlock(dst, src column.Column, dt *table.Table, at, nrows int) {
	if dt.Indexes == nil {
		dst.CopyCellsFrom(src, at, 0, nrows)
		return
	}
	for r := range nrows {
		dst.CopyCellsFrom(src, at+r, dt.RowIndex(r), 1)
	}
}
