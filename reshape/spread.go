// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import (
	"math"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tidy/column"
	"cogentcore.org/tidy/table"
)

// Spread is the inverse of [Gather], converting a long table into a
// wide one: each distinct value in the key column becomes a new column
// named after it, filled from the value column, and rows sharing the
// same values in all remaining identifying columns are merged into a
// single output row.
//
// Identifying columns keep their source order and types, followed by
// the new value columns in order of first appearance of their key
// value, all typed as the value column. Rows are read through the
// current indexed view of the source table, and output groups are
// ordered by first appearance. Cells with no corresponding source row
// are NaN for float columns and zero values otherwise.
//
// The source table is not modified.
// Returns [UnknownColumnError] if the key or value column does not
// exist, [NameCollisionError] if a key value matches an identifying
// column name, and [DuplicateCellError] if two rows map to the same
// output cell.
func Spread(dt *table.Table, keyName, valueName string) (*table.Table, error) {
	if dt == nil || dt.NumColumns() == 0 {
		return nil, errors.New("reshape.Spread: table has no columns")
	}
	if keyName == "" || valueName == "" {
		return nil, errors.New("reshape.Spread: key and value column names must be non-empty")
	}
	if keyName == valueName {
		return nil, errors.New("reshape.Spread: key and value must be different columns")
	}
	kcl := dt.Column(keyName)
	if kcl == nil {
		return nil, &UnknownColumnError{Column: keyName}
	}
	vcl := dt.Column(valueName)
	if vcl == nil {
		return nil, &UnknownColumnError{Column: valueName}
	}
	var kept []string
	for i := range dt.NumColumns() {
		nm := dt.ColumnName(i)
		if nm != keyName && nm != valueName {
			kept = append(kept, nm)
		}
	}
	keptSet := make(map[string]bool, len(kept))
	for _, nm := range kept {
		keptSet[nm] = true
	}

	nrows := dt.NumRows()
	rowOf := make(map[string]int) // group index by identifying tuple
	colOf := make(map[string]int) // value column index by key value
	seen := make(map[string]bool) // occupied output cells
	var srcRows []int             // first source row of each group
	var knames []string           // key values in order of first appearance
	grow := make([]int, nrows)
	gcol := make([]int, nrows)
	for r := range nrows {
		sr := dt.RowIndex(r)
		tk := ""
		for _, nm := range kept {
			tk += dt.Column(nm).StringValue(sr) + "\x00"
		}
		g, ok := rowOf[tk]
		if !ok {
			g = len(srcRows)
			rowOf[tk] = g
			srcRows = append(srcRows, sr)
		}
		knm := kcl.StringValue(sr)
		c, ok := colOf[knm]
		if !ok {
			if keptSet[knm] {
				return nil, &NameCollisionError{Name: knm}
			}
			c = len(knames)
			colOf[knm] = c
			knames = append(knames, knm)
		}
		ck := tk + knm
		if seen[ck] {
			return nil, &DuplicateCellError{Key: knm, Row: r}
		}
		seen[ck] = true
		grow[r] = g
		gcol[r] = c
	}

	ngroups := len(srcRows)
	out := table.NewTable()
	for _, nm := range kept {
		scl := dt.Column(nm)
		ocl := column.NewOfType(scl.DataType(), ngroups)
		for g, sr := range srcRows {
			ocl.CopyCellsFrom(scl, g, sr, 1)
		}
		errors.Log(out.AddColumn(nm, ocl))
	}
	vkind := vcl.DataType()
	vcols := make([]column.Column, len(knames))
	for c, knm := range knames {
		ocl := column.NewOfType(vkind, ngroups)
		if vkind == reflect.Float64 || vkind == reflect.Float32 {
			for g := range ngroups {
				ocl.SetFloat(math.NaN(), g)
			}
		}
		vcols[c] = ocl
		errors.Log(out.AddColumn(knm, ocl))
	}
	for r := range nrows {
		vcols[gcol[r]].CopyCellsFrom(vcl, grow[r], dt.RowIndex(r), 1)
	}
	return out, nil
}
