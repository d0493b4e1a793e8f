// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import (
	"cogentcore.org/tidy/table"
)

// Selector selects a subset of the columns of a [table.Table] by name,
// for operations such as [Gather] that work on a set of columns.
// Use [Columns] to select named columns, [Except] to select all but
// named columns, and [All] to select every column.
type Selector interface {
	// Resolve returns the selected column names, always in table column
	// order regardless of the order names were specified in, so that
	// operations using a Selector produce a deterministic output layout.
	// Returns [UnknownColumnError] if a specified name is not in the table.
	Resolve(dt *table.Table) ([]string, error)
}

// Columns returns a [Selector] that selects exactly the given column
// names. Duplicate names are selected once. Resolving errors if any
// name is not in the table.
func Columns(names ...string) Selector {
	return columnList(names)
}

// Except returns a [Selector] that selects all columns except the given
// names. Resolving errors if any name is not in the table, to catch
// misspelled exclusions that would otherwise silently select everything.
func Except(names ...string) Selector {
	return exceptList(names)
}

// All returns a [Selector] that selects every column in the table.
func All() Selector {
	return allColumns{}
}

type columnList []string

func (cl columnList) Resolve(dt *table.Table) ([]string, error) {
	sel := make(map[string]bool, len(cl))
	for _, nm := range cl {
		if dt.ColumnIndex(nm) < 0 {
			return nil, &UnknownColumnError{Column: nm}
		}
		sel[nm] = true
	}
	names := make([]string, 0, len(sel))
	for i := range dt.NumColumns() {
		if nm := dt.ColumnName(i); sel[nm] {
			names = append(names, nm)
		}
	}
	return names, nil
}

type exceptList []string

func (el exceptList) Resolve(dt *table.Table) ([]string, error) {
	exc := make(map[string]bool, len(el))
	for _, nm := range el {
		if dt.ColumnIndex(nm) < 0 {
			return nil, &UnknownColumnError{Column: nm}
		}
		exc[nm] = true
	}
	var names []string
	for i := range dt.NumColumns() {
		if nm := dt.ColumnName(i); !exc[nm] {
			names = append(names, nm)
		}
	}
	return names, nil
}

type allColumns struct{}

func (allColumns) Resolve(dt *table.Table) ([]string, error) {
	return dt.ColumnNames(), nil
}
