// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"

	"cogentcore.org/tidy/column"
)

// RowIndex returns the actual index into underlying column rows based on given
// index value. If Indexes == nil, index is passed through.
func (dt *Table) RowIndex(idx int) int {
	if dt.Indexes == nil {
		return idx
	}
	return dt.Indexes[idx]
}

// NumRows returns the number of rows, which is the number of Indexes if present,
// else actual number of [Columns.Rows].
func (dt *Table) NumRows() int {
	if dt.Indexes == nil {
		return dt.Columns.Rows
	}
	return len(dt.Indexes)
}

// Sequential sets Indexes to nil, resulting in sequential row-wise access into columns.
func (dt *Table) Sequential() {
	dt.Indexes = nil
}

// IndexesNeeded is called prior to an operation that needs actual indexes,
// e.g., Sort, Filter. If Indexes == nil, they are set to all rows, otherwise
// current indexes are left as is. Use Sequential, then IndexesNeeded to ensure
// all rows are represented.
func (dt *Table) IndexesNeeded() {
	if dt.Indexes != nil {
		return
	}
	dt.Indexes = make([]int, dt.Columns.Rows)
	for i := range dt.Indexes {
		dt.Indexes[i] = i
	}
}

// ValidIndexes deletes all invalid indexes from the list.
// Call this if rows (could) have been deleted from table.
func (dt *Table) ValidIndexes() {
	if dt.Columns.Rows <= 0 || dt.Indexes == nil {
		dt.Indexes = nil
		return
	}
	ni := dt.NumRows()
	for i := ni - 1; i >= 0; i-- {
		if dt.Indexes[i] >= dt.Columns.Rows {
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// Permuted sets indexes to a permuted order. If indexes already exist
// then existing list of indexes is permuted, otherwise a new set of
// permuted indexes are generated.
func (dt *Table) Permuted() {
	if dt.Columns.Rows <= 0 {
		dt.Indexes = nil
		return
	}
	if dt.Indexes == nil {
		dt.Indexes = rand.Perm(dt.Columns.Rows)
	} else {
		rand.Shuffle(len(dt.Indexes), func(i, j int) {
			dt.Indexes[i], dt.Indexes[j] = dt.Indexes[j], dt.Indexes[i]
		})
	}
}

const (
	// Ascending specifies an ascending sort direction for table Sort routines.
	Ascending = true

	// Descending specifies a descending sort direction for table Sort routines.
	Descending = false

	// Stable specifies using stable, original order-preserving sort, which is slower.
	Stable = true

	// Unstable specifies using faster but unstable sorting.
	Unstable = false
)

// SortColumn sorts the indexes into our Table according to values in
// given column, using either ascending or descending order,
// (use [Ascending] or [Descending] for self-documentation).
// Returns error if column name not found.
func (dt *Table) SortColumn(columnName string, ascending bool) error {
	ci := dt.ColumnIndex(columnName)
	if ci < 0 {
		return fmt.Errorf("table.Table SortColumn: column named %q not found", columnName)
	}
	dt.SortColumnIndexes(ascending, Unstable, ci)
	return nil
}

// SortFunc sorts the indexes into our Table using given compare function.
// The compare function operates directly on row numbers into the Table
// as these row numbers have already been projected through the indexes.
// cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b.
func (dt *Table) SortFunc(cmp func(dt *Table, i, j int) int) {
	dt.IndexesNeeded()
	slices.SortFunc(dt.Indexes, func(a, b int) int {
		return cmp(dt, a, b) // key point: these are already indirected through indexes!!
	})
}

// SortStableFunc stably sorts the indexes into our Table using given compare function.
// The compare function operates directly on row numbers into the Table
// as these row numbers have already been projected through the indexes.
// cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b.
// It is *essential* that it always returns 0 when the two are equal
// for the stable function to actually work.
func (dt *Table) SortStableFunc(cmp func(dt *Table, i, j int) int) {
	dt.IndexesNeeded()
	slices.SortStableFunc(dt.Indexes, func(a, b int) int {
		return cmp(dt, a, b) // key point: these are already indirected through indexes!!
	})
}

// SortColumns sorts the indexes into our Table according to values in
// given column names, using either ascending or descending order,
// (use [Ascending] or [Descending] for self-documentation),
// and optionally using a stable sort.
func (dt *Table) SortColumns(ascending, stable bool, columns ...string) {
	dt.SortColumnIndexes(ascending, stable, dt.ColumnIndexList(columns...)...)
}

// SortColumnIndexes sorts the indexes into our Table according to values in
// given list of column indexes, using either ascending or descending order for
// all of the columns.
func (dt *Table) SortColumnIndexes(ascending, stable bool, colIndexes ...int) {
	dt.IndexesNeeded()
	sf := dt.SortFunc
	if stable {
		sf = dt.SortStableFunc
	}
	sf(func(dt *Table, i, j int) int {
		for _, ci := range colIndexes {
			cl := dt.ColumnByIndex(ci)
			if cl.IsString() {
				v := column.CompareAscending(cl.StringValue(i), cl.StringValue(j), ascending)
				if v != 0 {
					return v
				}
			} else {
				v := column.CompareAscending(cl.Float(i), cl.Float(j), ascending)
				if v != 0 {
					return v
				}
			}
		}
		return 0
	})
}

// SortIndexes sorts the indexes into our Table directly in
// numerical order, producing the native ordering, while preserving
// any filtering that might have occurred.
func (dt *Table) SortIndexes() {
	if dt.Indexes == nil {
		return
	}
	sort.Ints(dt.Indexes)
}

// FilterFunc is a function used for filtering that returns
// true if Table row should be included in the current filtered
// view of the table, and false if it should be removed.
type FilterFunc func(dt *Table, row int) bool

// Filter filters the indexes into our Table using given Filter function.
// The Filter function operates directly on row numbers into the Table
// as these row numbers have already been projected through the indexes.
func (dt *Table) Filter(filterer func(dt *Table, row int) bool) {
	dt.IndexesNeeded()
	sz := len(dt.Indexes)
	for i := sz - 1; i >= 0; i-- { // always go in reverse for filtering
		if !filterer(dt, dt.Indexes[i]) { // delete
			dt.Indexes = append(dt.Indexes[:i], dt.Indexes[i+1:]...)
		}
	}
}

// Named arg values for FilterString.
const (
	// Include means include matches.
	Include = false
	// Exclude means exclude matches.
	Exclude = true
	// Contains means the string only needs to contain the target string (see Equals).
	Contains = true
	// Equals means the string must equal the target string (see Contains).
	Equals = false
	// IgnoreCase means that differences in case are ignored in comparing strings.
	IgnoreCase = true
	// UseCase means that case matters when comparing strings.
	UseCase = false
)

// FilterString filters the indexes using string values in column compared to given
// string. Includes rows with matching values unless exclude is set.
// If contains, only checks if row contains string; if ignoreCase, ignores case.
// Use the named const args [Include], [Exclude], [Contains], [Equals],
// [IgnoreCase], [UseCase] for greater clarity.
// Returns error if column name not found.
func (dt *Table) FilterString(columnName string, str string, exclude, contains, ignoreCase bool) error {
	cl, err := dt.ColumnTry(columnName)
	if err != nil {
		return err
	}
	lowstr := strings.ToLower(str)
	dt.Filter(func(dt *Table, row int) bool {
		val := cl.StringValue(row)
		has := false
		switch {
		case contains && ignoreCase:
			has = strings.Contains(strings.ToLower(val), lowstr)
		case contains:
			has = strings.Contains(val, str)
		case ignoreCase:
			has = strings.EqualFold(val, str)
		default:
			has = (val == str)
		}
		if exclude {
			return !has
		}
		return has
	})
	return nil
}

// New returns a new table with column data organized according to
// the indexes. If Indexes are nil, a clone of the current table is returned
// but this function is only sensible if there is an indexed view in place.
func (dt *Table) New() *Table {
	if dt.Indexes == nil {
		return dt.Clone()
	}
	rows := len(dt.Indexes)
	nt := dt.Clone()
	nt.Indexes = nil
	nt.SetNumRows(rows)
	if rows == 0 {
		return nt
	}
	for ci, cl := range nt.Columns.Values {
		scl := dt.Columns.Values[ci]
		for i, srw := range dt.Indexes {
			cl.CopyCellsFrom(scl, i, srw, 1)
		}
	}
	return nt
}

// DeleteRows deletes n rows of Indexes starting at given index in the list of indexes.
// This does not affect the underlying column data; to create an actual in-memory
// ordering with rows deleted, use [Table.New].
func (dt *Table) DeleteRows(at, n int) {
	dt.IndexesNeeded()
	dt.Indexes = append(dt.Indexes[:at], dt.Indexes[at+n:]...)
}

// Swap switches the indexes for i and j.
func (dt *Table) Swap(i, j int) {
	dt.Indexes[i], dt.Indexes[j] = dt.Indexes[j], dt.Indexes[i]
}
