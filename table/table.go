// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/metadata"
	"cogentcore.org/tidy/column"
)

// Table is a table of [column.Column] data, aligned by a common number
// of rows. Columns are accessed by name, and direct column access via
// [Table.Column] is in raw row order: use the table-level value access
// methods ([Table.Float], [Table.StringValue], etc) to read and write
// through the indexed view of rows, or [Table.New] to materialize the
// current view as a new table in raw order.
type Table struct {
	// Columns has the list of column data for this table.
	// Different tables can provide different indexed views onto
	// the same Columns.
	Columns *Columns

	// Indexes are the indexes into column rows, with nil = sequential.
	// Only set if order is different from default sequential order.
	Indexes []int

	// Meta is misc metadata for the table. Use CamelCase key names
	// following the [metadata] convention:
	//	- Name string = name of table
	//	- Doc string = documentation, description
	//	- Precision int = n for precision to write out floats in csv.
	Meta metadata.Data
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.Set("Name", name[0])
	}
	return dt
}

// NewTableView returns a new Table with its own indexed view into the
// same underlying set of Column data as the source table.
// Indexes are nil in the new Table, resulting in default full sequential view.
func NewTableView(src *Table) *Table {
	dt := &Table{Columns: src.Columns}
	dt.Meta.Copy(src.Meta)
	return dt
}

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the raw [column.Column] data with the given column name.
// The column holds all rows in raw order, regardless of the current
// [Table.Indexes] view. Returns nil if not found.
func (dt *Table) Column(name string) column.Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (column.Column, error) {
	cl := dt.Column(name)
	if cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: column named %q not found", name)
}

// ColumnByIndex returns the raw [column.Column] data at the given index.
// It is best practice to access columns by name using [Table.Column] instead.
func (dt *Table) ColumnByIndex(idx int) column.Column {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column.
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnIndex returns the index of the given column name,
// with -1 if the name is not found.
func (dt *Table) ColumnIndex(name string) int {
	return dt.Columns.IndexByKey(name)
}

// ColumnIndexList returns a list of indexes of the given column names,
// skipping any that are not found.
func (dt *Table) ColumnIndexList(columns ...string) []int {
	var cis []int
	for _, cn := range columns {
		ci := dt.ColumnIndex(cn)
		if ci >= 0 {
			cis = append(cis, ci)
		}
	}
	return cis
}

// ColumnNames returns the current list of column names in order.
func (dt *Table) ColumnNames() []string {
	return slices.Clone(dt.Columns.Keys)
}

// AddColumn adds a new column to the table, of given type and column name
// (which must be unique), with the current number of rows.
func AddColumn[T column.DataTypes](dt *Table, name string) column.Column {
	cl := column.New[T](dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// InsertColumn inserts a new column to the table, of given type and column
// name (which must be unique), at given index, with the current number of rows.
func InsertColumn[T column.DataTypes](dt *Table, name string, idx int) column.Column {
	cl := column.New[T](dt.Columns.Rows)
	errors.Log(dt.InsertColumn(idx, name, cl))
	return cl
}

// AddColumn adds the given column data to the table,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (dt *Table) AddColumn(name string, cl column.Column) error {
	return dt.Columns.AddColumn(name, cl)
}

// InsertColumn inserts the given column data to the table at given index,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (dt *Table) InsertColumn(idx int, name string, cl column.Column) error {
	return dt.Columns.InsertColumn(idx, name, cl)
}

// AddColumnOfType adds a new column to the table, of given [reflect.Kind]
// type and column name (which must be unique).
// Supported types are string, bool, float32, float64, int, and int32.
func (dt *Table) AddColumnOfType(name string, typ reflect.Kind) column.Column {
	cl := column.NewOfType(typ, dt.Columns.Rows)
	errors.Log(dt.AddColumn(name, cl))
	return cl
}

// AddStringColumn adds a new [column.String] column with given name.
func (dt *Table) AddStringColumn(name string) *column.String {
	return AddColumn[string](dt, name).(*column.String)
}

// AddFloat64Column adds a new [column.Float64] column with given name.
func (dt *Table) AddFloat64Column(name string) *column.Float64 {
	return AddColumn[float64](dt, name).(*column.Float64)
}

// AddFloat32Column adds a new [column.Float32] column with given name.
func (dt *Table) AddFloat32Column(name string) *column.Float32 {
	return AddColumn[float32](dt, name).(*column.Float32)
}

// AddIntColumn adds a new [column.Int] column with given name.
func (dt *Table) AddIntColumn(name string) *column.Int {
	return AddColumn[int](dt, name).(*column.Int)
}

// AddBoolColumn adds a new [column.Bool] column with given name.
func (dt *Table) AddBoolColumn(name string) *column.Bool {
	return AddColumn[bool](dt, name).(*column.Bool)
}

// DeleteColumnName deletes column of given name.
// Returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteColumnIndex deletes column within the index range [i:j].
func (dt *Table) DeleteColumnIndex(i, j int) {
	dt.Columns.DeleteByIndex(i, j)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Columns.Rows = 0
	dt.Indexes = nil
}

// Float returns the float64 value in given column name and row,
// projected through the current indexed view of rows.
// Returns NaN and logs an error if the column name is not found;
// see [Table.ColumnTry] for direct error handling.
func (dt *Table) Float(column string, row int) float64 {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return math.NaN()
	}
	return cl.Float(dt.RowIndex(row))
}

// SetFloat sets the float64 value in given column name and row,
// projected through the current indexed view of rows.
// Logs an error if the column name is not found.
func (dt *Table) SetFloat(column string, row int, val float64) {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return
	}
	cl.SetFloat(val, dt.RowIndex(row))
}

// StringValue returns the string value in given column name and row,
// projected through the current indexed view of rows.
// Returns "" and logs an error if the column name is not found.
func (dt *Table) StringValue(column string, row int) string {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return ""
	}
	return cl.StringValue(dt.RowIndex(row))
}

// SetString sets the string value in given column name and row,
// projected through the current indexed view of rows.
// Logs an error if the column name is not found.
func (dt *Table) SetString(column string, row int, val string) {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return
	}
	cl.SetString(val, dt.RowIndex(row))
}

// Int returns the int value in given column name and row,
// projected through the current indexed view of rows.
// Returns 0 and logs an error if the column name is not found.
func (dt *Table) Int(column string, row int) int {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return 0
	}
	return cl.Int(dt.RowIndex(row))
}

// SetInt sets the int value in given column name and row,
// projected through the current indexed view of rows.
// Logs an error if the column name is not found.
func (dt *Table) SetInt(column string, row int, val int) {
	cl, err := dt.ColumnTry(column)
	if errors.Log(err) != nil {
		return
	}
	cl.SetInt(val, dt.RowIndex(row))
}

// AddRows adds n rows to end of underlying Table, and to the indexes in this view.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Columns.Rows + n)
}

// InsertRows adds n rows to end of underlying Table, and to the indexes starting at
// given index in this view, providing an efficient insertion operation that only
// exists in the indexed view. To create an in-memory ordering, use [Table.New].
func (dt *Table) InsertRows(at, n int) *Table {
	dt.IndexesNeeded()
	stidx := len(dt.Indexes)
	dt.AddRows(n) // adds n indexes to end of list
	// move those indexes to at:at+n in index list
	dt.Indexes = append(dt.Indexes[:at], append(dt.Indexes[stidx:], dt.Indexes[at:stidx]...)...)
	return dt
}

// SetNumRows sets the number of rows in the table, across all columns.
// If rows are added and the table has an indexed view, the new rows
// are appended to the view; if rows are removed, invalid indexes
// are deleted from the view.
func (dt *Table) SetNumRows(rows int) *Table {
	strow := dt.Columns.Rows
	dt.Columns.SetNumRows(rows)
	if dt.Indexes == nil {
		return dt
	}
	if rows > strow {
		for i := range rows - strow {
			dt.Indexes = append(dt.Indexes, strow+i)
		}
	} else {
		dt.ValidIndexes()
	}
	return dt
}

// Clone returns a complete copy of this table, including cloning
// the underlying Columns data, and the current [Table.Indexes].
// See also [Table.New] to flatten the current indexes.
func (dt *Table) Clone() *Table {
	cp := &Table{}
	cp.Columns = dt.Columns.Clone()
	cp.Meta.Copy(dt.Meta)
	if dt.Indexes != nil {
		cp.Indexes = slices.Clone(dt.Indexes)
	}
	return cp
}

// AppendRows appends shared columns in both tables with input table rows.
func (dt *Table) AppendRows(dt2 *Table) {
	strow := dt.Columns.Rows
	n := dt2.Columns.Rows
	dt.Columns.AppendRows(dt2.Columns)
	if dt.Indexes == nil {
		return
	}
	for i := range n {
		dt.Indexes = append(dt.Indexes, strow+i)
	}
}
