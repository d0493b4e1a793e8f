// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/base/metadata"
	"cogentcore.org/tidy/column"
)

// Columns is the underlying column list and number of rows for [Table].
// [Table] is an indexed view onto the Columns. Columns can be shared
// between multiple Tables, each providing a different indexed view.
type Columns struct {
	keylist.List[string, column.Column]

	// number of rows, which is enforced to be the length
	// of all the columns.
	Rows int
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows, across all columns.
// It is safe to set this to 0.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = rows // can be 0
	for _, c := range cl.Values {
		c.SetLength(rows)
	}
	return cl
}

// AddColumn adds the given column, returning an error
// and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows,
// or sets the number of rows to fit this column if it is the first one.
func (cl *Columns) AddColumn(name string, c column.Column) error {
	if cl.Len() == 0 {
		cl.Rows = c.Len()
	}
	err := cl.Add(name, c)
	if err != nil {
		return err
	}
	c.SetLength(cl.Rows)
	metadata.SetName(c, name)
	return nil
}

// InsertColumn inserts the given column at given index, returning an error
// and not adding if the name is not unique.
// Automatically adjusts the length to fit the current number of rows.
func (cl *Columns) InsertColumn(idx int, name string, c column.Column) error {
	if cl.IndexByKey(name) >= 0 {
		return errors.New("table.Columns.InsertColumn: column named " + name + " already exists")
	}
	cl.Insert(idx, name, c)
	c.SetLength(cl.Rows)
	metadata.SetName(c, name)
	return nil
}

// Clone returns a complete copy of this set of columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns().SetNumRows(cl.Rows)
	for i, nm := range cl.Keys {
		c := cl.Values[i]
		cp.AddColumn(nm, c.Clone())
	}
	return cp
}

// AppendRows appends shared columns in both sets of columns with input rows.
func (cl *Columns) AppendRows(cl2 *Columns) {
	for i, nm := range cl.Keys {
		c2, ok := cl2.AtTry(nm)
		if !ok {
			continue
		}
		cl.Values[i].AppendFrom(c2)
	}
	cl.SetNumRows(cl.Rows + cl2.Rows)
}
