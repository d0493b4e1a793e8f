// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import "fmt"

// UnknownColumnError is returned when a column name, either given
// directly or via a [Selector], does not exist in the source table.
type UnknownColumnError struct {
	// Column is the offending column name.
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("reshape: column named %q not found in table", e.Column)
}

// NameCollisionError is returned when a column name that an operation
// would create already names a column that survives the operation,
// or when the key and value names are the same.
type NameCollisionError struct {
	// Name is the colliding column name.
	Name string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("reshape: output column name %q collides with an existing column", e.Name)
}

// EmptyGatherError is returned by [Gather] when the [Selector]
// selects no columns to gather, which would produce an output
// with no key or value data.
type EmptyGatherError struct{}

func (e *EmptyGatherError) Error() string {
	return "reshape: no columns selected to gather"
}

// DuplicateCellError is returned by [Spread] when two rows map to the
// same output cell: same combination of identifying column values and
// key value, so one value would overwrite the other.
type DuplicateCellError struct {
	// Key is the key value of the duplicated cell.
	Key string

	// Row is the row (in the current indexed view) holding the duplicate.
	Row int
}

func (e *DuplicateCellError) Error() string {
	return fmt.Sprintf("reshape: duplicate cell for key %q at row %d", e.Key, e.Row)
}
