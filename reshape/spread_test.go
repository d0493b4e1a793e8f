// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reshape

import (
	"math"
	"reflect"
	"testing"

	"cogentcore.org/tidy/column"
	"cogentcore.org/tidy/table"
	"github.com/stretchr/testify/assert"
)

func newLongTable() *table.Table {
	dt := table.NewTable("long")
	dt.AddColumn("id", column.NewStringFromValues("audi", "honda", "volvo", "audi", "honda", "volvo"))
	dt.AddColumn("roadtype", column.NewStringFromValues("city", "city", "city", "hwy", "hwy", "hwy"))
	dt.AddColumn("mpg", column.NewFloat64FromValues(18.7, 24.4, 19.1, 24.4, 33, 27.9))
	return dt
}

func TestSpread(t *testing.T) {
	dt := newLongTable()
	out, err := Spread(dt, "roadtype", "mpg")
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "city", "hwy"}, out.ColumnNames())
	assert.Equal(t, 3, out.NumRows())
	assert.True(t, out.Column("id").IsString())
	assert.Equal(t, reflect.Float64, out.Column("city").DataType())
	assert.Equal(t, reflect.Float64, out.Column("hwy").DataType())

	wid := []string{"audi", "honda", "volvo"}
	wcity := []float64{18.7, 24.4, 19.1}
	whwy := []float64{24.4, 33, 27.9}
	for r := range out.NumRows() {
		assert.Equal(t, wid[r], out.StringValue("id", r))
		assert.Equal(t, wcity[r], out.Float("city", r))
		assert.Equal(t, whwy[r], out.Float("hwy", r))
	}

	// source is untouched
	assert.Equal(t, 6, dt.NumRows())
	assert.Equal(t, []string{"id", "roadtype", "mpg"}, dt.ColumnNames())
}

func TestSpreadRoundTrip(t *testing.T) {
	dt := newMpgTable()
	long, err := Gather(dt, "roadtype", "mpg", Except("id"))
	assert.NoError(t, err)
	wide, err := Spread(long, "roadtype", "mpg")
	assert.NoError(t, err)
	assert.Equal(t, dt.ColumnNames(), wide.ColumnNames())
	assert.Equal(t, dt.NumRows(), wide.NumRows())
	for r := range dt.NumRows() {
		assert.Equal(t, dt.StringValue("id", r), wide.StringValue("id", r))
		assert.Equal(t, dt.Float("city", r), wide.Float("city", r))
		assert.Equal(t, dt.Float("hwy", r), wide.Float("hwy", r))
	}
	assert.Equal(t, reflect.Float64, wide.Column("city").DataType())

	// gathering everything leaves no identifying columns, so all rows
	// fall in one group and the key values repeat: not invertible
	long, err = Gather(dt, "key", "value", nil)
	assert.NoError(t, err)
	_, err = Spread(long, "key", "value")
	var dc *DuplicateCellError
	if assert.ErrorAs(t, err, &dc) {
		assert.Equal(t, "id", dc.Key)
		assert.Equal(t, 1, dc.Row)
	}
}

func TestSpreadMissingCells(t *testing.T) {
	dt := table.NewTable()
	dt.AddColumn("id", column.NewStringFromValues("a", "a", "b"))
	dt.AddColumn("key", column.NewStringFromValues("city", "hwy", "city"))
	dt.AddColumn("val", column.NewFloat64FromValues(1, 2, 3))
	out, err := Spread(dt, "key", "val")
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "city", "hwy"}, out.ColumnNames())
	assert.Equal(t, 2, out.NumRows())
	assert.Equal(t, 1.0, out.Float("city", 0))
	assert.Equal(t, 2.0, out.Float("hwy", 0))
	assert.Equal(t, 3.0, out.Float("city", 1))
	assert.True(t, math.IsNaN(out.Float("hwy", 1)))

	di := table.NewTable()
	di.AddColumn("id", column.NewStringFromValues("a", "a", "b"))
	di.AddColumn("key", column.NewStringFromValues("x", "y", "x"))
	di.AddColumn("val", column.NewIntFromValues(1, 2, 3))
	out, err = Spread(di, "key", "val")
	assert.NoError(t, err)
	assert.Equal(t, reflect.Int, out.Column("x").DataType())
	assert.Equal(t, 2, out.Int("y", 0))
	assert.Equal(t, 0, out.Int("y", 1))
}

func TestSpreadNumericKey(t *testing.T) {
	dt := table.NewTable()
	dt.AddColumn("id", column.NewStringFromValues("a", "a"))
	dt.AddColumn("key", column.NewIntFromValues(1, 2))
	dt.AddColumn("val", column.NewFloat64FromValues(10, 20))
	out, err := Spread(dt, "key", "val")
	assert.NoError(t, err)
	assert.Equal(t, []string{"id", "1", "2"}, out.ColumnNames())
	assert.Equal(t, 10.0, out.Float("1", 0))
	assert.Equal(t, 20.0, out.Float("2", 0))
}

func TestSpreadView(t *testing.T) {
	dt := newLongTable()
	assert.NoError(t, dt.SortColumn("id", table.Descending))
	out, err := Spread(dt, "roadtype", "mpg")
	assert.NoError(t, err)
	assert.Nil(t, out.Indexes)
	assert.Equal(t, 3, out.NumRows())

	wid := []string{"volvo", "honda", "audi"}
	wcity := []float64{19.1, 24.4, 18.7}
	whwy := []float64{27.9, 33, 24.4}
	for r := range out.NumRows() {
		assert.Equal(t, wid[r], out.StringValue("id", r))
		assert.Equal(t, wcity[r], out.Float("city", r))
		assert.Equal(t, whwy[r], out.Float("hwy", r))
	}
}

func TestSpreadErrors(t *testing.T) {
	dt := newLongTable()

	_, err := Spread(nil, "k", "v")
	assert.Error(t, err)
	_, err = Spread(table.NewTable(), "k", "v")
	assert.Error(t, err)
	_, err = Spread(dt, "", "mpg")
	assert.Error(t, err)
	_, err = Spread(dt, "roadtype", "")
	assert.Error(t, err)
	_, err = Spread(dt, "mpg", "mpg")
	assert.Error(t, err)

	_, err = Spread(dt, "nope", "mpg")
	var uc *UnknownColumnError
	if assert.ErrorAs(t, err, &uc) {
		assert.Equal(t, "nope", uc.Column)
	}
	_, err = Spread(dt, "roadtype", "nope")
	assert.ErrorAs(t, err, &uc)

	nc := table.NewTable()
	nc.AddColumn("id", column.NewStringFromValues("a"))
	nc.AddColumn("key", column.NewStringFromValues("id"))
	nc.AddColumn("val", column.NewFloat64FromValues(1))
	_, err = Spread(nc, "key", "val")
	var ncol *NameCollisionError
	if assert.ErrorAs(t, err, &ncol) {
		assert.Equal(t, "id", ncol.Name)
	}

	dup := table.NewTable()
	dup.AddColumn("id", column.NewStringFromValues("a", "a"))
	dup.AddColumn("key", column.NewStringFromValues("x", "x"))
	dup.AddColumn("val", column.NewFloat64FromValues(1, 2))
	_, err = Spread(dup, "key", "val")
	var dc *DuplicateCellError
	if assert.ErrorAs(t, err, &dc) {
		assert.Equal(t, "x", dc.Key)
		assert.Equal(t, 1, dc.Row)
	}
}
