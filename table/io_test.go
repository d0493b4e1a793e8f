// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cogentcore.org/core/base/fsx"
	"github.com/stretchr/testify/assert"
)

func TestCSVRoundTrip(t *testing.T) {
	dt := NewTable().SetNumRows(2)
	dt.AddStringColumn("Name")
	dt.AddFloat64Column("Value")
	dt.AddIntColumn("N")
	dt.AddBoolColumn("On")
	dt.SetString("Name", 0, "a")
	dt.SetString("Name", 1, "b")
	dt.SetFloat("Value", 0, 3.14)
	dt.SetFloat("Value", 1, math.NaN())
	dt.SetInt("N", 0, 19)
	dt.SetInt("N", 1, 28)
	dt.SetString("On", 0, "true")

	var b strings.Builder
	err := dt.WriteCSV(&b, Tab, Headers)
	assert.NoError(t, err)
	lns := strings.Split(b.String(), "\n")
	assert.Equal(t, "$Name\t#Value\t|N\t^On", lns[0])
	assert.Equal(t, "a\t3.14\t19\ttrue", lns[1])

	in := NewTable()
	err = in.ReadCSV(strings.NewReader(b.String()), Tab)
	assert.NoError(t, err)
	assert.Equal(t, 2, in.NumRows())
	assert.Equal(t, reflect.String, in.Column("Name").DataType())
	assert.Equal(t, reflect.Float64, in.Column("Value").DataType())
	assert.Equal(t, reflect.Int, in.Column("N").DataType())
	assert.Equal(t, reflect.Bool, in.Column("On").DataType())
	assert.Equal(t, "b", in.StringValue("Name", 1))
	assert.Equal(t, 3.14, in.Float("Value", 0))
	assert.True(t, math.IsNaN(in.Float("Value", 1)))
	assert.Equal(t, 28, in.Int("N", 1))
	assert.Equal(t, 1.0, in.Float("On", 0))
	assert.Equal(t, 0.0, in.Float("On", 1))
}

func TestCSVDetect(t *testing.T) {
	data := "Name,Value\na,1\nb,2\nc,3\n"
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(data), Detect)
	assert.NoError(t, err)
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, reflect.String, dt.Column("Name").DataType())
	assert.Equal(t, reflect.Int, dt.Column("Value").DataType())
	assert.Equal(t, "c", dt.StringValue("Name", 2))
	assert.Equal(t, 2.0, dt.Float("Value", 1))
}

func TestCSVInference(t *testing.T) {
	data := "id\tcity\thwy\naudi\t18.7\t24.4\nhonda\t24.4\t33\n"
	dt := NewTable()
	err := dt.ReadCSV(strings.NewReader(data), Tab)
	assert.NoError(t, err)
	assert.Equal(t, reflect.String, dt.Column("id").DataType())
	assert.Equal(t, reflect.Float64, dt.Column("city").DataType())
	assert.Equal(t, reflect.Float64, dt.Column("hwy").DataType())
	assert.Equal(t, 24.4, dt.Float("city", 1))
}

func TestCSVView(t *testing.T) {
	dt := newTestTable()
	dt.Filter(func(dt *Table, row int) bool {
		return dt.StringValue("Name", row) == "B"
	})
	var b strings.Builder
	err := dt.WriteCSV(&b, Comma, NoHeaders)
	assert.NoError(t, err)
	assert.Equal(t, "B,2\nB,3\n", b.String())
}

func TestCSVPrecision(t *testing.T) {
	dt := NewTable().SetNumRows(1)
	dt.AddFloat64Column("Value")
	dt.SetFloat("Value", 0, 3.14159265)
	SetPrecision(&dt.Meta, 4)
	prec, err := Precision(dt.Meta)
	assert.NoError(t, err)
	assert.Equal(t, 4, prec)

	var b strings.Builder
	err = dt.WriteCSV(&b, Tab, NoHeaders)
	assert.NoError(t, err)
	assert.Equal(t, "3.142\n", b.String())
}

func TestCSVFile(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "cars.tsv")

	dt := newTestTable()
	err := dt.SaveCSV(fsx.Filename(fname), Tab, Headers)
	assert.NoError(t, err)

	in := NewTable()
	err = in.OpenCSV(fsx.Filename(fname), Tab)
	assert.NoError(t, err)
	assert.Equal(t, 4, in.NumRows())
	assert.Equal(t, "B", in.StringValue("Name", 3))
	assert.Equal(t, 1.0, in.Float("Value", 1))

	infs := NewTable()
	err = infs.OpenFS(os.DirFS(dir), "cars.tsv", Detect)
	assert.NoError(t, err)
	assert.Equal(t, 4, infs.NumRows())
	assert.Equal(t, 3.0, infs.Float("Value", 3))
}

func TestDetectDelim(t *testing.T) {
	assert.Equal(t, '\t', DetectDelim([]byte("a\tb\nc\td\n")))
	assert.Equal(t, ',', DetectDelim([]byte("a,b\nc,d\n")))
	assert.Equal(t, ' ', DetectDelim([]byte("a b\nc d\n")))
	assert.Equal(t, '\t', DetectDelim([]byte("ab\ncd\n")))
}

func TestTableString(t *testing.T) {
	dt := newTestTable()
	s := dt.String()
	assert.True(t, strings.HasPrefix(s, "$Name\t#Value\n"))
	assert.Contains(t, s, "A\t0\n")
}
