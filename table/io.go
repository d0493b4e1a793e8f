// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/metadata"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated value.
	Space

	// Detect is used during reading a file: reads the first line and
	// detects tabs or commas.
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

const (
	// Headers is passed to CSV methods for the headers arg, to use headers
	// that capture the type information of the columns, enabling full
	// reloading of exactly the same table format and data (recommended).
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not use headers.
	NoHeaders = false
)

// SetPrecision sets the "Precision" metadata value that determines
// the precision to use in writing floating point numbers to files.
func SetPrecision(md *metadata.Data, prec int) {
	md.Set("Precision", prec)
}

// Precision gets the "Precision" metadata value that determines
// the precision to use in writing floating point numbers to files.
// Returns an error if not set.
func Precision(md metadata.Data) (int, error) {
	return metadata.Get[int](md, "Precision")
}

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// including only the currently visible rows of an indexed view.
// If headers = true then generate column headers that capture the
// type of the columns, enabling full reloading of exactly the same
// table format and data (recommended). Otherwise, only the data is written.
func (dt *Table) SaveCSV(filename fsx.Filename, delim Delims, headers bool) error {
	fp, err := os.Create(string(filename))
	defer fp.Close()
	if err != nil {
		return errors.Log(err)
	}
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim, headers)
	bw.Flush()
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// If the table does not currently have any columns, the first row of the file
// is assumed to be headers, and columns are constructed therefrom.
// If the file was saved from a table with headers, then these have full type
// information for the columns. If the table DOES have existing columns,
// then those are used robustly for whatever information fits from each
// row of the file. Any existing indexed view is reset to sequential.
func (dt *Table) OpenCSV(filename fsx.Filename, delim Delims) error {
	fp, err := os.Open(string(filename))
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [Table.OpenCSV] that uses an [fs.FS] filesystem.
func (dt *Table) OpenFS(fsys fs.FS, filename string, delim Delims) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(bufio.NewReader(fp), delim)
}

// DetectDelim returns the delimiter detected from the first line of
// given file data, based on which of the candidate delimiter runes
// occurs most frequently in that line, defaulting to [Tab].
func DetectDelim(b []byte) rune {
	ln := b
	if li := bytes.IndexByte(b, '\n'); li >= 0 {
		ln = b[:li]
	}
	dl := '\t'
	mx := bytes.Count(ln, []byte("\t"))
	if nc := bytes.Count(ln, []byte(",")); nc > mx {
		mx = nc
		dl = ','
	}
	if ns := bytes.Count(ln, []byte(" ")); ns > mx {
		dl = ' '
	}
	return dl
}

// ReadCSV reads a table from a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg;
// [Detect] reads the first line to detect the delimiter),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// If the table does not currently have any columns, the first row of the data
// is assumed to be headers, and columns are constructed therefrom.
// If the data was saved from a table with headers, then these have full type
// information for the columns. If the table DOES have existing columns,
// then those are used robustly for whatever information fits from each
// row of the data. Any existing indexed view is reset to sequential.
func (dt *Table) ReadCSV(r io.Reader, delim Delims) error {
	dl := delim.Rune()
	if delim == Detect {
		b, err := io.ReadAll(r)
		if err != nil {
			return errors.Log(err)
		}
		dl = DetectDelim(b)
		r = bytes.NewReader(b)
	}
	cr := csv.NewReader(r)
	cr.Comma = dl
	rec, err := cr.ReadAll() // todo: lazy, avoid resizing
	if err != nil || len(rec) == 0 {
		return err
	}
	rows := len(rec)
	strow := 0
	if dt.NumColumns() == 0 || DetectTableHeaders(rec[0]) {
		dt.DeleteAll()
		err := ConfigFromHeaders(dt, rec[0], rec)
		if err != nil {
			return errors.Log(err)
		}
		strow++
		rows--
	}
	dt.Sequential()
	dt.SetNumRows(rows)
	for ri := 0; ri < rows; ri++ {
		dt.ReadCSVRow(rec[ri+strow], ri)
	}
	return nil
}

// ReadCSVRow reads a record of CSV data into given raw row in the table.
func (dt *Table) ReadCSVRow(rec []string, row int) {
	tc := dt.NumColumns()
	ci := 0
	nan := math.NaN()
	for j := 0; j < tc; j++ {
		cl := dt.ColumnByIndex(j)
		str := rec[ci]
		if !cl.IsString() && (str == "" || str == "NaN" || str == "-NaN" || str == "Inf" || str == "-Inf") {
			cl.SetFloat(nan, row)
		} else {
			cl.SetString(strings.TrimSpace(str), row)
		}
		ci++
		if ci >= len(rec) {
			return
		}
	}
}

// ConfigFromHeaders attempts to configure Table based on the headers.
// For non-table headers, data is examined to determine types.
func ConfigFromHeaders(dt *Table, hdrs []string, rec [][]string) error {
	if DetectTableHeaders(hdrs) {
		return ConfigFromTableHeaders(dt, hdrs)
	}
	return ConfigFromDataValues(dt, hdrs, rec)
}

// DetectTableHeaders looks for special header characters. Returns true if found.
func DetectTableHeaders(hdrs []string) bool {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		if _, ok := TableHeaderToType[hd[0]]; !ok { // all must be table
			return false
		}
	}
	return true
}

// ConfigFromTableHeaders attempts to configure a Table based on special table headers.
func ConfigFromTableHeaders(dt *Table, hdrs []string) error {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		typ, hd := TableColumnType(hd)
		dt.AddColumnOfType(hd, typ)
	}
	return nil
}

// TableHeaderToType maps special header characters to data type.
var TableHeaderToType = map[byte]reflect.Kind{
	'$': reflect.String,
	'%': reflect.Float32,
	'#': reflect.Float64,
	'|': reflect.Int,
	'^': reflect.Bool,
}

// TableHeaderChar returns the special header character based on given data type.
func TableHeaderChar(typ reflect.Kind) byte {
	switch {
	case typ == reflect.Bool:
		return '^'
	case typ == reflect.Float32:
		return '%'
	case typ == reflect.Float64:
		return '#'
	case typ >= reflect.Int && typ <= reflect.Uintptr:
		return '|'
	default:
		return '$'
	}
}

// TableColumnType parses the column header for special table type information.
func TableColumnType(nm string) (reflect.Kind, string) {
	typ, ok := TableHeaderToType[nm[0]]
	if ok {
		nm = nm[1:]
	} else {
		typ = reflect.String // most general, default
	}
	return typ, nm
}

// ConfigFromDataValues configures a Table based on data types inferred
// from the string representation of given records, using header names if present.
func ConfigFromDataValues(dt *Table, hdrs []string, rec [][]string) error {
	nr := len(rec)
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		nmatch := 0
		typ := reflect.String
		for ri := 1; ri < nr; ri++ {
			rv := rec[ri][ci]
			if rv == "" {
				continue
			}
			ctyp := InferDataType(rv)
			switch {
			case ctyp == reflect.String: // definitive
				typ = ctyp
			case typ == ctyp && (nmatch > 1 || ri == nr-1): // good enough
			case typ == ctyp: // gather more info
				nmatch++
			case typ == reflect.String: // always upgrade from string default
				nmatch = 0
				typ = ctyp
			case typ == reflect.Int && ctyp == reflect.Float64: // upgrade
				nmatch = 0
				typ = ctyp
			}
		}
		dt.AddColumnOfType(hd, typ)
	}
	return nil
}

// InferDataType returns the inferred data type for the given string.
// Only deals with float64, int, and string types.
func InferDataType(str string) reflect.Kind {
	if strings.Contains(str, ".") {
		_, err := strconv.ParseFloat(str, 64)
		if err == nil {
			return reflect.Float64
		}
	}
	_, err := strconv.ParseInt(str, 10, 64)
	if err == nil {
		return reflect.Int
	}
	// try float again just in case..
	_, err = strconv.ParseFloat(str, 64)
	if err == nil {
		return reflect.Float64
	}
	return reflect.String
}

// WriteCSV writes a table to a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg),
// including only the currently visible rows of an indexed view.
// If headers = true then generate column headers that capture the
// type of the columns, enabling full reloading of exactly the same
// table format and data (recommended). Otherwise, only the data is written.
func (dt *Table) WriteCSV(w io.Writer, delim Delims, headers bool) error {
	ncol := 0
	var err error
	if headers {
		ncol, err = dt.WriteCSVHeaders(w, delim)
		if err != nil {
			return errors.Log(err)
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	nrow := dt.NumRows()
	for ri := 0; ri < nrow; ri++ {
		err = dt.WriteCSVRowWriter(cw, dt.RowIndex(ri), ncol)
		if err != nil {
			return errors.Log(err)
		}
	}
	cw.Flush()
	return nil
}

// WriteCSVHeaders writes headers to a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg).
// Returns number of columns in header.
func (dt *Table) WriteCSVHeaders(w io.Writer, delim Delims) (int, error) {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	hdrs := dt.TableHeaders()
	nc := len(hdrs)
	err := cw.Write(hdrs)
	if err != nil {
		return nc, err
	}
	cw.Flush()
	return nc, nil
}

// WriteCSVRow writes given raw row to a comma-separated-values (CSV) stream
// (where comma = any delimiter, specified in the delim arg).
func (dt *Table) WriteCSVRow(w io.Writer, row int, delim Delims) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	err := dt.WriteCSVRowWriter(cw, row, 0)
	cw.Flush()
	return err
}

// WriteCSVRowWriter uses csv.Writer to write one raw row.
func (dt *Table) WriteCSVRowWriter(cw *csv.Writer, row int, ncol int) error {
	prec := -1
	if ps, err := Precision(dt.Meta); err == nil {
		prec = ps
	}
	var rec []string
	if ncol > 0 {
		rec = make([]string, 0, ncol)
	} else {
		rec = make([]string, 0)
	}
	for i := range dt.NumColumns() {
		cl := dt.ColumnByIndex(i)
		vl := ""
		if prec <= 0 || cl.IsString() {
			vl = cl.StringValue(row)
		} else {
			vl = strconv.FormatFloat(cl.Float(row), 'g', prec, 64)
		}
		rec = append(rec, vl)
	}
	return cw.Write(rec)
}

// TableHeaders generates special header strings from the table
// with full information about the type of each column.
func (dt *Table) TableHeaders() []string {
	hdrs := make([]string, 0, dt.NumColumns())
	for i := range dt.NumColumns() {
		cl := dt.ColumnByIndex(i)
		nm := string([]byte{TableHeaderChar(cl.DataType())}) + dt.ColumnName(i)
		hdrs = append(hdrs, nm)
	}
	return hdrs
}

// String satisfies the fmt.Stringer interface for string of table data,
// as tab-separated values with type headers, through the current
// indexed view.
func (dt *Table) String() string {
	var b strings.Builder
	dt.WriteCSV(&b, Tab, Headers)
	return b.String()
}
