// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/metadata"
)

// Delims are standard delimiter options for reading and writing
// delimited data files (Tab, Comma, Space).
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values.
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values.
	Comma

	// Space is the space rune delimiter, for SSV space separated values,
	// where any run of whitespace separates fields.
	Space

	// Detect is used when reading a file: the first line is inspected
	// for tabs, then commas, falling back to spaces.
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

func (dl Delims) String() string {
	switch dl {
	case Tab:
		return "tab"
	case Comma:
		return "comma"
	case Space:
		return "space"
	}
	return "detect"
}

// ParseDelims returns the Delims for the given name
// (tab, comma, space, detect).
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(s) {
	case "tab", "tsv":
		return Tab, nil
	case "comma", "csv":
		return Comma, nil
	case "space", "ssv":
		return Space, nil
	case "detect", "":
		return Detect, nil
	}
	return Detect, fmt.Errorf("unknown delimiter name %q", s)
}

// SaveCSV writes the dataset to a delimited file with a name header row
// and a unit header row followed by the data rows, for consumption by
// plotting and export tools. See [Dataset.WriteCSV].
func (ds *Dataset) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = ds.WriteCSV(bw, delim)
	bw.Flush()
	return err
}

// WriteCSV writes the dataset to the given writer using the given
// delimiter, emitting one row of column names, one row of units, and the
// row-aligned data. Float precision can be set with the "Precision"
// metadata key; the default writes the shortest exact representation.
func (ds *Dataset) WriteCSV(w io.Writer, delim Delims) error {
	prec := -1
	if p, err := metadata.GetFromData[int](ds.Meta, "Precision"); err == nil {
		prec = p
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(ds.Names); err != nil {
		return err
	}
	if err := cw.Write(ds.Units); err != nil {
		return err
	}
	rec := make([]string, ds.NumColumns())
	for r := range ds.Rows() {
		for c, col := range ds.Data {
			rec[c] = strconv.FormatFloat(col[r], 'g', prec, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
