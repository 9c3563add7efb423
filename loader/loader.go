// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader reads grouped measurement files into a root
// [dataset.Dataset]. Input files are laid out as fixed-width blocks of
// columns, one block per repeated experiment run: the first column of each
// block is a group label, the header row carries the units of the block's
// data columns, and the remaining rows are numeric data. The label becomes
// the name of every data column in the block and is dropped from the
// numeric matrix; non-numeric cells become NaN.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	baseerrors "cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/labdata/dataset"
)

// ErrFormat indicates a file that does not follow the grouped layout:
// empty input, or a column count that is not a multiple of the group width.
var ErrFormat = errors.New("loader: malformed grouped data file")

// ColumnsPerGroupDefault is the default fixed width of each group block:
// one label column plus five data columns.
const ColumnsPerGroupDefault = 6

// Loader reads grouped measurement files. The zero value is not usable;
// create one with [New].
type Loader struct {
	// ColumnsPerGroup is the fixed width of each group block, including
	// the leading label column.
	ColumnsPerGroup int
}

// New returns a Loader with the default group width.
func New() *Loader {
	return &Loader{ColumnsPerGroup: ColumnsPerGroupDefault}
}

// Open reads the grouped data file at the given path, dispatching on the
// extension: .xlsx and .xls are read as spreadsheets, .csv as comma
// separated, .tsv as tab separated, and anything else with delimiter
// detection.
func (ld *Loader) Open(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ld.OpenExcel(path)
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, baseerrors.Log(err)
	}
	defer fp.Close()
	ds, err := ld.Read(bufio.NewReader(fp), delimsForExt(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// OpenFS is the version of [Loader.Open] that uses an [fs.FS] filesystem.
func (ld *Loader) OpenFS(fsys fs.FS, path string) (*dataset.Dataset, error) {
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		fp, err := fsys.Open(path)
		if err != nil {
			return nil, baseerrors.Log(err)
		}
		defer fp.Close()
		return ld.ReadExcel(fp)
	}
	fp, err := fsys.Open(path)
	if err != nil {
		return nil, baseerrors.Log(err)
	}
	defer fp.Close()
	return ld.Read(bufio.NewReader(fp), delimsForExt(path))
}

func delimsForExt(path string) dataset.Delims {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dataset.Comma
	case ".tsv":
		return dataset.Tab
	}
	return dataset.Detect
}

// Read reads grouped delimited data from the given reader. With
// [dataset.Detect] the first line is inspected for tabs, then commas,
// falling back to whitespace separation.
func (ld *Loader) Read(r io.Reader, delim dataset.Delims) (*dataset.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(raw)
	if delim == dataset.Detect {
		delim = detectDelims(text)
		logx.PrintlnDebug("loader: detected delimiter:", delim)
	}
	var cells [][]string
	if delim == dataset.Space {
		for line := range strings.Lines(text) {
			if fields := strings.Fields(line); len(fields) > 0 {
				cells = append(cells, fields)
			}
		}
	} else {
		cr := csv.NewReader(strings.NewReader(text))
		cr.Comma = delim.Rune()
		cr.FieldsPerRecord = -1
		cells, err = cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	}
	return ld.fromCells(cells)
}

// detectDelims inspects the first line of the text for tabs, then commas,
// falling back to whitespace separation.
func detectDelims(text string) dataset.Delims {
	first, _, _ := strings.Cut(text, "\n")
	if strings.ContainsRune(first, '\t') {
		return dataset.Tab
	}
	if strings.ContainsRune(first, ',') {
		return dataset.Comma
	}
	return dataset.Space
}

// fromCells builds the root dataset from a grid of raw cells: a header row
// of group labels and units, then data rows. The result has identity
// lineage and status [dataset.Loaded].
func (ld *Loader) fromCells(cells [][]string) (*dataset.Dataset, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrFormat)
	}
	cpg := ld.ColumnsPerGroup
	if cpg < 2 {
		return nil, fmt.Errorf("%w: group width %d must be at least 2", ErrFormat, cpg)
	}
	header := cells[0]
	if len(header)%cpg != 0 {
		return nil, fmt.Errorf("%w: %d columns is not a multiple of the group width %d", ErrFormat, len(header), cpg)
	}
	ngroups := len(header) / cpg
	rows := len(cells) - 1

	ds := dataset.New()
	for g := range ngroups {
		label := header[g*cpg]
		for c := 1; c < cpg; c++ {
			src := g*cpg + c
			col := make([]float64, rows)
			for r := range rows {
				col[r] = cellValue(cells[r+1], src)
			}
			ds.Data = append(ds.Data, col)
			ds.Names = append(ds.Names, label)
			ds.Units = append(ds.Units, header[src])
			ds.Groups = append(ds.Groups, dataset.NewIndex(g))
		}
	}
	n := ds.NumColumns()
	ds.Fathers = dataset.NewIndexes(identity(n)...)
	ds.Initials = dataset.NewIndexes(identity(n)...)
	if err := ds.Update(); err != nil {
		return nil, err
	}
	ds.Status = dataset.Loaded
	logx.PrintlnDebug("loader: read", ngroups, "groups,", n, "columns,", rows, "rows")
	return ds, nil
}

// cellValue coerces one raw cell to a float, with missing or non-numeric
// cells becoming NaN.
func cellValue(row []string, i int) float64 {
	if i >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
