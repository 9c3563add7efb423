// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"io"

	baseerrors "cogentcore.org/core/base/errors"
	"cogentcore.org/labdata/dataset"
	"github.com/xuri/excelize/v2"
)

// OpenExcel reads the first sheet of the spreadsheet at the given path as
// grouped data.
func (ld *Loader) OpenExcel(path string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, baseerrors.Log(err)
	}
	defer f.Close()
	ds, err := ld.fromSheet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadExcel reads the first sheet of a spreadsheet from the given reader
// as grouped data.
func (ld *Loader) ReadExcel(r io.Reader) (*dataset.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ld.fromSheet(f)
}

func (ld *Loader) fromSheet(f *excelize.File) (*dataset.Dataset, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrFormat)
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return ld.fromCells(cells)
}
