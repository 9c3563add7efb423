// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/labdata/dataset"
)

const csvData = `File1,s,V,File2,s,V
-,1,2,-,3,4
-,5,oops,-,7,
`

func TestReadCSV(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 3
	ds, err := ld.Read(strings.NewReader(csvData), dataset.Comma)
	require.NoError(t, err)

	assert.Equal(t, 4, ds.NumColumns())
	assert.Equal(t, 2, ds.Rows())
	assert.Equal(t, 2, ds.NumGroups)
	assert.Equal(t, []string{"File1", "File1", "File2", "File2"}, ds.Names)
	assert.Equal(t, []string{"s", "V", "s", "V"}, ds.Units)
	assert.Equal(t, dataset.NewIndexes(0, 0, 1, 1), ds.Groups)
	assert.Equal(t, []int{0, 1, 0, 1}, ds.GroupPos)
	assert.Equal(t, dataset.Loaded, ds.Status)

	// a root dataset's columns are their own lineage origin
	assert.Equal(t, dataset.NewIndexes(0, 1, 2, 3), ds.Fathers)
	assert.Equal(t, dataset.NewIndexes(0, 1, 2, 3), ds.Initials)

	assert.Equal(t, []float64{1, 5}, ds.Data[0])
	assert.Equal(t, []float64{3, 7}, ds.Data[2])
	// non-numeric and missing cells coerce to NaN
	assert.Equal(t, 2.0, ds.Data[1][0])
	assert.True(t, math.IsNaN(ds.Data[1][1]))
	assert.True(t, math.IsNaN(ds.Data[3][1]))
}

func TestReadDetect(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 3

	tsv := strings.ReplaceAll(csvData, ",", "\t")
	ds, err := ld.Read(strings.NewReader(tsv), dataset.Detect)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.NumColumns())

	ssv := strings.ReplaceAll(csvData, ",", "  ")
	ds, err = ld.Read(strings.NewReader(ssv), dataset.Detect)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.NumColumns())
	assert.Equal(t, []float64{1, 5}, ds.Data[0])
}

func TestReadBadWidth(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 3
	_, err := ld.Read(strings.NewReader("File1,s,V,File2\n-,1,2,-\n"), dataset.Comma)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadEmpty(t *testing.T) {
	_, err := New().Read(strings.NewReader(""), dataset.Comma)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadBadGroupWidth(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 1
	_, err := ld.Read(strings.NewReader(csvData), dataset.Comma)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadHeaderOnly(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 3
	ds, err := ld.Read(strings.NewReader("File1,s,V\n"), dataset.Comma)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumColumns())
	assert.Equal(t, 0, ds.Rows())
}

func TestReadMismatchedUnits(t *testing.T) {
	ld := New()
	ld.ColumnsPerGroup = 3
	// group 1's second column has a different unit than group 0's
	_, err := ld.Read(strings.NewReader("File1,s,V,File2,s,A\n-,1,2,-,3,4\n"), dataset.Comma)
	assert.ErrorIs(t, err, dataset.ErrSchemaAlign)
}
