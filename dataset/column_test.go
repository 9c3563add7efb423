// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnViewLive(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	cl, err := ds.ColumnView(1)
	require.NoError(t, err)
	assert.Equal(t, "Run1", cl.Name())
	assert.Equal(t, "V", cl.Unit())
	assert.Equal(t, NewIndex(0), cl.Group())
	assert.Equal(t, 1, cl.GroupPos())
	assert.Equal(t, 3, cl.Len())
	assert.Equal(t, 4.0, cl.Float(0))

	// writes go straight into the dataset's storage
	cl.SetFloat(0, -4)
	assert.Equal(t, -4.0, ds.Data[1][0])

	other, err := ds.ColumnView(1)
	require.NoError(t, err)
	other.Values()[1] = -5
	assert.Equal(t, -5.0, cl.Float(1))
}

func TestColumnViewStale(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	cl, err := ds.ColumnView(0)
	require.NoError(t, err)
	assert.True(t, cl.Valid())

	sub, err := ds.Extract([]int{3})
	require.NoError(t, err)
	require.NoError(t, ds.Extend(sub))
	// restructuring changed the column count, so the handle is stale
	assert.False(t, cl.Valid())
}

func TestColumnViewOutOfRange(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	_, err := ds.ColumnView(6)
	assert.ErrorIs(t, err, ErrUnresolvedSelector)
}
