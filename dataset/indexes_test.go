// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoundTrip(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	perm := []int{3, 5, 0, 2, 1, 4}
	a, err := ds.Extract(perm)
	require.NoError(t, err)
	b, err := a.Extract([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	for i, p := range perm {
		assert.Equal(t, ds.Data[p], b.Data[i])
		assert.Equal(t, ds.Names[p], b.Names[i])
		assert.Equal(t, ds.Units[p], b.Units[i])
	}
}

func TestExtractLineage(t *testing.T) {
	root := twoGroups(t, 0, 1)
	first, err := root.Extract([]int{2, 5})
	require.NoError(t, err)
	assert.Equal(t, NewIndexes(2, 5), first.Fathers)
	assert.Equal(t, NewIndexes(2, 5), first.Initials)

	second, err := first.Extract([]int{0})
	require.NoError(t, err)
	assert.Equal(t, NewIndexes(0), second.Fathers)
	// the initial index threads back to the root position, not the parent's
	assert.Equal(t, NewIndexes(2), second.Initials)
}

func TestExtractUntracked(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	ds.Initials = make([]Index, 6)
	require.NoError(t, ds.Update())
	sub, err := ds.Extract([]int{4})
	require.NoError(t, err)
	assert.Equal(t, NewIndexes(4), sub.Initials)
}

func TestExtractOutOfRange(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	_, err := ds.Extract([]int{0, 6})
	assert.ErrorIs(t, err, ErrUnresolvedSelector)
	_, err = ds.Extract([]int{-1})
	assert.ErrorIs(t, err, ErrUnresolvedSelector)
}

func TestReorderCanonical(t *testing.T) {
	ds := New()
	ds.Data = [][]float64{{1}, {2}, {3}, {4}}
	ds.Names = []string{"B", "A", "B", "A"}
	ds.Units = []string{"s", "s", "V", "V"}
	ds.Groups = NewIndexes(1, 0, 1, 0)
	ds.Fathers = NewIndexes(0, 1, 2, 3)
	ds.Initials = NewIndexes(0, 1, 2, 3)
	require.NoError(t, ds.Update())

	require.NoError(t, ds.ReorderCanonical())
	assert.Equal(t, NewIndexes(0, 0, 1, 1), ds.Groups)
	assert.Equal(t, []int{0, 1, 0, 1}, ds.GroupPos)
	assert.Equal(t, []string{"A", "A", "B", "B"}, ds.Names)
	assert.Equal(t, [][]float64{{2}, {4}, {1}, {3}}, ds.Data)
	// lineage rides along with the columns
	assert.Equal(t, NewIndexes(1, 3, 0, 2), ds.Fathers)
}

func TestSplitGroup(t *testing.T) {
	ds := twoGroups(t, 3, 7)
	var names [][]string
	for sub, err := range ds.Split(SplitGroup) {
		require.NoError(t, err)
		assert.Equal(t, 3, sub.NumColumns())
		assert.Equal(t, 1, sub.NumGroups)
		names = append(names, sub.Names)
	}
	require.Len(t, names, 2)
	assert.Equal(t, []string{"Run1", "Run1", "Run1"}, names[0])
	assert.Equal(t, []string{"Run2", "Run2", "Run2"}, names[1])

	// the sequence is restartable
	n := 0
	for range ds.Split(SplitGroup) {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestSplitUnit(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	var units []string
	for sub, err := range ds.Split(SplitUnit) {
		require.NoError(t, err)
		assert.Equal(t, 2, sub.NumColumns())
		units = append(units, sub.Units[0])
	}
	assert.Equal(t, []string{"s", "V", "Pa"}, units) // first-seen order
}

func TestSplitGroupPos(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	var fathers [][]Index
	for sub, err := range ds.Split(SplitGroupPos) {
		require.NoError(t, err)
		fathers = append(fathers, sub.Fathers)
	}
	require.Len(t, fathers, 3)
	assert.Equal(t, NewIndexes(0, 3), fathers[0])
	assert.Equal(t, NewIndexes(2, 5), fathers[2])
}

func TestSplitEarlyStop(t *testing.T) {
	ds := twoGroups(t, 0, 1)
	for range ds.Split(SplitName) {
		break
	}
}

func TestSplitNameMisaligned(t *testing.T) {
	// valid as a whole, but the by-name part for "A" pairs an "s" column
	// with a "V" column at the same group-local position
	ds := New()
	ds.Data = [][]float64{{1}, {2}, {3}, {4}}
	ds.Names = []string{"A", "B", "B", "A"}
	ds.Units = []string{"s", "V", "s", "V"}
	ds.Groups = NewIndexes(0, 0, 1, 1)
	ds.Fathers = NewIndexes(0, 1, 2, 3)
	ds.Initials = NewIndexes(0, 1, 2, 3)
	require.NoError(t, ds.Update())

	var errs []error
	n := 0
	for sub, err := range ds.Split(SplitName) {
		errs = append(errs, err)
		if err != nil {
			assert.Nil(t, sub)
		}
		n++
	}
	// the faulting part is reported and ends the sequence
	require.Equal(t, 1, n)
	assert.ErrorIs(t, errs[0], ErrSchemaAlign)
}

func TestColumnAt(t *testing.T) {
	ds := twoGroups(t, 3, 7)
	cl, err := ds.ColumnAt(7, 2)
	require.NoError(t, err)
	assert.Equal(t, "Run2", cl.Name())
	assert.Equal(t, "Pa", cl.Unit())
	assert.Equal(t, 5, cl.Index())

	_, err = ds.ColumnAt(2, 0)
	assert.ErrorIs(t, err, ErrUnresolvedSelector)
}
