// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Extract builds a new Dataset containing exactly the referenced columns,
// in the given order, with independent copies of the data. The new
// dataset's father indexes are the referenced positions, and its initial
// indexes are propagated transitively: the parent's initial index where one
// is tracked, else the referenced position itself (a root dataset's columns
// are their own lineage origin).
func (ds *Dataset) Extract(cols []int) (*Dataset, error) {
	nd := New()
	for _, c := range cols {
		if c < 0 || c >= ds.NumColumns() {
			return nil, fmt.Errorf("%w: column %d out of range [0..%d]", ErrUnresolvedSelector, c, ds.NumColumns()-1)
		}
		nd.Data = append(nd.Data, slices.Clone(ds.Data[c]))
		nd.Names = append(nd.Names, ds.Names[c])
		nd.Units = append(nd.Units, ds.Units[c])
		nd.Groups = append(nd.Groups, ds.Groups[c])
		nd.Fathers = append(nd.Fathers, NewIndex(c))
		if ds.Initials[c].IsSet() {
			nd.Initials = append(nd.Initials, ds.Initials[c])
		} else {
			nd.Initials = append(nd.Initials, NewIndex(c))
		}
	}
	if err := nd.Update(); err != nil {
		return nil, err
	}
	return nd, nil
}

// ReorderCanonical stably sorts the columns in place into canonical order,
// by group id ascending and group-local position within each group,
// rewriting the matrix and every metadata sequence accordingly. This is a
// pure presentation normalization: lineage values are carried along
// unchanged. Columns with an unset group id sort after all set ones.
func (ds *Dataset) ReorderCanonical() error {
	if err := ds.checkLengths(); err != nil {
		return err
	}
	pos := ds.deriveGroupPos()
	order := make([]int, ds.NumColumns())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ga, gb := ds.Groups[a], ds.Groups[b]
		if ga.IsSet() != gb.IsSet() {
			if ga.IsSet() {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(ga.Value(), gb.Value()); c != 0 {
			return c
		}
		return cmp.Compare(pos[a], pos[b])
	})
	ds.Data = permute(ds.Data, order)
	ds.Names = permute(ds.Names, order)
	ds.Units = permute(ds.Units, order)
	ds.Groups = permute(ds.Groups, order)
	ds.Fathers = permute(ds.Fathers, order)
	ds.Initials = permute(ds.Initials, order)
	return ds.Update()
}

// permute returns a new slice with s reordered so that element i comes
// from s[order[i]].
func permute[E any](s []E, order []int) []E {
	ns := make([]E, len(s))
	for i, o := range order {
		ns[i] = s[o]
	}
	return ns
}

// SplitBy selects the per-column key that [Dataset.Split] partitions on.
type SplitBy int32

const (
	// SplitGroup partitions columns by group id.
	SplitGroup SplitBy = iota

	// SplitName partitions columns by column name.
	SplitName

	// SplitUnit partitions columns by unit.
	SplitUnit

	// SplitGroupPos partitions columns by group-local position,
	// pairing up the same series across all groups.
	SplitGroupPos
)

// Split returns a lazy, restartable sequence of sub-datasets partitioning
// the current columns by the given key, preserving the first-seen order of
// distinct key values. Each sub-dataset is an independent copy built with
// [Dataset.Extract], so lineage points back at this dataset. A part that
// fails extraction, such as a by-name part whose columns do not unit-align,
// is yielded as a nil dataset with the error, and the sequence ends there.
// The dataset must be in a validated state; restructuring it invalidates an
// in-progress iteration.
func (ds *Dataset) Split(by SplitBy) iter.Seq2[*Dataset, error] {
	return func(yield func(*Dataset, error) bool) {
		key := func(i int) any {
			switch by {
			case SplitName:
				return ds.Names[i]
			case SplitUnit:
				return ds.Units[i]
			case SplitGroupPos:
				return ds.GroupPos[i]
			default:
				return ds.Groups[i]
			}
		}
		var order []any
		parts := map[any][]int{}
		for i := range ds.Data {
			k := key(i)
			if _, ok := parts[k]; !ok {
				order = append(order, k)
			}
			parts[k] = append(parts[k], i)
		}
		for _, k := range order {
			sub, err := ds.Extract(parts[k])
			if !yield(sub, err) || err != nil {
				return
			}
		}
	}
}

// ColumnAt returns the live [Column] view for the column addressed by a
// (group id, group-local position) pair, the addressing used by rendering
// and export consumers. Returns an error wrapping [ErrUnresolvedSelector]
// if no such column exists.
func (ds *Dataset) ColumnAt(group, pos int) (*Column, error) {
	for i, g := range ds.Groups {
		if g.IsSet() && g.Value() == group && ds.GroupPos[i] == pos {
			return ds.ColumnView(i)
		}
	}
	return nil, fmt.Errorf("%w: no column at group %d position %d", ErrUnresolvedSelector, group, pos)
}
