// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "fmt"

// Column is a live read/write handle on a single column of a [Dataset],
// delegating to the dataset's own storage instead of copying it, so that
// in-place edits from multiple call sites all see the same data.
// The dataset owns the data; the handle is only valid while the dataset's
// column count stays what it was when the handle was created, because
// restructuring (extend, reorder) changes the positional meaning of the
// column. Use [Column.Valid] to check before using a long-lived handle.
type Column struct {
	ds  *Dataset
	idx int

	// columns is the dataset's column count at creation time.
	columns int
}

// ColumnView returns a live [Column] handle on the column at the given
// position. The handle aliases the dataset's storage; it never copies.
func (ds *Dataset) ColumnView(i int) (*Column, error) {
	if i < 0 || i >= ds.NumColumns() {
		return nil, fmt.Errorf("%w: column %d out of range [0..%d]", ErrUnresolvedSelector, i, ds.NumColumns()-1)
	}
	return &Column{ds: ds, idx: i, columns: ds.NumColumns()}, nil
}

// Valid reports whether the handle still points at the column it was
// created for: the owning dataset's column count must be unchanged.
func (cl *Column) Valid() bool {
	return cl.ds != nil && cl.ds.NumColumns() == cl.columns
}

// Index returns the column's position in the owning dataset.
func (cl *Column) Index() int { return cl.idx }

// Name returns the column's display name.
func (cl *Column) Name() string { return cl.ds.Names[cl.idx] }

// Unit returns the column's display unit.
func (cl *Column) Unit() string { return cl.ds.Units[cl.idx] }

// Group returns the column's group id.
func (cl *Column) Group() Index { return cl.ds.Groups[cl.idx] }

// GroupPos returns the column's group-local position.
func (cl *Column) GroupPos() int { return cl.ds.GroupPos[cl.idx] }

// Len returns the number of rows in the column.
func (cl *Column) Len() int { return len(cl.ds.Data[cl.idx]) }

// Float returns the value at the given row.
func (cl *Column) Float(row int) float64 { return cl.ds.Data[cl.idx][row] }

// SetFloat sets the value at the given row, writing directly into the
// owning dataset's storage.
func (cl *Column) SetFloat(row int, val float64) { cl.ds.Data[cl.idx][row] = val }

// Values returns the column's data slice itself, aliasing the owning
// dataset's storage: writes through it are visible to every holder.
func (cl *Column) Values() []float64 { return cl.ds.Data[cl.idx] }
