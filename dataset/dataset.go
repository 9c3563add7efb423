// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides an in-memory columnar container for grouped
// measurement data, where each group is one repeated experiment run
// contributing a fixed-width block of columns. Every column carries full
// provenance back to the dataset it was drawn from, threaded transitively
// through any number of selections.
package dataset

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/metadata"
)

// Status indicates where a [Dataset] is in its lifecycle, gating whether
// structural operations are permitted.
type Status int32

const (
	// Empty is a freshly created dataset with no columns.
	Empty Status = iota

	// Loaded is a dataset populated directly by a loader from a grouped
	// data file, with identity lineage.
	Loaded

	// Written is a dataset whose columns were appended through
	// [Dataset.Extend] and have passed full validation.
	Written
)

func (st Status) String() string {
	switch st {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Written:
		return "written"
	}
	return "invalid"
}

// Index is an optional column or group index. The zero value is unset,
// which is distinct from every valid index, so no in-band sentinel can
// collide with real positions.
type Index struct {
	value int
	set   bool
}

// NewIndex returns a set Index with the given value.
func NewIndex(v int) Index {
	return Index{value: v, set: true}
}

// NewIndexes returns a slice of set Indexes with the given values.
func NewIndexes(vals ...int) []Index {
	ixs := make([]Index, len(vals))
	for i, v := range vals {
		ixs[i] = NewIndex(v)
	}
	return ixs
}

// IsSet reports whether the index holds a value.
func (ix Index) IsSet() bool { return ix.set }

// Value returns the index value, which is only meaningful when IsSet.
func (ix Index) Value() int { return ix.value }

func (ix Index) String() string {
	if !ix.set {
		return "unset"
	}
	return fmt.Sprintf("%d", ix.value)
}

// Dataset is a table of row-aligned measurement series (columns) with five
// parallel per-column metadata sequences plus derived positional attributes.
// The matrix is stored column-major: Data[i] holds the samples of column i,
// and all columns have the same number of rows.
//
// The single mutation primitive is [Dataset.Extend], which appends another
// dataset's columns and then re-derives and validates everything through
// [Dataset.Update]. A dataset owns its matrix and metadata exclusively;
// datasets produced by [Dataset.Extract] are independent copies, never
// aliases. The one sanctioned alias is the live [Column] view.
type Dataset struct {
	// Data is the numeric matrix, one independent series per column.
	// Rows align positionally across all columns.
	Data [][]float64

	// Names holds the display name of each column.
	Names []string

	// Units holds the display unit of each column. Columns sharing a
	// group-local position must share a unit: every group is assumed to
	// repeat the same experiment schema.
	Units []string

	// Groups assigns each column to the experiment-run group it was
	// ingested with. Unset entries are defaulted by [Dataset.Extend].
	Groups []Index

	// Fathers holds each column's position in the immediate parent
	// dataset it was extracted from; unset when there is no tracked parent.
	Fathers []Index

	// Initials holds each column's position in the original root dataset,
	// threaded transitively through chained selections; unset for
	// synthesized columns with no single positional origin.
	Initials []Index

	// GroupPos is the derived 0-based rank of each column among the
	// columns sharing its group, in current column order. Never stored
	// authoritatively; recomputed by [Dataset.Update].
	GroupPos []int

	// Local is the derived current position of each column, always the
	// identity permutation 0..n-1 after [Dataset.Update].
	Local []int

	// NumGroups is the derived number of distinct group ids present.
	NumGroups int

	// Generation counts the completed selection operations that produced
	// this view of the data.
	Generation int

	// Status is the lifecycle state; see [Status].
	Status Status

	// Meta is misc metadata for the dataset. Standard keys:
	//	- Name string = name of the dataset
	//	- Doc string = documentation, description
	//	- Precision int = n for precision to write out floats in csv.
	Meta metadata.Data
}

// New returns a new empty Dataset. Can pass an optional name
// which sets metadata.
func New(name ...string) *Dataset {
	ds := &Dataset{}
	if len(name) > 0 {
		ds.Meta.Set("Name", name[0])
	}
	return ds
}

// Rows returns the number of rows (samples) in each column.
func (ds *Dataset) Rows() int {
	if len(ds.Data) == 0 {
		return 0
	}
	return len(ds.Data[0])
}

// NumColumns returns the number of columns.
func (ds *Dataset) NumColumns() int { return len(ds.Data) }

// Clone returns a complete independent copy of this dataset, including
// a deep copy of the matrix and all metadata sequences.
func (ds *Dataset) Clone() *Dataset {
	cp := &Dataset{
		Names:      slices.Clone(ds.Names),
		Units:      slices.Clone(ds.Units),
		Groups:     slices.Clone(ds.Groups),
		Fathers:    slices.Clone(ds.Fathers),
		Initials:   slices.Clone(ds.Initials),
		GroupPos:   slices.Clone(ds.GroupPos),
		Local:      slices.Clone(ds.Local),
		NumGroups:  ds.NumGroups,
		Generation: ds.Generation,
		Status:     ds.Status,
	}
	cp.Data = make([][]float64, len(ds.Data))
	for i, col := range ds.Data {
		cp.Data[i] = slices.Clone(col)
	}
	cp.Meta.Copy(ds.Meta)
	return cp
}

// NextGroup returns the next unused group id: one past the current maximum,
// or 0 when no group id is set. This is the single authority for new group
// ids, shared by [Dataset.Extend] defaulting and by transformations that
// synthesize columns into a new group.
func (ds *Dataset) NextGroup() int {
	next := 0
	for _, g := range ds.Groups {
		if g.IsSet() && g.Value() >= next {
			next = g.Value() + 1
		}
	}
	return next
}

// Extend appends other's columns after this dataset's existing columns.
// If this dataset has no columns yet it simply becomes a copy of other.
// Appended columns with unset lineage get their own post-concatenation
// position as father and initial index; an unset group id defaults to 0
// when no group id is set anywhere, else to [Dataset.NextGroup].
// After appending, all derived attributes are recomputed and the
// consistency invariants re-validated via [Dataset.Update]. The append
// is atomic: on any fault this dataset is left exactly as it was.
// The other dataset is never modified.
func (ds *Dataset) Extend(other *Dataset) error {
	if other == nil || other.NumColumns() == 0 {
		return ds.Update()
	}
	if err := other.checkLengths(); err != nil {
		return err
	}
	if ds.NumColumns() > 0 && ds.Rows() != other.Rows() {
		return fmt.Errorf("%w: cannot extend %d-row dataset with %d-row columns", ErrDimensionMismatch, ds.Rows(), other.Rows())
	}
	nd := ds.Clone()
	start := nd.NumColumns()
	for _, col := range other.Data {
		nd.Data = append(nd.Data, slices.Clone(col))
	}
	nd.Names = append(nd.Names, other.Names...)
	nd.Units = append(nd.Units, other.Units...)
	nd.Groups = append(nd.Groups, other.Groups...)
	nd.Fathers = append(nd.Fathers, other.Fathers...)
	nd.Initials = append(nd.Initials, other.Initials...)
	nd.defaultAppended(start)
	if err := nd.Update(); err != nil {
		return err
	}
	*ds = *nd
	return nil
}

// defaultAppended fills unset lineage and group entries on columns
// appended at or after start.
func (ds *Dataset) defaultAppended(start int) {
	for i := start; i < len(ds.Fathers); i++ {
		if !ds.Fathers[i].IsSet() {
			ds.Fathers[i] = NewIndex(i)
		}
		if !ds.Initials[i].IsSet() {
			ds.Initials[i] = NewIndex(i)
		}
	}
	for i := start; i < len(ds.Groups); i++ {
		if !ds.Groups[i].IsSet() {
			ds.Groups[i] = NewIndex(ds.NextGroup())
		}
	}
}

// Update re-derives [Dataset.Local], [Dataset.NumGroups] and
// [Dataset.GroupPos] from the current columns and re-validates the
// consistency invariants: metadata sequence lengths must match the column
// count, rows must align across columns, and columns sharing a group-local
// position must share a unit. On success the status becomes [Written].
func (ds *Dataset) Update() error {
	if err := ds.checkLengths(); err != nil {
		return err
	}
	ds.Local = make([]int, len(ds.Data))
	for i := range ds.Local {
		ds.Local[i] = i
	}
	ds.NumGroups = ds.countGroups()
	ds.GroupPos = ds.deriveGroupPos()
	if err := ds.checkUnitAlign(); err != nil {
		return err
	}
	ds.Status = Written
	return nil
}

// checkLengths enforces that every metadata sequence has exactly one entry
// per column and that all columns have the same number of rows.
func (ds *Dataset) checkLengths() error {
	nc := len(ds.Data)
	if len(ds.Names) != nc || len(ds.Units) != nc || len(ds.Groups) != nc ||
		len(ds.Fathers) != nc || len(ds.Initials) != nc {
		return fmt.Errorf("%w: %d columns but %d names, %d units, %d groups, %d fathers, %d initials",
			ErrDimensionMismatch, nc, len(ds.Names), len(ds.Units), len(ds.Groups), len(ds.Fathers), len(ds.Initials))
	}
	rows := ds.Rows()
	for i, col := range ds.Data {
		if len(col) != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrDimensionMismatch, i, len(col), rows)
		}
	}
	return nil
}

// countGroups returns the number of distinct set group ids.
func (ds *Dataset) countGroups() int {
	seen := map[int]bool{}
	for _, g := range ds.Groups {
		if g.IsSet() {
			seen[g.Value()] = true
		}
	}
	return len(seen)
}

// deriveGroupPos computes the 0-based rank of each column among the columns
// sharing its group id, with independent per-group counters in first-seen
// order. Columns with an unset group share one counter.
func (ds *Dataset) deriveGroupPos() []int {
	counter := map[Index]int{}
	pos := make([]int, len(ds.Groups))
	for i, g := range ds.Groups {
		pos[i] = counter[g]
		counter[g]++
	}
	return pos
}

// checkUnitAlign enforces schema alignment: any two columns with the same
// group-local position must have the same unit, because every group is a
// repetition of the same experiment schema.
func (ds *Dataset) checkUnitAlign() error {
	unitAt := map[int]string{}
	for i, p := range ds.GroupPos {
		if u, ok := unitAt[p]; ok && u != ds.Units[i] {
			return fmt.Errorf("%w: group-local position %d has unit %q in one group and %q in another",
				ErrSchemaAlign, p, u, ds.Units[i])
		}
		unitAt[p] = ds.Units[i]
	}
	return nil
}
