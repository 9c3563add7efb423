// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector implements a small chainable query grammar over the
// columns of a [dataset.Dataset]. A selection carves out a sub-selection of
// columns by name, unit, numeric position or group, producing a new dataset
// whose lineage points back at the queried one, and can be refined further
// with [Selector.By].
package selector

import (
	"errors"
	"fmt"

	"cogentcore.org/labdata/dataset"
)

var (
	// ErrSelectionIncomplete indicates a Select call whose result never
	// reached the fully validated state, e.g. a call with no terms.
	ErrSelectionIncomplete = errors.New("selector: selection produced no validated result")

	// ErrChainSequencing indicates that By was called without an
	// immediately preceding Select: By is a sub-step, not standalone
	// and not repeatable.
	ErrChainSequencing = errors.New("selector: By must immediately follow a single Select")
)

// Selector interprets selection terms against a source dataset and
// accumulates the result. Create one with [New], run [Selector.Select]
// (optionally refined once by [Selector.By]), and take the result from
// [Selector.Dataset].
//
// Terms are interpreted left to right:
//   - "all" selects a full copy of the source's columns, with lineage
//     reset to identity positions.
//   - a string starting with "group" (case-insensitive) consumes the next
//     term, which must be a list of group ids; all columns in those groups
//     are selected in group-then-column order.
//   - a string equal to a column name selects all columns with that name.
//   - otherwise a string equal to a unit selects all columns with that unit.
//   - an int selects the one column at that position.
//   - an []int (or a []any of ints) selects those columns in that order.
//   - any other []any is evaluated recursively as its own sub-selection.
//
// A term matching nothing contributes no columns; a term of an unsupported
// type is skipped. Faults abort the whole call and leave the previous
// result untouched.
type Selector struct {
	src *dataset.Dataset
	sel *dataset.Dataset

	// selected gates By: true only directly after a public select call.
	selected bool
}

// New returns a Selector bound to the given source dataset.
func New(src *dataset.Dataset) *Selector {
	if src == nil {
		src = dataset.New()
	}
	return &Selector{src: src, sel: dataset.New()}
}

// Dataset returns the accumulated selection result.
func (sl *Selector) Dataset() *dataset.Dataset { return sl.sel }

// Select interprets the given terms against the bound source dataset,
// merging each term's columns into a fresh accumulator, and installs the
// result on success. The result's generation is one past the source's.
func (sl *Selector) Select(terms ...any) error {
	if err := sl.selectFrom(sl.src, true, terms); err != nil {
		return err
	}
	sl.selected = true
	return nil
}

// SelectFrom is the general form of [Selector.Select]: it selects from the
// given dataset instead of the bound source, and with merge false each
// term's result replaces the accumulator instead of extending it, so the
// final result is the last matching term's columns alone.
func (sl *Selector) SelectFrom(src *dataset.Dataset, merge bool, terms ...any) error {
	if err := sl.selectFrom(src, merge, terms); err != nil {
		return err
	}
	sl.selected = true
	return nil
}

// By refines the previous selection result by selecting from it.
// It must be called exactly once, immediately after a select call on this
// chain: calling it first, or twice in a row, fails with
// [ErrChainSequencing].
func (sl *Selector) By(terms ...any) error {
	if !sl.selected {
		return ErrChainSequencing
	}
	sl.selected = false
	return sl.selectFrom(sl.sel, true, terms)
}

// selectFrom runs one selection pass. The accumulator is built locally and
// only installed when the whole pass validates, so a fault never leaves a
// partial result behind.
func (sl *Selector) selectFrom(src *dataset.Dataset, merge bool, terms []any) error {
	parsed, err := parseTerms(terms)
	if err != nil {
		return err
	}
	acc := dataset.New()
	for _, tm := range parsed {
		res, err := tm.eval(src)
		if err != nil {
			return err
		}
		if merge {
			if err := acc.Extend(res); err != nil {
				return err
			}
		} else {
			acc = res
		}
	}
	acc.Generation = src.Generation + 1
	if acc.Status != dataset.Written {
		return fmt.Errorf("%w: %d terms processed", ErrSelectionIncomplete, len(parsed))
	}
	sl.sel = acc
	return nil
}
