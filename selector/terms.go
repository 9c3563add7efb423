// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/labdata/dataset"
)

// term is one parsed node of the selection grammar. Parsing is done up
// front so the "group" keyword's lookahead consumption of the following
// int list cannot leak into evaluation.
type term interface {
	// eval returns the columns this term selects from src, as an
	// independent dataset. A no-match is an empty dataset, not an error.
	eval(src *dataset.Dataset) (*dataset.Dataset, error)
}

// parseTerms turns raw term values into grammar nodes. A "group" keyword
// consumes the following term as its group-id list; terms of unsupported
// types parse to a node that selects nothing.
func parseTerms(terms []any) ([]term, error) {
	var parsed []term
	for i := 0; i < len(terms); i++ {
		switch v := terms[i].(type) {
		case string:
			if v == "all" {
				parsed = append(parsed, allTerm{})
				continue
			}
			if strings.HasPrefix(strings.ToLower(v), "group") {
				if i+1 >= len(terms) {
					return nil, fmt.Errorf("%w: keyword %q must be followed by a list of group ids", dataset.ErrUnresolvedSelector, v)
				}
				ids, ok := intList(terms[i+1])
				if !ok {
					return nil, fmt.Errorf("%w: keyword %q must be followed by a list of group ids, not %T", dataset.ErrUnresolvedSelector, v, terms[i+1])
				}
				parsed = append(parsed, groupTerm{ids: ids})
				i++
				continue
			}
			parsed = append(parsed, nameTerm{name: v})
		case int:
			parsed = append(parsed, indexTerm{cols: []int{v}})
		case []int:
			parsed = append(parsed, indexTerm{cols: slices.Clone(v)})
		case []any:
			if ids, ok := intList(v); ok {
				parsed = append(parsed, indexTerm{cols: ids})
			} else {
				parsed = append(parsed, nestedTerm{terms: v})
			}
		default:
			parsed = append(parsed, skipTerm{})
		}
	}
	return parsed, nil
}

// intList returns v as a list of ints if it is one ([]int, or a non-empty
// []any containing only ints).
func intList(v any) ([]int, bool) {
	switch l := v.(type) {
	case []int:
		return slices.Clone(l), true
	case []any:
		if len(l) == 0 {
			return nil, false
		}
		ids := make([]int, len(l))
		for i, e := range l {
			n, ok := e.(int)
			if !ok {
				return nil, false
			}
			ids[i] = n
		}
		return ids, true
	}
	return nil, false
}

// allTerm selects a full copy of the source with lineage reset to identity
// positions, treating the source as a root from this point on.
type allTerm struct{}

func (allTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	res := src.Clone()
	n := res.NumColumns()
	res.Fathers = make([]dataset.Index, n)
	res.Initials = make([]dataset.Index, n)
	for i := range n {
		res.Fathers[i] = dataset.NewIndex(i)
		res.Initials[i] = dataset.NewIndex(i)
	}
	if err := res.Update(); err != nil {
		return nil, err
	}
	return res, nil
}

// groupTerm selects all columns whose group id is in ids, in the order the
// groups appear in ids and column order within each group.
type groupTerm struct {
	ids []int
}

func (tm groupTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	var cols []int
	for _, g := range tm.ids {
		for i, grp := range src.Groups {
			if grp.IsSet() && grp.Value() == g {
				cols = append(cols, i)
			}
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no columns in groups %v", dataset.ErrUnresolvedSelector, tm.ids)
	}
	return src.Extract(cols)
}

// nameTerm selects all columns whose name equals the string, falling back
// to all columns whose unit equals it. No match selects nothing.
type nameTerm struct {
	name string
}

func (tm nameTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	cols := matching(src.Names, tm.name)
	if len(cols) == 0 {
		cols = matching(src.Units, tm.name)
	}
	if len(cols) == 0 {
		return dataset.New(), nil
	}
	return src.Extract(cols)
}

func matching(vals []string, want string) []int {
	var cols []int
	for i, v := range vals {
		if v == want {
			cols = append(cols, i)
		}
	}
	return cols
}

// indexTerm selects the columns at the given positions, in that order.
type indexTerm struct {
	cols []int
}

func (tm indexTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	return src.Extract(tm.cols)
}

// nestedTerm evaluates its terms as an independent sub-selection against
// the same source, merging the sub-result in as one term's output.
type nestedTerm struct {
	terms []any
}

func (tm nestedTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	sub := New(src)
	if err := sub.selectFrom(src, true, tm.terms); err != nil {
		return nil, err
	}
	return sub.sel, nil
}

// skipTerm is an unsupported term value; it selects nothing.
type skipTerm struct{}

func (skipTerm) eval(src *dataset.Dataset) (*dataset.Dataset, error) {
	return dataset.New(), nil
}
