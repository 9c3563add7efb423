// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform derives new computed columns from a
// [dataset.Dataset]. The one reduction provided is the order-p vector
// norm across a set of input columns, with deterministic inference of the
// result column's name, unit and group.
package transform

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"cogentcore.org/labdata/dataset"
)

// ErrGroupAmbiguous indicates that a reduction over columns from several
// groups cannot determine a single output group id; pass [ResultGroup]
// to resolve it explicitly.
var ErrGroupAmbiguous = errors.New("transform: output group is ambiguous, specify a result group")

// Transformer computes reductions over a target dataset's columns and
// appends the results to it.
type Transformer struct {
	ds *dataset.Dataset
}

// New returns a Transformer bound to the given target dataset.
func New(ds *dataset.Dataset) *Transformer {
	if ds == nil {
		ds = dataset.New()
	}
	return &Transformer{ds: ds}
}

// Dataset returns the bound target dataset, which is replaced when a
// transformation runs with [Replace].
func (tr *Transformer) Dataset() *dataset.Dataset { return tr.ds }

// Option configures one [Transformer.Norm] call.
type Option func(*config)

type config struct {
	order    int
	indexes  []int
	columns  []*dataset.Column
	unit     string
	unitSet  bool
	group    int
	groupSet bool
	newGroup bool
	replace  bool
}

// Order sets the norm order p; the default is 2, the Euclidean norm.
func Order(p int) Option { return func(c *config) { c.order = p } }

// Indexes restricts the input to the columns at the given positions of the
// bound dataset. The default is all of its columns.
func Indexes(idxs ...int) Option { return func(c *config) { c.indexes = idxs } }

// Columns supplies the input as explicit column views, which may come from
// any dataset; this takes precedence over [Indexes].
func Columns(cols ...*dataset.Column) Option { return func(c *config) { c.columns = cols } }

// ResultUnit sets the output column's unit instead of inferring it.
func ResultUnit(u string) Option {
	return func(c *config) { c.unit = u; c.unitSet = true }
}

// ResultGroup sets the output column's group id instead of inferring it.
func ResultGroup(id int) Option {
	return func(c *config) { c.group = id; c.groupSet = true }
}

// NewGroup places the output column in the next unused group of the bound
// dataset.
func NewGroup() Option { return func(c *config) { c.newGroup = true } }

// Replace makes the result replace the bound dataset instead of being
// appended to it.
func Replace() Option { return func(c *config) { c.replace = true } }

// Norm computes, for each row, the order-p norm across the selected input
// columns, producing one output column that is appended to the bound
// dataset (or replaces it with [Replace]). The output metadata is resolved
// deterministically:
//   - name: a single input keeps its own name; several inputs sharing one
//     name produce "Norm_of_<name>"; differing names are all concatenated.
//   - unit: [ResultUnit] if given, else the one unit all inputs share,
//     else "unitless".
//   - group: [ResultGroup] if given, else the next unused group with
//     [NewGroup], else the one group all inputs share; several groups
//     without an explicit choice fail with [ErrGroupAmbiguous].
//
// The output column is synthesized with no single positional parent, so
// its father and initial indexes are unset until the append defaults them.
func (tr *Transformer) Norm(opts ...Option) (*dataset.Dataset, error) {
	cfg := config{order: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.order < 1 {
		return nil, fmt.Errorf("transform: invalid norm order %d", cfg.order)
	}
	cols, names, units, groups, err := tr.resolveInput(&cfg)
	if err != nil {
		return nil, err
	}

	rows := len(cols[0])
	out := make([]float64, rows)
	p := float64(cfg.order)
	for r := range rows {
		sum := 0.0
		for _, col := range cols {
			sum += math.Pow(math.Abs(col[r]), p)
		}
		out[r] = math.Pow(sum, 1/p)
	}

	group, err := tr.resolveGroup(&cfg, groups)
	if err != nil {
		return nil, err
	}
	res := dataset.New()
	res.Data = [][]float64{out}
	res.Names = []string{resolveName(names)}
	res.Units = []string{resolveUnit(&cfg, units)}
	res.Groups = []dataset.Index{dataset.NewIndex(group)}
	res.Fathers = []dataset.Index{{}}
	res.Initials = []dataset.Index{{}}

	if cfg.replace {
		if err := res.Update(); err != nil {
			return nil, err
		}
		tr.ds = res
		return tr.ds, nil
	}
	if err := tr.ds.Extend(res); err != nil {
		return nil, err
	}
	return tr.ds, nil
}

// resolveInput gathers the input columns' data and metadata: explicit
// column views first, else positions into the bound dataset, else all of
// its columns.
func (tr *Transformer) resolveInput(cfg *config) (cols [][]float64, names, units []string, groups []dataset.Index, err error) {
	if len(cfg.columns) > 0 {
		for _, cl := range cfg.columns {
			vals := slices.Clone(cl.Values())
			if len(cols) > 0 && len(vals) != len(cols[0]) {
				return nil, nil, nil, nil, fmt.Errorf("%w: input column %q has %d rows, want %d",
					dataset.ErrDimensionMismatch, cl.Name(), len(vals), len(cols[0]))
			}
			cols = append(cols, vals)
			names = append(names, cl.Name())
			units = append(units, cl.Unit())
			groups = append(groups, cl.Group())
		}
		return cols, names, units, groups, nil
	}
	idxs := cfg.indexes
	if idxs == nil {
		idxs = make([]int, tr.ds.NumColumns())
		for i := range idxs {
			idxs[i] = i
		}
	}
	if len(idxs) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("%w: no input columns for norm", dataset.ErrUnresolvedSelector)
	}
	for _, i := range idxs {
		if i < 0 || i >= tr.ds.NumColumns() {
			return nil, nil, nil, nil, fmt.Errorf("%w: column %d out of range [0..%d]", dataset.ErrUnresolvedSelector, i, tr.ds.NumColumns()-1)
		}
		cols = append(cols, slices.Clone(tr.ds.Data[i]))
		names = append(names, tr.ds.Names[i])
		units = append(units, tr.ds.Units[i])
		groups = append(groups, tr.ds.Groups[i])
	}
	return cols, names, units, groups, nil
}

func resolveName(names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	uniq := map[string]bool{}
	for _, nm := range names {
		uniq[nm] = true
	}
	if len(uniq) == 1 {
		return "Norm_of_" + names[0]
	}
	return "Norm_of_" + strings.Join(names, "_")
}

func resolveUnit(cfg *config, units []string) string {
	if cfg.unitSet {
		return cfg.unit
	}
	uniq := map[string]bool{}
	for _, u := range units {
		uniq[u] = true
	}
	if len(uniq) == 1 {
		return units[0]
	}
	return "unitless"
}

func (tr *Transformer) resolveGroup(cfg *config, groups []dataset.Index) (int, error) {
	if cfg.groupSet {
		return cfg.group, nil
	}
	if cfg.newGroup {
		return tr.ds.NextGroup(), nil
	}
	common := dataset.Index{}
	for _, g := range groups {
		if !g.IsSet() {
			return 0, fmt.Errorf("%w: input column has no group", ErrGroupAmbiguous)
		}
		if !common.IsSet() {
			common = g
		} else if common.Value() != g.Value() {
			return 0, fmt.Errorf("%w: inputs span groups %d and %d", ErrGroupAmbiguous, common.Value(), g.Value())
		}
	}
	if !common.IsSet() {
		return 0, fmt.Errorf("%w: no input columns", ErrGroupAmbiguous)
	}
	return common.Value(), nil
}
