// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import "errors"

// All faults are fatal: they abort the current operation entirely and no
// partial dataset is returned or left installed anywhere. An invariant
// violation indicates caller error (malformed grouping, mismatched
// selection) and must be fixed at the call site, not masked.
var (
	// ErrDimensionMismatch indicates that a metadata sequence's length
	// disagrees with the column count, or that rows do not align
	// across columns.
	ErrDimensionMismatch = errors.New("dataset: dimension mismatch between data and metadata")

	// ErrSchemaAlign indicates that two columns sharing a group-local
	// position have different units, signaling inconsistent group schemas.
	ErrSchemaAlign = errors.New("dataset: unit mismatch at same group-local position")

	// ErrUnresolvedSelector indicates that a column reference (name, unit,
	// position or group id) matched no column and no fallback applies.
	ErrUnresolvedSelector = errors.New("dataset: selector matches no column")
)
