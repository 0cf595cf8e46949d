// Copyright 2026 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "errors"

// Kernel calls validate their arguments before any loop body runs; a failing
// call makes zero writes to its output storage. All errors wrap one of these
// sentinels, so callers can classify failures with errors.Is.
var (
	// ErrShapeMismatch reports two shapes that cannot broadcast together:
	// an aligned dimension pair disagrees and neither side is 1.
	ErrShapeMismatch = errors.New("shapes are not broadcast-compatible")

	// ErrDimensionMismatch reports matrix-multiply operands whose inner
	// dimensions disagree (a.shape[-1] != b.shape[-2]).
	ErrDimensionMismatch = errors.New("matrix inner dimensions do not match")

	// ErrRankOverflow reports an operand whose rank exceeds MaxDims, the
	// capacity of the fixed-size coordinate buffers used by the kernels.
	ErrRankOverflow = errors.New("tensor rank exceeds maximum")
)
