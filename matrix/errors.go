// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with the operation tag and
// the offending shapes; callers match them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: detail: %w", ErrX)
// so the operation and the shapes involved are visible while errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/axis -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when the input cannot form a rectangle
	// (e.g., ragged rows passed to New).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense or *Vector (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadAxis is returned by SumAxis for any axis other than 0 or 1.
	ErrBadAxis = errors.New("matrix: unsupported axis")

	// ErrNaNInf signals a NaN or ±Inf value where a finite parameter is required
	// (distribution parameters of the random factories).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
