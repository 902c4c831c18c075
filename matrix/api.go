// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructors and reductions.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Use Zeros/Identity to build matrices with explicit shape and neutral elements.
//   - SumAxis(m, 0) is the bias-gradient reduction used by the transform package.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axis selectors for SumAxis.
const (
	AxisRows = 0 // reduce over rows → one value per column
	AxisCols = 1 // reduce over columns → one value per row
)

// ---------- Constructors ----------

// Zeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func Zeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// Ones returns a rows×cols matrix filled with 1.
func Ones(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("Ones", err)
	}
	floats.AddConst(1, m.data)

	return m, nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// ---------- Reductions ----------

// SumAxis reduces m along axis:
//   - axis 0 (AxisRows): column sums, result length m.Cols().
//   - axis 1 (AxisCols): row sums, result length m.Rows().
//
// Any other axis returns ErrBadAxis.
// Determinism: sums accumulate in ascending row (axis 0) or column (axis 1) order.
// Complexity: O(r*c).
func SumAxis(m *Dense, axis int) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("SumAxis", err)
	}
	switch axis {
	case AxisRows:
		out := make([]float64, m.c)
		for i := 0; i < m.r; i++ {
			floats.Add(out, m.data[i*m.c:(i+1)*m.c])
		}
		return &Vector{data: out}, nil
	case AxisCols:
		out := make([]float64, m.r)
		for i := 0; i < m.r; i++ {
			out[i] = floats.Sum(m.data[i*m.c : (i+1)*m.c])
		}
		return &Vector{data: out}, nil
	default:
		return nil, fmt.Errorf("SumAxis(%d): %w", axis, ErrBadAxis)
	}
}

// Total returns the sum of every element of m (0 for an empty matrix).
func Total(m *Dense) float64 {
	if m == nil {
		return 0
	}

	return floats.Sum(m.data)
}

// FrobeniusNorm returns sqrt(Σ m_ij²).
func FrobeniusNorm(m *Dense) float64 {
	if m == nil || len(m.data) == 0 {
		return 0
	}

	return floats.Norm(m.data, 2)
}
