// SPDX-License-Identifier: MIT
// Package matrix provides the shape-checked kernels used by the predictive-coding
// solver: element-wise addition, subtraction and product, matrix multiplication,
// transpose, scalar maps and broadcast bias addition. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the module.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated or aliased.
//   - Flat loops are delegated to gonum/floats where a primitive exists.
//   - Non-finite values propagate through arithmetic without checks.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opNeg        = "Neg"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opAddVector  = "AddVector"
	opAddScalar  = "AddScalar"
	opApply      = "Apply"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opAddScaled  = "AddScaledInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	floats.AddTo(res.data, a.data, b.data)

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	floats.SubTo(res.data, a.data, b.data)

	return res, nil
}

// Neg returns −A.
func Neg(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx, v := range a.data {
		res.data[idx] = -v
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard is not matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	floats.MulTo(res.data, a.data, b.data)

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides: C[i,:] += A[i,k] * B[k,:].
//
// Determinism:
//   - Each C[i,j] accumulates its products in ascending k, starting from zero,
//     which matches the textbook i→j→k summation order bit for bit.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var i, k int
	for i = 0; i < aRows; i++ {
		rowR := res.data[i*bCols : (i+1)*bCols]
		for k = 0; k < aCols; k++ {
			// no zero-skip: 0*Inf must still surface as NaN
			floats.AddScaled(rowR, a.data[i*aCols+k], b.data[k*bCols:(k+1)*bCols])
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, len(m.data))}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	floats.ScaleTo(res.data, alpha, m.data)

	return res, nil
}

// AddScalar returns m + s element-wise.
func AddScalar(m *Dense, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	res := m.Clone()
	floats.AddConst(s, res.data)

	return res, nil
}

// AddVector adds the row vector v to every row of m (bias broadcast).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when m.Cols() != v.Len().
//
// Complexity: Time O(r*c), Space O(r*c).
func AddVector(m *Dense, v *Vector) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddVector, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, fmt.Errorf("%s: %dx%d + vector: %w", opAddVector, m.r, m.c, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		floats.AddTo(res.data[base:base+m.c], m.data[base:base+m.c], v.data)
	}

	return res, nil
}

// Apply returns a new matrix with f applied to every element.
// f must be pure; it is called exactly once per element in row-major order.
func Apply(m *Dense, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// AddInPlace performs m += b. m is left untouched on error.
func (m *Dense) AddInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	floats.Add(m.data, b.data)

	return nil
}

// SubInPlace performs m -= b. m is left untouched on error.
func (m *Dense) SubInPlace(b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	floats.Sub(m.data, b.data)

	return nil
}

// AddScaledInPlace performs m += alpha*b; this is the update primitive of
// both variables and transform parameters. m is left untouched on error.
func (m *Dense) AddScaledInPlace(alpha float64, b *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	floats.AddScaled(m.data, alpha, b.data)

	return nil
}
