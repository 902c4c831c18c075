// SPDX-License-Identifier: MIT

// Package matrix: Vector, the size-tagged 1-D companion of Dense.
// A Vector is used in exactly two roles: as a row-broadcast bias (AddVector)
// and as the result of an axis reduction (SumAxis).
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is a fixed-length sequence of float64 values.
type Vector struct {
	data []float64 // len(data) is the size tag
}

// NewVector builds a Vector holding a copy of data.
// Complexity: O(n).
func NewVector(data []float64) *Vector {
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Vector{data: buf}
}

// ZerosVector returns a zero Vector of length n.
func ZerosVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("ZerosVector(%d): %w", n, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// OnesVector returns a Vector of length n filled with 1.
func OnesVector(n int) (*Vector, error) {
	v, err := ZerosVector(n)
	if err != nil {
		return nil, fmt.Errorf("OnesVector: %w", err)
	}
	for i := range v.data {
		v.data[i] = 1
	}

	return v, nil
}

// Len returns the size tag.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Data returns a copy of the elements.
func (v *Vector) Data() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector { return NewVector(v.data) }

// Sum returns the sum of all elements.
func (v *Vector) Sum() float64 { return floats.Sum(v.data) }

// Apply returns a new Vector with f applied to every element.
func (v *Vector) Apply(f func(float64) float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return &Vector{data: out}
}

// AddInPlace performs v += o.
// Errors: ErrNilMatrix, ErrDimensionMismatch (v is left untouched).
func (v *Vector) AddInPlace(o *Vector) error {
	return v.AddScaledInPlace(1, o)
}

// AddScaledInPlace performs v += alpha*o.
// Errors: ErrNilMatrix, ErrDimensionMismatch (v is left untouched).
func (v *Vector) AddScaledInPlace(alpha float64, o *Vector) error {
	if v == nil {
		return fmt.Errorf("Vector.AddScaledInPlace: %w", ErrNilMatrix)
	}
	if err := ValidateVecLen(o, len(v.data)); err != nil {
		return fmt.Errorf("Vector.AddScaledInPlace: %w", err)
	}
	floats.AddScaled(v.data, alpha, o.data)

	return nil
}

// EqualVector reports whether a and b have the same length and every pair of
// elements differs by at most tol.
func EqualVector(a, b *Vector, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

// String renders the vector as a single bracketed row.
func (v *Vector) String() string {
	return fmt.Sprint(v.data)
}
