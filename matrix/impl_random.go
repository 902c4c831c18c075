// SPDX-License-Identifier: MIT

// Package matrix - random factories.
//
// Purpose:
//   - Initialize transform parameters and variable guesses from uniform and
//     normal distributions (gonum/stat/distuv).
//
// Determinism:
//   - Elements are drawn in row-major order, so a seeded source reproduces the
//     same matrix for the same shape.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// sampler is the subset of distuv distributions the factories need.
type sampler interface {
	Rand() float64
}

// fillRandom allocates rows×cols and fills it from d in row-major order.
func fillRandom(tag string, rows, cols int, d sampler) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx := range m.data {
		m.data[idx] = d.Rand()
	}

	return m, nil
}

// Random returns a rows×cols matrix with entries uniform in [0, 1).
// Complexity: O(r*c).
func Random(rows, cols int, opts ...RandomOption) (*Dense, error) {
	o := gatherRandomOptions(opts...)

	return fillRandom("Random", rows, cols, distuv.Uniform{Min: 0, Max: 1, Src: o.Src})
}

// Normal returns a rows×cols matrix with entries drawn from N(mu, sigma²).
//
// Errors:
//   - ErrNaNInf when mu or sigma is not finite.
//   - ErrBadShape when sigma < 0.
func Normal(rows, cols int, mu, sigma float64, opts ...RandomOption) (*Dense, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("Normal(mu=%g, sigma=%g): %w", mu, sigma, ErrNaNInf)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("Normal(sigma=%g): negative deviation: %w", sigma, ErrBadShape)
	}
	o := gatherRandomOptions(opts...)

	return fillRandom("Normal", rows, cols, distuv.Normal{Mu: mu, Sigma: sigma, Src: o.Src})
}

// KaimingNormal returns a rows×cols matrix drawn from N(0, 2/rows), the
// He initialization for a rows-input affine map.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 (the deviation is undefined).
func KaimingNormal(rows, cols int, opts ...RandomOption) (*Dense, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("KaimingNormal(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	m, err := Normal(rows, cols, 0, math.Sqrt(2/float64(rows)), opts...)
	if err != nil {
		return nil, matrixErrorf("KaimingNormal", err)
	}

	return m, nil
}

// RandomVector returns a Vector of length n with entries uniform in [0, 1).
func RandomVector(n int, opts ...RandomOption) (*Vector, error) {
	m, err := Random(1, n, opts...)
	if err != nil {
		return nil, matrixErrorf("RandomVector", err)
	}

	return &Vector{data: m.data}, nil
}
