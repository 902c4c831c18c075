// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix test suite.
//
// Purpose:
//   - Keep individual tests short: construction and comparison fail the test
//     immediately with a descriptive message instead of returning errors.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/predcode/matrix"
	"github.com/stretchr/testify/require"
)

// testSeed keeps every randomized test reproducible.
const testSeed uint64 = 20240611

// MustNew builds a Dense from literal rows or fails the test.
func MustNew(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err, "matrix.New(%v)", rows)

	return m
}

// MustRandom builds a seeded r×c uniform matrix or fails the test.
func MustRandom(t testing.TB, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(r, c, matrix.WithSeed(seed))
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m holds exactly want (shape and bits).
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.RawRows())
}

// CompareClose asserts a and b match within an absolute tolerance.
func CompareClose(t testing.TB, a, b *matrix.Dense, tol float64) {
	t.Helper()
	require.Truef(t, matrix.EqualApprox(a, b, tol), "matrices differ beyond %g:\n%v\nvs\n%v", tol, a, b)
}
