// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/predcode/matrix"
	"github.com/stretchr/testify/require"
)

func zeros(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Zeros(r, c)
	require.NoError(t, err)

	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"empty 0x3", zeros(t, 0, 3), zeros(t, 0, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule and the message.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 1, 4), zeros(t, 4, 3)))
	err := matrix.ValidateMulCompatible(zeros(t, 1, 3), zeros(t, 4, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "1x3 · 4x3")
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, zeros(t, 1, 1)), matrix.ErrNilMatrix)
}

// TestValidateShapeAndLen covers the fixed-shape checks used by callers.
func TestValidateShapeAndLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateShape(zeros(t, 1, 3), 1, 3))
	err := matrix.ValidateShape(zeros(t, 1, 2), 1, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "got 1x2, want 1x3")
	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 3), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen(matrix.NewVector([]float64{1, 2}), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.NewVector([]float64{1}), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}
