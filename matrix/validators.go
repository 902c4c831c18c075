// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Name the offending shapes in every mismatch so a failed sweep is diagnosable
//    from the error text alone.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on the error path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks a, b are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape checks that m is non-nil and exactly rows×cols.
// Used by callers that own a fixed shape (variables, transform parameters).
func ValidateShape(m *Dense, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != rows || m.c != cols {
		return fmt.Errorf("ValidateShape: got %dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has length n.
// Complexity: O(1).
func ValidateVecLen(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(v.data) != n {
		return fmt.Errorf("ValidateVecLen: got %d, want %d: %w", len(v.data), n, ErrDimensionMismatch)
	}

	return nil
}
