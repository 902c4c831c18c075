// Package activation defines the pointwise nonlinearities carried by a
// transform edge.
//
// A Kind is evaluated forward on the matmul product z = x·W and differentiated
// at that same pre-activation z (never at the activated output).
//
// Kinds:
//
//	Linear - f(z) = z,          f'(z) = 1
//	ReLU   - f(z) = max(0, z),  f'(z) = 1 if z > 0 else 0 (f'(0) = 0 by convention)
package activation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/predcode/matrix"
)

// ErrUnknownActivation is returned for a Kind value or name outside the known set.
var ErrUnknownActivation = errors.New("activation: unknown kind")

// Kind selects an activation function.
type Kind int

const (
	// Linear is the identity map.
	Linear Kind = iota

	// ReLU is the rectified linear unit.
	ReLU
)

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("activation(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool { return k == Linear || k == ReLU }

// Parse maps a case-insensitive name to a Kind.
// Accepted names: "linear" (alias "identity") and "relu".
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "identity":
		return Linear, nil
	case "relu":
		return ReLU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}

// Eval applies k to a single value. NaN passes through unchanged.
// Unknown kinds behave as Linear; use Valid or the matrix methods to reject them.
func (k Kind) Eval(x float64) float64 {
	if k == ReLU && x < 0 {
		return 0
	}

	return x
}

// Deriv returns f'(x) for a single pre-activation value.
func (k Kind) Deriv(x float64) float64 {
	if k == ReLU {
		if x > 0 {
			return 1
		}
		return 0
	}

	return 1
}

// Forward returns f(z) element-wise as a fresh matrix.
func (k Kind) Forward(z *matrix.Dense) (*matrix.Dense, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("Forward: %w: %v", ErrUnknownActivation, k)
	}
	if k == Linear {
		if err := matrix.ValidateNotNil(z); err != nil {
			return nil, fmt.Errorf("Forward: %w", err)
		}
		return z.Clone(), nil
	}

	return matrix.Apply(z, k.Eval)
}

// Backward returns f'(z) element-wise for the pre-activation z.
func (k Kind) Backward(z *matrix.Dense) (*matrix.Dense, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("Backward: %w: %v", ErrUnknownActivation, k)
	}

	return matrix.Apply(z, k.Deriv)
}
