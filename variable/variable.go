// Package variable implements the node payload of a predictive-coding graph:
// a named 1×N latent value with a fixed flag and an accumulating update rule.
//
// A free variable moves along every derivative delivered to it by an infer
// sweep, each scaled by the step size η:
//
//	data += η·d₀; data += η·d₁; ...
//
// A fixed (observed) variable keeps its value bit for bit. Identity inside a
// graph is the index assigned on insertion; Name is metadata only.
package variable

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/predcode/matrix"
)

// DefaultStepSize is the variable step size η.
const DefaultStepSize = 0.01

// Sentinel errors for variable construction.
var (
	// ErrNotRowVector is returned when the initial value is not a single row.
	ErrNotRowVector = errors.New("variable: data must be a 1×N row")

	// ErrBadStepSize is returned for a non-positive or non-finite step size.
	ErrBadStepSize = errors.New("variable: step size must be finite and > 0")
)

// Option configures a Variable at construction.
type Option func(*Variable)

// WithStepSize overrides DefaultStepSize.
func WithStepSize(eta float64) Option {
	return func(v *Variable) {
		if !(eta > 0) || math.IsInf(eta, 0) {
			v.err = fmt.Errorf("%w: %g", ErrBadStepSize, eta)
			return
		}
		v.step = eta
	}
}

// Variable is a latent row vector.
type Variable struct {
	name  string
	data  *matrix.Dense // 1×size
	fixed bool
	step  float64

	err error
}

// New creates a variable holding a copy of data.
//
// Errors:
//   - matrix.ErrNilMatrix if data is nil.
//   - ErrNotRowVector if data.Rows() != 1.
//   - ErrBadStepSize from WithStepSize.
func New(name string, data *matrix.Dense, fixed bool, opts ...Option) (*Variable, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	if data.Rows() != 1 {
		return nil, fmt.Errorf("variable %q: got %dx%d: %w", name, data.Rows(), data.Cols(), ErrNotRowVector)
	}
	v := &Variable{name: name, data: data.Clone(), fixed: fixed, step: DefaultStepSize}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	if v.err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, v.err)
	}

	return v, nil
}

// FromSlice is shorthand for New with a single row built from values.
func FromSlice(name string, values []float64, fixed bool, opts ...Option) (*Variable, error) {
	data, err := matrix.New([][]float64{values})
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}

	return New(name, data, fixed, opts...)
}

func (v *Variable) Name() string { return v.name }

// Size is the column count of the value.
func (v *Variable) Size() int { return v.data.Cols() }

// Value returns a copy of the current 1×Size value.
func (v *Variable) Value() *matrix.Dense { return v.data.Clone() }

func (v *Variable) Fixed() bool { return v.fixed }

// SetFixed marks the variable as observed (true) or free (false).
func (v *Variable) SetFixed(fixed bool) { v.fixed = fixed }

func (v *Variable) StepSize() float64 { return v.step }

// Set replaces the value with a copy of data. It ignores the fixed flag:
// callers use it to clamp observations or reset free variables between epochs.
func (v *Variable) Set(data *matrix.Dense) error {
	if err := matrix.ValidateShape(data, 1, v.Size()); err != nil {
		return fmt.Errorf("variable %q: Set: %w", v.name, err)
	}
	v.data = data.Clone()

	return nil
}

// Update adds η·d to the value for each d in ds, in order. Every d must be
// 1×Size; the whole list is checked before the first write, so a bad list
// leaves the value untouched. A fixed variable validates ds and then
// ignores it.
func (v *Variable) Update(ds []*matrix.Dense) error {
	for i, d := range ds {
		if err := matrix.ValidateShape(d, 1, v.Size()); err != nil {
			return fmt.Errorf("variable %q: Update: derivative %d: %w", v.name, i, err)
		}
	}
	if v.fixed {
		return nil
	}
	for _, d := range ds {
		if err := v.data.AddScaledInPlace(v.step, d); err != nil {
			return fmt.Errorf("variable %q: Update: %w", v.name, err)
		}
	}

	return nil
}

// String renders "name[fixed]: [a, b, c]".
func (v *Variable) String() string {
	state := "free"
	if v.fixed {
		state = "fixed"
	}

	return fmt.Sprintf("%s[%s]: %s", v.name, state, strings.TrimSuffix(v.data.String(), "\n"))
}
