// Package transform implements the edge function of a predictive-coding graph:
// an affine map x·W (+b) composed with a pointwise activation.
//
// For a source value x (1×in), parameters W (in×out), optional bias b (out)
// and a target value t (1×out):
//
//	z  = x·W
//	ŷ  = act(z) + b
//	e  = t − ŷ
//	δ  = e ⊙ act'(z)
//
// Backward yields dSource = δ·Wᵀ and dTarget = −e; BackwardParams yields
// dW = xᵀ·δ and db = Σ_rows e. ApplyParams moves W and b along those
// derivatives scaled by the learning rate.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/matrix"
)

// DefaultLearningRate is the parameter step size η_p.
const DefaultLearningRate = 0.01

// Sentinel errors for transform construction.
var (
	// ErrBadLearningRate is returned for a non-positive or non-finite learning rate.
	ErrBadLearningRate = errors.New("transform: learning rate must be finite and > 0")

	// ErrEmptyParams is returned when the parameter matrix has a zero dimension.
	ErrEmptyParams = errors.New("transform: parameter matrix is empty")
)

// Option configures a Transform at construction.
type Option func(*Transform)

// WithLearningRate overrides DefaultLearningRate.
func WithLearningRate(eta float64) Option {
	return func(f *Transform) {
		if !(eta > 0) || math.IsInf(eta, 0) {
			f.err = fmt.Errorf("%w: %g", ErrBadLearningRate, eta)
			return
		}
		f.rate = eta
	}
}

// Transform is an affine-plus-activation edge function.
type Transform struct {
	params *matrix.Dense  // in×out
	bias   *matrix.Vector // nil when the edge carries no bias
	act    activation.Kind
	fixed  bool
	rate   float64

	err error // first option error
}

// Delta is the parameter derivative produced by BackwardParams.
// Bias is always populated, even for a transform without bias, so callers can
// inspect it; ApplyParams ignores it when the transform has no bias.
type Delta struct {
	Weights *matrix.Dense  // in×out
	Bias    *matrix.Vector // out
}

// New builds a transform without bias. params is copied.
func New(params *matrix.Dense, act activation.Kind, fixed bool, opts ...Option) (*Transform, error) {
	return build(params, nil, act, fixed, opts)
}

// NewWithBias builds a transform with a bias row. params and bias are copied.
//
// Errors:
//   - matrix.ErrDimensionMismatch when bias.Len() != params.Cols().
func NewWithBias(params *matrix.Dense, bias *matrix.Vector, act activation.Kind, fixed bool, opts ...Option) (*Transform, error) {
	if bias == nil {
		return nil, fmt.Errorf("NewWithBias: bias: %w", matrix.ErrNilMatrix)
	}

	return build(params, bias, act, fixed, opts)
}

func build(params *matrix.Dense, bias *matrix.Vector, act activation.Kind, fixed bool, opts []Option) (*Transform, error) {
	if err := matrix.ValidateNotNil(params); err != nil {
		return nil, fmt.Errorf("transform: params: %w", err)
	}
	if params.Rows() == 0 || params.Cols() == 0 {
		return nil, fmt.Errorf("transform: params %dx%d: %w", params.Rows(), params.Cols(), ErrEmptyParams)
	}
	if !act.Valid() {
		return nil, fmt.Errorf("transform: %w: %v", activation.ErrUnknownActivation, act)
	}
	f := &Transform{params: params.Clone(), act: act, fixed: fixed, rate: DefaultLearningRate}
	if bias != nil {
		if err := matrix.ValidateVecLen(bias, params.Cols()); err != nil {
			return nil, fmt.Errorf("transform: bias for %dx%d params: %w", params.Rows(), params.Cols(), err)
		}
		f.bias = bias.Clone()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	return f, nil
}

// InputSize is the source width (params rows).
func (f *Transform) InputSize() int { return f.params.Rows() }

// OutputSize is the target width (params cols).
func (f *Transform) OutputSize() int { return f.params.Cols() }

// Params returns a copy of W.
func (f *Transform) Params() *matrix.Dense { return f.params.Clone() }

// Bias returns a copy of b and whether the transform has one.
func (f *Transform) Bias() (*matrix.Vector, bool) {
	if f.bias == nil {
		return nil, false
	}

	return f.bias.Clone(), true
}

// Activation returns the activation kind.
func (f *Transform) Activation() activation.Kind { return f.act }

// Fixed reports whether ApplyParams is suppressed.
func (f *Transform) Fixed() bool { return f.fixed }

// SetFixed toggles parameter updates.
func (f *Transform) SetFixed(fixed bool) { f.fixed = fixed }

// LearningRate returns η_p.
func (f *Transform) LearningRate() float64 { return f.rate }

// local holds the intermediate values shared by Backward and BackwardParams.
type local struct {
	e     *matrix.Dense // t − ŷ
	delta *matrix.Dense // e ⊙ act'(z)
}

// predict computes z and ŷ after checking x is 1×in.
func (f *Transform) predict(op string, x *matrix.Dense) (z, yHat *matrix.Dense, err error) {
	if err = matrix.ValidateShape(x, 1, f.InputSize()); err != nil {
		return nil, nil, fmt.Errorf("%s: source: %w", op, err)
	}
	if z, err = matrix.Mul(x, f.params); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if yHat, err = f.act.Forward(z); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	if f.bias != nil {
		if yHat, err = matrix.AddVector(yHat, f.bias); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return z, yHat, nil
}

// linearize computes e and δ for the pair (x, t).
func (f *Transform) linearize(op string, x, t *matrix.Dense) (local, error) {
	z, yHat, err := f.predict(op, x)
	if err != nil {
		return local{}, err
	}
	if err = matrix.ValidateShape(t, 1, f.OutputSize()); err != nil {
		return local{}, fmt.Errorf("%s: target: %w", op, err)
	}
	e, err := matrix.Sub(t, yHat)
	if err != nil {
		return local{}, fmt.Errorf("%s: %w", op, err)
	}
	grad, err := f.act.Backward(z)
	if err != nil {
		return local{}, fmt.Errorf("%s: %w", op, err)
	}
	delta, err := matrix.Hadamard(e, grad)
	if err != nil {
		return local{}, fmt.Errorf("%s: %w", op, err)
	}

	return local{e: e, delta: delta}, nil
}

// Forward returns the prediction ŷ = act(x·W) + b, shape 1×out.
func (f *Transform) Forward(x *matrix.Dense) (*matrix.Dense, error) {
	_, yHat, err := f.predict("Forward", x)

	return yHat, err
}

// Error returns e = t − ŷ.
func (f *Transform) Error(x, t *matrix.Dense) (*matrix.Dense, error) {
	l, err := f.linearize("Error", x, t)
	if err != nil {
		return nil, err
	}

	return l.e, nil
}

// Backward returns the source derivative δ·Wᵀ (1×in) and the target
// derivative −e (1×out).
func (f *Transform) Backward(x, t *matrix.Dense) (dSource, dTarget *matrix.Dense, err error) {
	l, err := f.linearize("Backward", x, t)
	if err != nil {
		return nil, nil, err
	}
	wT, err := matrix.Transpose(f.params)
	if err != nil {
		return nil, nil, fmt.Errorf("Backward: %w", err)
	}
	if dSource, err = matrix.Mul(l.delta, wT); err != nil {
		return nil, nil, fmt.Errorf("Backward: %w", err)
	}
	if dTarget, err = matrix.Neg(l.e); err != nil {
		return nil, nil, fmt.Errorf("Backward: %w", err)
	}

	return dSource, dTarget, nil
}

// BackwardParams returns dW = xᵀ·δ (in×out) and db = Σ_rows e (out).
func (f *Transform) BackwardParams(x, t *matrix.Dense) (Delta, error) {
	l, err := f.linearize("BackwardParams", x, t)
	if err != nil {
		return Delta{}, err
	}
	xT, err := matrix.Transpose(x)
	if err != nil {
		return Delta{}, fmt.Errorf("BackwardParams: %w", err)
	}
	dW, err := matrix.Mul(xT, l.delta)
	if err != nil {
		return Delta{}, fmt.Errorf("BackwardParams: %w", err)
	}
	db, err := matrix.SumAxis(l.e, matrix.AxisRows)
	if err != nil {
		return Delta{}, fmt.Errorf("BackwardParams: %w", err)
	}

	return Delta{Weights: dW, Bias: db}, nil
}

// ApplyParams performs W += η_p·dW and, when the transform has a bias,
// b += η_p·db. A fixed transform is left untouched. Shapes are checked
// before either write, so a failed call changes nothing.
func (f *Transform) ApplyParams(d Delta) error {
	if err := matrix.ValidateShape(d.Weights, f.InputSize(), f.OutputSize()); err != nil {
		return fmt.Errorf("ApplyParams: weights: %w", err)
	}
	if f.bias != nil {
		if err := matrix.ValidateVecLen(d.Bias, f.OutputSize()); err != nil {
			return fmt.Errorf("ApplyParams: bias: %w", err)
		}
	}
	if f.fixed {
		return nil
	}
	if err := f.params.AddScaledInPlace(f.rate, d.Weights); err != nil {
		return fmt.Errorf("ApplyParams: %w", err)
	}
	if f.bias != nil {
		if err := f.bias.AddScaledInPlace(f.rate, d.Bias); err != nil {
			return fmt.Errorf("ApplyParams: %w", err)
		}
	}

	return nil
}
