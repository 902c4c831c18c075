package activation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = []float64{-3.5, -1, -1e-12, 0, 1e-12, 0.5, 2, 1e6}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range samples {
		assert.Equal(t, x, activation.Linear.Eval(x))
		assert.Equal(t, 1.0, activation.Linear.Deriv(x))
	}
}

func TestReLUScalar(t *testing.T) {
	for _, x := range samples {
		y := activation.ReLU.Eval(x)
		assert.GreaterOrEqual(t, y, 0.0, "ReLU(%g) >= 0", x)
		assert.Equal(t, x >= 0, y == x, "ReLU(%g) == x iff x >= 0", x)

		d := activation.ReLU.Deriv(x)
		assert.Contains(t, []float64{0, 1}, d)
	}
	assert.Equal(t, 0.0, activation.ReLU.Deriv(0), "derivative at the kink is 0")
	assert.True(t, math.IsNaN(activation.ReLU.Eval(math.NaN())))
}

func TestMatrixForwardBackward(t *testing.T) {
	z, err := matrix.New([][]float64{{-1, 2}, {3, -4}})
	require.NoError(t, err)

	for _, tc := range []struct {
		kind     activation.Kind
		forward  [][]float64
		backward [][]float64
	}{
		{activation.Linear, [][]float64{{-1, 2}, {3, -4}}, [][]float64{{1, 1}, {1, 1}}},
		{activation.ReLU, [][]float64{{0, 2}, {3, 0}}, [][]float64{{0, 1}, {1, 0}}},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			f, err := tc.kind.Forward(z)
			require.NoError(t, err)
			require.Equal(t, tc.forward, f.RawRows())

			b, err := tc.kind.Backward(z)
			require.NoError(t, err)
			require.Equal(t, tc.backward, b.RawRows())
		})
	}

	// Forward never aliases its input.
	f, _ := activation.Linear.Forward(z)
	require.NoError(t, f.Set(0, 0, 100))
	v, _ := z.At(0, 0)
	require.Equal(t, -1.0, v)
}

func TestUnknownKind(t *testing.T) {
	bad := activation.Kind(42)
	require.False(t, bad.Valid())
	z, _ := matrix.Zeros(1, 1)

	_, err := bad.Forward(z)
	require.ErrorIs(t, err, activation.ErrUnknownActivation)
	_, err = bad.Backward(z)
	require.ErrorIs(t, err, activation.ErrUnknownActivation)
	require.Equal(t, "activation(42)", bad.String())
}

func TestParse(t *testing.T) {
	for name, want := range map[string]activation.Kind{
		"linear":   activation.Linear,
		"Identity": activation.Linear,
		" ReLU ":   activation.ReLU,
	} {
		got, err := activation.Parse(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got)
	}
	_, err := activation.Parse("tanh")
	require.ErrorIs(t, err, activation.ErrUnknownActivation)
}

func TestNilMatrix(t *testing.T) {
	_, err := activation.Linear.Forward(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = activation.ReLU.Backward(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
