package variable_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/predcode/matrix"
	"github.com/katalvlaran/predcode/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(t *testing.T, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New([][]float64{vals})
	require.NoError(t, err)

	return m
}

func TestNew(t *testing.T) {
	v, err := variable.New("mu", row(t, 1, 2, 3), false)
	require.NoError(t, err)
	assert.Equal(t, "mu", v.Name())
	assert.Equal(t, 3, v.Size())
	assert.False(t, v.Fixed())
	assert.Equal(t, variable.DefaultStepSize, v.StepSize())
	assert.Equal(t, "mu[free]: [1, 2, 3]", v.String())

	two, _ := matrix.Zeros(2, 3)
	_, err = variable.New("bad", two, false)
	require.ErrorIs(t, err, variable.ErrNotRowVector)
	_, err = variable.New("nil", nil, false)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	for _, eta := range []float64{0, -1} {
		_, err = variable.New("mu", row(t, 1), false, variable.WithStepSize(eta))
		require.ErrorIs(t, err, variable.ErrBadStepSize)
	}
	v, err = variable.FromSlice("x", []float64{4, 5}, true, variable.WithStepSize(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, v.StepSize())
	assert.Equal(t, "x[fixed]: [4, 5]", v.String())
}

func TestValueIsCopy(t *testing.T) {
	data := row(t, 1, 2)
	v, err := variable.New("mu", data, false)
	require.NoError(t, err)
	require.NoError(t, data.Set(0, 0, 9))

	got := v.Value()
	require.NoError(t, got.Set(0, 1, 9))
	require.Equal(t, [][]float64{{1, 2}}, v.Value().RawRows())
}

func TestUpdateAccumulates(t *testing.T) {
	v, err := variable.New("mu", row(t, 1, 1, 1), false)
	require.NoError(t, err)

	require.NoError(t, v.Update([]*matrix.Dense{row(t, 100, 0, -100), row(t, 100, 200, 0)}))
	require.True(t, matrix.EqualApprox(row(t, 3, 3, 0), v.Value(), 1e-12))

	require.NoError(t, v.Update(nil), "an empty bucket is a no-op")
	require.True(t, matrix.EqualApprox(row(t, 3, 3, 0), v.Value(), 1e-12))
}

func TestUpdateRejectsWrongShape(t *testing.T) {
	v, err := variable.New("mu", row(t, 1, 1, 1), false)
	require.NoError(t, err)

	// the valid first derivative must not be applied either
	err = v.Update([]*matrix.Dense{row(t, 1, 1, 1), row(t, 1, 1)})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "derivative 1")
	require.Equal(t, [][]float64{{1, 1, 1}}, v.Value().RawRows())

	require.ErrorIs(t, v.Update([]*matrix.Dense{nil}), matrix.ErrNilMatrix)
}

func TestFixedIgnoresUpdates(t *testing.T) {
	v, err := variable.New("prior", row(t, 5, 5, 5, 5), true)
	require.NoError(t, err)
	before := v.Value().RawRows()
	for i := 0; i < 100; i++ {
		require.NoError(t, v.Update([]*matrix.Dense{row(t, 1, 2, 3, 4)}))
	}
	require.Equal(t, before, v.Value().RawRows())

	// shape is still checked while fixed
	require.ErrorIs(t, v.Update([]*matrix.Dense{row(t, 1)}), matrix.ErrDimensionMismatch)

	v.SetFixed(false)
	require.NoError(t, v.Update([]*matrix.Dense{row(t, 100, 100, 100, 100)}))
	require.Equal(t, [][]float64{{6, 6, 6, 6}}, v.Value().RawRows())
}

func TestSet(t *testing.T) {
	v, err := variable.New("mu", row(t, 1, 1), true)
	require.NoError(t, err)
	require.NoError(t, v.Set(row(t, 7, 8)), "Set works on fixed variables")
	require.Equal(t, [][]float64{{7, 8}}, v.Value().RawRows())
	require.ErrorIs(t, v.Set(row(t, 1, 2, 3)), matrix.ErrDimensionMismatch)
}

func ExampleVariable_Update() {
	mu, _ := variable.FromSlice("mu", []float64{1, 1, 1}, false)
	d, _ := matrix.New([][]float64{{400, 400, 400}})
	_ = mu.Update([]*matrix.Dense{d})
	fmt.Println(mu)
	// Output:
	// mu[free]: [5, 5, 5]
}
