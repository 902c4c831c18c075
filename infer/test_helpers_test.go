package infer_test

import (
	"testing"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/infer"
	"github.com/katalvlaran/predcode/matrix"
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
	"github.com/stretchr/testify/require"
)

type pcGraph = graph.Graph[*variable.Variable, *transform.Transform]

// Fixed-point tolerances from the end-to-end scenarios.
const (
	tolSinglePull    = 1e-2
	tolBalance       = 0.1
	tolDualPrior     = 0.2
	tolLearnIdentity = 1e-2

	// sweeps enough for every scenario to reach its tolerance with η = 0.01
	convergedSweeps = 1000
)

func newGraph() *pcGraph {
	return infer.NewGraph[*variable.Variable, *transform.Transform]()
}

func mustVar(t *testing.T, name string, fixed bool, vals ...float64) *variable.Variable {
	t.Helper()
	v, err := variable.FromSlice(name, vals, fixed)
	require.NoError(t, err)

	return v
}

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// truncation keeps the first three of four inputs.
func truncation(t *testing.T) *transform.Transform {
	t.Helper()
	w := mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}})
	f, err := transform.New(w, activation.Linear, false)
	require.NoError(t, err)

	return f
}

func identity(t *testing.T, n int) *transform.Transform {
	t.Helper()
	w, err := matrix.Identity(n)
	require.NoError(t, err)
	f, err := transform.New(w, activation.Linear, false)
	require.NoError(t, err)

	return f
}

func mustEdge(t *testing.T, g *pcGraph, src, tgt int, f *transform.Transform) int {
	t.Helper()
	id, err := g.AddEdge(src, tgt, f)
	require.NoError(t, err)

	return id
}

func sweep(t *testing.T, g *pcGraph, k int) {
	t.Helper()
	for i := 0; i < k; i++ {
		require.NoError(t, infer.Infer(g))
	}
}

func value(t *testing.T, g *pcGraph, i int) []float64 {
	t.Helper()
	n, err := g.Node(i)
	require.NoError(t, err)
	r, err := n.Value().Row(0)
	require.NoError(t, err)

	return r
}

func requireAll(t *testing.T, want float64, got []float64, tol float64) {
	t.Helper()
	for j, v := range got {
		require.InDelta(t, want, v, tol, "component %d of %v", j, got)
	}
}
