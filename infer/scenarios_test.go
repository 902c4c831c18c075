package infer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/infer"
	"github.com/katalvlaran/predcode/matrix"
	"github.com/katalvlaran/predcode/transform"
	"github.com/stretchr/testify/require"
)

// Closed forms of the free node after k sweeps with η = 0.01. Each scenario
// is a linear recurrence mu' = r·mu + c converging geometrically to c/(1−r).
func singlePullAt(k int) float64 { return 5 - 4*math.Pow(0.99, float64(k)) }
func balanceAt(k int) float64    { return 7.5 - 6.5*math.Pow(0.98, float64(k)) }
func dualPriorAt(k int) float64  { return 50.0/3 - 47.0/3*math.Pow(0.97, float64(k)) }

// singlePull: prior [5,5,5,5] (fixed) → mu [1,1,1] (free) through a truncation.
func singlePull(t *testing.T, priorFixed bool) (*pcGraph, int, int) {
	g := newGraph()
	prior := g.AddNode(mustVar(t, "prior", priorFixed, 5, 5, 5, 5))
	mu := g.AddNode(mustVar(t, "mu", false, 1, 1, 1))
	mustEdge(t, g, prior, mu, truncation(t))

	return g, prior, mu
}

// balance: prior → mu → data, pulled equally from both sides.
func balance(t *testing.T) (*pcGraph, int) {
	g := newGraph()
	prior := g.AddNode(mustVar(t, "prior", true, 5, 5, 5, 5))
	mu := g.AddNode(mustVar(t, "mu", false, 1, 1, 1))
	data := g.AddNode(mustVar(t, "data", true, 10, 10, 10))
	mustEdge(t, g, prior, mu, truncation(t))
	mustEdge(t, g, mu, data, identity(t, 3))

	return g, mu
}

func TestSinglePull(t *testing.T) {
	g, _, mu := singlePull(t, true)

	sweep(t, g, 100)
	requireAll(t, singlePullAt(100), value(t, g, mu), 1e-9)

	sweep(t, g, convergedSweeps-100)
	requireAll(t, 5, value(t, g, mu), tolSinglePull)
}

func TestTwoEndpointBalance(t *testing.T) {
	g, mu := balance(t)

	sweep(t, g, 100)
	requireAll(t, balanceAt(100), value(t, g, mu), 1e-9)

	sweep(t, g, convergedSweeps-100)
	requireAll(t, 7.5, value(t, g, mu), tolBalance)
}

func TestDualPrior(t *testing.T) {
	g := newGraph()
	p4 := g.AddNode(mustVar(t, "prior4", true, 20, 20, 20, 20))
	p3 := g.AddNode(mustVar(t, "prior3", true, 20, 20, 20))
	mu := g.AddNode(mustVar(t, "mu", false, 1, 1, 1))
	data := g.AddNode(mustVar(t, "data", true, 10, 10, 10))
	mustEdge(t, g, p4, mu, truncation(t))
	mustEdge(t, g, p3, mu, identity(t, 3))
	mustEdge(t, g, mu, data, identity(t, 3))

	sweep(t, g, 100)
	requireAll(t, dualPriorAt(100), value(t, g, mu), 1e-9)

	sweep(t, g, convergedSweeps-100)
	requireAll(t, 50.0/3, value(t, g, mu), tolDualPrior)
}

func TestLearnIdentity(t *testing.T) {
	w, err := matrix.Random(3, 3, matrix.WithSeed(20240611))
	require.NoError(t, err)
	f, err := transform.New(w, activation.Linear, false)
	require.NoError(t, err)

	g := newGraph()
	x := g.AddNode(mustVar(t, "x", true, 1, 2, 3))
	tg := g.AddNode(mustVar(t, "t", true, 2, 4, 6))
	mustEdge(t, g, x, tg, f)

	for i := 0; i < 2000; i++ {
		require.NoError(t, infer.Learn(g))
	}
	pred, err := infer.Forward(g)
	require.NoError(t, err)
	got, err := pred[infer.EdgeKey{Source: x, Target: tg}].Row(0)
	require.NoError(t, err)
	for j, want := range []float64{2, 4, 6} {
		require.InDelta(t, want, got[j], tolLearnIdentity)
	}
	require.Equal(t, []float64{1, 2, 3}, value(t, g, x), "learn never moves nodes")
	require.Equal(t, []float64{2, 4, 6}, value(t, g, tg))
}

func TestLearnIdentityWithBias(t *testing.T) {
	w, err := matrix.Normal(3, 3, 0, 1, matrix.WithSeed(5))
	require.NoError(t, err)
	f, err := transform.NewWithBias(w, matrix.NewVector([]float64{1, -1, 0.5}), activation.Linear, false)
	require.NoError(t, err)

	g := newGraph()
	x := g.AddNode(mustVar(t, "x", true, 1, 2, 3))
	tg := g.AddNode(mustVar(t, "t", true, 2, 4, 6))
	mustEdge(t, g, x, tg, f)

	for i := 0; i < 2000; i++ {
		require.NoError(t, infer.Learn(g))
	}
	e, err := infer.Energy(g)
	require.NoError(t, err)
	require.Less(t, e, 1e-8)
}

func TestFixedSourceImmobility(t *testing.T) {
	g, prior, _ := singlePull(t, true)
	before := value(t, g, prior)
	for i := 0; i < 100; i++ {
		require.NoError(t, infer.Infer(g))
		require.Equal(t, before, value(t, g, prior), "sweep %d", i)
	}
}

func TestShapeChecks(t *testing.T) {
	g := newGraph()
	three := g.AddNode(mustVar(t, "three", false, 1, 1, 1))
	four := g.AddNode(mustVar(t, "four", false, 1, 1, 1, 1))

	// source.size != W.rows
	_, err := g.AddEdge(three, three, truncation(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	// target.size != W.cols
	_, err = g.AddEdge(four, four, truncation(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Zero(t, g.EdgeCount())

	n, err := g.Node(three)
	require.NoError(t, err)
	err = n.Update([]*matrix.Dense{mustDense(t, [][]float64{{1, 1}})})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 1, 1}, value(t, g, three))
}
