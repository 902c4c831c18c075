package infer

import (
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/matrix"
)

// Forward predicts every edge's target from the current node values.
// The map is keyed by (source, target); for parallel edges the one inserted
// last wins. Use Errors for an edge-indexed view.
func Forward[N Node, E Function](g *graph.Graph[N, E]) (map[EdgeKey]*matrix.Dense, error) {
	rs, err := residuals("Forward", g, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[EdgeKey]*matrix.Dense, len(rs))
	for _, r := range rs {
		out[EdgeKey{Source: r.Source, Target: r.Target}] = r.Prediction
	}

	return out, nil
}

// Errors returns the prediction and error of every edge, in edge index order.
func Errors[N Node, E Function](g *graph.Graph[N, E]) ([]Residual, error) {
	return residuals("Errors", g, nil)
}

// ErrorsFromSource returns the residuals of the edges leaving node i.
func ErrorsFromSource[N Node, E Function](g *graph.Graph[N, E], i int) ([]Residual, error) {
	if g == nil {
		return nil, fmt.Errorf("ErrorsFromSource: %w", ErrNilGraph)
	}
	ids, err := g.OutEdges(i)
	if err != nil {
		return nil, fmt.Errorf("ErrorsFromSource: %w", err)
	}

	return residuals("ErrorsFromSource", g, ids)
}

// ErrorsIntoTarget returns the residuals of the edges entering node i.
func ErrorsIntoTarget[N Node, E Function](g *graph.Graph[N, E], i int) ([]Residual, error) {
	if g == nil {
		return nil, fmt.Errorf("ErrorsIntoTarget: %w", ErrNilGraph)
	}
	ids, err := g.InEdges(i)
	if err != nil {
		return nil, fmt.Errorf("ErrorsIntoTarget: %w", err)
	}

	return residuals("ErrorsIntoTarget", g, ids)
}

// Energy returns ½·Σ‖e‖² over all edges, the quantity both sweeps descend.
func Energy[N Node, E Function](g *graph.Graph[N, E]) (float64, error) {
	rs, err := residuals("Energy", g, nil)
	if err != nil {
		return 0, err
	}

	return energyOf(rs), nil
}

func energyOf(rs []Residual) float64 {
	var sum float64
	for _, r := range rs {
		n := matrix.FrobeniusNorm(r.Error)
		sum += n * n
	}

	return sum / 2
}

// residuals evaluates the edges listed in ids, or every edge when ids is nil.
func residuals[N Node, E Function](op string, g *graph.Graph[N, E], ids []int) ([]Residual, error) {
	s, err := observe(op, g)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = make([]int, len(s.edges))
		for i := range ids {
			ids[i] = i
		}
	}

	out := make([]Residual, 0, len(ids))
	for _, i := range ids {
		if i < 0 || i >= len(s.edges) {
			return nil, fmt.Errorf("%s: index %d: %w", op, i, graph.ErrEdgeNotFound)
		}
		e := s.edges[i]
		yHat, err := e.Value.Forward(s.values[e.Source])
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", op, i, e.Source, e.Target, err)
		}
		diff, err := matrix.Sub(s.values[e.Target], yHat)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", op, i, e.Source, e.Target, err)
		}
		out = append(out, Residual{Edge: i, Source: e.Source, Target: e.Target, Prediction: yHat, Error: diff})
	}

	return out, nil
}
