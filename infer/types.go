// Package infer drives inference and learning over a predictive-coding graph.
//
// A graph holds nodes (latent row vectors) and directed edges (parametric
// functions predicting the target from the source). Two elementary sweeps
// operate on it:
//
//   - Infer: one synchronous (Jacobi) pass. Every edge computes its source
//     and target derivatives from the values at the start of the sweep; the
//     derivatives are bucketed per node (target push before source pull,
//     edges in insertion order) and applied only after every edge has been
//     evaluated, nodes in index order.
//   - Learn: one pass over the edges in insertion order; each edge computes
//     its parameter derivative from the current node values and applies it
//     immediately. Nodes are not touched.
//
// Run and RunEM compose the sweeps into inference-only and
// expectation-maximization style loops with hooks for observation.
//
// Both sweeps check every edge against its endpoints before the first write,
// so a shape violation aborts the sweep with the graph unchanged.
//
// Errors:
//
//	ErrNilGraph        - a nil graph was passed.
//	ErrOptionViolation - an invalid Option was supplied to Run or RunEM.
//
// Shape violations wrap matrix.ErrDimensionMismatch.
package infer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/matrix"
	"github.com/katalvlaran/predcode/transform"
)

// Sentinel errors for the driver.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("infer: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("infer: invalid option supplied")
)

// Node is the capability set the driver needs from a node payload.
type Node interface {
	// Size is the column count of the node's 1×Size value.
	Size() int

	// Value returns the current value; the driver never mutates it.
	Value() *matrix.Dense

	// Update applies the derivatives accumulated for this node in one sweep.
	Update(ds []*matrix.Dense) error
}

// Function is the capability set the driver needs from an edge payload.
type Function interface {
	InputSize() int
	OutputSize() int

	// Forward predicts the target from the source.
	Forward(x *matrix.Dense) (*matrix.Dense, error)

	// Backward returns the derivatives delivered to the source and target.
	Backward(x, t *matrix.Dense) (dSource, dTarget *matrix.Dense, err error)

	// BackwardParams returns the parameter derivative for the pair (x, t).
	BackwardParams(x, t *matrix.Dense) (transform.Delta, error)

	// ApplyParams moves the parameters along d unless the function is fixed.
	ApplyParams(d transform.Delta) error
}

// NewGraph returns an empty graph that rejects edges whose function does not
// fit its endpoints: source.Size() must equal InputSize() and target.Size()
// must equal OutputSize().
func NewGraph[N Node, E Function]() *graph.Graph[N, E] {
	return graph.New(graph.WithEdgeValidator(checkShape[N, E]))
}

// checkShape is the edge validator installed by NewGraph.
func checkShape[N Node, E Function](source, target N, f E) error {
	if source.Size() != f.InputSize() {
		return fmt.Errorf("source size %d, function input %d: %w",
			source.Size(), f.InputSize(), matrix.ErrDimensionMismatch)
	}
	if target.Size() != f.OutputSize() {
		return fmt.Errorf("target size %d, function output %d: %w",
			target.Size(), f.OutputSize(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// state is a consistent view of a graph taken at the start of a sweep.
// values[i] is node i's value at that moment.
type state[N Node, E Function] struct {
	nodes  []N
	values []*matrix.Dense
	edges  []graph.Edge[E]
}

// observe snapshots g and checks every edge against its endpoints.
func observe[N Node, E Function](op string, g *graph.Graph[N, E]) (*state[N, E], error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilGraph)
	}
	s := &state[N, E]{}
	for _, n := range g.Nodes() {
		s.nodes = append(s.nodes, n)
		s.values = append(s.values, n.Value())
	}
	for i, e := range g.Edges() {
		// nodes appended after the node snapshot
		if e.Source >= len(s.nodes) || e.Target >= len(s.nodes) {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", op, i, e.Source, e.Target, graph.ErrNodeNotFound)
		}
		if err := checkShape(s.nodes[e.Source], s.nodes[e.Target], e.Value); err != nil {
			return nil, fmt.Errorf("%s: edge %d (%d→%d): %w", op, i, e.Source, e.Target, err)
		}
		s.edges = append(s.edges, e)
	}

	return s, nil
}

// EdgeKey identifies an edge by its endpoints. Parallel edges share a key.
type EdgeKey struct {
	Source int
	Target int
}

// Residual is the prediction and error of one edge.
type Residual struct {
	// Edge is the edge index.
	Edge int

	Source int
	Target int

	// Prediction is ŷ = f(x_source).
	Prediction *matrix.Dense

	// Error is e = x_target − ŷ.
	Error *matrix.Dense
}
