// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdges/Edge/SetEdgeValue/Edges/
//       EdgeCount/OutEdges/InEdges.
// Determinism:
//   - Edges() yields in index (insertion) order; OutEdges/InEdges likewise.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
//   - The edge validator runs under the write lock and must not call back
//     into the graph.

package graph

import (
	"fmt"
	"iter"
)

// AddEdge appends the edge source → target carrying value and returns its
// index.
//
// Errors:
//   - ErrNodeNotFound if either endpoint index is out of range.
//   - Whatever the installed EdgeValidator returns, wrapped.
//
// Complexity: O(1) amortized plus the validator.
func (g *Graph[N, E]) AddEdge(source, target int, value E) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.vetEdge(source, target, value); err != nil {
		return -1, fmt.Errorf("AddEdge(%d→%d): %w", source, target, err)
	}

	return g.appendEdge(source, target, value), nil
}

// AddEdges appends a batch of edges atomically: every edge is vetted first,
// and on any failure nothing is added. Returned indices follow the batch order.
func (g *Graph[N, E]) AddEdges(batch []Edge[E]) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for k, e := range batch {
		if err := g.vetEdge(e.Source, e.Target, e.Value); err != nil {
			return nil, fmt.Errorf("AddEdges[%d](%d→%d): %w", k, e.Source, e.Target, err)
		}
	}
	ids := make([]int, len(batch))
	for k, e := range batch {
		ids[k] = g.appendEdge(e.Source, e.Target, e.Value)
	}

	return ids, nil
}

// Edge returns the edge stored at index i.
func (g *Graph[N, E]) Edge(i int) (Edge[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkEdge(i); err != nil {
		return Edge[E]{}, fmt.Errorf("Edge: %w", err)
	}

	return g.edges[i], nil
}

// SetEdgeValue replaces the payload of edge i, keeping its endpoints. The
// new value passes through the edge validator.
func (g *Graph[N, E]) SetEdgeValue(i int, value E) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(i); err != nil {
		return fmt.Errorf("SetEdgeValue: %w", err)
	}
	e := g.edges[i]
	if err := g.vetEdge(e.Source, e.Target, value); err != nil {
		return fmt.Errorf("SetEdgeValue(%d): %w", i, err)
	}
	g.edges[i].Value = value

	return nil
}

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges yields (index, edge) pairs in insertion order.
func (g *Graph[N, E]) Edges() iter.Seq2[int, Edge[E]] {
	g.mu.RLock()
	snap := make([]Edge[E], len(g.edges))
	copy(snap, g.edges)
	g.mu.RUnlock()

	return func(yield func(int, Edge[E]) bool) {
		for i, e := range snap {
			if !yield(i, e) {
				return
			}
		}
	}
}

// OutEdges returns the indices of edges leaving node i, in insertion order.
func (g *Graph[N, E]) OutEdges(i int) ([]int, error) {
	return g.incident("OutEdges", i, func() [][]int { return g.out })
}

// InEdges returns the indices of edges entering node i, in insertion order.
func (g *Graph[N, E]) InEdges(i int) ([]int, error) {
	return g.incident("InEdges", i, func() [][]int { return g.in })
}

func (g *Graph[N, E]) incident(op string, i int, pick func() [][]int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(i); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	list := pick()[i]
	ids := make([]int, len(list))
	copy(ids, list)

	return ids, nil
}

// vetEdge checks endpoint indices and runs the validator. Caller holds g.mu.
func (g *Graph[N, E]) vetEdge(source, target int, value E) error {
	if err := g.checkNode(source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := g.checkNode(target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if g.validate != nil {
		if err := g.validate(g.nodes[source], g.nodes[target], value); err != nil {
			return err
		}
	}

	return nil
}

// appendEdge stores a vetted edge. Caller holds the write lock.
func (g *Graph[N, E]) appendEdge(source, target int, value E) int {
	id := len(g.edges)
	g.edges = append(g.edges, Edge[E]{Source: source, Target: target, Value: value})
	g.out[source] = append(g.out[source], id)
	g.in[target] = append(g.in[target], id)

	return id
}

// checkEdge assumes the caller holds g.mu.
func (g *Graph[N, E]) checkEdge(i int) error {
	if i < 0 || i >= len(g.edges) {
		return fmt.Errorf("index %d of %d: %w", i, len(g.edges), ErrEdgeNotFound)
	}

	return nil
}
