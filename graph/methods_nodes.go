// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/Node/SetNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() yields in index (insertion) order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
//   - Iterators snapshot under the read lock and yield without holding it,
//     so the loop body may call back into the graph.

package graph

import (
	"fmt"
	"iter"
)

// AddNode appends n and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(n N) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return len(g.nodes) - 1
}

// Node returns the payload stored at index i.
func (g *Graph[N, E]) Node(i int) (N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(i); err != nil {
		var zero N
		return zero, fmt.Errorf("Node: %w", err)
	}

	return g.nodes[i], nil
}

// SetNode replaces the payload stored at index i. Existing edges are not
// re-validated.
func (g *Graph[N, E]) SetNode(i int, n N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNode(i); err != nil {
		return fmt.Errorf("SetNode: %w", err)
	}
	g.nodes[i] = n

	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes yields (index, payload) pairs in insertion order.
func (g *Graph[N, E]) Nodes() iter.Seq2[int, N] {
	g.mu.RLock()
	snap := make([]N, len(g.nodes))
	copy(snap, g.nodes)
	g.mu.RUnlock()

	return func(yield func(int, N) bool) {
		for i, n := range snap {
			if !yield(i, n) {
				return
			}
		}
	}
}

// checkNode assumes the caller holds g.mu.
func (g *Graph[N, E]) checkNode(i int) error {
	if i < 0 || i >= len(g.nodes) {
		return fmt.Errorf("index %d of %d: %w", i, len(g.nodes), ErrNodeNotFound)
	}

	return nil
}
