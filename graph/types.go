// Package graph provides an append-only directed multigraph whose nodes and
// edges carry arbitrary payloads and are addressed by insertion index.
//
// Graph[N, E] stores node payloads of type N and edge payloads of type E.
// Indices are assigned in insertion order starting at 0 and never change:
// there is no removal. Self-loops, cycles and parallel edges are allowed; the
// container performs no duplicate detection.
//
// Shape or compatibility rules between an edge and its endpoints belong to
// the caller and are plugged in with WithEdgeValidator, which runs on every
// AddEdge and AddEdges before anything is stored.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// node list, the edge list and the adjacency indices.
//
// Errors:
//
//	ErrNodeNotFound - an index does not name a node.
//	ErrEdgeNotFound - an index does not name an edge.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node index.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge index.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Edge is a directed connection Source → Target carrying Value.
type Edge[E any] struct {
	// Source is the index of the tail node.
	Source int

	// Target is the index of the head node.
	Target int

	// Value is the edge payload.
	Value E
}

// EdgeValidator checks an edge payload against its endpoints at insertion.
type EdgeValidator[N, E any] func(source, target N, value E) error

// Option configures a Graph before use.
type Option[N, E any] func(g *Graph[N, E])

// WithEdgeValidator installs fn to vet every edge before it is added.
// A nil fn removes any validator.
func WithEdgeValidator[N, E any](fn func(source, target N, value E) error) Option[N, E] {
	return func(g *Graph[N, E]) { g.validate = fn }
}

// Graph is an append-only directed multigraph keyed by insertion index.
type Graph[N, E any] struct {
	mu sync.RWMutex // guards everything below

	nodes []N
	edges []Edge[E]

	// out[i] / in[i] list edge indices leaving / entering node i, in insertion order.
	out [][]int
	in  [][]int

	validate EdgeValidator[N, E]
}

// New creates an empty Graph.
// Complexity: O(1).
func New[N, E any](opts ...Option[N, E]) *Graph[N, E] {
	g := &Graph[N, E]{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}
