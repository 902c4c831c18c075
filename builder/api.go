// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into a Config passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/infer"
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
)

// Graph is the concrete predictive-coding graph built by this package.
type Graph = graph.Graph[*variable.Variable, *transform.Transform]

// Constructor applies a deterministic graph mutation using the resolved
// Config. Constructors validate their parameters before touching g.
type Constructor func(g *Graph, cfg Config) error

// BuildGraph creates a shape-checked graph, resolves the builder
// configuration from bopts and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and returned.
func BuildGraph(bopts []Option, cons ...Constructor) (*Graph, error) {
	g := infer.NewGraph[*variable.Variable, *transform.Transform]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Lookup returns the index of the first node named name.
// Complexity: O(V).
func Lookup(g *Graph, name string) (int, error) {
	for i, v := range g.Nodes() {
		if v.Name() == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("Lookup(%q): %w", name, ErrNameNotFound)
}
