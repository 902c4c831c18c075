// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// impl_observe.go - single-node and single-edge constructors.

package builder

import "fmt"

// Observe appends one fixed node holding values (a clamped observation).
//
// Errors:
//   - ErrBadSize if values is empty.
func Observe(values ...float64) Constructor {
	own := append([]float64(nil), values...)

	return func(g *Graph, cfg Config) error {
		if len(own) == 0 {
			return builderErrorf("Observe", "no values", ErrBadSize)
		}
		v, err := observed(cfg, g.NodeCount(), own)
		if err != nil {
			return builderErrorf("Observe", "node", err)
		}
		g.AddNode(v)

		return nil
	}
}

// Latent appends one free node of width size.
//
// Errors:
//   - ErrBadSize if size < 1.
//   - ErrNeedRandSource when WithNodeSigma is set without a random stream.
func Latent(size int) Constructor {
	return func(g *Graph, cfg Config) error {
		if err := checkSizes("Latent", []int{size}); err != nil {
			return err
		}
		v, err := latent(cfg, g.NodeCount(), size)
		if err != nil {
			return builderErrorf("Latent", "node", err)
		}
		g.AddNode(v)

		return nil
	}
}

// Connect adds an edge source→target between existing nodes, sized from
// their widths.
//
// Errors:
//   - graph.ErrNodeNotFound for an out-of-range index.
//   - ErrNeedRandSource without WithSeed/WithSource.
//   - ErrConstructFailed if the graph refuses the edge.
func Connect(source, target int) Constructor {
	return func(g *Graph, cfg Config) error {
		tag := fmt.Sprintf("%d→%d", source, target)
		src, err := g.Node(source)
		if err != nil {
			return builderErrorf("Connect", tag, err)
		}
		tgt, err := g.Node(target)
		if err != nil {
			return builderErrorf("Connect", tag, err)
		}
		f, err := edge(cfg, src.Size(), tgt.Size())
		if err != nil {
			return builderErrorf("Connect", tag, err)
		}
		if _, err = g.AddEdge(source, target, f); err != nil {
			return builderErrorf("Connect", tag, fmt.Errorf("%w: %w", ErrConstructFailed, err))
		}

		return nil
	}
}
