// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// impl_chain.go - layered chain constructor.
//
// Chain(n0, n1, ..., nk) appends k+1 free nodes of widths n0..nk and the
// edges i→i+1 between consecutive new nodes. In predictive-coding terms the
// first node predicts the second, the second the third, and so on: a
// hierarchical generative model read from top (index 0) to bottom.

package builder

import (
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
)

const methodChain = "Chain"

// Chain returns a Constructor that appends a layered chain of free nodes.
//
// Errors:
//   - ErrTooFewLayers if fewer than two sizes are given.
//   - ErrBadSize if any size < 1.
//   - ErrNeedRandSource without WithSeed/WithSource.
//
// Complexity: O(Σ n_i·n_{i+1}) for weight initialization.
func Chain(sizes ...int) Constructor {
	own := append([]int(nil), sizes...)

	return func(g *Graph, cfg Config) error {
		if len(own) < 2 {
			return builderErrorf(methodChain, "need at least two sizes", ErrTooFewLayers)
		}
		if err := checkSizes(methodChain, own); err != nil {
			return err
		}

		base := g.NodeCount()
		nodes := make([]*variable.Variable, len(own))
		for i, s := range own {
			v, err := latent(cfg, base+i, s)
			if err != nil {
				return builderErrorf(methodChain, "node", err)
			}
			nodes[i] = v
		}

		links := make([][2]int, len(own)-1)
		fns := make([]*transform.Transform, len(own)-1)
		for i := range links {
			f, err := edge(cfg, own[i], own[i+1])
			if err != nil {
				return builderErrorf(methodChain, "edge", err)
			}
			links[i] = [2]int{i, i + 1}
			fns[i] = f
		}

		if err := commit(g, nodes, links, fns); err != nil {
			return builderErrorf(methodChain, "commit", err)
		}

		return nil
	}
}
