// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// impl_fan_in.go - several causes predicting one effect.
//
// FanIn(target, s0, ..., sk) appends k+1 free source nodes of widths s0..sk
// followed by one free target node of width target, and an edge from every
// source to the target. The target's prediction error is shared between all
// sources during inference.

package builder

import (
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
)

const methodFanIn = "FanIn"

// FanIn returns a Constructor for a many-to-one block.
// New node order is sources first (in argument order), then the target.
//
// Errors:
//   - ErrTooFewLayers if no source is given.
//   - ErrBadSize if any width < 1.
//   - ErrNeedRandSource without WithSeed/WithSource.
func FanIn(target int, sources ...int) Constructor {
	// widths of all new nodes: sources, then the target
	own := append(append([]int(nil), sources...), target)

	return func(g *Graph, cfg Config) error {
		t := len(own) - 1
		if t == 0 {
			return builderErrorf(methodFanIn, "need at least one source", ErrTooFewLayers)
		}
		if err := checkSizes(methodFanIn, own); err != nil {
			return err
		}

		base := g.NodeCount()
		nodes := make([]*variable.Variable, len(own))
		for i, s := range own {
			v, err := latent(cfg, base+i, s)
			if err != nil {
				return builderErrorf(methodFanIn, "node", err)
			}
			nodes[i] = v
		}

		links := make([][2]int, t)
		fns := make([]*transform.Transform, t)
		for i, s := range own[:t] {
			f, err := edge(cfg, s, target)
			if err != nil {
				return builderErrorf(methodFanIn, "edge", err)
			}
			links[i] = [2]int{i, t}
			fns[i] = f
		}

		if err := commit(g, nodes, links, fns); err != nil {
			return builderErrorf(methodFanIn, "commit", err)
		}

		return nil
	}
}
