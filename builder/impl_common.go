// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// impl_common.go - node and edge factories shared by all constructors.
//
// Random draws happen in construction order (nodes first, then edges, each
// in index order) so a seed fully determines the built graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/matrix"
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
)

// latent creates a free node of the given width, named for index idx.
// Values are zeros, or N(0, nodeSigma²) draws when nodeSigma > 0.
func latent(cfg Config, idx, size int) (*variable.Variable, error) {
	var (
		data *matrix.Dense
		err  error
	)
	if cfg.nodeSigma > 0 {
		if cfg.src == nil {
			return nil, ErrNeedRandSource
		}
		data, err = matrix.Normal(1, size, 0, cfg.nodeSigma, matrix.WithSource(cfg.src))
	} else {
		data, err = matrix.Zeros(1, size)
	}
	if err != nil {
		return nil, err
	}

	return variable.New(cfg.idFn(idx), data, false, variable.WithStepSize(cfg.step))
}

// observed creates a fixed node holding values, named for index idx.
func observed(cfg Config, idx int, values []float64) (*variable.Variable, error) {
	return variable.FromSlice(cfg.idFn(idx), values, true, variable.WithStepSize(cfg.step))
}

// edge creates an in→out transform with Kaiming-normal weights.
func edge(cfg Config, in, out int) (*transform.Transform, error) {
	if cfg.src == nil {
		return nil, ErrNeedRandSource
	}
	w, err := matrix.KaimingNormal(in, out, matrix.WithSource(cfg.src))
	if err != nil {
		return nil, err
	}
	opt := transform.WithLearningRate(cfg.rate)
	if !cfg.bias {
		return transform.New(w, cfg.act, cfg.fixedEdges, opt)
	}
	b, err := matrix.ZerosVector(out)
	if err != nil {
		return nil, err
	}

	return transform.NewWithBias(w, b, cfg.act, cfg.fixedEdges, opt)
}

// commit adds prepared nodes and then edges whose endpoints are offsets into
// nodes. Every link is vetted against the prepared nodes before the first
// AddNode, so a refused batch leaves g untouched. Refusals wrap
// ErrConstructFailed.
func commit(g *Graph, nodes []*variable.Variable, links [][2]int, fns []*transform.Transform) error {
	if len(links) != len(fns) {
		return fmt.Errorf("%d links, %d functions: %w", len(links), len(fns), ErrConstructFailed)
	}
	for i, l := range links {
		if l[0] < 0 || l[0] >= len(nodes) || l[1] < 0 || l[1] >= len(nodes) {
			return fmt.Errorf("link %d (%d→%d) of %d nodes: %w", i, l[0], l[1], len(nodes), ErrConstructFailed)
		}
		if fns[i] == nil || nodes[l[0]].Size() != fns[i].InputSize() || nodes[l[1]].Size() != fns[i].OutputSize() {
			return fmt.Errorf("link %d (%d→%d): function does not fit its endpoints: %w", i, l[0], l[1], ErrConstructFailed)
		}
	}

	base := g.NodeCount()
	for _, n := range nodes {
		g.AddNode(n)
	}
	if len(links) == 0 {
		return nil
	}
	batch := make([]graph.Edge[*transform.Transform], len(links))
	for i, l := range links {
		batch[i] = graph.Edge[*transform.Transform]{Source: base + l[0], Target: base + l[1], Value: fns[i]}
	}
	if _, err := g.AddEdges(batch); err != nil {
		return fmt.Errorf("%w: %w", ErrConstructFailed, err)
	}

	return nil
}

func checkSizes(method string, sizes []int) error {
	for i, s := range sizes {
		if s < 1 {
			return builderErrorf(method, fmt.Sprintf("size[%d]=%d", i, s), ErrBadSize)
		}
	}

	return nil
}
