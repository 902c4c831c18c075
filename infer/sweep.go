package infer

import (
	"fmt"

	"github.com/katalvlaran/predcode/graph"
	"github.com/katalvlaran/predcode/matrix"
)

// Infer performs one Jacobi sweep over g.
//
// Steps:
//  1. Snapshot every node value and check every edge against its endpoints.
//  2. For each edge in insertion order, call Backward on the snapshot and
//     append dTarget to the target's bucket, then dSource to the source's.
//  3. Check every bucketed derivative against its node's size.
//  4. Call Update on every node in index order with its bucket.
//
// Errors in steps 1–3 leave every node untouched. An error from Update in
// step 4 stops the sweep; nodes with lower indices keep their new values.
//
// Complexity: O(E·cost(Backward) + V·cost(Update)); peak memory O(V + E)
// derivative rows.
func Infer[N Node, E Function](g *graph.Graph[N, E]) error {
	s, err := observe("Infer", g)
	if err != nil {
		return err
	}

	buckets := make([][]*matrix.Dense, len(s.nodes))
	for i, e := range s.edges {
		dSource, dTarget, err := e.Value.Backward(s.values[e.Source], s.values[e.Target])
		if err != nil {
			return fmt.Errorf("Infer: edge %d (%d→%d): %w", i, e.Source, e.Target, err)
		}
		buckets[e.Target] = append(buckets[e.Target], dTarget)
		buckets[e.Source] = append(buckets[e.Source], dSource)
	}
	for i, bucket := range buckets {
		for _, d := range bucket {
			if err = matrix.ValidateShape(d, 1, s.nodes[i].Size()); err != nil {
				return fmt.Errorf("Infer: node %d: %w", i, err)
			}
		}
	}
	for i, n := range s.nodes {
		if err = n.Update(buckets[i]); err != nil {
			return fmt.Errorf("Infer: node %d: %w", i, err)
		}
	}

	return nil
}

// Learn performs one parameter sweep over g: for each edge in insertion
// order, BackwardParams on the current node values followed immediately by
// ApplyParams. Nodes are never updated, so every edge sees the same values.
//
// Shape errors are caught before the first ApplyParams. An error from
// ApplyParams stops the sweep; earlier edges keep their new parameters.
func Learn[N Node, E Function](g *graph.Graph[N, E]) error {
	s, err := observe("Learn", g)
	if err != nil {
		return err
	}

	for i, e := range s.edges {
		d, err := e.Value.BackwardParams(s.values[e.Source], s.values[e.Target])
		if err != nil {
			return fmt.Errorf("Learn: edge %d (%d→%d): %w", i, e.Source, e.Target, err)
		}
		if err = e.Value.ApplyParams(d); err != nil {
			return fmt.Errorf("Learn: edge %d (%d→%d): %w", i, e.Source, e.Target, err)
		}
	}

	return nil
}
