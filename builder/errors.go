// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the detection site (see builderErrorf).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewLayers indicates a constructor received fewer layer sizes than it needs.
var ErrTooFewLayers = errors.New("builder: too few layers")

// ErrBadSize indicates a non-positive node width.
var ErrBadSize = errors.New("builder: node size must be ≥ 1")

// ErrNeedRandSource indicates an edge-adding constructor ran without a random
// stream (set WithSeed or WithSource).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrConstructFailed indicates a constructor could not be applied: a nil
// constructor, prepared edges that do not fit their nodes, or an edge the
// graph refused.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNameNotFound is returned by Lookup when no node carries the name.
var ErrNameNotFound = errors.New("builder: node name not found")

// builderErrorf wraps err with the constructor tag and a detail message.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
