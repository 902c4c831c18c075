// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn          ("x0","x1",...)
//   • src        = nil                  (edges need WithSeed/WithSource)
//   • act        = activation.Linear
//   • bias       = false
//   • fixedEdges = false
//   • rate       = transform.DefaultLearningRate
//   • step       = variable.DefaultStepSize
//   • nodeSigma  = 0                    (latent nodes start at zero)

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/transform"
	"github.com/katalvlaran/predcode/variable"
)

// Config aggregates all knobs used by constructors. It is resolved once by
// BuildGraph and passed by value, so custom constructors can be written
// against the same signature as the built-in ones.
type Config struct {
	// Node naming strategy: index -> name.
	idFn IDFn
	// Random stream for weight and node initialization; nil means none.
	src rand.Source

	act        activation.Kind
	bias       bool
	fixedEdges bool
	rate       float64
	step       float64

	// Standard deviation of latent node initialization; 0 → zeros.
	nodeSigma float64
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) Config {
	cfg := Config{
		idFn: DefaultIDFn,
		act:  activation.Linear,
		rate: transform.DefaultLearningRate,
		step: variable.DefaultStepSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
