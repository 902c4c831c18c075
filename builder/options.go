// SPDX-License-Identifier: MIT
// Package: predcode/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*Config)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.

package builder

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/predcode/activation"
	"github.com/katalvlaran/predcode/matrix"
)

// Option customizes the builder configuration before construction begins.
type Option func(*Config)

// WithIDScheme sets the node naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *Config) { c.idFn = fn }
}

// WithSeed draws initial weights and node values from a PCG stream seeded
// with seed, the same stream matrix.WithSeed uses.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.src = rand.NewPCG(seed, matrix.DefaultSeedStream) }
}

// WithSource shares an explicit random source. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("builder: WithSource(nil)")
	}

	return func(c *Config) { c.src = src }
}

// WithActivation sets the activation of every edge. Panics on an unknown kind.
func WithActivation(k activation.Kind) Option {
	if !k.Valid() {
		panic(fmt.Sprintf("builder: WithActivation(%v)", k))
	}

	return func(c *Config) { c.act = k }
}

// WithBias gives every edge a zero-initialized bias.
func WithBias() Option {
	return func(c *Config) { c.bias = true }
}

// WithFixedEdges builds edges whose parameters Learn leaves alone.
func WithFixedEdges() Option {
	return func(c *Config) { c.fixedEdges = true }
}

// WithLearningRate sets η_p of every edge. Panics unless eta is finite and > 0.
func WithLearningRate(eta float64) Option {
	mustPositive("WithLearningRate", eta)

	return func(c *Config) { c.rate = eta }
}

// WithStepSize sets η of every node. Panics unless eta is finite and > 0.
func WithStepSize(eta float64) Option {
	mustPositive("WithStepSize", eta)

	return func(c *Config) { c.step = eta }
}

// WithNodeSigma initializes latent nodes from N(0, sigma²) instead of zeros.
// Panics on a negative or non-finite sigma.
func WithNodeSigma(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("builder: WithNodeSigma(%g)", sigma))
	}

	return func(c *Config) { c.nodeSigma = sigma }
}

func mustPositive(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: %s(%g)", name, v))
	}
}
