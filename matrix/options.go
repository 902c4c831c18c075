// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random factories.
// This file defines:
//   - RandomOption / RandomOptions (functional options),
//   - WithX constructors,
//   - gatherRandomOptions helper (internal).
//
// Design goals:
//   - No global state: every factory call owns its generator; a caller that wants
//     reproducible draws passes WithSeed or shares a source through WithSource.
//   - Nil arguments are ignored so a zero value keeps the default.
package matrix

import "math/rand/v2"

// DefaultSeedStream is the second PCG word used by WithSeed.
// Fixed so that WithSeed(s) reproduces the same stream everywhere.
const DefaultSeedStream uint64 = 0x9e3779b97f4a7c15

// RandomOption configures Random/Normal/KaimingNormal.
type RandomOption func(*RandomOptions)

// RandomOptions holds the generator used by a random factory call.
type RandomOptions struct {
	// Src feeds every sample drawn by the call.
	Src rand.Source
}

// WithSource draws samples from src. Sharing one source across calls
// yields one continuous stream.
func WithSource(src rand.Source) RandomOption {
	return func(o *RandomOptions) {
		if src != nil {
			o.Src = src
		}
	}
}

// WithSeed draws samples from a fresh PCG generator seeded with seed.
func WithSeed(seed uint64) RandomOption {
	return func(o *RandomOptions) {
		o.Src = rand.NewPCG(seed, DefaultSeedStream)
	}
}

// gatherRandomOptions applies opts over the default: a PCG generator seeded
// from the runtime's generator (non-reproducible).
func gatherRandomOptions(opts ...RandomOption) RandomOptions {
	var o RandomOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Src == nil {
		o.Src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return o
}
