// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random factories.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Without WithSeed or WithRand every factory call draws from a generator
//     seeded from the wall clock, so two calls produce different matrices.
//   - WithSeed makes a call reproducible; WithRand lets callers share one
//     stream across several factory calls.
package matrix

import (
	"math/rand/v2"
	"time"
)

// Internal panic messages.
const (
	panicNilRand = "matrix: WithRand: rng must be non-nil"
)

// seedMix is the second PCG word derived from a user seed.
const seedMix = 0x9e3779b97f4a7c15

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rng *rand.Rand // nil until resolved by gatherOptions
}

// WithSeed makes a factory deterministic: the same seed yields the same
// matrix for the same size and bounds.
// Complexity: O(1).
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewPCG(seed, seed^seedMix)) }
}

// WithRand draws entries from rng. The generator is advanced, so sharing one
// rng across calls yields a single reproducible stream.
// Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = rng }
}

// gatherOptions applies opts in order (last wins) and resolves the generator.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed^seedMix))
	}

	return o
}
