// SPDX-License-Identifier: MIT

package solver

import "math"

const (
	// DefaultTolerance is the max-norm step size below which Jacobi stops.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations bounds the number of Jacobi sweeps.
	DefaultMaxIterations = 100
)

const (
	panicToleranceInvalid = "solver: WithTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "solver: WithMaxIterations: n must be > 0"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	tol     float64
	maxIter int
}

// WithTolerance sets the stopping threshold on max |xNew − x|.
// Panics if tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the sweep budget. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
