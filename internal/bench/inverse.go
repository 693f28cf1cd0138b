// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// Kind selects the representation whose inversion is timed.
type Kind string

const (
	KindFloat   Kind = "float"   // matrix.Float
	KindDecimal Kind = "decimal" // matrix.Precise
	KindRaw     Kind = "raw"     // kernel.Invert on a flat []float64
)

// Kinds lists every supported representation in display order.
var Kinds = []Kind{KindFloat, KindDecimal, KindRaw}

// ParseKind maps a representation name to its Kind.
// Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Entries of benchmarked matrices are uniform in [entryLow, entryHigh).
const (
	entryLow  = -1.0
	entryHigh = 1.0
)

// Config describes one inversion benchmark.
type Config struct {
	Kind Kind
	Size int    // n of the n×n input
	Runs int    // fresh random matrices to invert
	Seed uint64 // 0 draws a seed from the wall clock
}

// Sample is the timing of one inversion.
type Sample struct {
	Run     int
	Elapsed time.Duration
}

// Report collects the samples of one Config.
type Report struct {
	Kind    Kind
	Size    int
	FLOPs   int64
	Samples []Sample
}

// FLOPs returns the nominal operation count of one n×n inversion,
// n·(2n + (n−1)·2n): per pivot, one row normalization of both halves plus
// n−1 row eliminations of both halves.
func FLOPs(n int) int64 {
	m := int64(n)
	return m * (2*m + (m-1)*2*m)
}

// GFLOPS returns the throughput of s for an inversion of flops operations.
func (s Sample) GFLOPS(flops int64) float64 {
	sec := s.Elapsed.Seconds()
	if sec <= 0 {
		return 0
	}

	return float64(flops) / sec / 1e9
}

// RunInverse times cfg.Runs inversions of fresh random matrices. Matrix
// generation is excluded from the timings. ctx is checked between runs.
func RunInverse(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Size <= 0 {
		return Report{}, fmt.Errorf("size %d: %w", cfg.Size, ErrInvalidSize)
	}
	if cfg.Runs <= 0 {
		return Report{}, fmt.Errorf("runs %d: %w", cfg.Runs, ErrInvalidRuns)
	}
	invert, err := inverter(cfg.Kind)
	if err != nil {
		return Report{}, err
	}

	rng := newRand(cfg.Seed)
	rep := Report{Kind: cfg.Kind, Size: cfg.Size, FLOPs: FLOPs(cfg.Size)}
	for run := 0; run < cfg.Runs; run++ {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		elapsed, runErr := invert(cfg.Size, rng)
		if runErr != nil {
			return rep, fmt.Errorf("%s run %d: %w", cfg.Kind, run, runErr)
		}
		rep.Samples = append(rep.Samples, Sample{Run: run, Elapsed: elapsed})
	}

	return rep, nil
}

// invertFunc builds one random n×n input from rng and returns the time
// spent inverting it.
type invertFunc func(n int, rng *rand.Rand) (time.Duration, error)

func inverter(kind Kind) (invertFunc, error) {
	switch kind {
	case KindFloat:
		return invertDense(scalar.Float64), nil
	case KindDecimal:
		return invertDense(scalar.Precise), nil
	case KindRaw:
		return invertRaw, nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

func invertDense[T any](ar scalar.Arith[T]) invertFunc {
	return func(n int, rng *rand.Rand) (time.Duration, error) {
		m, err := matrix.Random(ar, n, n, entryLow, entryHigh, matrix.WithRand(rng))
		if err != nil {
			return 0, err
		}
		start := time.Now()
		_, err = m.Inverse()

		return time.Since(start), err
	}
}

func invertRaw(n int, rng *rand.Rand) (time.Duration, error) {
	m, err := kernel.Random(n, n, entryLow, entryHigh, rng)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	_, err = kernel.Invert(m, n, n)

	return time.Since(start), err
}

// newRand returns a PCG generator for seed, or a clock-seeded one for 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
