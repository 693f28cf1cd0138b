// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"math"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/solver"
)

// JacobiConfig describes the precise Jacobi demo.
type JacobiConfig struct {
	Size          int     // n of the n×n tridiagonal system
	Seed          uint64  // 0 draws a seed from the wall clock
	Tolerance     float64 // 0 keeps solver.DefaultTolerance; must be finite and >= 0
	MaxIterations int     // 0 keeps solver.DefaultMaxIterations; must be >= 0
}

// JacobiResult is the outcome of RunPreciseJacobi.
type JacobiResult struct {
	A         *matrix.Precise
	B         *matrix.Precise
	X         *matrix.Precise
	Condition float64 // Norm(A)·Norm(A⁻¹)
	Residual  float64 // Norm(A·x − b)
	Stats     solver.Stats
}

// RunPreciseJacobi builds a random tridiagonal A (entries in [-1, 1) on the
// three central diagonals, zero elsewhere) and a random b, then solves
// A·x = b with Jacobi in the 100-digit domain.
//
// Such systems are not diagonally dominant in general, so the iteration may
// diverge; the result reports it through Stats and Residual rather than an
// error.
func RunPreciseJacobi(cfg JacobiConfig) (JacobiResult, error) {
	if cfg.Size <= 0 {
		return JacobiResult{}, fmt.Errorf("size %d: %w", cfg.Size, ErrInvalidSize)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) {
		return JacobiResult{}, fmt.Errorf("tolerance %g: %w", cfg.Tolerance, ErrInvalidTolerance)
	}
	if cfg.MaxIterations < 0 {
		return JacobiResult{}, fmt.Errorf("max iterations %d: %w", cfg.MaxIterations, ErrInvalidIterations)
	}
	n := cfg.Size
	rng := matrix.WithRand(newRand(cfg.Seed))

	full, err := matrix.Random(scalar.Precise, n, n, entryLow, entryHigh, rng)
	if err != nil {
		return JacobiResult{}, err
	}
	a, err := tridiagonal(full)
	if err != nil {
		return JacobiResult{}, err
	}
	b, err := matrix.Random(scalar.Precise, n, 1, entryLow, entryHigh, rng)
	if err != nil {
		return JacobiResult{}, err
	}

	cond, err := a.ConditionNumber()
	if err != nil {
		return JacobiResult{}, fmt.Errorf("condition number: %w", err)
	}

	var opts []solver.Option
	if cfg.Tolerance > 0 {
		opts = append(opts, solver.WithTolerance(cfg.Tolerance))
	}
	if cfg.MaxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(cfg.MaxIterations))
	}
	x, stats, err := solver.Solve(a, b, opts...)
	if err != nil {
		return JacobiResult{}, err
	}

	ax, err := a.Mul(x)
	if err != nil {
		return JacobiResult{}, err
	}
	r, err := ax.Sub(b)
	if err != nil {
		return JacobiResult{}, err
	}

	return JacobiResult{
		A:         a,
		B:         b,
		X:         x,
		Condition: scalar.Precise.Float64(cond),
		Residual:  scalar.Precise.Float64(r.Norm()),
		Stats:     stats,
	}, nil
}

// tridiagonal keeps the entries of m with |i−j| <= 1 and zeroes the rest.
func tridiagonal(m *matrix.Precise) (*matrix.Precise, error) {
	n := m.Rows()
	ar := m.Arith()
	grid := make([][]*apd.Decimal, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		for j := range row {
			if j < i-1 || j > i+1 {
				row[j] = ar.Zero()
			}
		}
		grid[i] = row
	}

	return matrix.New(ar, grid)
}

// Render prints K(A), the solution and the residual norm.
func (r JacobiResult) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "K(A) = %.6f\n%s\nresidual = %.6e (iterations: %d, converged: %v)\n",
		r.Condition, r.X, r.Residual, r.Stats.Iterations, r.Stats.Converged)

	return err
}
