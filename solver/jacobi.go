// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
)

// Stats describes how a Jacobi run ended.
type Stats struct {
	// Iterations is the number of completed sweeps (>= 1).
	Iterations int
	// Delta is max |xNew − x| of the last sweep, converted to float64.
	Delta float64
	// Converged reports whether Delta <= tolerance.
	Converged bool
}

// Jacobi solves a·x = b and returns x as an n×1 matrix in a's domain.
// See Solve for the contract.
func Jacobi[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	x, _, err := Solve(a, b, opts...)
	return x, err
}

// Solve runs the Jacobi iteration on a·x = b.
//
// Implementation:
//   - Stage 1: validate a (n×n) and b (n×1).
//   - Stage 2: from x = 0, each sweep computes s = Σ_{j≠i} a[i][j]·x[j]
//     (left to right) and xNew[i] = (b[i] − s) / a[i][i], reading only the
//     previous iterate.
//   - Stage 3: stop once max_i |xNew[i] − x[i]| <= tolerance or the budget is
//     spent; the last xNew is returned either way.
//
// Errors:
//   - ErrNilInput, ErrNonSquare, ErrNotColumnVector.
//   - scalar.ErrDivisionByZero (wrapped) for a zero diagonal entry in a
//     decimal domain. In float64 a zero diagonal yields ±Inf/NaN instead.
//
// Complexity:
//   - Time O(iterations·n²), Space O(n).
func Solve[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], Stats, error) {
	if a == nil || b == nil {
		return nil, Stats{}, solverErrorf(opJacobi, ErrNilInput)
	}
	n, cols := a.Shape()
	if n != cols {
		return nil, Stats{}, solverErrorf(opJacobi, fmt.Errorf("A is %dx%d: %w", n, cols, ErrNonSquare))
	}
	if br, bc := b.Shape(); bc != 1 || br != n {
		return nil, Stats{}, solverErrorf(opJacobi, fmt.Errorf("b is %dx%d, want %dx1: %w", br, bc, n, ErrNotColumnVector))
	}
	o := gatherOptions(opts...)
	ar := a.Arith()

	tol, err := ar.FromFloat64(o.tol)
	if err != nil {
		return nil, Stats{}, solverErrorf(opJacobi, err)
	}
	av, bv := a.Raw(), b.Raw()

	x := make([]T, n)
	xNew := make([]T, n)
	for i := range x {
		x[i] = ar.Zero()
	}

	var (
		stats    Stats
		i, j     int
		s, delta T
		d        T
		nan      bool
	)
	for stats.Iterations = 1; ; stats.Iterations++ {
		for i = 0; i < n; i++ {
			s = ar.Zero()
			for j = 0; j < n; j++ {
				if j == i {
					continue
				}
				s = ar.Add(s, ar.Mul(av[i*n+j], x[j]))
			}
			xNew[i], err = ar.Quo(ar.Sub(bv[i], s), av[i*n+i])
			if err != nil {
				return nil, Stats{}, solverErrorf(opJacobi, fmt.Errorf("row %d: %w", i, err))
			}
		}

		// A NaN component poisons the step: it never counts as converged.
		delta, nan = ar.Zero(), false
		for i = 0; i < n; i++ {
			d = ar.Abs(ar.Sub(xNew[i], x[i]))
			if math.IsNaN(ar.Float64(d)) {
				nan = true
				continue
			}
			if ar.Cmp(d, delta) > 0 {
				delta = d
			}
		}
		stats.Delta = ar.Float64(delta)
		if nan {
			stats.Delta = math.NaN()
		}
		stats.Converged = !nan && ar.Cmp(delta, tol) <= 0
		if stats.Converged || stats.Iterations >= o.maxIter {
			break
		}
		x, xNew = xNew, x
	}

	grid := make([][]T, n)
	for i = 0; i < n; i++ {
		grid[i] = []T{xNew[i]}
	}
	out, err := matrix.New(ar, grid)
	if err != nil {
		return nil, Stats{}, solverErrorf(opJacobi, err)
	}

	return out, stats, nil
}
