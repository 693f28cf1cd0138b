// SPDX-License-Identifier: MIT

// Package linalg is a small dense linear-algebra toolkit that runs the same
// algorithms over two number domains: native float64 and 100-digit decimals.
//
// Everything is organized under four packages:
//
//	scalar/  the Arith[T] contract plus the Float64 and Precise domains
//	kernel/  strided vector primitives and Gauss-Jordan elimination on
//	         flat row-major buffers (generic *Of functions, float64 facade)
//	matrix/  the immutable Dense[T] matrix: arithmetic, predicates,
//	         inverse, determinant, condition number, random factories
//	solver/  the Jacobi iterative solver with tolerance and budget options
//
// The linalg command (cmd/linalg) times inversion in every representation
// and runs a 100-digit Jacobi demo on random tridiagonal systems.
//
// Quick start:
//
//	a, _ := matrix.NewFloat([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Inverse()          // [[0.6 −0.7] [−0.2 0.4]]
//	p, _ := matrix.PreciseFromFloat(a)
//	det, _ := p.Determinant()      // exactly 10
//
// Elimination never pivots: a zero pivot yields ±Inf/NaN in float64 and an
// error wrapping scalar.ErrDivisionByZero in the decimal domain.
package linalg
