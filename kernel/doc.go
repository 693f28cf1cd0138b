// SPDX-License-Identifier: MIT

// Package kernel implements BLAS-style primitives and elimination algorithms
// directly over flat buffers, without any shape metadata.
//
// Addressing:
//
//	A buffer region is the triple (start, inc, n): the slots start,
//	start+inc, start+2·inc, … strictly below start+n. n is the span of the
//	region, so with inc == 1 it is also the element count. Structural routines
//	(Triangularize, Determinant, Invert) take rows/cols out of band and read
//	the buffer as a row-major rows×cols matrix.
//
// Primitives:
//   - Fill, Negate, Scale, Divide: in-place over one region.
//   - Axpy: x[startX+k] += α·x[startY+k] over two regions of one buffer.
//
// Algorithms (square buffers only):
//   - Triangularize: one-pass Gauss-Jordan to upper-triangular form.
//   - Determinant: product of the triangularized diagonal.
//   - Invert: full Gauss-Jordan reduction of [A | I] to [I | A⁻¹].
//
// Every routine exists twice: a generic core (FillOf, AxpyOf, InvertOf, …)
// parameterized by a scalar.Arith domain, and a float64 facade (Fill, Axpy,
// Invert, …) bound to scalar.Float64. The matrix package runs the generic core
// over its own backing slice, so both layers share one implementation.
//
// Numerical policy:
//
//	No pivoting: each step divides by the current diagonal entry. A zero pivot
//	yields ±Inf/NaN in float64 and ErrDivisionByZero (wrapped) in decimal
//	domains. Structural routines never mutate their input; primitives mutate
//	exactly the region they are given.
package kernel
