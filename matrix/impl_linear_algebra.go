// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels on Dense[T].
//
// Purpose:
//   - Arithmetic (Mul, Add, Sub, Transpose, Norm, ConditionNumber).
//   - Elimination (GaussJordan, Determinant, Inverse, Eigenvalues), delegated
//     to the generic core of package kernel over the flat row-major buffer.
//
// Determinism & Policy:
//   - Fixed loop orders; sums accumulate left to right in the receiver's
//     domain, starting from Zero.
//   - Every method returns a fresh result bound to the receiver's domain.
//   - No pivoting: see package kernel for zero-pivot behavior.

package matrix

import "github.com/katalvlaran/linalg/kernel"

// Mul returns the product m·b of shape (m.Rows × b.Cols).
//
// Implementation:
//   - Stage 1: validate non-nil operands and m.Cols == b.Rows.
//   - Stage 2: entry (i,j) = Σ_k m(i,k)·b(k,j), accumulated left to right over
//     k from Zero. Zero entries are not skipped, so the result is exactly the
//     rounded sum in the domain (NaN/Inf propagate).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, b.c
	out := make([]T, rows*cols)
	var i, j, k int

	// Fast path: native floats, same i→j→k order.
	if fa, ok := any(m.data).([]float64); ok {
		fb := any(b.data).([]float64)
		fo := any(out).([]float64)
		var acc float64
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				acc = 0
				for k = 0; k < inner; k++ {
					acc += fa[i*inner+k] * fb[k*cols+j]
				}
				fo[i*cols+j] = acc
			}
		}
		return newDense(m.ar, rows, cols, out), nil
	}

	ar := m.ar
	var acc T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ar.Zero()
			for k = 0; k < inner; k++ {
				acc = ar.Add(acc, ar.Mul(m.data[i*inner+k], b.data[k*cols+j]))
			}
			out[i*cols+j] = acc
		}
	}

	return newDense(ar, rows, cols, out), nil
}

// Add returns the element-wise sum m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) {
	return m.elementwise(b, opAdd, m.arithAdd)
}

// Sub returns the element-wise difference m − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) {
	return m.elementwise(b, opSub, m.arithSub)
}

func (m *Dense[T]) arithAdd(x, y T) T { return m.ar.Add(x, y) }
func (m *Dense[T]) arithSub(x, y T) T { return m.ar.Sub(x, y) }

// elementwise applies f pairwise over two same-shape operands.
func (m *Dense[T]) elementwise(b *Dense[T], op string, f func(x, y T) T) (*Dense[T], error) {
	if err := validateBinary(m, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := make([]T, len(m.data))
	for k := range m.data {
		out[k] = f(m.data[k], b.data[k])
	}

	return newDense(m.ar, m.r, m.c, out), nil
}

// Transpose returns mᵀ (shape c×r). Always succeeds on a constructed matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := make([]T, len(m.data))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return newDense(m.ar, m.c, m.r, out)
}

// Norm returns the (0,0) entry of mᵀ·m, i.e. Σ_k m(k,0)², accumulated in
// the same order Mul would use.
//
// This is not a Frobenius or operator norm. It is meaningful for column
// vectors (squared Euclidean length) and is the convention ConditionNumber
// builds on.
// Complexity: O(r).
func (m *Dense[T]) Norm() T {
	ar := m.ar
	acc := ar.Zero()
	var x T
	for k := 0; k < m.r; k++ {
		x = m.data[k*m.c]
		acc = ar.Add(acc, ar.Mul(x, x))
	}

	return acc
}

// ConditionNumber returns Norm(m)·Norm(Inverse(m)). Identity matrices give
// exactly One. It is not bounded below by one in general because Norm only
// looks at the first column.
// Errors: those of Inverse.
func (m *Dense[T]) ConditionNumber() (T, error) {
	inv, err := m.Inverse()
	if err != nil {
		var zero T
		return zero, matrixErrorf(opCondition, err)
	}

	return m.ar.Mul(m.Norm(), inv.Norm()), nil
}

// GaussJordan returns the one-pass triangularization of m: entries below the
// diagonal are zero, pivots are not normalized and entries above the diagonal
// are kept.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - scalar.ErrDivisionByZero (wrapped) on a zero pivot in decimal domains.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Dense[T]) GaussJordan() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}
	out, err := kernel.TriangularizeOf(m.ar, m.data, m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opGaussJordan, err)
	}

	return newDense(m.ar, m.r, m.c, out), nil
}

// Determinant returns the product of GaussJordan's diagonal in pivot order.
// Errors: as GaussJordan.
func (m *Dense[T]) Determinant() (T, error) {
	var zero T
	if err := validateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	det, err := kernel.DeterminantOf(m.ar, m.data, m.r, m.c)
	if err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// Inverse returns m⁻¹ computed by full Gauss-Jordan reduction of [m | I].
//
// Behavior highlights:
//   - The determinant is computed first; exactly zero fails with ErrSingular.
//   - 1×1 matrices invert to the reciprocal of their only entry.
//   - No pivoting: a zero pivot on a matrix with non-zero determinant still
//     propagates (float64) or fails (decimal).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, scalar.ErrDivisionByZero.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	out, err := kernel.InvertOf(m.ar, m.data, m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return newDense(m.ar, m.r, m.c, out), nil
}

// Eigenvalues returns the diagonal of GaussJordan(m) in pivot order.
//
// This is an estimate, not an eigensolver: it is exact for triangular input
// and for inputs whose one-pass triangularization preserves the spectrum.
// For general matrices use a real decomposition (e.g. gonum's mat.Eigen via
// ToGonum).
func (m *Dense[T]) Eigenvalues() ([]T, error) {
	tri, err := m.GaussJordan()
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	return tri.Diagonal(), nil
}
