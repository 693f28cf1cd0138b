// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// TriangularizeOf returns the upper-triangular form of the rows×cols matrix
// stored row-major in m, using one-pass Gauss-Jordan elimination.
//
// Implementation:
//   - Stage 1: validate (positive, square, fits m) and copy m.
//   - Stage 2: for each pivot row i and each row j > i:
//     factor = out[j][i] / out[i][i]; fill columns 0..i of row j with zero;
//     Axpy(−factor) of row i into row j over columns i+1..n−1.
//
// Behavior highlights:
//   - No row swaps: a zero pivot propagates as ±Inf/NaN (float64) or fails
//     with an error wrapping scalar.ErrDivisionByZero (decimal).
//   - Pivots are not normalized and entries above the diagonal are kept.
//   - m is never mutated.
//
// Complexity: O(n³) time, O(n²) extra space.
func TriangularizeOf[T any](ar scalar.Arith[T], m []T, rows, cols int) ([]T, error) {
	if err := validateSquare(m == nil, len(m), rows, cols); err != nil {
		return nil, kernelErrorf(opTriangularize, err)
	}
	out, err := triangularize(ar, m, rows)
	if err != nil {
		return nil, kernelErrorf(opTriangularize, err)
	}

	return out, nil
}

// triangularize is the unchecked core shared by TriangularizeOf and
// DeterminantOf.
func triangularize[T any](ar scalar.Arith[T], m []T, n int) ([]T, error) {
	size := n * n
	out := make([]T, size)
	copy(out, m[:size])

	zero := ar.Zero()
	var (
		i, j   int
		pivot  T
		factor T
		err    error
	)
	for i = 0; i < n; i++ {
		pivot = out[i*n+i]
		for j = i + 1; j < n; j++ {
			factor, err = ar.Quo(out[j*n+i], pivot)
			if err != nil {
				return nil, fmt.Errorf("pivot %d: %w", i, err)
			}
			if err = FillOf(out, j*n, 1, i+1, zero); err != nil {
				return nil, err
			}
			if err = AxpyOf(ar, out, j*n+i+1, i*n+i+1, 1, n-i-1, ar.Neg(factor)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// DeterminantOf returns the product of the diagonal of TriangularizeOf(m),
// multiplied in diagonal order starting from One.
// Errors: the same as TriangularizeOf.
// Complexity: O(n³).
func DeterminantOf[T any](ar scalar.Arith[T], m []T, rows, cols int) (T, error) {
	var none T
	if err := validateSquare(m == nil, len(m), rows, cols); err != nil {
		return none, kernelErrorf(opDeterminant, err)
	}
	det, err := determinant(ar, m, rows)
	if err != nil {
		return none, kernelErrorf(opDeterminant, err)
	}

	return det, nil
}

func determinant[T any](ar scalar.Arith[T], m []T, n int) (T, error) {
	tri, err := triangularize(ar, m, n)
	if err != nil {
		var none T
		return none, err
	}
	det := ar.One()
	for i := 0; i < n; i++ {
		det = ar.Mul(det, tri[i*n+i])
	}

	return det, nil
}

// InvertOf returns the inverse of the rows×cols matrix stored row-major in m.
//
// Implementation:
//   - Stage 1: validate; compute the determinant and fail with ErrSingular
//     when it is exactly zero.
//   - Stage 2: 1×1 → reciprocal of the only entry.
//   - Stage 3: copy m into v and build the identity id. For each pivot row i:
//     Divide row i of v and id by v[i][i]; then for every row j ≠ i,
//     Axpy(−v[j][i]) of row i into row j, in both v and id.
//   - Stage 4: id now holds the inverse.
//
// Behavior highlights:
//   - Full Gauss-Jordan: rows are cleared above and below each pivot.
//   - No pivoting; see TriangularizeOf for zero-pivot behavior.
//   - m is never mutated.
//
// Errors: validation sentinels, ErrSingular, scalar.ErrDivisionByZero (wrapped).
// Complexity: O(n³) time, O(n²) extra space (two n×n buffers).
func InvertOf[T any](ar scalar.Arith[T], m []T, rows, cols int) ([]T, error) {
	if err := validateSquare(m == nil, len(m), rows, cols); err != nil {
		return nil, kernelErrorf(opInvert, err)
	}
	n := rows
	det, err := determinant(ar, m, n)
	if err != nil {
		return nil, kernelErrorf(opInvert, err)
	}
	if ar.IsZero(det) {
		return nil, kernelErrorf(opInvert, ErrSingular)
	}

	if n == 1 {
		r, qErr := ar.Quo(ar.One(), m[0])
		if qErr != nil {
			return nil, kernelErrorf(opInvert, qErr)
		}
		return []T{r}, nil
	}

	size := n * n
	v := make([]T, size)
	copy(v, m[:size])

	// Identity: zero everywhere, then one on every (n+1)-th slot.
	id := make([]T, size)
	if err = FillOf(id, 0, 1, size, ar.Zero()); err != nil {
		return nil, kernelErrorf(opInvert, err)
	}
	if err = FillOf(id, 0, n+1, size, ar.One()); err != nil {
		return nil, kernelErrorf(opInvert, err)
	}

	var (
		i, j int
		elem T
		neg  T
	)
	for i = 0; i < n; i++ {
		elem = v[i*n+i]
		if err = DivideOf(ar, v, i*n, 1, n, elem); err != nil {
			return nil, kernelErrorf(opInvert, fmt.Errorf("pivot %d: %w", i, err))
		}
		if err = DivideOf(ar, id, i*n, 1, n, elem); err != nil {
			return nil, kernelErrorf(opInvert, fmt.Errorf("pivot %d: %w", i, err))
		}

		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			neg = ar.Neg(v[j*n+i])
			if err = AxpyOf(ar, v, j*n, i*n, 1, n, neg); err != nil {
				return nil, kernelErrorf(opInvert, err)
			}
			if err = AxpyOf(ar, id, j*n, i*n, 1, n, neg); err != nil {
				return nil, kernelErrorf(opInvert, err)
			}
		}
	}

	return id, nil
}
