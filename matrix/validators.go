// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for nil/shape/index checks.
//   - Validators return plain sentinels (or a thin fmt wrapper around one);
//     call sites add the operation tag.
//
// Note:
//   - Composite validators follow a fixed sequence: nil → shape.
//   - All checks are O(1) and allocate nothing on success.

package matrix

import "fmt"

// validateNotNil ensures m refers to a constructed matrix.
func validateNotNil[T any](m *Dense[T]) error {
	if m == nil || m.ar == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateBinary ensures both operands are constructed.
func validateBinary[T any](a, b *Dense[T]) error {
	if err := validateNotNil(a); err != nil {
		return err
	}

	return validateNotNil(b)
}

// validateSameShape ensures a and b have identical dimensions.
// Assumes both are non-nil.
func validateSameShape[T any](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows. Assumes both are non-nil.
func validateMulCompatible[T any](a, b *Dense[T]) error {
	if a.c != b.r {
		return fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}

// validateSquare ensures m is non-nil and square.
func validateSquare[T any](m *Dense[T]) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// validateIndex ensures 0 <= i < rows and 0 <= j < cols.
func validateIndex(rows, cols, i, j int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return fmt.Errorf("(%d,%d) outside %dx%d: %w", i, j, rows, cols, ErrOutOfRange)
	}

	return nil
}

// validateSize ensures a factory size is positive.
func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("size %d: %w", n, ErrInvalidDimensions)
	}

	return nil
}

// validateRange ensures low <= high and neither bound is NaN.
func validateRange(low, high float64) error {
	if !(low <= high) {
		return fmt.Errorf("[%g, %g): %w", low, high, ErrBadRange)
	}

	return nil
}
