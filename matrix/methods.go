// SPDX-License-Identifier: MIT

package matrix

// IsSymmetric reports whether m equals its transpose exactly. Rectangular
// matrices are never symmetric.
func (m *Dense[T]) IsSymmetric() bool {
	if m.r != m.c {
		return false
	}
	ar := m.ar
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if !ar.Equal(m.data[i*m.c+j], m.data[j*m.c+i]) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether every entry below the diagonal is zero.
// Errors: ErrNonSquare.
func (m *Dense[T]) IsUpperTriangular() (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opTriangular, err)
	}
	for i := 1; i < m.r; i++ {
		for j := 0; j < i; j++ {
			if !m.ar.IsZero(m.data[i*m.c+j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsLowerTriangular reports whether every entry above the diagonal is zero.
// Errors: ErrNonSquare.
func (m *Dense[T]) IsLowerTriangular() (bool, error) {
	if err := validateSquare(m); err != nil {
		return false, matrixErrorf(opTriangular, err)
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if !m.ar.IsZero(m.data[i*m.c+j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsTriangular reports whether m is lower or upper triangular.
// Errors: ErrNonSquare.
func (m *Dense[T]) IsTriangular() (bool, error) {
	lower, err := m.IsLowerTriangular()
	if err != nil || lower {
		return lower, err
	}

	return m.IsUpperTriangular()
}

// IsDiagonal reports whether m is both lower and upper triangular.
// Errors: ErrNonSquare.
func (m *Dense[T]) IsDiagonal() (bool, error) {
	lower, err := m.IsLowerTriangular()
	if err != nil || !lower {
		return false, err
	}

	return m.IsUpperTriangular()
}

// IsInvertible reports whether Determinant(m) is non-zero.
// A float64 zero pivot makes the determinant NaN, which reports true; the
// matching Inverse then yields NaN entries rather than ErrSingular.
// Errors: those of Determinant.
func (m *Dense[T]) IsInvertible() (bool, error) {
	det, err := m.Determinant()
	if err != nil {
		return false, matrixErrorf(opInvertible, err)
	}

	return !m.ar.IsZero(det), nil
}

// IsPositiveDefinite reports whether every value returned by Eigenvalues is
// strictly positive. For triangular input the values are the eigenvalues.
// For symmetric input they are the elimination pivots, which carry the same
// signs as the eigenvalues (Sylvester's law of inertia) as long as no zero
// pivot is met, so the answer is exact there too.
// Errors: those of Eigenvalues.
func (m *Dense[T]) IsPositiveDefinite() (bool, error) {
	values, err := m.Eigenvalues()
	if err != nil {
		return false, matrixErrorf(opPositive, err)
	}
	zero := m.ar.Zero()
	for _, v := range values {
		if m.ar.Cmp(v, zero) <= 0 {
			return false, nil
		}
	}

	return true, nil
}
