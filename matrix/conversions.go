// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
)

// ToGonum copies m into a gonum *mat.Dense, giving access to gonum's
// factorizations (LU, QR, Eigen, SVD) for cross-checking.
// Complexity: O(r*c).
func ToGonum(m *Float) (*mat.Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}

	return mat.NewDense(m.r, m.c, m.Raw()), nil
}

// FromGonum copies any gonum matrix into a float64 Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (an empty gonum matrix).
func FromGonum(a mat.Matrix) (*Float, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrInvalidDimensions))
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = a.At(i, j)
		}
	}

	return newDense(scalar.Float64, r, c, data), nil
}
