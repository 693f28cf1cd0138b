// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrNonSquare is returned when A is not square. It is the matrix
	// package sentinel, so errors.Is matches either name.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNotColumnVector is returned when b is not an n×1 matrix with n equal
	// to A's row count.
	ErrNotColumnVector = errors.New("solver: b is not a column vector matching A")

	// ErrNilInput is returned when A or b is nil.
	ErrNilInput = errors.New("solver: nil input")
)

const opJacobi = "Jacobi"

func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
