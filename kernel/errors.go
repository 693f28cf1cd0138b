// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned when a region span n is negative.
	ErrInvalidCount = errors.New("kernel: count must be >= 0")

	// ErrInvalidIncrement is returned when a region stride is not positive.
	ErrInvalidIncrement = errors.New("kernel: increment must be > 0")

	// ErrNilBuffer is returned when a nil buffer is passed.
	ErrNilBuffer = errors.New("kernel: nil buffer")

	// ErrOutOfRange is returned when a region or matrix does not fit the buffer.
	ErrOutOfRange = errors.New("kernel: region out of range")

	// ErrInvalidDimensions is returned when rows or cols is not positive.
	ErrInvalidDimensions = errors.New("kernel: dimensions must be > 0")

	// ErrNonSquare is returned by structural routines when rows != cols.
	ErrNonSquare = errors.New("kernel: matrix is not square")

	// ErrSingular is returned by Invert when the determinant is exactly zero.
	ErrSingular = errors.New("kernel: matrix is singular")

	// ErrBadRange is returned by Random when low > high.
	ErrBadRange = errors.New("kernel: low must be <= high")
)

// Operation tags used in error wrapping.
const (
	opFill          = "Fill"
	opNegate        = "Negate"
	opScale         = "Scale"
	opDivide        = "Divide"
	opAxpy          = "Axpy"
	opTriangularize = "Triangularize"
	opDeterminant   = "Determinant"
	opInvert        = "Invert"
	opRandom        = "Random"
)

// kernelErrorf prefixes err with an operation tag; errors.Is still matches.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
