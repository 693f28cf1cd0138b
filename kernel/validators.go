// SPDX-License-Identifier: MIT

package kernel

import "fmt"

// validateRegion checks a (start, inc, n) region of a buffer of length size.
// The order of checks is fixed: count, increment, nil, length, bounds.
func validateRegion(isNil bool, size, start, inc, n int) error {
	if n < 0 {
		return ErrInvalidCount
	}
	if inc <= 0 {
		return ErrInvalidIncrement
	}
	if isNil {
		return ErrNilBuffer
	}
	if size < n {
		return ErrOutOfRange
	}
	// size >= n here, so size-n cannot overflow where start+n could.
	if start < 0 || start > size-n {
		return fmt.Errorf("cannot iterate %d slots from %d with buffer of length %d: %w", n, start, size, ErrOutOfRange)
	}

	return nil
}

// validateSquare checks that m holds a rows×cols square matrix.
func validateSquare(isNil bool, size, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if isNil {
		return ErrNilBuffer
	}
	if size < rows*cols {
		return ErrOutOfRange
	}
	if rows != cols {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrNonSquare)
	}

	return nil
}
