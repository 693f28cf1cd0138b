// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidSize is returned when the matrix size is not positive.
	ErrInvalidSize = errors.New("bench: size must be > 0")

	// ErrInvalidRuns is returned when the repetition count is not positive.
	ErrInvalidRuns = errors.New("bench: runs must be > 0")

	// ErrInvalidTolerance is returned for a negative, NaN or infinite
	// Jacobi tolerance.
	ErrInvalidTolerance = errors.New("bench: tolerance must be finite and >= 0")

	// ErrInvalidIterations is returned for a negative iteration budget.
	ErrInvalidIterations = errors.New("bench: max iterations must be >= 0")

	// ErrUnknownKind is returned for a representation other than
	// float, decimal or raw.
	ErrUnknownKind = errors.New("bench: unknown kind")
)
