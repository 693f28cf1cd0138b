// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned by Quo in domains that refuse to divide by
	// zero (Decimal). Float64 never returns it.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNotFinite is returned when a NaN or ±Inf float64 is converted into a
	// domain that has no representation for it.
	ErrNotFinite = errors.New("scalar: value is NaN or Inf")
)
