// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/linalg/scalar"

// FillOf sets every slot of the region (start, inc, n) of x to value.
// Complexity: O(n/inc).
func FillOf[T any](x []T, start, inc, n int, value T) error {
	if err := validateRegion(x == nil, len(x), start, inc, n); err != nil {
		return kernelErrorf(opFill, err)
	}
	end := start + n
	for i := start; i < end; i += inc {
		x[i] = value
	}

	return nil
}

// NegateOf flips the sign of every slot of the region (start, inc, n) of x.
// Complexity: O(n/inc).
func NegateOf[T any](ar scalar.Arith[T], x []T, start, inc, n int) error {
	if err := validateRegion(x == nil, len(x), start, inc, n); err != nil {
		return kernelErrorf(opNegate, err)
	}
	end := start + n

	// Fast path: native floats skip the interface dispatch.
	if fx, ok := any(x).([]float64); ok {
		for i := start; i < end; i += inc {
			fx[i] = -fx[i]
		}
		return nil
	}
	for i := start; i < end; i += inc {
		x[i] = ar.Neg(x[i])
	}

	return nil
}

// ScaleOf multiplies every slot of the region (start, inc, n) of x by alpha.
//
// Fast paths:
//   - alpha == 1  → no-op
//   - alpha == 0  → FillOf(zero)
//   - alpha == -1 → NegateOf
//
// Complexity: O(n/inc).
func ScaleOf[T any](ar scalar.Arith[T], x []T, start, inc, n int, alpha T) error {
	if err := validateRegion(x == nil, len(x), start, inc, n); err != nil {
		return kernelErrorf(opScale, err)
	}
	if n == 0 || ar.Equal(alpha, ar.One()) {
		return nil
	}
	if ar.IsZero(alpha) {
		return FillOf(x, start, inc, n, ar.Zero())
	}
	if ar.Equal(alpha, ar.Neg(ar.One())) {
		return NegateOf(ar, x, start, inc, n)
	}

	end := start + n
	if fx, ok := any(x).([]float64); ok {
		fa := any(alpha).(float64)
		for i := start; i < end; i += inc {
			fx[i] *= fa
		}
		return nil
	}
	for i := start; i < end; i += inc {
		x[i] = ar.Mul(x[i], alpha)
	}

	return nil
}

// DivideOf divides every slot of the region (start, inc, n) of x by alpha.
//
// Fast paths:
//   - alpha == 1  → no-op
//   - alpha == -1 → NegateOf
//
// A zero alpha follows the domain: ±Inf/NaN for float64, an error wrapping
// scalar.ErrDivisionByZero for decimals (the region is left untouched then).
// Complexity: O(n/inc).
func DivideOf[T any](ar scalar.Arith[T], x []T, start, inc, n int, alpha T) error {
	if err := validateRegion(x == nil, len(x), start, inc, n); err != nil {
		return kernelErrorf(opDivide, err)
	}
	if n == 0 || ar.Equal(alpha, ar.One()) {
		return nil
	}
	if ar.Equal(alpha, ar.Neg(ar.One())) {
		return NegateOf(ar, x, start, inc, n)
	}

	end := start + n
	if fx, ok := any(x).([]float64); ok {
		fa := any(alpha).(float64)
		for i := start; i < end; i += inc {
			fx[i] /= fa
		}
		return nil
	}

	// Divide into a scratch region first so a failing division leaves x intact.
	quotients := make([]T, 0, (n+inc-1)/inc)
	for i := start; i < end; i += inc {
		q, err := ar.Quo(x[i], alpha)
		if err != nil {
			return kernelErrorf(opDivide, err)
		}
		quotients = append(quotients, q)
	}
	k := 0
	for i := start; i < end; i += inc {
		x[i] = quotients[k]
		k++
	}

	return nil
}

// AxpyOf computes x[startX+k] += alpha·x[startY+k] for k = 0, inc, 2·inc, …
// below n. Both regions live in the same buffer and are validated
// independently. alpha == 0 is a no-op.
//
// Overlapping regions are processed in increasing k, so an element written
// early can be read again later in the same call (the BLAS contract).
// Complexity: O(n/inc).
func AxpyOf[T any](ar scalar.Arith[T], x []T, startX, startY, inc, n int, alpha T) error {
	if err := validateRegion(x == nil, len(x), startX, inc, n); err != nil {
		return kernelErrorf(opAxpy, err)
	}
	if err := validateRegion(false, len(x), startY, inc, n); err != nil {
		return kernelErrorf(opAxpy, err)
	}
	if n == 0 || ar.IsZero(alpha) {
		return nil
	}

	if fx, ok := any(x).([]float64); ok {
		fa := any(alpha).(float64)
		for k := 0; k < n; k += inc {
			fx[startX+k] += fa * fx[startY+k]
		}
		return nil
	}
	for k := 0; k < n; k += inc {
		x[startX+k] = ar.Add(x[startX+k], ar.Mul(alpha, x[startY+k]))
	}

	return nil
}
