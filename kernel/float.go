// SPDX-License-Identifier: MIT

package kernel

import (
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/linalg/scalar"
)

// float64 facade: thin bindings of the generic core to scalar.Float64.

// Fill sets the region (start, inc, n) of x to value.
func Fill(x []float64, start, inc, n int, value float64) error {
	return FillOf(x, start, inc, n, value)
}

// Negate flips the sign of the region (start, inc, n) of x.
func Negate(x []float64, start, inc, n int) error {
	return NegateOf(scalar.Float64, x, start, inc, n)
}

// Scale multiplies the region (start, inc, n) of x by alpha.
func Scale(x []float64, start, inc, n int, alpha float64) error {
	return ScaleOf(scalar.Float64, x, start, inc, n, alpha)
}

// Divide divides the region (start, inc, n) of x by alpha.
func Divide(x []float64, start, inc, n int, alpha float64) error {
	return DivideOf(scalar.Float64, x, start, inc, n, alpha)
}

// Axpy computes x[startX+k] += alpha·x[startY+k] over the span n with stride inc.
func Axpy(x []float64, startX, startY, inc, n int, alpha float64) error {
	return AxpyOf(scalar.Float64, x, startX, startY, inc, n, alpha)
}

// Triangularize returns the one-pass Gauss-Jordan upper-triangular form of m.
func Triangularize(m []float64, rows, cols int) ([]float64, error) {
	return TriangularizeOf(scalar.Float64, m, rows, cols)
}

// Determinant returns the product of the triangularized diagonal of m.
func Determinant(m []float64, rows, cols int) (float64, error) {
	return DeterminantOf(scalar.Float64, m, rows, cols)
}

// Invert returns the inverse of m or ErrSingular when det(m) == 0.
func Invert(m []float64, rows, cols int) ([]float64, error) {
	return InvertOf(scalar.Float64, m, rows, cols)
}

// Random returns a rows×cols row-major buffer of values drawn uniformly from
// [low, high). When low == high every slot is low. A nil rng is replaced by a
// generator seeded from the wall clock.
//
// Errors: ErrInvalidDimensions, ErrBadRange.
// Complexity: O(rows·cols).
func Random(rows, cols int, low, high float64, rng *rand.Rand) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, kernelErrorf(opRandom, ErrInvalidDimensions)
	}
	if low > high {
		return nil, kernelErrorf(opRandom, ErrBadRange)
	}
	m := make([]float64, rows*cols)
	if low == high {
		for i := range m {
			m[i] = low
		}
		return m, nil
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	span := high - low
	for i := range m {
		m[i] = low + rng.Float64()*span
	}

	return m, nil
}
