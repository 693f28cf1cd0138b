// SPDX-License-Identifier: MIT

// Package matrix - named factories.
//
// Random entries are drawn as float64 in [low, high) and converted into the
// target domain with FromFloat64, so a float64 and a decimal factory given
// the same seed produce the same values. Draw order is row-major over the
// cells a factory fills.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/scalar"
)

// Identity returns the n×n identity over ar.
// Errors: ErrNilArith, ErrInvalidDimensions (n < 1).
func Identity[T any](ar scalar.Arith[T], n int) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opIdentity, ErrNilArith)
	}
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	data := make([]T, n*n)
	if err := kernel.FillOf(data, 0, 1, len(data), ar.Zero()); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err := kernel.FillOf(data, 0, n+1, len(data), ar.One()); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return newDense(ar, n, n, data), nil
}

// Random returns a rows×cols matrix with entries uniform in [low, high).
// Errors: ErrNilArith, ErrInvalidDimensions, ErrBadRange.
func Random[T any](ar scalar.Arith[T], rows, cols int, low, high float64, opts ...Option) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opRandom, ErrNilArith)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opRandom, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	if err := validateRange(low, high); err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	o := gatherOptions(opts...)
	raw, err := kernel.Random(rows, cols, low, high, o.rng)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	data, err := fromFloats(ar, raw)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}

	return newDense(ar, rows, cols, data), nil
}

// UpperTriangular returns an n×n matrix with zeros below the diagonal and
// entries uniform in [low, high) on and above it.
// Errors: ErrNilArith, ErrInvalidDimensions, ErrBadRange.
func UpperTriangular[T any](ar scalar.Arith[T], n int, low, high float64, opts ...Option) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opUpperTriangular, ErrNilArith)
	}
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	if err := validateRange(low, high); err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}
	o := gatherOptions(opts...)
	raw := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			raw[i*n+j] = draw(o, low, high)
		}
	}
	data, err := fromFloats(ar, raw)
	if err != nil {
		return nil, matrixErrorf(opUpperTriangular, err)
	}

	return newDense(ar, n, n, data), nil
}

// RandomSymmetric returns an n×n symmetric matrix with entries uniform in
// [low, high). Row i draws its strictly-lower cells first (mirrored above
// the diagonal), then its diagonal cell.
// Errors: ErrNilArith, ErrInvalidDimensions, ErrBadRange.
func RandomSymmetric[T any](ar scalar.Arith[T], n int, low, high float64, opts ...Option) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opRandomSymmetric, ErrNilArith)
	}
	if err := validateSize(n); err != nil {
		return nil, matrixErrorf(opRandomSymmetric, err)
	}
	if err := validateRange(low, high); err != nil {
		return nil, matrixErrorf(opRandomSymmetric, err)
	}
	o := gatherOptions(opts...)
	raw := make([]float64, n*n)
	var x float64
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			x = draw(o, low, high)
			raw[i*n+j] = x
			raw[j*n+i] = x
		}
		raw[i*n+i] = draw(o, low, high)
	}
	data, err := fromFloats(ar, raw)
	if err != nil {
		return nil, matrixErrorf(opRandomSymmetric, err)
	}

	return newDense(ar, n, n, data), nil
}

// draw returns one value uniform in [low, high).
func draw(o Options, low, high float64) float64 {
	return low + o.rng.Float64()*(high-low)
}

// fromFloats converts raw into the domain ar.
func fromFloats[T any](ar scalar.Arith[T], raw []float64) ([]T, error) {
	if fx, ok := any(raw).([]T); ok {
		return fx, nil
	}
	out := make([]T, len(raw))
	for k, v := range raw {
		d, err := ar.FromFloat64(v)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}

	return out, nil
}
