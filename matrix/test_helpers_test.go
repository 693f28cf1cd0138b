// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests,
//     benchmarks and examples.

package matrix_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

const (
	// tolInverse is the A·A⁻¹ ≈ I tolerance in float64.
	tolInverse = 1e-11

	// tolPreciseInverse is the same tolerance in the 100-digit domain.
	tolPreciseInverse = 1e-80

	// relDet is the relative tolerance for determinant identities.
	relDet = 1e-12
)

// mustFloat builds a float64 matrix or fails the test.
func mustFloat(t testing.TB, rows [][]float64) *matrix.Float {
	t.Helper()
	m, err := matrix.NewFloat(rows)
	require.NoError(t, err)

	return m
}

// mustPrecise builds a decimal matrix from float64 literals or fails the test.
func mustPrecise(t testing.TB, rows [][]float64) *matrix.Precise {
	t.Helper()
	p, err := matrix.PreciseFromFloat(mustFloat(t, rows))
	require.NoError(t, err)

	return p
}

// mustDecimal parses s or fails the test.
func mustDecimal(t testing.TB, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	return d
}

// dominant returns a seeded n×n matrix over ar with entries in [-1, 1) and
// n added to every diagonal entry, so naive elimination never meets a small
// pivot.
func dominant[T any](t testing.TB, ar scalar.Arith[T], n int, seed uint64) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Random(ar, n, n, -1, 1, matrix.WithSeed(seed))
	require.NoError(t, err)
	shift, err := matrix.Identity(ar, n)
	require.NoError(t, err)
	scaled, err := matrix.Identity(ar, n) // reused as accumulator for n·I
	require.NoError(t, err)
	for k := 1; k < n; k++ {
		scaled, err = scaled.Add(shift)
		require.NoError(t, err)
	}
	out, err := m.Add(scaled)
	require.NoError(t, err)

	return out
}

// requireRelClose asserts |want-got| <= rel·max(1, |want|).
func requireRelClose(t testing.TB, want, got, rel float64) {
	t.Helper()
	scale := math.Max(1, math.Abs(want))
	require.LessOrEqual(t, math.Abs(want-got), rel*scale, "want %v, got %v", want, got)
}

// requireEqualWithin asserts EqualWithin(a, b, eps) holds.
func requireEqualWithin[T any](t testing.TB, a, b *matrix.Dense[T], eps float64) {
	t.Helper()
	ok, err := matrix.EqualWithin(a, b, eps)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ by more than %g:\n%s\n---\n%s", eps, a, b)
}
