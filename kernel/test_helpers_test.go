// SPDX-License-Identifier: MIT
// Package kernel_test contains shared fixtures for the kernel tests.

package kernel_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
)

// seeded returns a deterministic generator so failures are reproducible.
func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// dominant builds an n×n row-major buffer with entries in [-10, 10) and a
// diagonal shifted by 10·n, which keeps naive elimination well conditioned.
func dominant(t testing.TB, n int, seed uint64) []float64 {
	t.Helper()
	rng := seeded(seed)
	m := make([]float64, n*n)
	for i := range m {
		m[i] = rng.Float64()*20 - 10
	}
	for i := 0; i < n; i++ {
		m[i*n+i] += 10 * float64(n)
	}

	return m
}

// decimals converts a float64 buffer into the Precise domain.
func decimals(t testing.TB, xs []float64) []*apd.Decimal {
	t.Helper()
	out := make([]*apd.Decimal, len(xs))
	for i, x := range xs {
		d, err := scalar.Precise.FromFloat64(x)
		require.NoError(t, err)
		out[i] = d
	}

	return out
}

// mustDecimal parses s or fails the test.
func mustDecimal(t testing.TB, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	return d
}
