// Package matrix_test contains unit tests for Dense construction, accessors,
// rendering and comparison.
package matrix_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
)

// TestNew_InvalidInput covers every construction error.
func TestNew_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil grid", nil, matrix.ErrInvalidDimensions},
		{"zero rows", [][]float64{}, matrix.ErrInvalidDimensions},
		{"zero columns", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged short", [][]float64{{1, 2}, {3}}, matrix.ErrRaggedRows},
		{"ragged long", [][]float64{{1}, {2, 3}}, matrix.ErrRaggedRows},
	}
	for _, tc := range cases {
		_, err := matrix.NewFloat(tc.rows)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err := matrix.New[float64](nil, [][]float64{{1}})
	require.ErrorIs(t, err, matrix.ErrNilArith)

	_, err = matrix.NewPrecise([][]*apd.Decimal{{apd.New(1, 0), nil}})
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

// TestNew_CopiesGrid ensures later edits to the grid do not leak in.
func TestNew_CopiesGrid(t *testing.T) {
	t.Parallel()

	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := mustFloat(t, grid)
	grid[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())
	assert.Equal(t, "float64", m.Arith().Name())
}

// TestAt_OutOfRange checks every sign/bound combination around a 2×2 matrix.
func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	m := mustFloat(t, [][]float64{{1, 2}, {3, 4}})
	for _, ij := range [][2]int{
		{-1, 0}, {0, -1}, {-1, -1}, {2, 0},
		{0, 2}, {2, 2}, {-1, 2}, {2, -1},
	} {
		_, err := m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
	}

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestRowDiagonalClone covers the copying accessors.
func TestRowDiagonalClone(t *testing.T) {
	t.Parallel()

	m := mustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)
	row[0] = -1
	v, _ := m.At(1, 0)
	assert.Equal(t, 4.0, v, "Row must return a copy")

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, []float64{1, 5}, m.Diagonal())

	raw := m.Raw()
	raw[0] = 42
	assert.Equal(t, 1.0, m.Raw()[0], "Raw must return a copy")

	c := m.Clone()
	assert.True(t, matrix.Equal(m, c))
	assert.NotSame(t, m, c)
}

// TestString pins the diagnostic rendering.
func TestString(t *testing.T) {
	t.Parallel()

	m := mustFloat(t, [][]float64{{1, -2.5}, {0, 123456.789}})
	want := "2x2\n" +
		"+1.000000e+00, -2.500000e+00\n" +
		"+0.000000e+00, +1.234568e+05"
	assert.Equal(t, want, m.String())

	third, err := scalar.Precise.Quo(scalar.Precise.One(), mustDecimal(t, "3"))
	require.NoError(t, err)
	p, err := matrix.NewPrecise([][]*apd.Decimal{{third}})
	require.NoError(t, err)
	assert.Equal(t, "1x1\n+3.333333e-01", p.String())

	var nilM *matrix.Float
	assert.Equal(t, "<nil>", nilM.String())
}

// TestEqualWithin covers the tolerance contract in both domains.
func TestEqualWithin(t *testing.T) {
	t.Parallel()

	a := mustFloat(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFloat(t, [][]float64{{1, 2}, {3, 4.001}})

	_, err := matrix.EqualWithin(a, b, -1e-9)
	require.ErrorIs(t, err, matrix.ErrNegativeEpsilon)
	_, err = matrix.EqualWithin(a, b, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNegativeEpsilon)

	ok, err := matrix.EqualWithin(a, b, 1e-2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.EqualWithin(a, b, 1e-4)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.EqualWithin(a, mustFloat(t, [][]float64{{1, 2, 3}}), 10)
	require.NoError(t, err)
	assert.False(t, ok, "shape differences are never equal")

	ok, err = matrix.EqualWithin(a, nil, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	withNaN := mustFloat(t, [][]float64{{math.NaN()}})
	assert.False(t, matrix.Equal(withNaN, withNaN.Clone()))

	pa := mustPrecise(t, [][]float64{{0.1, 0.2}})
	pb := mustPrecise(t, [][]float64{{0.1, 0.2000001}})
	ok, err = matrix.EqualWithin(pa, pb, 1e-7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.EqualWithin(pa, pb, 1e-8)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEqual_RequiresSameDomain: identical values under two decimal contexts
// are not strictly equal.
func TestEqual_RequiresSameDomain(t *testing.T) {
	t.Parallel()

	grid := [][]*apd.Decimal{{apd.New(1, 0), apd.New(5, -1)}}
	p, err := matrix.NewPrecise(grid)
	require.NoError(t, err)
	q, err := matrix.New(scalar.Decimal(50), grid)
	require.NoError(t, err)

	assert.True(t, matrix.Equal(p, p.Clone()))
	assert.False(t, matrix.Equal(p, q))

	ok, err := matrix.EqualWithin(p, q, 0)
	require.NoError(t, err)
	assert.True(t, ok, "tolerance comparison looks at values only")
}

// TestConversions covers PreciseFromFloat and ToFloat.
func TestConversions(t *testing.T) {
	t.Parallel()

	_, err := matrix.PreciseFromFloat(mustFloat(t, [][]float64{{1, math.Inf(1)}}))
	require.ErrorIs(t, err, scalar.ErrNotFinite)

	_, err = matrix.PreciseFromFloat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	f := mustFloat(t, [][]float64{{0.1, -2}, {1e-300, 3.5}})
	p, err := matrix.PreciseFromFloat(f)
	require.NoError(t, err)
	v, err := p.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Cmp(mustDecimal(t, "0.1")))

	back, err := matrix.ToFloat(p)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(f, back))
}
