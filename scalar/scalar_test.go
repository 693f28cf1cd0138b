package scalar_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
)

// TestFloat64_DivisionByZeroIsSilent verifies that the native domain follows
// IEEE-754 instead of reporting an error.
func TestFloat64_DivisionByZeroIsSilent(t *testing.T) {
	ar := scalar.Float64

	q, err := ar.Quo(1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(q, 1), "1/0 must be +Inf")

	q, err = ar.Quo(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(q), "0/0 must be NaN")
}

// TestFloat64_Basics checks the capability set against plain operators.
func TestFloat64_Basics(t *testing.T) {
	ar := scalar.Float64

	assert.Equal(t, "float64", ar.Name())
	assert.Equal(t, 0.0, ar.Zero())
	assert.Equal(t, 1.0, ar.One())
	assert.Equal(t, 5.0, ar.Add(2, 3))
	assert.Equal(t, -1.0, ar.Sub(2, 3))
	assert.Equal(t, 6.0, ar.Mul(2, 3))
	assert.Equal(t, -2.0, ar.Neg(2))
	assert.Equal(t, 2.0, ar.Abs(-2))
	assert.Equal(t, -1, ar.Cmp(1, 2))
	assert.Equal(t, 1, ar.Cmp(2, 1))
	assert.Equal(t, 0, ar.Cmp(2, 2))
	assert.True(t, ar.Equal(2, 2))
	assert.False(t, ar.Equal(2, 3))
	assert.False(t, ar.Equal(math.NaN(), math.NaN()), "NaN is never equal")
	assert.Equal(t, 0, ar.Cmp(math.NaN(), 1), "Cmp stays NaN-tolerant")
	assert.True(t, ar.IsZero(0))
	assert.False(t, ar.IsZero(1e-300))
}

// TestFormat checks the signed exponential rendering in both domains.
func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "+0.000000e+00"},
		{1, "+1.000000e+00"},
		{-2.5, "-2.500000e+00"},
		{123456.789, "+1.234568e+05"},
		{0.000123, "+1.230000e-04"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scalar.Float64.Format(tc.in), "float64 %g", tc.in)

		d, err := scalar.Precise.FromFloat64(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, scalar.Precise.Format(d), "decimal %g", tc.in)
	}
}

// TestDecimal_DivisionByZero verifies that the decimal domain refuses x/0.
func TestDecimal_DivisionByZero(t *testing.T) {
	ar := scalar.Precise

	_, err := ar.Quo(ar.One(), ar.Zero())
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	_, err = ar.Quo(ar.Zero(), ar.Zero())
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

// TestDecimal_PrecisionIsHonored checks that 1/3 carries exactly 100 digits.
func TestDecimal_PrecisionIsHonored(t *testing.T) {
	ar := scalar.Precise

	three, err := ar.FromFloat64(3)
	require.NoError(t, err)
	q, err := ar.Quo(ar.One(), three)
	require.NoError(t, err)

	assert.Equal(t, int64(100), q.NumDigits(), "quotient must be rounded to the context precision")

	// 3 * (1/3) = 0.999…9 (100 nines) under a 100-digit context.
	back := ar.Mul(q, three)
	assert.Equal(t, -1, back.Cmp(ar.One()))
	diff := ar.Abs(ar.Sub(back, ar.One()))
	want := apd.New(1, -100)
	assert.Equal(t, 0, diff.Cmp(want), "residual must be exactly one unit in the last place")
}

// TestDecimal_NoMutation verifies that operands are never written to.
func TestDecimal_NoMutation(t *testing.T) {
	ar := scalar.Precise
	x := apd.New(15, -1) // 1.5
	y := apd.New(-25, -1)

	_ = ar.Add(x, y)
	_ = ar.Mul(x, y)
	_ = ar.Neg(x)
	_ = ar.Abs(y)
	_, _ = ar.Quo(x, y)

	assert.Equal(t, "1.5", x.String())
	assert.Equal(t, "-2.5", y.String())
}

// TestDecimal_FromFloat64 checks shortest-representation conversion and the
// rejection of non-finite inputs.
func TestDecimal_FromFloat64(t *testing.T) {
	ar := scalar.Precise

	d, err := ar.FromFloat64(0.1)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(apd.New(1, -1)), "0.1 must convert to exactly 1E-1")
	assert.Equal(t, 0.1, ar.Float64(d))

	_, err = ar.FromFloat64(math.NaN())
	require.ErrorIs(t, err, scalar.ErrNotFinite)
	_, err = ar.FromFloat64(math.Inf(-1))
	require.ErrorIs(t, err, scalar.ErrNotFinite)
}

// TestDecimal_ZeroPrecisionPanics mirrors the option-constructor policy.
func TestDecimal_ZeroPrecisionPanics(t *testing.T) {
	assert.Panics(t, func() { scalar.Decimal(0) })
	assert.Equal(t, "decimal(30)", scalar.Decimal(30).Name())
}

// TestDecimal_Equal checks numeric equality across representations and NaN.
func TestDecimal_Equal(t *testing.T) {
	ar := scalar.Precise
	one := apd.New(1, 0)
	oneScaled := apd.New(100, -2) // 1.00

	assert.True(t, ar.Equal(one, oneScaled))
	assert.False(t, ar.Equal(one, apd.New(2, 0)))
	nan := &apd.Decimal{Form: apd.NaN}
	assert.False(t, ar.Equal(nan, nan))
	assert.False(t, ar.Equal(one, nan))
}
