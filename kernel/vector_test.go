package kernel_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/scalar"
)

// TestRegionValidation runs every primitive through the same invalid regions.
func TestRegionValidation(t *testing.T) {
	t.Parallel()

	primitives := map[string]func(x []float64, start, inc, n int) error{
		"Fill":   func(x []float64, s, i, n int) error { return kernel.Fill(x, s, i, n, 1) },
		"Negate": kernel.Negate,
		"Scale":  func(x []float64, s, i, n int) error { return kernel.Scale(x, s, i, n, 2) },
		"Divide": func(x []float64, s, i, n int) error { return kernel.Divide(x, s, i, n, 2) },
		"Axpy":   func(x []float64, s, i, n int) error { return kernel.Axpy(x, s, 0, i, n, 2) },
	}
	cases := []struct {
		name  string
		x     []float64
		start int
		inc   int
		n     int
		want  error
	}{
		{"negative count", make([]float64, 4), 0, 1, -1, kernel.ErrInvalidCount},
		{"zero increment", make([]float64, 4), 0, 0, 2, kernel.ErrInvalidIncrement},
		{"negative increment", make([]float64, 4), 0, -1, 2, kernel.ErrInvalidIncrement},
		{"nil buffer", nil, 0, 1, 0, kernel.ErrNilBuffer},
		{"short buffer", make([]float64, 2), 0, 1, 3, kernel.ErrOutOfRange},
		{"span past end", make([]float64, 4), 2, 1, 3, kernel.ErrOutOfRange},
		{"negative start", make([]float64, 4), -1, 1, 2, kernel.ErrOutOfRange},
		{"start overflows span", make([]float64, 3), math.MaxInt, 1, 1, kernel.ErrOutOfRange},
		{"start overflows empty span", make([]float64, 3), math.MaxInt, 1, 0, kernel.ErrOutOfRange},
	}
	for name, fn := range primitives {
		for _, tc := range cases {
			err := fn(tc.x, tc.start, tc.inc, tc.n)
			assert.ErrorIs(t, err, tc.want, "%s: %s", name, tc.name)
		}
	}
}

// TestFill_Stride checks the span semantics: slots start, start+inc, … < start+n.
func TestFill_Stride(t *testing.T) {
	t.Parallel()

	x := make([]float64, 7)
	require.NoError(t, kernel.Fill(x, 1, 3, 6, 9))
	assert.Equal(t, []float64{0, 9, 0, 0, 9, 0, 0}, x)

	require.NoError(t, kernel.Fill(x, 0, 1, 0, 5), "empty region is a no-op")
	assert.Equal(t, []float64{0, 9, 0, 0, 9, 0, 0}, x)
}

// TestNegate flips signs inside the region only.
func TestNegate(t *testing.T) {
	t.Parallel()

	x := []float64{1, -2, 3, -4}
	require.NoError(t, kernel.Negate(x, 1, 1, 2))
	assert.Equal(t, []float64{1, 2, -3, -4}, x)
}

// TestScale_FastPaths covers α ∈ {1, 0, −1} and the general case.
func TestScale_FastPaths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		alpha float64
		want  []float64
	}{
		{1, []float64{1, 2, 3, 4}},
		{0, []float64{1, 0, 0, 4}},
		{-1, []float64{1, -2, -3, 4}},
		{2.5, []float64{1, 5, 7.5, 4}},
	}
	for _, tc := range cases {
		x := []float64{1, 2, 3, 4}
		require.NoError(t, kernel.Scale(x, 1, 1, 2, tc.alpha))
		assert.Equal(t, tc.want, x, "alpha=%g", tc.alpha)
	}
}

// TestDivide covers the fast paths and IEEE division by zero.
func TestDivide(t *testing.T) {
	t.Parallel()

	x := []float64{2, 4, 6}
	require.NoError(t, kernel.Divide(x, 0, 1, 3, 1))
	assert.Equal(t, []float64{2, 4, 6}, x)

	require.NoError(t, kernel.Divide(x, 0, 1, 3, -1))
	assert.Equal(t, []float64{-2, -4, -6}, x)

	require.NoError(t, kernel.Divide(x, 0, 2, 3, -2))
	assert.Equal(t, []float64{1, -4, 3}, x)

	require.NoError(t, kernel.Divide(x, 0, 1, 1, 0))
	assert.True(t, math.IsInf(x[0], 1))
}

// TestScaleDivide_NaNAlpha checks that a NaN factor never matches the
// α = ±1 fast paths and poisons the region as IEEE arithmetic would.
func TestScaleDivide_NaNAlpha(t *testing.T) {
	t.Parallel()

	x := []float64{2, 3, 5}
	require.NoError(t, kernel.Scale(x, 0, 1, 2, math.NaN()))
	assert.True(t, math.IsNaN(x[0]) && math.IsNaN(x[1]), "scaled: %v", x)
	assert.Equal(t, 5.0, x[2])

	y := []float64{2, 3, 5}
	require.NoError(t, kernel.Divide(y, 0, 1, 2, math.NaN()))
	assert.True(t, math.IsNaN(y[0]) && math.IsNaN(y[1]), "divided: %v", y)
	assert.Equal(t, 5.0, y[2])
}

// TestAxpy_HugeStartIsRejected covers both regions of Axpy against an
// overflowing start.
func TestAxpy_HugeStartIsRejected(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3}
	assert.ErrorIs(t, kernel.Axpy(x, math.MaxInt, 0, 1, 1, 2), kernel.ErrOutOfRange)
	assert.ErrorIs(t, kernel.Axpy(x, 0, math.MaxInt, 1, 1, 2), kernel.ErrOutOfRange)
	assert.Equal(t, []float64{1, 2, 3}, x)
}

// TestDivideOf_DecimalZeroLeavesBufferIntact verifies the error path of the
// decimal domain does not leak a partial update.
func TestDivideOf_DecimalZeroLeavesBufferIntact(t *testing.T) {
	t.Parallel()

	ar := scalar.Precise
	x := decimals(t, []float64{1, 2, 3})
	err := kernel.DivideOf(ar, x, 0, 1, 3, ar.Zero())
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
	assert.Equal(t, "1", x[0].String())
	assert.Equal(t, "3", x[2].String())

	require.NoError(t, kernel.DivideOf(ar, x, 0, 1, 3, mustDecimal(t, "4")))
	assert.Equal(t, 0, x[0].Cmp(mustDecimal(t, "0.25")))
	assert.Equal(t, 0, x[2].Cmp(mustDecimal(t, "0.75")))
}

// TestAxpy checks unit and strided accumulation within one buffer.
func TestAxpy(t *testing.T) {
	t.Parallel()

	// x[0..2] += 2 * x[3..5]
	x := []float64{1, 1, 1, 1, 2, 3}
	require.NoError(t, kernel.Axpy(x, 0, 3, 1, 3, 2))
	assert.Equal(t, []float64{3, 5, 7, 1, 2, 3}, x)

	// Stride 2 over a span of 3 touches offsets 0 and 2.
	y := []float64{0, 0, 0, 10, 20, 30}
	require.NoError(t, kernel.Axpy(y, 0, 3, 2, 3, 1))
	if diff := cmp.Diff([]float64{10, 0, 30, 10, 20, 30}, y); diff != "" {
		t.Fatalf("strided axpy mismatch (-want +got):\n%s", diff)
	}

	// alpha == 0 never touches the buffer, even with Inf in the source.
	z := []float64{1, math.Inf(1)}
	require.NoError(t, kernel.Axpy(z, 0, 1, 1, 1, 0))
	assert.Equal(t, 1.0, z[0])

	// The source region is validated on its own.
	err := kernel.Axpy(x, 0, 5, 1, 2, 1)
	require.ErrorIs(t, err, kernel.ErrOutOfRange)
}

// TestAxpyOf_Decimal runs the generic path.
func TestAxpyOf_Decimal(t *testing.T) {
	t.Parallel()

	ar := scalar.Precise
	x := decimals(t, []float64{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, kernel.AxpyOf(ar, x, 0, 2, 1, 2, mustDecimal(t, "-2")))
	assert.Equal(t, 0, x[0].Cmp(mustDecimal(t, "-0.5")))
	assert.Equal(t, 0, x[1].Cmp(mustDecimal(t, "-0.6")))
}
