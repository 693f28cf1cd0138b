// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant decimal digits of Precise.
const DefaultPrecision = 100

// formatDigits is the number of significant digits Format keeps (%+.6e).
const formatDigits = 7

const panicPrecisionInvalid = "scalar: Decimal: precision must be > 0"

// decimalTraps lists the conditions that surface as errors. Overflow and
// invalid-operation results are kept as Inf/NaN forms instead, so Add, Sub
// and Mul cannot fail.
const decimalTraps = apd.DivisionByZero | apd.DivisionUndefined | apd.DivisionImpossible

// Precise is the 100-digit decimal domain.
var Precise = Decimal(DefaultPrecision)

// Decimal returns an arbitrary-precision decimal domain rounding every
// operation to precision significant digits (round-half-up).
// Panics if precision is zero.
func Decimal(precision uint32) Arith[*apd.Decimal] {
	if precision == 0 {
		panic(panicPrecisionInvalid)
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfUp
	ctx.Traps = decimalTraps

	display := apd.BaseContext.WithPrecision(formatDigits)
	display.Rounding = apd.RoundHalfUp
	display.Traps = 0

	return decimalArith{
		ctx:     ctx,
		display: display,
		name:    fmt.Sprintf("decimal(%d)", precision),
	}
}

type decimalArith struct {
	ctx     *apd.Context // arithmetic context shared by every operation
	display *apd.Context // 7-digit context used only by Format
	name    string
}

func (d decimalArith) Name() string             { return d.name }
func (decimalArith) Zero() *apd.Decimal         { return apd.New(0, 0) }
func (decimalArith) One() *apd.Decimal          { return apd.New(1, 0) }
func (decimalArith) IsZero(x *apd.Decimal) bool { return x.IsZero() }
func (decimalArith) Cmp(x, y *apd.Decimal) int  { return x.Cmp(y) }

func (decimalArith) Equal(x, y *apd.Decimal) bool {
	if isNaN(x) || isNaN(y) {
		return false
	}

	return x.Cmp(y) == 0
}

func isNaN(x *apd.Decimal) bool { return x.Form == apd.NaN || x.Form == apd.NaNSignaling }

// FromFloat64 uses the shortest decimal representation that round-trips to f.
func (decimalArith) FromFloat64(f float64) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotFinite
	}
	out, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return nil, fmt.Errorf("FromFloat64(%g): %w", f, err)
	}

	return out, nil
}

func (decimalArith) Float64(x *apd.Decimal) float64 {
	f, err := x.Float64()
	if err != nil {
		// Out-of-range magnitudes saturate the way strconv does.
		if x.Negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	return f
}

// Add, Sub, Mul, Neg and Abs ignore the returned condition: no trapped
// condition can be raised by them (see decimalTraps).

func (d decimalArith) Add(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Add(out, x, y)
	return out
}

func (d decimalArith) Sub(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Sub(out, x, y)
	return out
}

func (d decimalArith) Mul(x, y *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Mul(out, x, y)
	return out
}

func (d decimalArith) Neg(x *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Neg(out, x)
	return out
}

func (d decimalArith) Abs(x *apd.Decimal) *apd.Decimal {
	out := new(apd.Decimal)
	_, _ = d.ctx.Abs(out, x)
	return out
}

func (d decimalArith) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	out := new(apd.Decimal)
	if _, err := d.ctx.Quo(out, x, y); err != nil {
		return nil, errors.Join(ErrDivisionByZero, err)
	}

	return out, nil
}

// Format rounds to seven significant digits in decimal first, so the float64
// round trip only has to carry a 7-digit value and prints it exactly.
func (d decimalArith) Format(x *apd.Decimal) string {
	rounded := new(apd.Decimal)
	_, _ = d.display.Round(rounded, x)
	f, err := rounded.Float64()
	if err != nil || math.IsInf(f, 0) {
		return rounded.Text('e')
	}

	return fmt.Sprintf("%+.6e", f)
}
