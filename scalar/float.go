// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
)

// Float64 is the native binary64 domain.
var Float64 Arith[float64] = float64Arith{}

type float64Arith struct{}

func (float64Arith) Name() string                           { return "float64" }
func (float64Arith) Zero() float64                          { return 0 }
func (float64Arith) One() float64                           { return 1 }
func (float64Arith) FromFloat64(f float64) (float64, error) { return f, nil }
func (float64Arith) Float64(x float64) float64              { return x }
func (float64Arith) Add(x, y float64) float64               { return x + y }
func (float64Arith) Sub(x, y float64) float64               { return x - y }
func (float64Arith) Mul(x, y float64) float64               { return x * y }
func (float64Arith) Neg(x float64) float64                  { return -x }
func (float64Arith) Abs(x float64) float64                  { return math.Abs(x) }
func (float64Arith) IsZero(x float64) bool                  { return x == 0 }

// Quo never fails: x/0 follows IEEE-754 and yields ±Inf or NaN.
func (float64Arith) Quo(x, y float64) (float64, error) { return x / y, nil }

// Cmp orders NaN as equal to everything, mirroring the fact that every
// ordered comparison against NaN is false.
func (float64Arith) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (float64Arith) Equal(x, y float64) bool { return x == y }

func (float64Arith) Format(x float64) string { return fmt.Sprintf("%+.6e", x) }
