// SPDX-License-Identifier: MIT

// Package scalar defines the numeric domains the linalg packages compute in.
//
// What:
//
//	Arith[T] is the capability set every algorithm in kernel, matrix and solver
//	is written against: add, subtract, multiply, divide, negate, compare,
//	zero test and absolute value, plus conversions and formatting.
//
// Domains:
//   - Float64: native IEEE-754 binary64. Division by zero never fails; it
//     yields ±Inf or NaN and the value propagates through later arithmetic.
//   - Decimal(p): arbitrary-precision decimal backed by
//     github.com/cockroachdb/apd/v3. Every operation rounds through one shared
//     context of p significant digits (round-half-up). Division by zero fails
//     with ErrDivisionByZero. Precise is Decimal(100).
//
// Determinism:
//
//	Both domains are pure: inputs are never mutated and every operation returns
//	a fresh value. Results depend only on operand values and call order, so an
//	algorithm that fixes its accumulation order is bit-for-bit reproducible.
//
// Usage:
//
//	ar := scalar.Precise
//	x, _ := ar.FromFloat64(0.1)
//	y := ar.Mul(x, x)
//	fmt.Println(ar.Format(y)) // +1.000000e-02
package scalar
