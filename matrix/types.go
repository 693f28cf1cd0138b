// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/linalg/scalar"
)

// Dense is an immutable r×c matrix over the scalar domain ar, stored
// row-major in a flat buffer (offset = i*c + j).
//
// A Dense is created by a validating constructor or a factory and never
// changes afterwards; every transformation allocates a new Dense bound to the
// receiver's domain. Decimal entries are shared between matrices, which is
// safe because scalar domains never mutate their operands.
type Dense[T any] struct {
	r, c int             // rows and columns, both >= 1
	data []T             // len == r*c
	ar   scalar.Arith[T] // arithmetic for every operation on data
}

// Float is a matrix over native float64.
type Float = Dense[float64]

// Precise is a matrix over 100-digit decimals (or any scalar.Decimal domain).
type Precise = Dense[*apd.Decimal]
