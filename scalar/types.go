// SPDX-License-Identifier: MIT

package scalar

// Arith is the arithmetic capability set of a numeric domain over values of
// type T. Implementations must be stateless from the caller's view: methods
// never mutate their arguments and are safe for concurrent use.
type Arith[T any] interface {
	// Name identifies the domain in diagnostics ("float64", "decimal(100)").
	Name() string

	// Zero and One return the additive and multiplicative identities.
	Zero() T
	One() T

	// FromFloat64 converts a native float into the domain.
	FromFloat64(f float64) (T, error)

	// Float64 converts x to the nearest float64 (lossy for Decimal).
	Float64(x T) float64

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T

	// Quo returns x / y. Domains without a representation for x/0 return
	// ErrDivisionByZero.
	Quo(x, y T) (T, error)

	Neg(x T) T
	Abs(x T) T

	// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
	Cmp(x, y T) int

	// Equal reports x == y. Unlike Cmp, it is false whenever either side is
	// NaN.
	Equal(x, y T) bool

	IsZero(x T) bool

	// Format renders x in signed exponential notation with six fractional
	// digits (the %+.6e verb).
	Format(x T) string
}
