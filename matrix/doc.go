// Package matrix provides Dense[T], an immutable row-major matrix generic
// over a scalar domain (see package scalar), and the elimination family
// built on it.
//
// The package provides:
//
//   - Construction from rectangular grids (New, NewFloat, NewPrecise,
//     PreciseFromFloat) and named factories (Identity, Random,
//     UpperTriangular, RandomSymmetric).
//   - Structural predicates: square, symmetric, triangular, diagonal,
//     invertible, positive definite.
//   - Arithmetic: Mul, Add, Sub, Transpose, Norm, ConditionNumber.
//   - Elimination: GaussJordan (one-pass triangularization), Determinant,
//     Inverse (full Gauss-Jordan on [A | I]) and Eigenvalues, which returns
//     the triangularized diagonal and is exact only for triangular input.
//   - Tolerance comparison (EqualWithin, Equal) and a diagnostic String.
//   - Interop with gonum (ToGonum, FromGonum) for the float64 domain.
//
// Every operation returns a freshly allocated result; receivers are never
// mutated. Elimination delegates to the generic core of package kernel over
// the matrix's flat buffer, so float64 and decimal matrices run exactly the
// same algorithm with different arithmetic.
//
// No pivoting is performed. A zero pivot propagates as ±Inf/NaN in the
// float64 domain and fails with scalar.ErrDivisionByZero in decimal domains.
package matrix
