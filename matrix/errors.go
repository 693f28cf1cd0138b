// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (wrapped with an operation tag) and tests
// match them via errors.Is. No exported function panics on user input; the
// WithX option constructors are the only panicking surface.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/kernel"
)

var (
	// ErrInvalidDimensions indicates a nil/empty grid or a non-positive size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that an input row does not have the column count
	// of the first row.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilEntry indicates a nil decimal in a construction grid.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrNilArith indicates that a nil scalar domain was supplied.
	ErrNilArith = errors.New("matrix: nil scalar domain")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// of different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeEpsilon indicates a negative (or NaN) tolerance.
	ErrNegativeEpsilon = errors.New("matrix: epsilon must be >= 0")

	// ErrBadRange indicates low > high in a random factory.
	ErrBadRange = errors.New("matrix: low must be <= high")
)

// Sentinels shared with the elimination kernel, so errors.Is matches across
// both packages.
var (
	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = kernel.ErrNonSquare

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = kernel.ErrSingular
)

// Operation tags used in error wrapping.
const (
	opNew             = "New"
	opAt              = "At"
	opRow             = "Row"
	opMul             = "Mul"
	opAdd             = "Add"
	opSub             = "Sub"
	opCondition       = "ConditionNumber"
	opGaussJordan     = "GaussJordan"
	opDeterminant     = "Determinant"
	opInverse         = "Inverse"
	opEigenvalues     = "Eigenvalues"
	opEqualWithin     = "EqualWithin"
	opTriangular      = "IsTriangular"
	opInvertible      = "IsInvertible"
	opPositive        = "IsPositiveDefinite"
	opIdentity        = "Identity"
	opRandom          = "Random"
	opUpperTriangular = "UpperTriangular"
	opRandomSymmetric = "RandomSymmetric"
	opFromGonum       = "FromGonum"
	opPreciseFrom     = "PreciseFromFloat"
)

// matrixErrorf prefixes err with an operation tag; errors.Is still matches.
// Callers must not pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
