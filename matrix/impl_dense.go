// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), constructors and safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Clone/Raw: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtShape  = "%dx%d\n"
	_fmtColSep = ", "
	_fmtRowSep = "\n"
)

// New builds a matrix over ar from a rectangular grid of values.
//
// Implementation:
//   - Stage 1: validate domain, grid (non-nil, ≥1 row, ≥1 column) and that
//     every row has the length of the first one.
//   - Stage 2: copy rows into a fresh row-major buffer.
//
// Behavior highlights:
//   - The grid is copied; later edits to rows do not affect the matrix.
//   - Validation happens before allocation.
//
// Errors:
//   - ErrNilArith, ErrInvalidDimensions, ErrRaggedRows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](ar scalar.Arith[T], rows [][]T) (*Dense[T], error) {
	if ar == nil {
		return nil, matrixErrorf(opNew, ErrNilArith)
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("no rows: %w", ErrInvalidDimensions))
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("no columns: %w", ErrInvalidDimensions))
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows))
		}
	}

	data := make([]T, len(rows)*cols)
	for i, row := range rows {
		copy(data[i*cols:(i+1)*cols], row)
	}

	return newDense(ar, len(rows), cols, data), nil
}

// NewFloat builds a float64 matrix. See New.
func NewFloat(rows [][]float64) (*Float, error) {
	return New(scalar.Float64, rows)
}

// NewPrecise builds a 100-digit decimal matrix. In addition to New's checks
// it rejects nil entries with ErrNilEntry.
func NewPrecise(rows [][]*apd.Decimal) (*Precise, error) {
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				return nil, matrixErrorf(opNew, fmt.Errorf("(%d,%d): %w", i, j, ErrNilEntry))
			}
		}
	}

	return New(scalar.Precise, rows)
}

// PreciseFromFloat converts m into the 100-digit decimal domain using the
// shortest decimal that round-trips each entry.
// Errors: ErrNilMatrix, scalar.ErrNotFinite (for NaN/Inf entries).
func PreciseFromFloat(m *Float) (*Precise, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opPreciseFrom, err)
	}
	data := make([]*apd.Decimal, len(m.data))
	for k, v := range m.data {
		d, err := scalar.Precise.FromFloat64(v)
		if err != nil {
			return nil, matrixErrorf(opPreciseFrom, fmt.Errorf("(%d,%d): %w", k/m.c, k%m.c, err))
		}
		data[k] = d
	}

	return newDense(scalar.Precise, m.r, m.c, data), nil
}

// ToFloat converts any matrix into the float64 domain (nearest float64).
func ToFloat[T any](m *Dense[T]) (*Float, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = m.ar.Float64(v)
	}

	return newDense(scalar.Float64, m.r, m.c, data), nil
}

// newDense wraps an already validated buffer without copying it.
func newDense[T any](ar scalar.Arith[T], r, c int, data []T) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: data, ar: ar}
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// Arith returns the scalar domain of m.
func (m *Dense[T]) Arith() scalar.Arith[T] { return m.ar }

// IsSquare reports whether rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// At returns the entry at (i, j).
// Errors: ErrOutOfRange unless 0 <= i < Rows() and 0 <= j < Cols().
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	if err := validateIndex(m.r, m.c, i, j); err != nil {
		var zero T
		return zero, matrixErrorf(opAt, err)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := validateIndex(m.r, m.c, i, 0); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Diagonal returns the entries (i, i) for i < min(rows, cols).
func (m *Dense[T]) Diagonal() []T {
	n := min(m.r, m.c)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// Raw returns a copy of the row-major backing buffer.
func (m *Dense[T]) Raw() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns an independent copy of m.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return newDense(m.ar, m.r, m.c, m.Raw())
}

// String renders "RxC" on the first line followed by one line per row, with
// entries in signed exponential notation separated by ", ". There is no
// trailing newline. Diagnostic only; not meant to be parsed.
func (m *Dense[T]) String() string {
	if m == nil || m.ar == nil {
		return "<nil>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtShape, m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.ar.Format(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtColSep)
			}
		}
		if i < m.r-1 {
			sb.WriteString(_fmtRowSep)
		}
	}

	return sb.String()
}

// EqualWithin reports whether a and b have the same shape and every pair of
// entries differs by at most eps in absolute value. A nil operand or a shape
// difference yields false; a NaN entry never compares equal.
//
// Errors:
//   - ErrNegativeEpsilon when eps < 0 or eps is NaN.
//
// Complexity:
//   - Time O(r*c), Space O(1) for float64.
func EqualWithin[T any](a, b *Dense[T], eps float64) (bool, error) {
	if math.IsNaN(eps) || eps < 0 {
		return false, matrixErrorf(opEqualWithin, fmt.Errorf("eps=%g: %w", eps, ErrNegativeEpsilon))
	}
	if validateBinary(a, b) != nil || validateSameShape(a, b) != nil {
		return false, nil
	}
	if math.IsInf(eps, 1) {
		return true, nil
	}

	// Fast path: native floats.
	if fa, ok := any(a.data).([]float64); ok {
		fb := any(b.data).([]float64)
		for k := range fa {
			if !(math.Abs(fa[k]-fb[k]) <= eps) {
				return false, nil
			}
		}
		return true, nil
	}

	ar := a.ar
	tol, err := ar.FromFloat64(eps)
	if err != nil {
		return false, matrixErrorf(opEqualWithin, err)
	}
	for k := range a.data {
		if ar.Cmp(ar.Abs(ar.Sub(a.data[k], b.data[k])), tol) > 0 {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact equality: same domain, same shape and identical
// entries (EqualWithin with eps = 0).
func Equal[T any](a, b *Dense[T]) bool {
	if validateBinary(a, b) != nil || a.ar.Name() != b.ar.Name() {
		return false
	}
	ok, _ := EqualWithin(a, b, 0)

	return ok
}
