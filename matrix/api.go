// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Thin function forms of the Dense methods, for call sites that read better
// as Mul(a, b) than a.Mul(b). Each facade delegates without extra logic.

package matrix

import "github.com/katalvlaran/linalg/scalar"

// NewIdentity returns the n×n float64 identity.
func NewIdentity(n int) (*Float, error) { return Identity(scalar.Float64, n) }

// NewPreciseIdentity returns the n×n 100-digit decimal identity.
func NewPreciseIdentity(n int) (*Precise, error) { return Identity(scalar.Precise, n) }

// Mul is a function form of a.Mul(b).
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) { return a.Mul(b) }

// Add is a function form of a.Add(b).
func Add[T any](a, b *Dense[T]) (*Dense[T], error) { return a.Add(b) }

// Sub is a function form of a.Sub(b).
func Sub[T any](a, b *Dense[T]) (*Dense[T], error) { return a.Sub(b) }

// Inverse is a function form of m.Inverse().
func Inverse[T any](m *Dense[T]) (*Dense[T], error) { return m.Inverse() }

// Determinant is a function form of m.Determinant().
func Determinant[T any](m *Dense[T]) (T, error) { return m.Determinant() }
