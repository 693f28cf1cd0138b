// Package bench holds the benchmark and demo runners behind the linalg CLI:
// timed matrix inversion in the float64, decimal and raw-kernel
// representations, and a 100-digit Jacobi demo on a random tridiagonal
// system.
package bench
