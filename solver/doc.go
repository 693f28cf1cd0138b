// Package solver provides iterative solvers for A·x = b over matrix.Dense.
//
// Jacobi updates every unknown from the previous full iterate:
//
//	xNew[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// starting from x = 0, and stops when max_i |xNew[i] − x[i]| ≤ tolerance or
// after the iteration budget. Exhausting the budget is not an error: the last
// iterate is returned and Stats reports whether the tolerance was met.
// Convergence is guaranteed for strictly diagonally dominant A.
package solver
