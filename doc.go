// Package linalg is a small dense linear-algebra toolkit for real matrices:
// a numeric core plus the pieces needed to use it interactively.
//
// What is in the box?
//
//	• Dense row-major container with bounds-checked access
//	• Arithmetic: add, subtract, multiply, scale, transpose, trace
//	• Gauss-Jordan RREF and rank
//	• Determinant by partially pivoted LU elimination
//	• Linear solve (Gaussian elimination + back substitution) and inverse
//	• Eigenvalues by the unshifted QR algorithm (classical Gram-Schmidt)
//
// Everything is organized under these subpackages:
//
//	matrix/     - the numeric core: Dense, kernels, sentinel errors, options
//	gonumconv/  - copy-in/copy-out adapters to gonum.org/v1/gonum/mat
//	registry/   - thread-safe store of named matrices
//	calc/       - line-oriented calculator over registry + matrix
//	cmd/matcalc - the calculator as a command-line program
//	examples/   - runnable demo (graph spectra)
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	b, _ := matrix.NewFromRows([][]float64{{8}, {-11}, {-3}})
//	x, err := matrix.Solve(a, b) // x ≈ [2, 3, -1]ᵀ
//
// All kernels treat |v| below matrix.Epsilon (1e-10) as zero; pass
// matrix.WithEpsilon to change that for a single call.
package linalg
