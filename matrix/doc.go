// Package matrix is a dense real-valued linear-algebra core.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols container with bounds-checked At/Set.
//   - Arithmetic: Add, Sub, Mul, Scale, Transpose, Trace.
//   - Row reduction: RREF (Gauss-Jordan) and Rank.
//   - Determinant by partially pivoted LU elimination.
//   - Solve (Gaussian elimination + back substitution) and Inverse.
//   - Eigenvalues by the unshifted QR algorithm over classical Gram-Schmidt.
//
// Every operation returns a fresh *Dense; inputs are read-only. A single
// tolerance, Epsilon (1e-10), decides when a value counts as zero for
// pivoting, convergence and cleanup; pass WithEpsilon to override it for one
// call. Failures are sentinel errors (ErrDimension family, ErrOutOfRange,
// ErrNonSquare, ErrSingular) matched with errors.Is.
//
// Determinant and Solve differ on purpose for a singular input: Determinant
// returns 0, Solve returns ErrSingular.
//
// Eigenvalues suits matrices with real, separable eigenvalues (symmetric
// ones in particular). Complex-conjugate pairs never converge; the capped
// estimate is returned and EigenvaluesReport says so.
package matrix
