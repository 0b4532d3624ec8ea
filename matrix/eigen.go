// SPDX-License-Identifier: MIT

package matrix

import "math"

// EigenReport describes how an Eigenvalues run ended.
type EigenReport struct {
	// Iterations is the number of QR steps performed (1..maxIter).
	Iterations int

	// Converged is true when every off-diagonal entry reached |v| ≤ eps.
	// False means the cap was hit and the values are approximate.
	Converged bool
}

// Eigenvalues estimates the eigenvalues of a square matrix with the
// unshifted QR algorithm and returns them in diagonal (row) order.
// It is EigenvaluesReport without the report.
func Eigenvalues(m Matrix, opts ...Option) ([]float64, error) {
	vals, _, err := EigenvaluesReport(m, opts...)

	return vals, err
}

// EigenvaluesReport runs the unshifted QR iteration and reports convergence.
// Implementation:
//   - Stage 1: Validate square; A₀ := copy of m.
//   - Stage 2: up to maxIter times: (Q, R) := GramSchmidt(Aₖ); Aₖ₊₁ := R·Q;
//     stop as soon as every off-diagonal |Aₖ₊₁[i,j]| ≤ eps.
//   - Stage 3: return diag(A) in row order.
//
// Behavior highlights:
//   - Never fails on non-convergence: the capped result's diagonal is
//     returned with Converged=false.
//   - Suited to matrices with real, separable eigenvalues (e.g. symmetric).
//     Complex-conjugate pairs show up as 2×2 blocks that never vanish; no
//     shifting or deflation is attempted.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(maxIter·n³), Space O(n²).
func EigenvaluesReport(m Matrix, opts ...Option) ([]float64, EigenReport, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, EigenReport{}, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)

	a, err := denseSnapshot(m)
	if err != nil {
		return nil, EigenReport{}, matrixErrorf(opEigen, err)
	}

	var rep EigenReport
	var qr qrPair
	for rep.Iterations < o.maxIter {
		qr = qrGramSchmidt(a, o.eps)
		if a, err = Mul(qr.r, qr.q); err != nil {
			return nil, EigenReport{}, matrixErrorf(opEigen, err)
		}
		rep.Iterations++

		if offDiagonalWithin(a, o.eps) {
			rep.Converged = true
			break
		}
	}

	n := a.r
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, rep, nil
}

// offDiagonalWithin reports whether every off-diagonal |a[i,j]| ≤ eps.
// NaN never satisfies the bound.
func offDiagonalWithin(a *Dense, eps float64) bool {
	n := a.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !(math.Abs(a.data[i*n+j]) <= eps) {
				return false
			}
		}
	}

	return true
}
