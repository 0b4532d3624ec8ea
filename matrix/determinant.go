// SPDX-License-Identifier: MIT

package matrix

import "math"

// Determinant computes det(m) by partially pivoted LU elimination.
// Implementation:
//   - Stage 1: Validate square; copy into a workspace; det := 1.
//   - Stage 2: for each column i: pick the row ≥ i with the largest |value|
//     in column i, swap it up (negating det), multiply det by the pivot and
//     eliminate below.
//
// Behavior highlights:
//   - A pivot with |pivot| < eps means the matrix is singular: the result is
//     (0, nil). This is a value, not a failure; Solve reports ErrSingular on
//     the same condition instead.
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)

	w, err := newWorkspace(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := len(w.rows)
	det := 1.0
	var i, k, p int
	var pivot float64
	for i = 0; i < n; i++ {
		if p = w.argMaxAbs(i, i); p != i {
			w.swap(i, p)
			det = -det
		}

		pivot = w.rows[i][i]
		if math.Abs(pivot) < o.eps {
			return 0, nil
		}
		det *= pivot

		for k = i + 1; k < n; k++ {
			w.addScaled(k, i, w.rows[k][i]/pivot, i)
		}
	}

	return det, nil
}
