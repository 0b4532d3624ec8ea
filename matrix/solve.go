// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Solve returns x such that a·x = b, for square a and an n×1 column b.
// Implementation:
//   - Stage 1: Validate a square, b n×1; build the augmented workspace [a | b].
//   - Stage 2: forward elimination with partial pivoting (as Determinant).
//   - Stage 3: back substitution from the last row upward:
//     x[i] = (aug[i][n] − Σ_{j>i} aug[i][j]·x[j]) / aug[i][i].
//
// Behavior highlights:
//   - A pivot with |pivot| < eps fails with ErrSingular; there is no
//     fallback value for a system without a unique solution.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (a is a DimensionError), ErrDimensionMismatch (b), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateColumnVector(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	w, err := newAugmented(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = eliminateForward(w, n, o.eps); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Back substitution; last column of w holds the transformed b.
	x := &Dense{r: n, c: 1, data: make([]float64, n)}
	var i, j int
	var sum float64
	var row []float64
	for i = n - 1; i >= 0; i-- {
		row = w.rows[i]
		sum = row[n]
		for j = i + 1; j < n; j++ {
			sum -= row[j] * x.data[j]
		}
		x.data[i] = sum / row[i]
	}

	return x, nil
}

// eliminateForward reduces the left n×n block of w to upper-triangular form
// with partial pivoting, applying every row operation across the full width.
// Returns ErrSingular (with the column) when a pivot magnitude is below eps.
func eliminateForward(w *workspace, n int, eps float64) error {
	var i, k int
	var pivot float64
	for i = 0; i < n; i++ {
		w.swap(i, w.argMaxAbs(i, i))

		pivot = w.rows[i][i]
		if math.Abs(pivot) < eps {
			return fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}

		for k = i + 1; k < n; k++ {
			w.addScaled(k, i, w.rows[k][i]/pivot, i)
		}
	}

	return nil
}

// Inverse returns a⁻¹ by Gauss-Jordan elimination on [a | I] with partial pivoting.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (|pivot| < eps).
// Complexity: Time O(n³), Space O(n²).
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	w, err := newAugmented(a, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = eliminateForward(w, n, o.eps); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Upper-triangular left block with non-zero pivots: finish Gauss-Jordan
	// bottom-up so each pivot column is cleared above.
	var i, k int
	for i = n - 1; i >= 0; i-- {
		w.scaleRow(i, w.rows[i][i])
		for k = 0; k < i; k++ {
			w.addScaled(k, i, w.rows[k][i], i)
		}
	}

	return w.toDense(n, n), nil
}
