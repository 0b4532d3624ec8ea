// SPDX-License-Identifier: MIT

package matrix

import "math"

// RREF returns the reduced row-echelon form of m (Gauss-Jordan elimination).
// Implementation:
//   - Stage 1: copy m into a private workspace; lead := 0.
//   - Stage 2: for each row r: find the first row ≥ r whose |value| in column
//     lead exceeds eps, advancing lead over all-zero columns; swap it into r,
//     normalise the pivot to 1 and clear column lead in every other row.
//   - Stage 3: snap |v| < eps to exactly 0.
//
// Behavior highlights:
//   - Running out of pivot columns (lead reaches cols) ends the reduction; the
//     rows not yet visited are left as they are. This is normal termination.
//   - When the pivot search itself walks past the last column, the matrix is
//     returned at once and Stage 3 is skipped: entries below eps survive.
//   - Idempotent within tolerance: RREF(RREF(m)) == RREF(m).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r·c).
func RREF(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)

	w, err := newWorkspace(m)
	if err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	if reduce(w, o.eps) {
		w.snapZeros(o.eps)
	}

	return w.toDense(0, w.c), nil
}

// reduce runs Gauss-Jordan elimination on w in place. It returns false when
// the pivot search ran out of columns, in which case no cleanup follows.
func reduce(w *workspace, eps float64) (cleanup bool) {
	rows := len(w.rows)
	lead := 0
	var i, r, k int
	for r = 0; r < rows; r++ {
		if lead >= w.c {
			return true
		}

		// First row at or below r with a usable entry in column lead.
		i = r
		for math.Abs(w.rows[i][lead]) <= eps {
			i++
			if i == rows {
				i = r
				lead++
				if lead == w.c {
					return false
				}
			}
		}

		w.swap(i, r)

		if pivot := w.rows[r][lead]; math.Abs(pivot) > eps {
			w.scaleRow(r, pivot)
		}

		for k = 0; k < rows; k++ {
			if k != r {
				w.addScaled(k, r, w.rows[k][lead], 0)
			}
		}

		lead++
	}

	return true
}

// Rank returns the number of rows of the reduced row-echelon form of m that
// hold an entry with |v| > eps. The RREF may keep sub-eps residue (see RREF),
// so the count applies the tolerance itself.
// Errors: ErrNilMatrix.
func Rank(m Matrix, opts ...Option) (int, error) {
	red, err := RREF(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	eps := gatherOptions(opts...).eps

	rank := 0
	var j int
	for i := 0; i < red.r; i++ {
		for j = 0; j < red.c; j++ {
			if math.Abs(red.data[i*red.c+j]) > eps {
				rank++
				break
			}
		}
	}

	return rank, nil
}
