// SPDX-License-Identifier: MIT

package matrix

import "math"

// qrPair carries the factors of A = Q·R between qrGramSchmidt and the
// eigenvalue iteration. It never leaves the package.
type qrPair struct {
	q *Dense // rows×cols, orthonormal columns unless a column degenerated
	r *Dense // cols×cols, upper triangular
}

// qrGramSchmidt factors a by classical Gram-Schmidt.
// Implementation:
//   - For each column j: v := a[:,j]; for every k < j,
//     r[k][j] := <q[:,k], a[:,j]> (against the ORIGINAL column, not v) and
//     v -= r[k][j]·q[:,k].
//   - r[j][j] := ‖v‖; q[:,j] := v/‖v‖ when ‖v‖ > eps, else q[:,j] stays zero.
//
// Notes:
//   - Classical (not modified) Gram-Schmidt; orthogonality degrades on
//     ill-conditioned input. Kept as is so the eigen iteration converges the
//     same way on well-conditioned input.
//
// Complexity:
//   - Time O(rows·cols²), Space O(rows·cols + cols²).
func qrGramSchmidt(a *Dense, eps float64) qrPair {
	rows, cols := a.r, a.c
	q := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	r := &Dense{r: cols, c: cols, data: make([]float64, cols*cols)}

	v := make([]float64, rows) // reused column buffer
	var i, j, k int
	var dot, norm float64
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v[i] = a.data[i*cols+j]
		}

		for k = 0; k < j; k++ {
			dot = ZeroSum
			for i = 0; i < rows; i++ {
				dot += q.data[i*cols+k] * a.data[i*cols+j]
			}
			r.data[k*cols+j] = dot
			for i = 0; i < rows; i++ {
				v[i] -= dot * q.data[i*cols+k]
			}
		}

		norm = ZeroSum
		for i = 0; i < rows; i++ {
			norm += v[i] * v[i]
		}
		norm = math.Sqrt(norm)
		r.data[j*cols+j] = norm

		if norm > eps {
			for i = 0; i < rows; i++ {
				q.data[i*cols+j] = v[i] / norm
			}
		}
	}

	return qrPair{q: q, r: r}
}
