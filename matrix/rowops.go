// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations on a private working copy.
//
// Purpose:
//   - One implementation of swap / scale / combine shared by RREF, Determinant,
//     Solve and Inverse.
//   - O(1) row exchange: a workspace owns one contiguous buffer and a slice of
//     row handles into it; swapping rows exchanges handles, never contents.
//
// Ownership:
//   - A workspace is created from a snapshot of the caller's matrix and lives
//     for a single kernel call. It is never shared, so handle swaps cannot
//     leak storage into another live matrix. toDense copies rows out in
//     handle order into a fresh Dense.

package matrix

import "math"

// workspace is a mutable row-handle view over a private buffer.
type workspace struct {
	rows [][]float64 // row handles; rows[i] aliases buf[k*cols:(k+1)*cols] for some k
	c    int         // column count
}

// newWorkspace copies m into a fresh buffer and builds identity row handles.
func newWorkspace(m Matrix) (*workspace, error) {
	d, err := denseSnapshot(m) // fresh buffer we own outright
	if err != nil {
		return nil, err
	}

	return workspaceOver(d.data, d.r, d.c), nil
}

// workspaceOver builds row handles over buf (len == rows*cols), taking ownership.
func workspaceOver(buf []float64, rows, cols int) *workspace {
	w := &workspace{rows: make([][]float64, rows), c: cols}
	for i := 0; i < rows; i++ {
		w.rows[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return w
}

// newAugmented builds [a | b] for square a (n×n) and b (n×k).
func newAugmented(a, b Matrix) (*workspace, error) {
	da, err := denseSnapshot(a)
	if err != nil {
		return nil, err
	}
	db, err := denseSnapshot(b)
	if err != nil {
		return nil, err
	}

	n, ac, bc := da.r, da.c, db.c
	cols := ac + bc
	buf := make([]float64, n*cols)
	for i := 0; i < n; i++ {
		copy(buf[i*cols:i*cols+ac], da.data[i*ac:(i+1)*ac])
		copy(buf[i*cols+ac:(i+1)*cols], db.data[i*bc:(i+1)*bc])
	}

	return workspaceOver(buf, n, cols), nil
}

// swap exchanges rows i and j by handle. O(1).
func (w *workspace) swap(i, j int) {
	if i != j {
		w.rows[i], w.rows[j] = w.rows[j], w.rows[i]
	}
}

// scaleRow divides row i by pivot in place (row i := row i / pivot).
func (w *workspace) scaleRow(i int, pivot float64) {
	row := w.rows[i]
	for j := range row {
		row[j] /= pivot
	}
}

// addScaled performs row dst -= factor * row src over columns [from, c).
func (w *workspace) addScaled(dst, src int, factor float64, from int) {
	d, s := w.rows[dst], w.rows[src]
	for j := from; j < w.c; j++ {
		d[j] -= factor * s[j]
	}
}

// argMaxAbs returns the row in [from, len(rows)) with the largest |v| in col.
// Ties keep the earliest row, so the choice is deterministic.
func (w *workspace) argMaxAbs(col, from int) int {
	best := from
	for k := from + 1; k < len(w.rows); k++ {
		if math.Abs(w.rows[k][col]) > math.Abs(w.rows[best][col]) {
			best = k
		}
	}

	return best
}

// snapZeros replaces every |v| < eps with exactly 0.
func (w *workspace) snapZeros(eps float64) {
	for _, row := range w.rows {
		for j, v := range row {
			if math.Abs(v) < eps {
				row[j] = 0
			}
		}
	}
}

// toDense materialises columns [from, from+cols) of every row, in handle order.
func (w *workspace) toDense(from, cols int) *Dense {
	out := &Dense{r: len(w.rows), c: cols, data: make([]float64, len(w.rows)*cols)}
	for i, row := range w.rows {
		copy(out.data[i*cols:(i+1)*cols], row[from:from+cols])
	}

	return out
}
