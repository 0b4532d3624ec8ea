// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use AllClose in tests and callers that compare floating-point results.

package matrix

import "math"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols())
}

// ---------- Aliases ----------

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are
//     rejected with ErrInvalidTolerance.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := denseSnapshot(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := denseSnapshot(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv { // covers ±Inf == ±Inf
			continue
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN fails here
			return false, nil
		}
	}

	return true, nil
}
