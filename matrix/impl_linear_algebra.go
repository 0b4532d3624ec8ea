// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical arithmetic kernels shared by the Dense methods and the algorithms.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; the generic path visits
//     cells in the same order, so both produce identical bits.

package matrix

import "fmt"

// ZeroSum is the initial sum value for inner products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opRREF        = "RREF"
	opRank        = "Rank"
	opDeterminant = "Determinant"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opEigen       = "Eigenvalues"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: for i (rows of A), for j (cols of B): one running sum over k.
//
// Behavior highlights:
//   - The i→j→k order with a single accumulator per cell is fixed for both
//     paths, so rounding is reproducible run to run and path to path.
//   - No zero-skipping: 0*Inf must still yield NaN as IEEE-754 says.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		sum     float64
	)

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k ; db.data layout: k*bCols + j
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < aCols; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop, same i→j→k order.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with element (j,i) = m(i,j).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix only; any finite or non-finite alpha is accepted.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := denseSnapshot(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}
