// SPDX-License-Identifier: MIT

// Package gonumconv converts matrices between this module's dense container
// and gonum's mat package.
//
// The converters always copy: a *mat.Dense built by ToGonum shares no
// storage with its source, and FromGonum returns a fresh *matrix.Dense.
// That keeps the matrix package's value semantics intact when callers hand
// results to gonum factorizations (or use gonum as a reference oracle).
package gonumconv

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrNotSymmetric is returned by ToSym when m differs from its transpose
// by more than the given tolerance.
var ErrNotSymmetric = errors.New("gonumconv: matrix is not symmetric")

// ToGonum copies m into a new *mat.Dense of the same shape.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions for a shape
// with a zero or negative side (mat.NewDense would panic), or the first At
// failure of a non-Dense m.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	flat, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("gonumconv: ToGonum: %w", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, fmt.Errorf("gonumconv: ToGonum: %dx%d: %w", m.Rows(), m.Cols(), matrix.ErrInvalidDimensions)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense.
// A nil or empty source yields matrix.ErrNilMatrix or
// matrix.ErrInvalidDimensions.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("gonumconv: FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("gonumconv: FromGonum: %w", matrix.ErrInvalidDimensions)
	}

	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j] = g.At(i, j)
		}
	}

	d, err := matrix.NewFromSlice(r, c, data)
	if err != nil {
		return nil, fmt.Errorf("gonumconv: FromGonum: %w", err)
	}

	return d, nil
}

// ToSym copies a square, symmetric m into a *mat.SymDense, the input type of
// gonum's symmetric eigensolver. Entries are checked pairwise with
// |m[i,j] - m[j,i]| ≤ tol; the upper triangle is the one stored.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotSymmetric.
func ToSym(m matrix.Matrix, tol float64) (*mat.SymDense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("gonumconv: ToSym: %w", err)
	}
	flat, err := flatten(m)
	if err != nil {
		return nil, fmt.Errorf("gonumconv: ToSym: %w", err)
	}

	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !(math.Abs(flat[i*n+j]-flat[j*n+i]) <= tol) {
				return nil, fmt.Errorf("gonumconv: ToSym: [%d,%d]: %w", i, j, ErrNotSymmetric)
			}
		}
	}

	return mat.NewSymDense(n, flat), nil
}

// flatten returns a row-major copy of m.
func flatten(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	r, c := m.Rows(), m.Cols()
	flat := make([]float64, 0, r*c)
	if d, ok := m.(*matrix.Dense); ok {
		d.Do(func(_, _ int, v float64) bool {
			flat = append(flat, v)
			return true
		})

		return flat, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			flat = append(flat, v)
		}
	}

	return flat, nil
}
