// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// matrixErrorf) and callers MUST match them via errors.Is. No kernel panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// Every message is prefixed with "matrix: ...". The dimension family shares a
// common root, ErrDimension, so a caller that only cares about the kind can
// test errors.Is(err, ErrDimension) while tests still pin the exact sentinel.

// ErrDimension is the root of every shape-related failure (the DimensionError kind).
var ErrDimension = errors.New("matrix: dimension error")

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that row data is empty.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", ErrDimension)

	// ErrRaggedRows indicates row data whose rows do not share one length.
	ErrRaggedRows = fmt.Errorf("matrix: rows must have equal length: %w", ErrDimension)

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add/Sub of different shapes, Mul where a.Cols != b.Rows,
	// or a right-hand side that is not a conforming column.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", ErrDimension)

	// ErrNonSquare signals that a square matrix was required (the NotSquareError kind).
	// It is also a DimensionError, which is what Solve reports for a non-square A.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimension)
)

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds
	// (the IndexError kind). At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Solve and Inverse when a pivot magnitude falls
	// below the tolerance during forward elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidTolerance indicates a NaN or ±Inf tolerance passed to AllClose.
	ErrInvalidTolerance = errors.New("matrix: invalid tolerance")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
