// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Value semantics: constructors copy caller data; nothing aliases caller slices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"          // method tag used in error wrappers
	ctxSet       = "Set"         // method tag used in error wrappers
	ctxFromRows  = "NewFromRows" // ctor tag
	ctxFromSlice = "NewFromSlice"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows builds a Dense from rectangular row data (deep copy).
// MAIN DESCRIPTION:
//   - Validated ingestion of externally supplied rows.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, every row the same length).
//   - Stage 2: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty first row), ErrRaggedRows.
//
// Notes:
//   - The caller keeps ownership of data; later edits to it are not observed.
func NewFromRows(data [][]float64) (*Dense, error) {
	if err := ValidateRows(data); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	rows, cols := len(data), len(data[0])
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, err)
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// NewFromSlice builds a rows×cols Dense from row-major flat data (deep copy).
// Errors: ErrInvalidDimensions, ErrDimensionMismatch when len(data) != rows*cols.
func NewFromSlice(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromSlice, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len %d for %dx%d: %w",
			ctxFromSlice, len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix (dynamic type *Dense).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns an independent deep duplicate sharing no storage with m.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowsSlice returns the elements as freshly allocated rows in row-major order.
// Renderers use it; mutating the result does not touch m.
func (m *Dense) RowsSlice() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders rows as "[a, b]" lines with %g values, for diagnostics.
// Not a presentation format; see the calc package for user-facing output.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// denseSnapshot returns a *Dense holding m's values in a fresh buffer.
// For *Dense it is a flat copy; other implementations are read via At in
// row-major order.
func denseSnapshot(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Copy(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
