// SPDX-License-Identifier: MIT

// Package matrix - method surface on *Dense.
//
// Every method delegates to the package-level kernel of the same name and
// returns a freshly allocated result; the receiver is never mutated.
// Callers holding a *Dense can chain naturally:
//
//	x, err := a.Solve(b)
//	r, err := a.Mul(x)
package matrix

// Add returns m + other. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Add(other Matrix) (*Dense, error) { return Add(m, other) }

// Sub returns m − other. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Sub(other Matrix) (*Dense, error) { return Sub(m, other) }

// Mul returns m × other. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Mul(other Matrix) (*Dense, error) { return Mul(m, other) }

// Scale returns alpha·m.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(m, alpha) }

// T returns mᵀ.
func (m *Dense) T() (*Dense, error) { return Transpose(m) }

// RREF returns the reduced row-echelon form of m.
func (m *Dense) RREF(opts ...Option) (*Dense, error) { return RREF(m, opts...) }

// Rank returns the rank of m (non-zero rows of its RREF).
func (m *Dense) Rank(opts ...Option) (int, error) { return Rank(m, opts...) }

// Determinant returns det(m); a singular m yields (0, nil).
func (m *Dense) Determinant(opts ...Option) (float64, error) { return Determinant(m, opts...) }

// Trace returns the sum of the diagonal of a square m.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// Solve returns x with m·x = b.
func (m *Dense) Solve(b Matrix, opts ...Option) (*Dense, error) { return Solve(m, b, opts...) }

// Inverse returns m⁻¹.
func (m *Dense) Inverse(opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// Eigenvalues returns the QR-iteration eigenvalue estimates of m.
func (m *Dense) Eigenvalues(opts ...Option) ([]float64, error) { return Eigenvalues(m, opts...) }
