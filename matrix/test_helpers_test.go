// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take the generic At/Set path instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from row literals or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err, "NewFromRows(%v)", rows)

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// RandFilledDense returns a new r×c Dense filled with deterministic U(-1,1) by seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// RandSymmetric returns an n×n symmetric matrix with a dominant diagonal,
// so its eigenvalues are real and well separated with high probability.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		MustSet(t, m, i, i, float64(4*(i+1))+rng.Float64())
		for j = i + 1; j < n; j++ {
			v = (rng.Float64()*2 - 1) / 4
			MustSet(t, m, i, j, v)
			MustSet(t, m, j, i, v)
		}
	}

	return m
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts strict equality between a matrix and a 2D literal.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "Cols[%d]", i)
		for j = 0; j < m.Cols(); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |m[i,j] - want[i][j]| ≤ tol for every cell.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "Cols[%d]", i)
		for j = 0; j < m.Cols(); j++ {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "m[%d,%d]", i, j)
		}
	}
}

// RequireAllClose asserts AllClose(a, b, 0, atol).
func RequireAllClose(t testing.TB, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\n%v\nvs\n%v", atol, a, b)
}
