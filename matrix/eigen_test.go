// SPDX-License-Identifier: MIT

package matrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func sorted(v []float64) []float64 {
	out := append([]float64(nil), v...)
	sort.Float64s(out)

	return out
}

// TestEigenvaluesNonSymmetric covers λ² − 5λ + 6 = 0. The iteration reaches
// upper-triangular form, so the cap is hit, but the diagonal is accurate.
func TestEigenvaluesNonSymmetric(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, -2}, {1, 1}})

	vals, err := matrix.Eigenvalues(a)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	got := sorted(vals)
	assert.InDelta(t, 2.0, got[0], 1e-4)
	assert.InDelta(t, 3.0, got[1], 1e-4)

	CompareExact(t, [][]float64{{4, -2}, {1, 1}}, a)
}

func TestEigenvaluesDiagonalConvergesAtOnce(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, 0, 0}, {0, 5, 0}, {0, 0, 1}})

	vals, rep, err := matrix.EigenvaluesReport(a)
	require.NoError(t, err)
	assert.True(t, rep.Converged)
	assert.Equal(t, 1, rep.Iterations)
	assert.InDeltaSlice(t, []float64{2, 5, 1}, vals, 1e-12)
}

func TestEigenvaluesSymmetric(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	vals, rep, err := matrix.EigenvaluesReport(a)
	require.NoError(t, err)
	assert.True(t, rep.Converged)
	assert.Less(t, rep.Iterations, matrix.DefaultMaxIterations)
	assert.InDeltaSlice(t, []float64{3, 1}, vals, 1e-9)
}

// TestEigenvaluesTraceAndDeterminant checks Σλ = tr(A) and Πλ = det(A).
func TestEigenvaluesTraceAndDeterminant(t *testing.T) {
	a := RandSymmetric(t, 5, 77)

	vals, err := a.Eigenvalues()
	require.NoError(t, err)

	sum, prod := 0.0, 1.0
	for _, v := range vals {
		sum += v
		prod *= v
	}
	tr, err := a.Trace()
	require.NoError(t, err)
	det, err := a.Determinant()
	require.NoError(t, err)

	assert.InDelta(t, tr, sum, 1e-8)
	assert.InDelta(t, det, prod, 1e-6*abs(det))
}

// TestEigenvaluesRotationNeverConverges pins the capped result for a
// matrix with complex eigenvalues ±i.
func TestEigenvaluesRotationNeverConverges(t *testing.T) {
	a := MustFromRows(t, [][]float64{{0, -1}, {1, 0}})

	vals, rep, err := matrix.EigenvaluesReport(a)
	require.NoError(t, err)
	assert.False(t, rep.Converged)
	assert.Equal(t, 1000, rep.Iterations)
	assert.InDeltaSlice(t, []float64{0, 0}, vals, 1e-12)

	_, rep, err = matrix.EigenvaluesReport(a, matrix.WithMaxIterations(7))
	require.NoError(t, err)
	assert.False(t, rep.Converged)
	assert.Equal(t, 7, rep.Iterations)
}

func TestEigenvaluesErrors(t *testing.T) {
	_, err := matrix.Eigenvalues(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Eigenvalues(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigenvaluesGenericPath(t *testing.T) {
	a := RandSymmetric(t, 4, 5)

	fast, err := matrix.Eigenvalues(a)
	require.NoError(t, err)
	slow, err := matrix.Eigenvalues(hide{a})
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
