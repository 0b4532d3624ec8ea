// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestDeterminantTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-7}}, -7},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity 3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"needs swap", [][]float64{{0, 1}, {1, 0}}, -1},
		{"upper triangular", [][]float64{{2, 5, 1}, {0, 3, -4}, {0, 0, 0.5}}, 3},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular", [][]float64{{4, 3, 2}, {3, 2, 1}, {1, 2, 3}}, 0},
		{"zero column", [][]float64{{0, 1}, {0, 2}}, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			in := MustFromRows(t, tc.in)
			det, err := matrix.Determinant(in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, det, 1e-9)
			CompareExact(t, tc.in, in)
		})
	}
}

// TestDeterminantSingularIsExactZero checks the silent zero branch: no error,
// and the value is exactly 0 rather than a tiny residue.
func TestDeterminantSingularIsExactZero(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, 3, 2}, {3, 2, 1}, {1, 2, 3}})

	det, err := a.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
}

// TestDeterminantProduct checks det(AB) = det(A)·det(B).
func TestDeterminantProduct(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 31)
	b := RandFilledDense(t, 4, 4, 32)
	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)

	da, err := matrix.Determinant(a)
	require.NoError(t, err)
	db, err := matrix.Determinant(b)
	require.NoError(t, err)
	dab, err := matrix.Determinant(ab)
	require.NoError(t, err)

	assert.InDelta(t, da*db, dab, 1e-9)
}

func TestDeterminantErrors(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimension)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminantGenericPath(t *testing.T) {
	a := RandFilledDense(t, 5, 5, 41)

	fast, err := matrix.Determinant(a)
	require.NoError(t, err)
	slow, err := matrix.Determinant(hide{a})
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}
