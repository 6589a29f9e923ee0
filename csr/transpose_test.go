package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ben-s-southworth/coarsen/csr"
)

// TestTransposeRoundTrip checks (mᵀ)ᵀ reproduces m entry-wise.
func TestTransposeRoundTrip(t *testing.T) {
	m, err := csr.New(2, 3,
		[]int{0, 2, 3},
		[]int{2, 0, 1},
		[]float64{5, 1, 7},
	)
	require.NoError(t, err)

	mt, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, 3, mt.Rows)
	require.Equal(t, 2, mt.Cols)

	v, ok := mt.At(2, 0)
	require.True(t, ok)
	require.Equal(t, 5.0, v)

	back, err := mt.Transpose()
	require.NoError(t, err)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			want, _ := m.At(i, j)
			got, _ := back.At(i, j)
			require.Equal(t, want, got, "entry (%d,%d)", i, j)
		}
	}
}

// TestTransposeSymmetric checks a symmetric pattern maps onto itself.
func TestTransposeSymmetric(t *testing.T) {
	m := tridiag(4)
	mt, err := m.Transpose()
	require.NoError(t, err)
	require.Equal(t, m.Ptr, mt.Ptr)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			want, _ := m.At(i, j)
			got, _ := mt.At(j, i)
			require.Equal(t, want, got)
		}
	}
}

// TestWithPatternValues checks the pattern keeps S's sparsity and takes
// A's values, with absent entries becoming explicit zeros.
func TestWithPatternValues(t *testing.T) {
	pattern, err := csr.New(2, 2, []int{0, 2, 3}, []int{0, 1, 1}, []float64{9, 9, 9})
	require.NoError(t, err)
	a, err := csr.New(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{3, 4})
	require.NoError(t, err)

	c, err := pattern.WithPatternValues(a)
	require.NoError(t, err)
	require.Equal(t, pattern.Ptr, c.Ptr)
	require.Equal(t, pattern.Ind[:pattern.NNZ()], c.Ind)
	require.Equal(t, []float64{3, 0, 4}, c.Val)
}

func TestWithPatternValuesShapeMismatch(t *testing.T) {
	pattern := tridiag(3)
	a := tridiag(4)
	_, err := pattern.WithPatternValues(a)
	require.ErrorIs(t, err, csr.ErrBadShape)
}
