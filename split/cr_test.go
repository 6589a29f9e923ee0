package split_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ben-s-southworth/coarsen/split"
)

// TestCRHelperPromotesStalledPoint: on a 4-node path with one F-point far
// above the candidate threshold, that point is promoted to C and the
// indices array is rebuilt F-ascending / C-descending.
func TestCRHelperPromotesStalledPoint(t *testing.T) {
	a := tridiag(4)
	splitting := []int{split.FNode, split.FNode, split.CNode, split.FNode}
	b := []float64{1, 1, 1, 1}
	e := []float64{0.1, 0.8, 0.3, 0.05}
	gamma := make([]float64, 4)
	// indices[0]=nf, then F indices, then C indices.
	indices := []int{3, 0, 1, 3, 2}

	err := split.CRHelper(a, b, e, indices, splitting, gamma, 0.5)
	require.NoError(t, err)

	// Node 1 dominates the measure (0.8/0.8 = 1 > 0.5) and is promoted.
	require.Equal(t, []int{split.FNode, split.CNode, split.CNode, split.FNode}, splitting)
	require.Zero(t, gamma[1])
	require.InDelta(t, 0.125, gamma[0], 1e-15)
	require.InDelta(t, 0.0625, gamma[3], 1e-15)

	// Relayout: nf=2, F ascending from position 1, C descending from 4.
	require.Equal(t, []int{2, 0, 3, 2, 1}, indices)

	// e was rescaled against B over the F-points of the incoming layout.
	require.InDelta(t, 0.1, e[0], 1e-15)
	require.InDelta(t, 0.8, e[1], 1e-15)
	require.InDelta(t, 0.05, e[3], 1e-15)
}

// TestCRHelperNoCandidates: with a high threshold nothing is promoted and
// the splitting survives unchanged.
func TestCRHelperNoCandidates(t *testing.T) {
	a := tridiag(3)
	splitting := []int{split.FNode, split.CNode, split.FNode}
	b := []float64{1, 1, 1}
	e := []float64{0.2, 0, 0.2}
	gamma := make([]float64, 3)
	indices := []int{2, 0, 2, 1}

	err := split.CRHelper(a, b, e, indices, splitting, gamma, 1.0)
	require.NoError(t, err)
	require.Equal(t, []int{split.FNode, split.CNode, split.FNode}, splitting)
	require.Equal(t, []int{2, 0, 2, 1}, indices)
}

func TestCRHelperBadIndices(t *testing.T) {
	a := tridiag(2)
	splitting := []int{split.FNode, split.CNode}
	vec := []float64{1, 1}
	gamma := make([]float64, 2)

	err := split.CRHelper(a, vec, vec, []int{5, 0, 1}, splitting, gamma, 0.5)
	require.ErrorIs(t, err, split.ErrBadIndices)

	err = split.CRHelper(a, vec, vec, []int{1, 0}, splitting, gamma, 0.5)
	require.ErrorIs(t, err, split.ErrBadIndices)
}

func TestCRHelperLengthMismatch(t *testing.T) {
	a := tridiag(2)
	splitting := []int{split.FNode, split.CNode}
	gamma := make([]float64, 2)

	err := split.CRHelper(a, []float64{1}, []float64{1, 1}, []int{1, 0, 1}, splitting, gamma, 0.5)
	require.ErrorIs(t, err, split.ErrLengthMismatch)
}
