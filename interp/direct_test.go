package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"

	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/interp"
	"github.com/ben-s-southworth/coarsen/split"
	"github.com/ben-s-southworth/coarsen/strength"
)

// tridiag builds the 1-D Laplacian tridiag(-1, 2, -1) of order n.
func tridiag(n int) *csr.Matrix {
	ptr := make([]int, n+1)
	var ind []int
	var val []float64
	for i := 0; i < n; i++ {
		if i > 0 {
			ind = append(ind, i-1)
			val = append(val, -1)
		}
		ind = append(ind, i)
		val = append(val, 2)
		if i < n-1 {
			ind = append(ind, i+1)
			val = append(val, -1)
		}
		ptr[i+1] = len(ind)
	}
	m, _ := csr.New(n, n, ptr, ind, val)

	return m
}

// strongAll returns the full-pattern strength matrix of a.
func strongAll(t require.TestingT, a *csr.Matrix) *csr.Matrix {
	s, err := strength.ClassicalMin(a, strength.Options{Theta: 0.25})
	require.NoError(t, err)

	return s
}

// rowSums returns the per-row sums of p.
func rowSums(p *csr.Matrix) []float64 {
	sums := make([]float64, p.Rows)
	for i := 0; i < p.Rows; i++ {
		sums[i] = floats.Sum(p.Val[p.Ptr[i]:p.Ptr[i+1]])
	}

	return sums
}

// requireCoarseColumns asserts property 11: every column index of p lies
// in [0, nC), and property 10: each C-row is a single 1 at its own coarse
// column.
func requireCoarseColumns(t require.TestingT, p *csr.Matrix, splitting []int) {
	nc := 0
	coarse := make([]int, len(splitting))
	for i, tag := range splitting {
		coarse[i] = nc
		if tag == split.CNode {
			nc++
		}
	}
	require.Equal(t, nc, p.Cols)
	for e := 0; e < p.NNZ(); e++ {
		require.GreaterOrEqual(t, p.Ind[e], 0)
		require.Less(t, p.Ind[e], nc)
	}
	for i, tag := range splitting {
		if tag == split.CNode {
			require.Equal(t, 1, p.Ptr[i+1]-p.Ptr[i], "C-row %d", i)
			require.Equal(t, coarse[i], p.Ind[p.Ptr[i]])
			require.Equal(t, 1.0, p.Val[p.Ptr[i]])
		}
	}
}

type DirectSuite struct {
	suite.Suite
}

// TestLaplacian5 reproduces the canonical 5-node result: averaging of the
// two coarse neighbors of each F-point.
func (s *DirectSuite) TestLaplacian5() {
	a := tridiag(5)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 1, 0, 1}

	p, err := interp.Direct(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []int{0, 1, 3, 4, 6, 7}, p.Ptr)
	require.Equal(s.T(), []int{0, 0, 1, 1, 1, 2, 2}, p.Ind)
	require.Equal(s.T(), []float64{1, 0.5, 0.5, 1, 0.5, 0.5, 1}, p.Val)
	requireCoarseColumns(s.T(), p, splitting)
}

// TestPartitionOfUnity: property 12 — all-strong negative off-diagonals
// with every F-neighbor coarse makes each F-row of P sum to one.
func (s *DirectSuite) TestPartitionOfUnity() {
	a := tridiag(7)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 1, 0, 1, 0, 1}

	p, err := interp.Direct(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)
	for i, sum := range rowSums(p) {
		require.InDelta(s.T(), 1.0, sum, 1e-14, "row %d", i)
	}
}

// TestPass1Counts checks pass 1 in isolation.
func (s *DirectSuite) TestPass1Counts() {
	a := tridiag(5)
	soc := strongAll(s.T(), a)
	pp, err := interp.DirectPass1(soc, []int{1, 0, 1, 0, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 3, 4, 6, 7}, pp)
}

func (s *DirectSuite) TestBadSplitting() {
	a := tridiag(3)
	soc := strongAll(s.T(), a)
	_, err := interp.Direct(a, soc, []int{1, 0}, interp.DefaultOptions())
	require.ErrorIs(s.T(), err, interp.ErrBadSplitting)

	_, err = interp.Direct(a, soc, []int{1, 0, 7}, interp.DefaultOptions())
	require.ErrorIs(s.T(), err, interp.ErrBadSplitting)
}

func TestDirectSuite(t *testing.T) {
	suite.Run(t, new(DirectSuite))
}

// TestTrivialInjection: the injection prolongator carries one unit entry
// per C-row and empty F-rows.
func TestTrivialInjection(t *testing.T) {
	splitting := []int{1, 0, 0, 1}
	p, err := interp.Trivial(4, splitting)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 1, 2}, p.Ptr)
	require.Equal(t, []int{0, 1}, p.Ind)
	require.Equal(t, []float64{1, 1}, p.Val)
	require.Equal(t, 2, p.Cols)

	_, err = interp.Trivial(3, splitting)
	require.ErrorIs(t, err, interp.ErrBadSplitting)
}
