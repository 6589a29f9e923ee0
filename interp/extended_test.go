package interp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ben-s-southworth/coarsen/interp"
)

type ExtendedSuite struct {
	suite.Suite
}

// TestPass1CountsDistanceTwo: F-rows count distance-one coarse neighbors
// plus the coarse neighbors of every strong F-neighbor.
func (s *ExtendedSuite) TestPass1CountsDistanceTwo() {
	a := tridiag(4)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 0, 1}

	pp, err := interp.DistanceTwoPass1(soc, splitting)
	require.NoError(s.T(), err)
	// Row 1: coarse 0 directly, coarse 3 through F-neighbor 2 (and
	// symmetrically for row 2).
	require.Equal(s.T(), []int{0, 1, 3, 5, 6}, pp)
}

// TestExtendedReachesDistanceTwo: each interior F-point of {C,F,F,C}
// interpolates from both end C-points with equal weight.
func (s *ExtendedSuite) TestExtendedReachesDistanceTwo() {
	a := tridiag(4)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 0, 1}

	p, err := interp.Extended(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []int{0, 1, 3, 5, 6}, p.Ptr)
	require.Equal(s.T(), []int{0, 0, 1, 0, 1, 1}, p.Ind)
	require.InDeltaSlice(s.T(), []float64{1, 0.5, 0.5, 0.5, 0.5, 1}, p.Val, 1e-14)
	requireCoarseColumns(s.T(), p, splitting)

	// Partition of unity across every row.
	for i, sum := range rowSums(p) {
		require.InDelta(s.T(), 1.0, sum, 1e-14, "row %d", i)
	}
}

// TestExtendedPlusI: the a_ki feedback shifts weight toward the
// distance-one coarse neighbor (2/3 near, 1/3 far) while preserving the
// partition of unity.
func (s *ExtendedSuite) TestExtendedPlusI() {
	a := tridiag(4)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 0, 1}

	p, err := interp.ExtendedPlusI(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), []int{0, 1, 3, 5, 6}, p.Ptr)
	require.Equal(s.T(), []int{0, 0, 1, 0, 1, 1}, p.Ind)
	twoThirds := 2.0 / 3.0
	oneThird := 1.0 / 3.0
	require.InDeltaSlice(s.T(), []float64{1, twoThirds, oneThird, oneThird, twoThirds, 1}, p.Val, 1e-14)

	for i, sum := range rowSums(p) {
		require.InDelta(s.T(), 1.0, sum, 1e-14, "row %d", i)
	}
}

// TestNoFNeighborsMatchesDirect: with alternating C/F the distance-two
// variants see no strong F-neighbors and collapse to neighbor averaging.
func (s *ExtendedSuite) TestNoFNeighborsMatchesDirect() {
	a := tridiag(5)
	soc := strongAll(s.T(), a)
	splitting := []int{1, 0, 1, 0, 1}

	p, err := interp.Extended(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 3, 4, 6, 7}, p.Ptr)
	require.Equal(s.T(), []float64{1, 0.5, 0.5, 1, 0.5, 0.5, 1}, p.Val)

	pi, err := interp.ExtendedPlusI(a, soc, splitting, interp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), p.Ptr, pi.Ptr)
	require.Equal(s.T(), p.Val, pi.Val)
}

func TestExtendedSuite(t *testing.T) {
	suite.Run(t, new(ExtendedSuite))
}
