package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// signFilteredInner sums the entries of A's row k over the interpolatory
// set of F-row i — the strong distance-one C-neighbors of i plus the
// strong C-neighbors of i's strong F-neighbors — keeping only entries whose
// sign differs from the diagonal a_kk. Duplicate distance-two paths
// contribute once per path, mirroring the pass-1 count.
func signFilteredInner(a, c *csr.Matrix, splitting []int, i, k int, aKK float64) float64 {
	var inner float64
	for ll := c.Ptr[i]; ll < c.Ptr[i+1]; ll++ {
		point := c.Ind[ll]
		if splitting[point] == split.CNode {
			for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
				if a.Ind[q] == point {
					if csr.Signof(a.Val[q]) != csr.Signof(aKK) {
						inner += a.Val[q]
					}
					break
				}
			}
		} else if point != i {
			for ff := c.Ptr[point]; ff < c.Ptr[point+1]; ff++ {
				d2 := c.Ind[ff]
				if splitting[d2] != split.CNode {
					continue
				}
				for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
					if a.Ind[q] == d2 {
						if csr.Signof(a.Val[q]) != csr.Signof(aKK) {
							inner += a.Val[q]
						}
						break
					}
				}
			}
		}
	}

	return inner
}

// lookupPair scans A's row k once for the off-diagonal column j and the
// diagonal k, returning both (zero when absent).
func lookupPair(a *csr.Matrix, k, j int) (aKJ, aKK float64) {
	for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
		if a.Ind[q] == j {
			aKJ = a.Val[q]
		} else if a.Ind[q] == k {
			aKK = a.Val[q]
		}
	}

	return aKJ, aKK
}

// lookupFirst returns the first stored entry (i, j) of a, or zero.
func lookupFirst(a *csr.Matrix, i, j int) float64 {
	for q := a.Ptr[i]; q < a.Ptr[i+1]; q++ {
		if a.Ind[q] == j {
			return a.Val[q]
		}
	}

	return 0
}

// filteredAKI returns a's entry (k, i) with the sign filter against the
// diagonal a_kk applied.
func filteredAKI(a *csr.Matrix, k, i int, aKK float64) float64 {
	aKI := lookupFirst(a, k, i)
	if csr.Signof(aKI) == csr.Signof(aKK) {
		return 0
	}

	return aKI
}

// ExtendedPass2 fills the extended (distance-two) prolongator sized by
// DistanceTwoPass1: F-row i interpolates from its strong C-neighbors and
// from the strong C-neighbors of its strong F-neighbors, with each a_kj and
// every term of the inner sums sign-filtered against the diagonal a_kk.
// c must carry A's values on the strength pattern.
func ExtendedPass2(a, c *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error) {
	return distanceTwoPass2(a, c, splitting, pp, opts, false)
}

// ExtendedPlusIPass2 fills the extended+i prolongator: the extended
// formula augmented with the connection a_ki back to the F-point itself,
// both inside the inner sums and as an extra diagonal-correction term of
// the outer denominator.
func ExtendedPlusIPass2(a, c *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error) {
	return distanceTwoPass2(a, c, splitting, pp, opts, true)
}

func distanceTwoPass2(a, c *csr.Matrix, splitting []int, pp []int, opts Options, plusI bool) (*csr.Matrix, error) {
	if err := checkPass2Inputs(a, c, splitting, pp); err != nil {
		return nil, err
	}
	opts.normalize()

	n := a.Rows
	p := &csr.Matrix{Rows: n, Cols: n, Ptr: pp, Ind: make([]int, pp[n]), Val: make([]float64, pp[n])}

	for i := 0; i < n; i++ {
		if splitting[i] == split.CNode {
			p.Ind[pp[i]] = i
			p.Val[pp[i]] = 1

			continue
		}

		// Outer denominator: a_ii plus weak connections, with the
		// distance-two strong C entries reached through strong F-neighbors
		// also removed (they are interpolatory, not weak).
		denominator := weakDenominator(a, c, i)
		for mm := c.Ptr[i]; mm < c.Ptr[i+1]; mm++ {
			point := c.Ind[mm]
			if splitting[point] != split.FNode || point == i {
				continue
			}
			for ff := c.Ptr[point]; ff < c.Ptr[point+1]; ff++ {
				if d2 := c.Ind[ff]; splitting[d2] == split.CNode {
					denominator -= lookupFirst(a, i, d2)
				}
			}
		}

		// The +i variant folds each strong F-neighbor's connection back to
		// i into the denominator.
		if plusI {
			for kk := c.Ptr[i]; kk < c.Ptr[i+1]; kk++ {
				if splitting[c.Ind[kk]] != split.FNode || c.Ind[kk] == i {
					continue
				}
				k := c.Ind[kk]
				aIK := c.Val[kk]
				aKI, aKK := lookupPair(a, k, i)
				if csr.Signof(aKI) == csr.Signof(aKK) {
					aKI = 0
				}
				if csr.Magnitude(aKI) <= degenTol {
					continue
				}
				inner := signFilteredInner(a, c, splitting, i, k, aKK) + aKI
				if csr.Magnitude(inner) < degenTol {
					opts.Log.WithField("row", i).WithField("fine", k).
						Warn("interp: inner denominator of outer denominator is zero")
				}
				denominator += aIK * aKI / inner
			}
		}

		if csr.Magnitude(denominator) < degenTol {
			opts.Log.WithField("row", i).Warn("interp: outer denominator is zero")
		}

		nnz := pp[i]
		for jj := c.Ptr[i]; jj < c.Ptr[i+1]; jj++ {
			neighbor := c.Ind[jj]

			switch {
			case splitting[neighbor] == split.CNode:
				// Distance-one coarse neighbor.
				p.Ind[nnz] = neighbor
				p.Val[nnz] = -d2Weight(a, c, splitting, i, neighbor, c.Val[jj], plusI, opts) / denominator
				nnz++

			case neighbor != i:
				// Distance-two coarse neighbors, one per path through the
				// strong F-neighbor.
				for dd := c.Ptr[neighbor]; dd < c.Ptr[neighbor+1]; dd++ {
					n2 := c.Ind[dd]
					if splitting[n2] != split.CNode {
						continue
					}
					p.Ind[nnz] = n2
					aIJ := lookupFirst(a, i, n2)
					p.Val[nnz] = -d2Weight(a, c, splitting, i, n2, aIJ, plusI, opts) / denominator
					nnz++
				}
			}
		}
	}

	mapToCoarse(p, splitting)

	return p, nil
}

// d2Weight computes the (un-negated, un-divided) numerator of the
// distance-two weight for F-row i and coarse column j, seeded with aIJ:
//
//	aIJ + Σ_k a_ik·a_kj / inner_k
//
// over the strong F-neighbors k of i, with the sign filter on a_kj and on
// every term of inner_k; the +i variant adds the filtered a_ki to inner_k.
func d2Weight(a, c *csr.Matrix, splitting []int, i, j int, aIJ float64, plusI bool, opts Options) float64 {
	numerator := aIJ
	for kk := c.Ptr[i]; kk < c.Ptr[i+1]; kk++ {
		if splitting[c.Ind[kk]] != split.FNode || c.Ind[kk] == i {
			continue
		}
		k := c.Ind[kk]
		aIK := c.Val[kk]

		aKJ, aKK := lookupPair(a, k, j)
		if csr.Signof(aKJ) == csr.Signof(aKK) {
			aKJ = 0
		}
		if csr.Magnitude(aKJ) <= degenTol {
			continue
		}

		inner := signFilteredInner(a, c, splitting, i, k, aKK)
		if plusI {
			inner += filteredAKI(a, k, i, aKK)
		}
		if csr.Magnitude(inner) < degenTol {
			opts.Log.WithField("row", i).WithField("fine", k).
				Warn("interp: inner denominator is zero")
		}
		numerator += aIK * aKJ / inner
	}

	return numerator
}

// Extended builds the full extended prolongator from A, the strength
// pattern s, and the splitting.
func Extended(a, s *csr.Matrix, splitting []int, opts Options) (*csr.Matrix, error) {
	return extendedFacade(a, s, splitting, opts, ExtendedPass2)
}

// ExtendedPlusI builds the full extended+i prolongator.
func ExtendedPlusI(a, s *csr.Matrix, splitting []int, opts Options) (*csr.Matrix, error) {
	return extendedFacade(a, s, splitting, opts, ExtendedPlusIPass2)
}

func extendedFacade(
	a, s *csr.Matrix,
	splitting []int,
	opts Options,
	pass2 func(a, c *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error),
) (*csr.Matrix, error) {
	c, err := s.WithPatternValues(a)
	if err != nil {
		return nil, err
	}
	pp, err := DistanceTwoPass1(c, splitting)
	if err != nil {
		return nil, err
	}

	return pass2(a, c, splitting, pp, opts)
}
