package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// weakDenominator accumulates a_ii plus the weak off-diagonal connections
// of row i: the full row sum of A minus the strong off-diagonal entries of
// the pattern row (the diagonal stays in).
func weakDenominator(a, c *csr.Matrix, i int) float64 {
	var denom float64
	for q := a.Ptr[i]; q < a.Ptr[i+1]; q++ {
		denom += a.Val[q]
	}
	for q := c.Ptr[i]; q < c.Ptr[i+1]; q++ {
		if c.Ind[q] != i {
			denom -= c.Val[q]
		}
	}

	return denom
}

// checkPass2Inputs validates the common (A, C, splitting, Pp) quadruple of
// the pass-2 kernels.
func checkPass2Inputs(a, c *csr.Matrix, splitting []int, pp []int) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := checkInputs(c, splitting); err != nil {
		return err
	}
	if a.Rows != c.Rows || a.Cols != c.Cols {
		return ErrShapeMismatch
	}
	if len(pp) != a.Rows+1 {
		return ErrBadRowPtr
	}

	return nil
}

// StandardPass2 fills the standard prolongator sized by StandardPass1.
//
// For an F-row i and strong C-neighbor j, the weight is
//
//	w_ij = -( a_ij + Σ_k a_ik·a_kj / Σ_l a_kl ) / ( a_ii + Σ_weak a_im )
//
// with k over the strong F-neighbors of i and l over the strong
// C-neighbors of i present in A's row k. c must carry A's values on the
// strength pattern. Column indices of the result are in coarse numbering.
func StandardPass2(a, c *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error) {
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

		denominator := weakDenominator(a, c, i)

		nnz := pp[i]
		for jj := c.Ptr[i]; jj < c.Ptr[i+1]; jj++ {
			j := c.Ind[jj]
			if splitting[j] != split.CNode {
				continue
			}
			p.Ind[nnz] = j
			numerator := c.Val[jj]

			// Distribute each strong F-neighbor k over its connections to
			// the strong C-neighbors of i.
			for kk := c.Ptr[i]; kk < c.Ptr[i+1]; kk++ {
				if splitting[c.Ind[kk]] != split.FNode || c.Ind[kk] == i {
					continue
				}
				k := c.Ind[kk]
				aIK := c.Val[kk]

				var aKJ float64
				for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
					if a.Ind[q] == j {
						aKJ = a.Val[q]
						break
					}
				}
				if csr.Magnitude(aKJ) <= degenTol {
					continue
				}

				var inner float64
				for ll := c.Ptr[i]; ll < c.Ptr[i+1]; ll++ {
					if splitting[c.Ind[ll]] != split.CNode {
						continue
					}
					l := c.Ind[ll]
					for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
						if a.Ind[q] == l {
							inner += a.Val[q]
						}
					}
				}
				if csr.Magnitude(inner) < degenTol {
					opts.Log.WithField("row", i).WithField("fine", k).
						Warn("interp: inner denominator is zero")
				}
				numerator += aIK * aKJ / inner
			}

			if csr.Magnitude(denominator) < degenTol {
				opts.Log.WithField("row", i).
					Warn("interp: outer denominator is zero, diagonal plus weak connections vanish")
			}
			p.Val[nnz] = -numerator / denominator
			nnz++
		}
	}

	mapToCoarse(p, splitting)

	return p, nil
}

// ModifiedStandardPass2 fills the modified-standard prolongator: the
// standard formula with every looked-up a_k* entry sign-filtered against
// the diagonal a_kk (an entry sharing the diagonal's sign is treated as
// absent). Expects the pattern pre-processed by RemoveStrongFF, whose
// explicit zeros mark F–F connections without a common C-neighbor.
func ModifiedStandardPass2(a, c *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error) {
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

		denominator := weakDenominator(a, c, i)

		nnz := pp[i]
		for jj := c.Ptr[i]; jj < c.Ptr[i+1]; jj++ {
			j := c.Ind[jj]
			if splitting[j] != split.CNode {
				continue
			}
			p.Ind[nnz] = j
			numerator := c.Val[jj]

			for kk := c.Ptr[i]; kk < c.Ptr[i+1]; kk++ {
				if splitting[c.Ind[kk]] != split.FNode || c.Ind[kk] == i {
					continue
				}
				k := c.Ind[kk]
				aIK := c.Val[kk]

				var aKJ, aKK float64
				for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
					if a.Ind[q] == j {
						aKJ = a.Val[q]
					} else if a.Ind[q] == k {
						aKK = a.Val[q]
					}
				}
				// An entry sharing the diagonal's sign does not transfer.
				if csr.Signof(aKJ) == csr.Signof(aKK) {
					aKJ = 0
				}
				if csr.Magnitude(aKJ) <= degenTol {
					continue
				}

				var inner float64
				for ll := c.Ptr[i]; ll < c.Ptr[i+1]; ll++ {
					if splitting[c.Ind[ll]] != split.CNode {
						continue
					}
					l := c.Ind[ll]
					for q := a.Ptr[k]; q < a.Ptr[k+1]; q++ {
						if a.Ind[q] == l {
							if csr.Signof(a.Val[q]) != csr.Signof(aKK) {
								inner += a.Val[q]
							}
							break
						}
					}
				}
				if csr.Magnitude(inner) < degenTol {
					opts.Log.WithField("row", i).WithField("fine", k).
						Warn("interp: inner denominator is zero")
				}
				numerator += aIK * aKJ / inner
			}

			if csr.Magnitude(denominator) < degenTol {
				opts.Log.WithField("row", i).
					Warn("interp: outer denominator is zero, diagonal plus weak connections vanish")
			}
			p.Val[nnz] = -numerator / denominator
			nnz++
		}
	}

	mapToCoarse(p, splitting)

	return p, nil
}

// Standard builds the full standard prolongator from A, the strength
// pattern s, and the splitting.
func Standard(a, s *csr.Matrix, splitting []int, opts Options) (*csr.Matrix, error) {
	c, err := s.WithPatternValues(a)
	if err != nil {
		return nil, err
	}
	pp, err := StandardPass1(c, splitting)
	if err != nil {
		return nil, err
	}

	return StandardPass2(a, c, splitting, pp, opts)
}

// ModifiedStandard builds the full modified-standard prolongator. The
// strength pattern is value-populated from A and pruned by RemoveStrongFF
// before the passes run.
func ModifiedStandard(a, s *csr.Matrix, splitting []int, opts Options) (*csr.Matrix, error) {
	c, err := s.WithPatternValues(a)
	if err != nil {
		return nil, err
	}
	if err = RemoveStrongFF(c, splitting); err != nil {
		return nil, err
	}
	pp, err := StandardPass1(c, splitting)
	if err != nil {
		return nil, err
	}

	return ModifiedStandardPass2(a, c, splitting, pp, opts)
}
