package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// DirectPass2 fills the direct prolongator sized by DirectPass1.
//
// For an F-row i the weight of strong C-neighbor j is
//
//	w_ij = -alpha·s_ij/d   (s_ij < 0)   or   -beta·s_ij/d   (s_ij >= 0)
//
// where alpha (beta) is the ratio of the negative (positive) off-diagonal
// row sum of A to the negative (positive) strong-C row sum of S, and d is
// the diagonal of A — augmented by the positive off-diagonal sum when no
// positive strong connection exists, in which case beta is zeroed.
//
// s must carry values on the strength pattern (A's values restricted to the
// pattern, or the strength measure itself, per the caller's variant).
// Column indices of the result are in coarse numbering.
func DirectPass2(a, s *csr.Matrix, splitting []int, pp []int, opts Options) (*csr.Matrix, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := checkInputs(s, splitting); err != nil {
		return nil, err
	}
	if a.Rows != s.Rows || a.Cols != s.Cols {
		return nil, ErrShapeMismatch
	}
	if len(pp) != a.Rows+1 {
		return nil, ErrBadRowPtr
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

		// Signed sums over the strong C-neighbors of i...
		var sumStrongPos, sumStrongNeg float64
		for q := s.Ptr[i]; q < s.Ptr[i+1]; q++ {
			if splitting[s.Ind[q]] == split.CNode && s.Ind[q] != i {
				if s.Val[q] < 0 {
					sumStrongNeg += s.Val[q]
				} else {
					sumStrongPos += s.Val[q]
				}
			}
		}

		// ...and over the whole row of A, diagonal separate.
		var sumAllPos, sumAllNeg, diag float64
		for q := a.Ptr[i]; q < a.Ptr[i+1]; q++ {
			switch {
			case a.Ind[q] == i:
				diag += a.Val[q]
			case a.Val[q] < 0:
				sumAllNeg += a.Val[q]
			default:
				sumAllPos += a.Val[q]
			}
		}

		alpha := sumAllNeg / sumStrongNeg
		beta := sumAllPos / sumStrongPos

		// Without positive strong connections the positive mass folds into
		// the diagonal instead of being distributed.
		if sumStrongPos == 0 {
			diag += sumAllPos
			beta = 0
		}
		if csr.Magnitude(diag) < degenTol {
			opts.Log.WithField("row", i).Warn("interp: direct interpolation diagonal is zero")
		}

		negCoeff := -alpha / diag
		posCoeff := -beta / diag

		nnz := pp[i]
		for q := s.Ptr[i]; q < s.Ptr[i+1]; q++ {
			if splitting[s.Ind[q]] == split.CNode && s.Ind[q] != i {
				p.Ind[nnz] = s.Ind[q]
				if s.Val[q] < 0 {
					p.Val[nnz] = negCoeff * s.Val[q]
				} else {
					p.Val[nnz] = posCoeff * s.Val[q]
				}
				nnz++
			}
		}
	}

	mapToCoarse(p, splitting)

	return p, nil
}

// Direct builds the full direct prolongator: restricts A's values to the
// strength pattern, runs both passes, and returns P with coarse columns.
func Direct(a, s *csr.Matrix, splitting []int, opts Options) (*csr.Matrix, error) {
	c, err := s.WithPatternValues(a)
	if err != nil {
		return nil, err
	}
	pp, err := DirectPass1(c, splitting)
	if err != nil {
		return nil, err
	}

	return DirectPass2(a, c, splitting, pp, opts)
}
