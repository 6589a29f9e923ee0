package strength

import (
	"math"

	"github.com/ben-s-southworth/coarsen/csr"
)

// ClassicalAbs computes the classical strength-of-connection matrix S of a
// under the magnitude measure: an off-diagonal entry (i,j) is kept iff
//
//	|a_ij| >= theta · max_{k≠i} |a_ik|
//
// The diagonal entry, when stored in a, is always copied into S at its
// original position within the row. Entries of S keep their values from a.
//
// The per-row maximum starts from the smallest normal positive float
// (2^-1022), so a row whose off-diagonals are all exactly zero keeps none
// of them for any theta above 2^-53 (below that, the threshold underflows
// to zero).
//
// Complexity: O(nnz) time, output allocated with an nnz(a) upper bound.
func ClassicalAbs(a *csr.Matrix, opts Options) (*csr.Matrix, error) {
	return classical(a, opts, csr.Magnitude, 0x1p-1022)
}

// ClassicalMin computes the original Ruge–Stüben strength measure for
// matrices with negative off-diagonals: (i,j) is kept iff
//
//	-a_ij >= theta · max_{k≠i} (-a_ik)
//
// No absolute value is taken. The per-row maximum starts from zero, so the
// threshold is never negative and positive off-diagonals, whose measure is
// negative, are never kept.
func ClassicalMin(a *csr.Matrix, opts Options) (*csr.Matrix, error) {
	return classical(a, opts, func(x float64) float64 { return -x }, 0)
}

// classical is the shared kernel: measure maps an entry to its strength
// value, floor seeds the per-row maximum.
func classical(a *csr.Matrix, opts Options, measure func(float64) float64, floor float64) (*csr.Matrix, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if opts.Theta < 0 || opts.Theta > 1 {
		return nil, ErrBadTheta
	}
	opts.normalize()

	s, err := csr.Zeros(a.Rows, a.Cols, a.NNZ())
	if err != nil {
		return nil, err
	}

	nnz := 0
	for i := 0; i < a.Rows; i++ {
		// 1) Per-row maximum over off-diagonal measures.
		maxOffdiag := floor
		for p := a.Ptr[i]; p < a.Ptr[i+1]; p++ {
			if a.Ind[p] != i {
				maxOffdiag = math.Max(maxOffdiag, measure(a.Val[p]))
			}
		}

		// 2) Keep entries meeting the threshold; the diagonal always.
		threshold := opts.Theta * maxOffdiag
		for p := a.Ptr[i]; p < a.Ptr[i+1]; p++ {
			if a.Ind[p] != i {
				if measure(a.Val[p]) >= threshold {
					s.Ind[nnz] = a.Ind[p]
					s.Val[nnz] = a.Val[p]
					nnz++
				}
			} else {
				s.Ind[nnz] = a.Ind[p]
				s.Val[nnz] = a.Val[p]
				nnz++
			}
		}
		s.Ptr[i+1] = nnz
	}
	s.Ind = s.Ind[:nnz]
	s.Val = s.Val[:nnz]

	return s, nil
}

// MaximumRowValue returns, per row, the largest entry in magnitude with the
// diagonal included. Rows without stored entries report the smallest
// positive float, the seed of the maximum.
func MaximumRowValue(a *csr.Matrix) ([]float64, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	x := make([]float64, a.Rows)
	for i := 0; i < a.Rows; i++ {
		maxEntry := math.SmallestNonzeroFloat64
		for p := a.Ptr[i]; p < a.Ptr[i+1]; p++ {
			maxEntry = math.Max(maxEntry, csr.Magnitude(a.Val[p]))
		}
		x[i] = maxEntry
	}

	return x, nil
}
