package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// Trivial builds the injection prolongator: every C-row carries a single 1
// at its coarse column, every F-row is empty. The cheapest possible P,
// useful as a baseline and for coarse-grid-only transfers.
func Trivial(n int, splitting []int) (*csr.Matrix, error) {
	if len(splitting) != n {
		return nil, ErrBadSplitting
	}
	for _, tag := range splitting {
		if tag != split.FNode && tag != split.CNode {
			return nil, ErrBadSplitting
		}
	}

	p := &csr.Matrix{Rows: n, Ptr: make([]int, n+1)}
	nc := 0
	for i := 0; i < n; i++ {
		if splitting[i] == split.CNode {
			p.Ind = append(p.Ind, nc)
			p.Val = append(p.Val, 1)
			nc++
		}
		p.Ptr[i+1] = len(p.Ind)
	}
	p.Cols = nc

	return p, nil
}
