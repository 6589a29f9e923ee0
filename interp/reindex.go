package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// mapToCoarse rewrites P's column indices from fine-grid numbering into
// coarse-grid numbering: column e becomes the number of C-points with a
// smaller fine index. After the rewrite every index lies in [0, nC).
func mapToCoarse(p *csr.Matrix, splitting []int) {
	coarse := make([]int, len(splitting))
	sum := 0
	for i, tag := range splitting {
		coarse[i] = sum
		if tag == split.CNode {
			sum++
		}
	}
	nnz := p.NNZ()
	for e := 0; e < nnz; e++ {
		p.Ind[e] = coarse[p.Ind[e]]
	}
	p.Cols = sum
}
