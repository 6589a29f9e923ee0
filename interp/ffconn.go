package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// RemoveStrongFF zeroes, in place, the value of every strong F-to-F
// connection of c whose endpoints share no strong C-neighbor. The sparsity
// pattern is untouched: the explicit zeros are sentinels that the
// modified-standard kernel relies on, and later stages must not compact
// them away.
//
// Complexity: O(Σ F-rows · row² ) in the worst case — each F–F pair scans
// the C-neighbors of one row against the other's row.
func RemoveStrongFF(c *csr.Matrix, splitting []int) error {
	if err := checkInputs(c, splitting); err != nil {
		return err
	}

	for row := 0; row < c.Rows; row++ {
		if splitting[row] != split.FNode {
			continue
		}
		for jj := c.Ptr[row]; jj < c.Ptr[row+1]; jj++ {
			j := c.Ind[jj]
			if splitting[j] != split.FNode {
				continue
			}

			// Dependence test: does some strong C-neighbor of row also
			// appear in j's strength row?
			dependence := false
			for ii := c.Ptr[row]; ii < c.Ptr[row+1] && !dependence; ii++ {
				common := c.Ind[ii]
				if splitting[common] != split.CNode {
					continue
				}
				for kk := c.Ptr[j]; kk < c.Ptr[j+1]; kk++ {
					if c.Ind[kk] == common {
						dependence = true
						break
					}
				}
			}

			if !dependence {
				c.Val[jj] = 0
			}
		}
	}

	return nil
}
