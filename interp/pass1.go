package interp

import (
	"github.com/ben-s-southworth/coarsen/csr"
	"github.com/ben-s-southworth/coarsen/split"
)

// checkInputs validates the common (pattern, splitting) pair.
func checkInputs(c *csr.Matrix, splitting []int) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(splitting) != c.Rows {
		return ErrBadSplitting
	}
	for _, tag := range splitting {
		if tag != split.FNode && tag != split.CNode {
			return ErrBadSplitting
		}
	}

	return nil
}

// DirectPass1 sizes the direct prolongator: one entry for a C-row, one per
// strong C-neighbor (excluding self) for an F-row. Returns P's row pointer.
func DirectPass1(s *csr.Matrix, splitting []int) ([]int, error) {
	return distanceOnePass1(s, splitting)
}

// StandardPass1 sizes the standard and modified-standard prolongators.
// The count is identical to DirectPass1: the distance-one strong C-neighbors.
func StandardPass1(c *csr.Matrix, splitting []int) ([]int, error) {
	return distanceOnePass1(c, splitting)
}

func distanceOnePass1(c *csr.Matrix, splitting []int) ([]int, error) {
	if err := checkInputs(c, splitting); err != nil {
		return nil, err
	}
	pp := make([]int, c.Rows+1)
	nnz := 0
	for i := 0; i < c.Rows; i++ {
		if splitting[i] == split.CNode {
			nnz++
		} else {
			for p := c.Ptr[i]; p < c.Ptr[i+1]; p++ {
				if splitting[c.Ind[p]] == split.CNode && c.Ind[p] != i {
					nnz++
				}
			}
		}
		pp[i+1] = nnz
	}

	return pp, nil
}

// DistanceTwoPass1 sizes the extended and extended+i prolongators: for an
// F-row, the strong distance-one C-neighbors plus, through every strong
// F-neighbor f, the strong C-neighbors of f. Coarse columns reachable by
// several distance-two paths are counted once per path — the row may hold
// duplicate columns, which CRS permits.
func DistanceTwoPass1(c *csr.Matrix, splitting []int) ([]int, error) {
	if err := checkInputs(c, splitting); err != nil {
		return nil, err
	}
	pp := make([]int, c.Rows+1)
	nnz := 0
	for i := 0; i < c.Rows; i++ {
		if splitting[i] == split.CNode {
			nnz++
		} else {
			for p := c.Ptr[i]; p < c.Ptr[i+1]; p++ {
				point := c.Ind[p]
				if splitting[point] == split.CNode {
					nnz++
				} else if point != i {
					for q := c.Ptr[point]; q < c.Ptr[point+1]; q++ {
						if splitting[c.Ind[q]] == split.CNode {
							nnz++
						}
					}
				}
			}
		}
		pp[i+1] = nnz
	}

	return pp, nil
}
