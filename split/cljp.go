package split

import (
	"math/rand"

	"github.com/ben-s-southworth/coarsen/csr"
)

// CLJPNaive computes a C/F splitting by rounds of maximal-independent-set
// selection over node weights (the CLJP scheme). s is the strength matrix,
// t its transpose; both patterns are consulted for adjacency.
//
// Each node starts with weight base + deg, where deg counts its strong
// off-diagonal connections and base is a fractional tie-breaker in [0,1):
// either node color normalized by the color count (opts.UseColoring) or a
// draw from a generator seeded with opts.Seed. A node whose weight strictly
// exceeds that of every unassigned S/Sᵀ neighbor joins the independent set
// and becomes C. Two update rules then discount the weight of nodes whose
// value as a C-point the new selection undercuts, flipping them to F when
// the weight drops below one.
//
// Determinism: the generator is created per call; the selection sweep and
// both update rules visit nodes in index order.
func CLJPNaive(s, t *csr.Matrix, opts CLJPOptions) ([]int, error) {
	splitting, _, err := cljpNaive(s, t, opts)

	return splitting, err
}

// CLJPNaiveEdgemark is CLJPNaive, additionally returning the per-nonzero
// edge marks of S: +1 for edges never removed by the update rules, -1 for
// removed ones.
func CLJPNaiveEdgemark(s, t *csr.Matrix, opts CLJPOptions) ([]int, []int, error) {
	return cljpNaive(s, t, opts)
}

func cljpNaive(s, t *csr.Matrix, opts CLJPOptions) ([]int, []int, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}
	if s.Rows != s.Cols || t.Rows != s.Cols || t.Cols != s.Rows {
		return nil, nil, ErrShapeMismatch
	}
	opts.normalize()

	n := s.Rows
	nnz := s.NNZ()

	edgemark := make([]int, nnz)
	for e := range edgemark {
		edgemark[e] = 1
	}
	weight := make([]float64, n)
	inSet := make([]bool, n)  // selected this round
	setList := make([]int, n) // the round's C candidates, in index order
	splitting := make([]int, n)
	for i := range splitting {
		splitting[i] = uNode
	}
	cDepCache := make([]int, n)
	for i := range cDepCache {
		cDepCache[i] = -1
	}

	// Base weights: fractional tie-breakers in [0,1).
	if opts.UseColoring {
		coloring := VertexColoringMIS(n, s.Ptr, s.Ind)
		ncolors := 0
		for _, c := range coloring {
			if c+1 > ncolors {
				ncolors = c + 1
			}
		}
		for i := 0; i < n; i++ {
			weight[i] = float64(coloring[i]) / float64(ncolors)
		}
	} else {
		rng := rand.New(rand.NewSource(opts.Seed))
		for i := 0; i < n; i++ {
			weight[i] = rng.Float64()
		}
	}
	// Plus the strong off-diagonal in-degree.
	for i := 0; i < n; i++ {
		for p := s.Ptr[i]; p < s.Ptr[i+1]; p++ {
			if j := s.Ind[p]; j != i {
				weight[j]++
			}
		}
	}

	unassigned := n
	pass := 0
	for unassigned > 0 {
		pass++

		// SELECT: i joins the set iff its weight strictly dominates every
		// unassigned neighbor in S and Sᵀ. Equal weights block selection.
		nSel := 0
		for i := 0; i < n; i++ {
			if splitting[i] != uNode {
				inSet[i] = false
				continue
			}
			inSet[i] = true
			for p := s.Ptr[i]; p < s.Ptr[i+1]; p++ {
				j := s.Ind[p]
				if j != i && splitting[j] == uNode && weight[j] >= weight[i] {
					inSet[i] = false
					break
				}
			}
			if inSet[i] {
				for p := t.Ptr[i]; p < t.Ptr[i+1]; p++ {
					j := t.Ind[p]
					if j != i && splitting[j] == uNode && weight[j] >= weight[i] {
						inSet[i] = false
						break
					}
				}
			}
			if inSet[i] {
				setList[nSel] = i
				nSel++
				unassigned--
			}
		}
		for k := 0; k < nSel; k++ {
			splitting[setList[k]] = CNode
		}
		opts.Log.WithField("pass", pass).WithField("selected", nSel).
			Debug("cljp: independent set selected")

		// P5: neighbors that influence new C-points lose value as C-points.
		for k := 0; k < nSel; k++ {
			c := setList[k]
			for p := s.Ptr[c]; p < s.Ptr[c+1]; p++ {
				j := s.Ind[p]
				if splitting[j] == uNode && edgemark[p] != 0 {
					edgemark[p] = 0
					weight[j]--
					if weight[j] < 1 {
						splitting[j] = FNode
						unassigned--
					}
				}
			}
		}

		// P6: if j and k both depend on the new C-point c and j depends on
		// k, then k is less valuable as a C-point.
		for iD := 0; iD < nSel; iD++ {
			c := setList[iD]
			for p := t.Ptr[c]; p < t.Ptr[c+1]; p++ {
				if j := t.Ind[p]; splitting[j] == uNode {
					cDepCache[j] = c
				}
			}
			for p := t.Ptr[c]; p < t.Ptr[c+1]; p++ {
				j := t.Ind[p]
				for q := s.Ptr[j]; q < s.Ptr[j+1]; q++ {
					k := s.Ind[q]
					if splitting[k] != uNode || edgemark[q] == 0 {
						continue
					}
					if cDepCache[k] == c {
						edgemark[q] = 0
						weight[k]--
						if weight[k] < 1 {
							splitting[k] = FNode
							unassigned--
						}
					}
				}
			}
		}
	}

	// Removed edges are rewritten to -1 for caller consumption; any node
	// never selected nor discounted below the floor ends up F.
	for e := 0; e < nnz; e++ {
		if edgemark[e] == 0 {
			edgemark[e] = -1
		}
	}
	for i := 0; i < n; i++ {
		if splitting[i] == uNode {
			splitting[i] = FNode
		}
	}

	return splitting, edgemark, nil
}
