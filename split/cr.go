package split

import "github.com/ben-s-southworth/coarsen/csr"

// CRHelper performs one compatible-relaxation refinement step on an
// existing splitting, promoting to C the F-points where relaxation
// stalls. Only the pattern of a is consulted.
//
// The caller maintains indices so that indices[0] = nf (the F-point count),
// positions [1, nf+1) hold the F-point indices and positions [nf+1, n+1)
// the C-point indices. b is the target near-null-space vector, e the
// relaxed error; gamma receives the candidate-set measure. All of e, gamma,
// splitting and indices are rewritten in place:
//
//  1. e[p] <- |e[p]/b[p]| over F-points; take the infinity norm.
//  2. gamma[p] = e[p]/norm; F-points with gamma above thetaCS form the
//     candidate set.
//  3. Candidate weights omega[p] = #{F neighbors of p in a} + gamma[p].
//  4. Greedy maximum independent set over omega: repeatedly promote the
//     heaviest candidate to C, zero the weight of its neighbors, and give
//     each still-live neighbor-of-neighbor a unit bump.
//  5. Rewrite indices: F ascending from position 1, C descending from
//     position n.
//
// Ties in step 4 keep the first-seen candidate (the earliest in the F part
// of indices), so the refinement is deterministic.
func CRHelper(a *csr.Matrix, b, e []float64, indices []int, splitting []int, gamma []float64, thetaCS float64) error {
	if err := a.Validate(); err != nil {
		return err
	}
	n := len(splitting)
	if a.Rows != n {
		return ErrShapeMismatch
	}
	if len(b) != n || len(e) != n || len(gamma) != n {
		return ErrLengthMismatch
	}
	if len(indices) != n+1 || indices[0] < 0 || indices[0] > n {
		return ErrBadIndices
	}
	nf := indices[0]

	// 1) Scale the relaxed error against the target vector; infinity norm.
	infNorm := 0.0
	for i := 1; i < nf+1; i++ {
		pt := indices[i]
		e[pt] = csr.Magnitude(e[pt] / b[pt])
		if e[pt] > infNorm {
			infNorm = e[pt]
		}
	}

	// 2) Candidate set: F-points whose normalized measure exceeds thetaCS.
	var candidates []int
	for i := 1; i < nf+1; i++ {
		pt := indices[i]
		gamma[pt] = e[pt] / infNorm
		if gamma[pt] > thetaCS {
			candidates = append(candidates, pt)
		}
	}

	// 3) omega[p] = number of F neighbors + gamma[p].
	omega := make([]float64, n)
	for _, pt := range candidates {
		numNeighbors := 0
		for p := a.Ptr[pt]; p < a.Ptr[pt+1]; p++ {
			if splitting[a.Ind[p]] == FNode {
				numNeighbors++
			}
		}
		omega[pt] = float64(numNeighbors) + gamma[pt]
	}

	// 4) Greedy maximum independent set over the candidate weights.
	for {
		maxWeight := 0.0
		newPt := -1
		for _, pt := range candidates {
			if omega[pt] > maxWeight {
				maxWeight = omega[pt]
				newPt = pt
			}
		}
		if newPt < 0 {
			break
		}
		splitting[newPt] = CNode
		gamma[newPt] = 0

		// Knock the new C-point's neighbors out of the candidate set...
		neighbors := make([]int, 0, a.Ptr[newPt+1]-a.Ptr[newPt])
		for p := a.Ptr[newPt]; p < a.Ptr[newPt+1]; p++ {
			j := a.Ind[p]
			neighbors = append(neighbors, j)
			omega[j] = 0
		}
		// ...and bump every still-live neighbor of a removed node.
		for _, j := range neighbors {
			for p := a.Ptr[j]; p < a.Ptr[j+1]; p++ {
				if k := a.Ind[p]; omega[k] != 0 {
					omega[k]++
				}
			}
		}
	}

	// 5) Relayout: F ascending from the front, C descending from the back.
	nf = 0
	nextF := 1
	nextC := n
	for i := 0; i < n; i++ {
		if splitting[i] == FNode {
			indices[nextF] = i
			nextF++
			nf++
		} else {
			indices[nextC] = i
			nextC--
		}
	}
	indices[0] = nf

	return nil
}
