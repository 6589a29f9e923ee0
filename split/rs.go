package split

import "github.com/ben-s-southworth/coarsen/csr"

// RS computes a C/F splitting by the classical Ruge–Stüben heuristic.
// s holds the strength matrix S, t its transpose Sᵀ; only the sparsity of
// both is consulted. The returned slice tags every node FNode or CNode.
//
// The priority of a node is lambda = nnz of its Sᵀ row, the number of nodes
// it strongly influences. Nodes are visited in descending lambda through a
// bucket structure: for every lambda value, a contiguous range of the
// indexToNode permutation holds exactly the unassigned nodes with that
// measure, and nodeToIndex inverts the permutation so a node moves between
// adjacent buckets in O(1) (a swap with a bucket boundary slot).
//
// Tie order within a bucket is the counting-sort layout order, perturbed
// only by the specified boundary swaps — deterministic for a given input.
//
// Complexity: O(n + nnz(S) + nnz(Sᵀ)) beyond the selection sweeps.
func RS(s, t *csr.Matrix) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if s.Rows != s.Cols || t.Rows != s.Cols || t.Cols != s.Rows {
		return nil, ErrShapeMismatch
	}
	n := s.Rows

	// 1) lambda[i] = number of nodes influenced by i.
	lambda := make([]int, n)
	for i := 0; i < n; i++ {
		lambda[i] = t.Ptr[i+1] - t.Ptr[i]
	}

	// 2) Bucket the nodes by lambda via a counting sort. intervalPtr[v] is
	// the first slot of bucket v in indexToNode, intervalCount[v] how many
	// unassigned nodes currently sit there.
	intervalPtr := make([]int, n+1)
	intervalCount := make([]int, n+1)
	indexToNode := make([]int, n)
	nodeToIndex := make([]int, n)
	for i := 0; i < n; i++ {
		intervalCount[lambda[i]]++
	}
	for i, cumsum := 0, 0; i < n; i++ {
		intervalPtr[i] = cumsum
		cumsum += intervalCount[i]
		intervalCount[i] = 0
	}
	for i := 0; i < n; i++ {
		l := lambda[i]
		idx := intervalPtr[l] + intervalCount[l]
		indexToNode[idx] = i
		nodeToIndex[i] = idx
		intervalCount[l]++
	}

	splitting := make([]int, n)
	for i := range splitting {
		splitting[i] = uNode
	}

	// 3) Pre-pass: nodes influencing nobody (empty Sᵀ row, or only
	// themselves) can never be useful C-points.
	for i := 0; i < n; i++ {
		if lambda[i] == 0 || (lambda[i] == 1 && t.Ind[t.Ptr[i]] == i) {
			splitting[i] = FNode
		}
	}

	// 4) Main sweep in descending lambda order.
	for topIndex := n - 1; topIndex >= 0; topIndex-- {
		i := indexToNode[topIndex]
		lambdaI := lambda[i]

		// Remove i from its interval.
		intervalCount[lambdaI]--

		if splitting[i] == FNode {
			continue
		}
		splitting[i] = CNode

		// 4a) Every unassigned node that i influences becomes F, and the
		// nodes influencing those new F-nodes gain a unit of lambda.
		for pj := t.Ptr[i]; pj < t.Ptr[i+1]; pj++ {
			j := t.Ind[pj]
			if splitting[j] != uNode {
				continue
			}
			splitting[j] = FNode

			for pk := s.Ptr[j]; pk < s.Ptr[j+1]; pk++ {
				k := s.Ind[pk]
				if splitting[k] != uNode {
					continue
				}
				// Saturate at the top bucket.
				if lambda[k] >= n-1 {
					continue
				}

				// Move k to the rightmost slot of its bucket, shrink the
				// bucket, and absorb the slot into bucket lambda+1.
				lambdaK := lambda[k]
				oldPos := nodeToIndex[k]
				newPos := intervalPtr[lambdaK] + intervalCount[lambdaK] - 1

				nodeToIndex[indexToNode[oldPos]] = newPos
				nodeToIndex[indexToNode[newPos]] = oldPos
				indexToNode[oldPos], indexToNode[newPos] = indexToNode[newPos], indexToNode[oldPos]

				intervalCount[lambdaK]--
				intervalCount[lambdaK+1]++
				intervalPtr[lambdaK+1] = newPos

				lambda[k]++
			}
		}

		// 4b) Nodes that influence i lose a unit of lambda: i no longer
		// needs them on the coarse grid.
		for pj := s.Ptr[i]; pj < s.Ptr[i+1]; pj++ {
			j := s.Ind[pj]
			if splitting[j] != uNode {
				continue
			}
			if lambda[j] == 0 {
				continue
			}

			// Move j to the leftmost slot of its bucket and hand the slot
			// down to bucket lambda-1.
			lambdaJ := lambda[j]
			oldPos := nodeToIndex[j]
			newPos := intervalPtr[lambdaJ]

			nodeToIndex[indexToNode[oldPos]] = newPos
			nodeToIndex[indexToNode[newPos]] = oldPos
			indexToNode[oldPos], indexToNode[newPos] = indexToNode[newPos], indexToNode[oldPos]

			intervalCount[lambdaJ]--
			intervalCount[lambdaJ-1]++
			intervalPtr[lambdaJ]++
			intervalPtr[lambdaJ-1] = intervalPtr[lambdaJ] - intervalCount[lambdaJ-1]

			lambda[j]--
		}
	}

	return splitting, nil
}
