package split

import "math/rand"

// VertexColoringMIS greedily colors the vertices of the graph given by the
// CRS pattern (sp, sj) using rounds of maximal-independent-set selection:
// in every round, each uncolored vertex whose (weight, index) pair
// lexicographically dominates all of its uncolored neighbors receives the
// round's color. Weights come from a generator seeded with DefaultSeed, so
// the coloring is identical across runs.
//
// Self-loops (a diagonal entry in the pattern) are ignored. The result
// assigns every vertex a color in [0, ncolors). A vertex is compared only
// with the columns of its own row, so adjacent vertices never share a
// round, hence never a color, when the pattern is structurally symmetric;
// for a nonsymmetric pattern, i and j with j in row i only may share one.
//
// Complexity: O(rounds · nnz); the number of rounds is the length of the
// longest chain of neighbors with decreasing (weight, index), at most n.
func VertexColoringMIS(n int, sp, sj []int) []int {
	coloring := make([]int, n)
	for i := range coloring {
		coloring[i] = -1
	}

	rng := rand.New(rand.NewSource(DefaultSeed))
	weight := make([]float64, n)
	for i := range weight {
		weight[i] = rng.Float64()
	}

	// dominates reports whether vertex i outranks vertex j.
	dominates := func(i, j int) bool {
		if weight[i] != weight[j] {
			return weight[i] > weight[j]
		}

		return i > j
	}

	uncolored := n
	for color := 0; uncolored > 0; color++ {
		// Mark the round's independent set first, then commit, so the
		// selection of one vertex cannot unblock a neighbor mid-round.
		selected := make([]int, 0, uncolored)
		for i := 0; i < n; i++ {
			if coloring[i] >= 0 {
				continue
			}
			wins := true
			for p := sp[i]; p < sp[i+1]; p++ {
				j := sj[p]
				if j != i && coloring[j] < 0 && !dominates(i, j) {
					wins = false
					break
				}
			}
			if wins {
				selected = append(selected, i)
			}
		}
		for _, i := range selected {
			coloring[i] = color
		}
		uncolored -= len(selected)
	}

	return coloring
}
