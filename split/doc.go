// Package split computes coarse/fine (C/F) splittings of the nodes of a
// strength graph, the second stage of classical AMG setup.
//
// Three entry points:
//
//   - RS — the sequential Ruge–Stüben heuristic. Repeatedly promotes the
//     unassigned node with the most strong dependents to C, demotes its
//     dependents to F, and re-prioritizes neighbors through an O(1)
//     bucket-of-lambdas structure.
//   - CLJPNaive — the Cleary–Luby–Jones–Plassmann splitting: rounds of
//     weight-maximal independent-set selection followed by edge-removal
//     weight updates. "Naive" because it takes the pre-computed transpose.
//   - CRHelper — one step of the compatible-relaxation refinement of an
//     existing splitting from a relaxed error vector.
//
// All splittings are returned as a []int of FNode/CNode tags. Both RS and
// CLJPNaive are deterministic for a given input: RS fixes tie order through
// its bucket layout, CLJPNaive seeds its per-call generator with a fixed
// constant (or derives weights from a deterministic graph coloring).
//
// VertexColoringMIS provides the maximal-independent-set greedy coloring
// used by CLJPNaive's coloring mode; it is exported for callers that want
// the colors themselves.
package split
