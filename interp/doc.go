// Package interp builds Ruge–Stüben prolongation operators P from the
// operator A, a strength pattern, and a C/F splitting.
//
// Every variant is a two-pass construction. Pass 1 sizes P's rows from the
// splitting and the strength pattern; pass 2 fills column indices and
// weights, then rewrites the column indices into coarse-grid numbering
// (column e becomes the number of C-points preceding e). A C-point row of P
// is always the single entry 1 at its own coarse column.
//
// Variants, in increasing stencil reach:
//
//   - Direct — weights from row i of A and the strong C-neighbors alone.
//   - Standard — distributes each strong F-neighbor k of i over k's
//     connections to i's strong C-neighbors (Eq. 3.7 of De Sterck, Falgout,
//     Nolting & Yang, 2007).
//   - ModifiedStandard — the sign-filtered variant (Eq. 3.8) for splittings
//     where two strong F-points may share no C-neighbor; expects the
//     strength matrix pre-processed by RemoveStrongFF.
//   - Extended / ExtendedPlusI — distance-two variants (Eqs. 4.6 and
//     4.10–4.11) that also interpolate from C-points reached through one
//     strong F-neighbor. The pass-1 count permits duplicate coarse columns
//     when several distance-two paths reach the same C-point; callers
//     compress duplicates downstream if needed.
//   - Trivial — pure injection from the C-points.
//
// The pass-2 kernels take C, the strength pattern carrying A's values
// (csr.Matrix.WithPatternValues); the facade constructors (Direct,
// Standard, ...) assemble C themselves and run both passes.
//
// Numerical degeneracies — an inner or outer denominator below 1e-16 in
// magnitude — are reported to the Options.Log sink and computation
// continues; the resulting weight propagates as the formula yields it.
// Explicit zeros written by RemoveStrongFF stay in the pattern: they are
// sentinels, and the kernels treat them as stored values.
package interp
