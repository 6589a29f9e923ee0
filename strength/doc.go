// Package strength computes classical (Ruge–Stüben) strength-of-connection
// matrices from a CRS operator.
//
// Two measures are provided:
//
//   - ClassicalAbs: an off-diagonal A[i,j] is strong iff
//     |A[i,j]| >= theta · max_{k≠i} |A[i,k]|
//   - ClassicalMin: the original Ruge–Stüben measure for M-matrices,
//     -A[i,j] >= theta · max_{k≠i} (-A[i,k]), no absolute value.
//
// In both, the diagonal entry is always retained in S with its original
// value, even when it fails the threshold. The comparison is >=, so at
// theta=0 ClassicalAbs keeps the whole pattern of A (ClassicalMin still
// drops positive off-diagonals, whose measure is negative), and at theta=1
// only per-row maxima survive.
//
// MaximumRowValue reports each row's largest entry in magnitude, diagonal
// included — a cheap diagnostic for threshold selection.
//
// Outputs are freshly allocated; an upper bound of nnz(A) is used for S.
package strength
