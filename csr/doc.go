// Package csr provides the compressed-row-storage (CRS) container shared by
// every stage of the toolkit, together with the small numeric helpers the
// kernels agree on (Magnitude, Signof).
//
// A Matrix is three flat slices plus a shape:
//
//	Ptr — row pointer, len Rows+1, Ptr[0]=0, non-decreasing, Ptr[Rows]=nnz
//	Ind — column indices, len nnz, each in [0, Cols)
//	Val — values, len nnz, matched one-to-one with Ind
//
// Column indices within a row are NOT required to be sorted; lookups scan
// the row linearly. The diagonal may or may not be stored explicitly, and
// kernels that need it treat its absence as zero.
//
// The package also carries:
//
//   - Transpose — counting-sort CSR transpose (needed to form Sᵀ)
//   - WithPatternValues — sparsity of one matrix, values of another
//   - ToDense / FromDense — adapters to gonum's mat types
//
// Errors:
//
//   - ErrNilMatrix: nil *Matrix passed where a value is required.
//   - ErrBadShape: negative or inconsistent dimensions.
//   - ErrBadRowPtr: row pointer of the wrong length, not starting at 0, or
//     not monotone.
//   - ErrIndexOutOfRange: a column index outside [0, Cols).
//   - ErrLengthMismatch: Ind or Val shorter than Ptr[Rows].
package csr
