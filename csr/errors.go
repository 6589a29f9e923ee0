// Package csr: sentinel error set. All exported operations return these
// sentinels (possibly wrapped with fmt.Errorf("ctx: %w", ...)) and callers
// match them via errors.Is. No panics on user-supplied data.
package csr

import "errors"

var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrBadShape indicates negative or mutually inconsistent dimensions.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrBadRowPtr indicates a row pointer that does not start at zero,
	// decreases somewhere, or has the wrong length.
	ErrBadRowPtr = errors.New("csr: invalid row pointer")

	// ErrIndexOutOfRange indicates a column index outside [0, Cols).
	ErrIndexOutOfRange = errors.New("csr: column index out of range")

	// ErrLengthMismatch indicates Ind/Val lengths shorter than Ptr[Rows].
	ErrLengthMismatch = errors.New("csr: index/value length mismatch")
)
