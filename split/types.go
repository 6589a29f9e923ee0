// Package split: node tags, sentinel errors, and options.
package split

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Node tags. Callers only ever observe FNode and CNode; uNode marks
// not-yet-assigned nodes inside the algorithms.
const (
	// FNode tags a fine-grid-only node.
	FNode = 0
	// CNode tags a node selected for the coarse grid.
	CNode = 1

	// uNode is the transient unassigned state.
	uNode = 2
)

// DefaultSeed seeds CLJPNaive's pseudo-random base weights. Fixed so that
// repeated runs on the same input produce byte-identical splittings.
const DefaultSeed int64 = 2448422

// Sentinel errors for the splitting algorithms.
var (
	// ErrShapeMismatch indicates S and its transpose disagree in shape,
	// or a square matrix was expected.
	ErrShapeMismatch = errors.New("split: strength matrix and transpose shapes disagree")

	// ErrBadIndices indicates a malformed indices array for CRHelper
	// (wrong length, or an F-count outside [0, n]).
	ErrBadIndices = errors.New("split: malformed indices array")

	// ErrLengthMismatch indicates an auxiliary vector whose length does not
	// match the node count.
	ErrLengthMismatch = errors.New("split: vector length does not match node count")
)

// CLJPOptions configures CLJPNaive.
//   - UseColoring: derive base weights from VertexColoringMIS instead of
//     the seeded generator.
//   - Seed: generator seed for the non-coloring mode; zero means DefaultSeed.
//   - Log: diagnostic sink; defaults to a discarding logger.
type CLJPOptions struct {
	UseColoring bool
	Seed        int64
	Log         logrus.FieldLogger
}

// DefaultCLJPOptions returns the pseudo-random mode with the fixed seed.
func DefaultCLJPOptions() CLJPOptions {
	return CLJPOptions{Seed: DefaultSeed, Log: discardLogger()}
}

func (o *CLJPOptions) normalize() {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Log == nil {
		o.Log = discardLogger()
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
