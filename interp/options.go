// Package interp: tunables and sentinel errors.
package interp

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// degenTol bounds the magnitude below which a denominator is reported as
// degenerate. Matches the kernels' zero-tests for looked-up entries.
const degenTol = 1e-16

// Sentinel errors for the interpolation stage.
var (
	// ErrShapeMismatch indicates A and C disagree in shape.
	ErrShapeMismatch = errors.New("interp: operator and strength shapes disagree")

	// ErrBadSplitting indicates a splitting whose length is not the node
	// count or that carries a tag other than split.FNode/split.CNode.
	ErrBadSplitting = errors.New("interp: malformed splitting")

	// ErrBadRowPtr indicates a pass-1 row pointer of the wrong length.
	ErrBadRowPtr = errors.New("interp: malformed prolongator row pointer")
)

// Options configures the pass-2 kernels.
//   - Log: sink for degeneracy notes; defaults to a discarding logger.
type Options struct {
	Log logrus.FieldLogger
}

// DefaultOptions returns Options with a discarding diagnostic sink.
func DefaultOptions() Options {
	return Options{Log: discardLogger()}
}

func (o *Options) normalize() {
	if o.Log == nil {
		o.Log = discardLogger()
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
