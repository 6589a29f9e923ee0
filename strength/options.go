// Package strength: tunables and sentinel errors.
package strength

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultTheta is the strength threshold set by DefaultOptions.
// 0.25 is the customary classical-AMG default.
const DefaultTheta = 0.25

// Sentinel errors for the strength measures.
var (
	// ErrBadTheta indicates a threshold outside [0, 1].
	ErrBadTheta = errors.New("strength: theta must lie in [0,1]")
)

// Options configures the strength measures.
//   - Theta: strength threshold in [0,1].
//   - Log: sink for diagnostic notes; defaults to a discarding logger.
type Options struct {
	Theta float64
	Log   logrus.FieldLogger
}

// DefaultOptions returns Options{Theta: DefaultTheta} with a discarding
// diagnostic sink.
func DefaultOptions() Options {
	return Options{Theta: DefaultTheta, Log: discardLogger()}
}

// normalize fills a nil logger in place with a discarding one. Theta is left
// as given: a zero Theta means theta = 0, not DefaultTheta.
func (o *Options) normalize() {
	if o.Log == nil {
		o.Log = discardLogger()
	}
}

// discardLogger builds a logrus logger that writes nowhere. Shared default
// across the toolkit's options.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
