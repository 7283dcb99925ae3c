// Package wordsearch defines configuration options and sentinel errors for
// word existence queries over letter grids.
package wordsearch

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownTracking indicates that Options.Tracking is not a supported
// visited strategy.
var ErrUnknownTracking = errors.New("wordsearch: unknown tracking strategy")

// TrackAuxiliary uses an auxiliary visited set per start attempt; the grid is
// never mutated.
const TrackAuxiliary = "auxiliary"

// TrackInPlace overwrites path cells with a sentinel while a path is being
// explored and restores them on backtrack and before returning.
const TrackInPlace = "in-place"

// Options configures the search. Both tracking strategies return identical
// answers; TrackInPlace additionally guarantees the grid is bit-identical to
// its pre-call state when the search returns.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Tracking is TrackAuxiliary or TrackInPlace.
	Tracking string

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with background context and TrackAuxiliary.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Tracking: TrackAuxiliary,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTracking selects the visited strategy.
// Allowed values: TrackAuxiliary, TrackInPlace.
func WithTracking(t string) Option {
	return func(o *Options) {
		switch t {
		case TrackAuxiliary, TrackInPlace:
			o.Tracking = t
		default:
			o.err = fmt.Errorf("%w: %q", ErrUnknownTracking, t)
		}
	}
}
