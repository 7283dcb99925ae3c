// Package islands defines configuration options and sentinel errors for
// connected-component counting over grids.
package islands

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownMethod indicates that Options.Method is not one of the supported
// exploration methods.
var ErrUnknownMethod = errors.New("islands: unknown method")

// ErrUnknownTracking indicates that Options.Tracking is not a supported
// visited strategy.
var ErrUnknownTracking = errors.New("islands: unknown tracking strategy")

// MethodBFS sweeps each component breadth-first (FIFO frontier).
const MethodBFS = "bfs"

// MethodDFS sweeps each component depth-first (explicit LIFO stack).
const MethodDFS = "dfs"

// MethodUnionFind counts components by merging adjacent land cells in a
// disjoint-set structure instead of sweeping; no frontier, no visited marks.
const MethodUnionFind = "union-find"

// TrackAuxiliary uses an auxiliary visited set; the grid is never mutated.
const TrackAuxiliary = "auxiliary"

// TrackInPlace overwrites visited cells with a sentinel during the sweep and
// restores every cell before returning; the grid is bit-identical afterwards.
const TrackInPlace = "in-place"

// Land reports whether a cell value counts as land. The default treats '1'
// as land and everything else as water.
type Land func(v rune) bool

// Options configures how components are discovered. All methods and both
// tracking strategies produce identical counts and identical component
// contents for the same grid; they differ only in traversal mechanics.
type Options struct {
	// Ctx allows cancellation and deadlines during long sweeps.
	Ctx context.Context

	// Method is one of MethodBFS, MethodDFS, MethodUnionFind.
	Method string

	// Tracking is TrackAuxiliary or TrackInPlace. Ignored by MethodUnionFind,
	// which keeps no visited state.
	Tracking string

	// IsLand classifies cell values. Defaults to '1' == land.
	IsLand Land

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with background context, MethodBFS,
// TrackAuxiliary, and the '1'-is-land classifier.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Method:   MethodBFS,
		Tracking: TrackAuxiliary,
		IsLand:   func(v rune) bool { return v == '1' },
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

// WithMethod selects the exploration method.
// Allowed values: MethodBFS, MethodDFS, MethodUnionFind.
func WithMethod(m string) Option {
	return func(o *Options) {
		switch m {
		case MethodBFS, MethodDFS, MethodUnionFind:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: %q", ErrUnknownMethod, m)
		}
	}
}

// WithTracking selects the visited strategy for the sweep methods.
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

// WithLand installs a custom land classifier.
func WithLand(fn Land) Option {
	return func(o *Options) {
		if fn != nil {
			o.IsLand = fn
		}
	}
}
