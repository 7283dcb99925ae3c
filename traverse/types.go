// Package traverse defines the space and tracker contracts, tunable options,
// and error definitions for gridwalk's traversal engine.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for engine execution.
var (
	// ErrSpaceNil is returned if a nil space is passed to Walk or Search.
	ErrSpaceNil = errors.New("traverse: space is nil")

	// ErrStepNil is returned if Search is invoked without a step function.
	ErrStepNil = errors.New("traverse: step function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for a position the
	// traversal never reached.
	ErrUnreachable = errors.New("traverse: position not reached")
)

// Space is the uniform neighbor-enumeration contract shared by grids and
// trees. Neighbors appends the valid neighbors of p to dst and returns it;
// implementations enumerate in their canonical order and yield nothing for
// out-of-range input.
type Space[P comparable] interface {
	Neighbors(p P, dst []P) []P
}

// Tracker prevents re-processing of an already-explored position.
// Unmark is only exercised by backtracking search; exhaustive Walk never
// calls it.
type Tracker[P comparable] interface {
	Mark(p P)
	Visited(p P) bool
	Unmark(p P)
}

// SetTracker is the auxiliary-set visited strategy: O(k) memory for k visited
// positions, source structure untouched. It is the default for both Walk and
// Search.
type SetTracker[P comparable] struct {
	seen map[P]struct{}
}

// NewSetTracker returns an empty auxiliary-set tracker.
func NewSetTracker[P comparable]() *SetTracker[P] {
	return &SetTracker[P]{seen: make(map[P]struct{})}
}

// Mark records p as visited.
func (t *SetTracker[P]) Mark(p P) { t.seen[p] = struct{}{} }

// Visited reports whether p was marked and not since unmarked.
func (t *SetTracker[P]) Visited(p P) bool {
	_, ok := t.seen[p]

	return ok
}

// Unmark erases p's visited record.
func (t *SetTracker[P]) Unmark(p P) { delete(t.seen, p) }

// Order selects the frontier discipline.
type Order int

const (
	// BFS uses a FIFO frontier and records per-level snapshots.
	BFS Order = iota
	// DFS uses a LIFO frontier (explicit stack, no recursion in Walk).
	DFS
)

// Option configures engine behavior via functional arguments. An invalid
// Option (unknown order, negative depth) is recorded internally and surfaced
// as ErrOptionViolation when the engine is invoked.
type Option[P comparable] func(*Options[P])

// Options holds parameters and callbacks customizing Walk and Search.
type Options[P comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop
	// in Walk and once per recursion step in Search.
	Ctx context.Context

	// Order chooses the frontier discipline for Walk (ignored by Search,
	// which is inherently depth-first).
	Order Order

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Tracker is the visited strategy. Defaults to a fresh SetTracker per
	// call; pass an InPlaceTracker (or any Tracker) to choose otherwise.
	Tracker Tracker[P]

	// OnVisit is called when a position is visited. Returning an error
	// aborts the traversal and propagates that error.
	OnVisit func(p P, depth int) error

	// OnEnqueue is called when a position joins the frontier, before it is
	// visited.
	OnEnqueue func(p P, depth int)

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→next.
	FilterNeighbor func(curr, next P) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - BFS order
//   - no depth limit (MaxDepth == 0)
//   - auxiliary-set tracker (created lazily per call)
//   - no-op hooks, no filtering.
func DefaultOptions[P comparable]() Options[P] {
	return Options[P]{
		Ctx:            context.Background(),
		Order:          BFS,
		MaxDepth:       0,
		OnVisit:        func(P, int) error { return nil },
		OnEnqueue:      func(P, int) {},
		FilterNeighbor: func(_, _ P) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[P comparable](ctx context.Context) Option[P] {
	return func(o *Options[P]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the frontier discipline: BFS or DFS.
// Any other value is invalid → ErrOptionViolation.
func WithOrder[P comparable](ord Order) Option[P] {
	return func(o *Options[P]) {
		if ord != BFS && ord != DFS {
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, ord)

			return
		}
		o.Order = ord
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[P comparable](d int) Option[P] {
	return func(o *Options[P]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithTracker installs a visited strategy. The engine produces identical
// traversal results for any correct Tracker; the choice trades memory
// overhead against in-place mutation of the source structure.
func WithTracker[P comparable](t Tracker[P]) Option[P] {
	return func(o *Options[P]) {
		if t != nil {
			o.Tracker = t
		}
	}
}

// WithOnVisit registers a callback to run per visit; returning an error
// aborts the traversal.
func WithOnVisit[P comparable](fn func(p P, depth int) error) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback to run when a position joins the frontier.
func WithOnEnqueue[P comparable](fn func(p P, depth int)) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[P comparable](fn func(curr, next P) bool) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of an exhaustive traversal:
//   - Order: positions visited, in visit sequence.
//   - Depth: map from position to its distance (in steps) from the start.
//   - Parent: map from position to its predecessor in the traversal tree.
//   - Levels: one sub-slice per depth layer, BFS only (nil under DFS).
type Result[P comparable] struct {
	Order  []P
	Depth  map[P]int
	Parent map[P]P
	Levels [][]P
}

// PathTo reconstructs the path from the start position to dest by walking
// parent links. Returns ErrUnreachable if dest was never visited.
func (r *Result[P]) PathTo(dest P) ([]P, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []P{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
