// Package traverse implements gridwalk's traversal engine: one parameterized
// loop serving breadth-first layering, depth-first component sweeps, and
// (in search.go) constrained backtracking path search.
package traverse

import (
	"fmt"
)

// item pairs a frontier position with its depth and parent.
type item[P comparable] struct {
	pos    P
	depth  int
	parent P
	root   bool // true for the start position, which has no parent
}

// walker encapsulates mutable state for one Walk call.
type walker[P comparable] struct {
	space   Space[P]
	opts    Options[P]
	tracker Tracker[P]
	res     *Result[P]
	nbuf    []P // scratch for neighbor enumeration, reused across visits
}

// Walk performs an exhaustive traversal of space from start, applying any
// number of functional Options. The frontier discipline is BFS (FIFO,
// level-aware) by default, or DFS (explicit LIFO stack) via WithOrder.
//
// Every reachable position is visited exactly once per call; the visited
// strategy (WithTracker) never changes which positions are visited, only
// whether the source structure is mutated while tracking them.
//
// Returns ErrSpaceNil for a nil space, ErrOptionViolation for bad options,
// a context error on cancellation, or any error returned by OnVisit.
func Walk[P comparable](space Space[P], start P, opts ...Option[P]) (*Result[P], error) {
	if space == nil {
		return nil, ErrSpaceNil
	}
	o := DefaultOptions[P]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tr := o.Tracker
	if tr == nil {
		tr = NewSetTracker[P]()
	}
	w := &walker[P]{
		space:   space,
		opts:    o,
		tracker: tr,
		res: &Result[P]{
			Order:  make([]P, 0),
			Depth:  make(map[P]int),
			Parent: make(map[P]P),
		},
	}

	var err error
	if o.Order == DFS {
		err = w.walkDFS(start)
	} else {
		err = w.walkBFS(start)
	}

	return w.res, err
}

// walkBFS drains a FIFO frontier level by level. The frontier size is
// snapshotted before each level is processed, so positions enqueued while a
// level is underway land in the next level, never the current one.
func (w *walker[P]) walkBFS(start P) error {
	queue := make([]item[P], 0)
	w.tracker.Mark(start)
	w.opts.OnEnqueue(start, 0)
	queue = append(queue, item[P]{pos: start, depth: 0, root: true})

	for len(queue) > 0 {
		width := len(queue) // level snapshot
		level := make([]P, 0, width)
		for i := 0; i < width; i++ {
			select {
			case <-w.opts.Ctx.Done():
				return w.opts.Ctx.Err()
			default:
			}

			it := queue[0]
			queue = queue[1:]
			if err := w.visit(it); err != nil {
				return err
			}
			level = append(level, it.pos)

			w.nbuf = w.space.Neighbors(it.pos, w.nbuf[:0])
			for _, nbr := range w.nbuf {
				if !w.admit(it.pos, nbr, it.depth+1) {
					continue
				}
				w.tracker.Mark(nbr)
				w.opts.OnEnqueue(nbr, it.depth+1)
				queue = append(queue, item[P]{pos: nbr, depth: it.depth + 1, parent: it.pos})
			}
		}
		w.res.Levels = append(w.res.Levels, level)
	}

	return nil
}

// walkDFS drains a LIFO frontier. Neighbors are pushed in reverse canonical
// order so the first canonical neighbor is explored first, reproducing the
// preorder of the recursive formulation without recursion. A position may sit
// on the stack more than once; the visited check on pop keeps each visit
// unique.
func (w *walker[P]) walkDFS(start P) error {
	stack := []item[P]{{pos: start, depth: 0, root: true}}
	w.opts.OnEnqueue(start, 0)

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.tracker.Visited(it.pos) {
			continue
		}
		w.tracker.Mark(it.pos)
		if err := w.visit(it); err != nil {
			return err
		}

		w.nbuf = w.space.Neighbors(it.pos, w.nbuf[:0])
		for i := len(w.nbuf) - 1; i >= 0; i-- {
			nbr := w.nbuf[i]
			if !w.admit(it.pos, nbr, it.depth+1) {
				continue
			}
			w.opts.OnEnqueue(nbr, it.depth+1)
			stack = append(stack, item[P]{pos: nbr, depth: it.depth + 1, parent: it.pos})
		}
	}

	return nil
}

// admit reports whether nbr may join the frontier from curr at nextDepth:
// it must pass the neighbor filter, the depth limit, and must not have been
// visited already.
func (w *walker[P]) admit(curr, nbr P, nextDepth int) bool {
	if !w.opts.FilterNeighbor(curr, nbr) {
		return false
	}
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false
	}

	return !w.tracker.Visited(nbr)
}

// visit records the position in Order, Depth and Parent, then runs OnVisit.
func (w *walker[P]) visit(it item[P]) error {
	w.res.Order = append(w.res.Order, it.pos)
	w.res.Depth[it.pos] = it.depth
	if !it.root {
		w.res.Parent[it.pos] = it.parent
	}
	if err := w.opts.OnVisit(it.pos, it.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", it.pos, err)
	}

	return nil
}
