package traverse

// Verdict is a StepFunc's judgement of a candidate position.
type Verdict int

const (
	// Prune rejects the position: it cannot extend the current path.
	Prune Verdict = iota
	// Advance accepts the position and keeps extending the path through it.
	Advance
	// Accept accepts the position and completes the path.
	Accept
)

// StepFunc judges the position proposed as the path element at the given
// depth (0 for the start). It must be pure with respect to the space: the
// engine owns all marking and unmarking.
type StepFunc[P comparable] func(p P, depth int) Verdict

// searcher encapsulates mutable state for one Search call.
type searcher[P comparable] struct {
	space   Space[P]
	opts    Options[P]
	step    StepFunc[P]
	tracker Tracker[P]
	path    []P
}

// Search performs a constrained depth-first path search from start: each
// candidate position is judged by step, accepted positions join the path, and
// dead ends are unmarked so other paths may pass through them (backtracking).
// The first path whose final position step judges Accept is returned, with
// exploration following the space's canonical neighbor order.
//
// No match is not an error: Search returns (nil, false, nil). When the tracker
// mutates the source in place, a failed search leaves the source exactly as it
// was — every mark is undone on the way out. A successful search returns with
// the path still marked; callers using an InPlaceTracker restore explicitly.
//
// Returns ErrSpaceNil or ErrStepNil for invalid input, ErrOptionViolation for
// bad options, or a context error on cancellation. WithOrder is ignored:
// path search is inherently depth-first.
func Search[P comparable](space Space[P], start P, step StepFunc[P], opts ...Option[P]) ([]P, bool, error) {
	if space == nil {
		return nil, false, ErrSpaceNil
	}
	if step == nil {
		return nil, false, ErrStepNil
	}
	o := DefaultOptions[P]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, false, o.err
	}

	tr := o.Tracker
	if tr == nil {
		tr = NewSetTracker[P]()
	}
	s := &searcher[P]{space: space, opts: o, step: step, tracker: tr}

	found, err := s.explore(start, 0)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return s.path, true, nil
}

// explore extends the path with p if step allows, then recurses into unvisited
// neighbors. On failure it unmarks p and truncates the path before returning,
// which is the whole backtracking contract.
func (s *searcher[P]) explore(p P, depth int) (bool, error) {
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	switch s.step(p, depth) {
	case Prune:
		return false, nil
	case Accept:
		s.tracker.Mark(p)
		s.path = append(s.path, p)

		return true, nil
	}

	s.tracker.Mark(p)
	s.path = append(s.path, p)

	var nbuf []P
	nbuf = s.space.Neighbors(p, nbuf)
	for _, nbr := range nbuf {
		if s.tracker.Visited(nbr) {
			continue
		}
		if !s.opts.FilterNeighbor(p, nbr) {
			continue
		}
		if s.opts.MaxDepth > 0 && depth+1 > s.opts.MaxDepth {
			continue
		}
		found, err := s.explore(nbr, depth+1)
		if err != nil || found {
			return found, err
		}
	}

	// dead end: release p for other paths
	s.tracker.Unmark(p)
	s.path = s.path[:len(s.path)-1]

	return false, nil
}
