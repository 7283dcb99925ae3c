package grid

// DefaultSentinel is the rune written over visited cells by an InPlaceTracker.
const DefaultSentinel = '#'

// InPlaceTracker marks cells visited by overwriting them with a sentinel rune,
// the O(1)-overhead strategy that temporarily destroys cell values. Every
// overwritten value is recorded, so Unmark restores one cell exactly and
// Restore returns the whole grid to its pre-traversal state. The tracker takes
// exclusive mutable access to the grid for its lifetime; Restore releases it.
//
// Satisfies traverse.Tracker[Coord].
type InPlaceTracker struct {
	g        *Grid
	sentinel rune
	saved    map[Coord]rune
}

// NewInPlaceTracker acquires g for sentinel-based visited tracking.
// The caller must invoke Restore (typically deferred) before handing the grid
// to anyone expecting pristine content.
func NewInPlaceTracker(g *Grid, sentinel rune) *InPlaceTracker {
	return &InPlaceTracker{
		g:        g,
		sentinel: sentinel,
		saved:    make(map[Coord]rune),
	}
}

// Mark overwrites c with the sentinel, remembering the original value.
// Marking an already-marked cell is a no-op.
func (t *InPlaceTracker) Mark(c Coord) {
	if _, ok := t.saved[c]; ok {
		return
	}
	t.saved[c] = t.g.At(c)
	t.g.cells[c.Y][c.X] = t.sentinel
}

// Visited reports whether c currently holds the sentinel.
func (t *InPlaceTracker) Visited(c Coord) bool {
	_, ok := t.saved[c]

	return ok
}

// Unmark restores the original value at c. Required for backtracking path
// search, where a dead end must release its cells for other paths.
func (t *InPlaceTracker) Unmark(c Coord) {
	v, ok := t.saved[c]
	if !ok {
		return
	}
	t.g.cells[c.Y][c.X] = v
	delete(t.saved, c)
}

// Restore puts back every still-marked cell, returning the grid to its
// pre-acquisition state. Safe to call more than once.
func (t *InPlaceTracker) Restore() {
	for c, v := range t.saved {
		t.g.cells[c.Y][c.X] = v
	}
	clear(t.saved)
}
