package grid

import (
	"testing"
)

// TestInPlaceTracker_MarkVisitedUnmark exercises the basic contract on a
// 2×2 letter grid.
func TestInPlaceTracker_MarkVisitedUnmark(t *testing.T) {
	g, _ := FromStrings([]string{"ab", "cd"})
	tr := NewInPlaceTracker(g, DefaultSentinel)
	c := Coord{X: 0, Y: 0}

	if tr.Visited(c) {
		t.Fatal("fresh tracker reports visited")
	}
	tr.Mark(c)
	if !tr.Visited(c) {
		t.Fatal("marked cell not visited")
	}
	if got := g.At(c); got != DefaultSentinel {
		t.Errorf("marked cell = %q; want sentinel", got)
	}
	tr.Unmark(c)
	if tr.Visited(c) {
		t.Error("unmarked cell still visited")
	}
	if got := g.At(c); got != 'a' {
		t.Errorf("unmarked cell = %q; want original 'a'", got)
	}
}

// TestInPlaceTracker_DoubleMark ensures re-marking never records the sentinel
// as the value to restore.
func TestInPlaceTracker_DoubleMark(t *testing.T) {
	g, _ := FromStrings([]string{"ab"})
	tr := NewInPlaceTracker(g, DefaultSentinel)
	c := Coord{X: 0, Y: 0}
	tr.Mark(c)
	tr.Mark(c)
	tr.Unmark(c)
	if got := g.At(c); got != 'a' {
		t.Errorf("cell = %q after double mark + unmark; want 'a'", got)
	}
}

// TestInPlaceTracker_Restore verifies Restore returns the grid to its
// pre-acquisition state regardless of how many cells are still marked.
func TestInPlaceTracker_Restore(t *testing.T) {
	g, _ := FromStrings([]string{"abc", "def"})
	pristine := g.Clone()
	tr := NewInPlaceTracker(g, DefaultSentinel)
	for c := range g.Cells {
		tr.Mark(c)
	}
	if g.Equal(pristine) {
		t.Fatal("grid unchanged despite full marking")
	}
	tr.Restore()
	if !g.Equal(pristine) {
		t.Fatal("grid not restored")
	}
	// idempotent
	tr.Restore()
	if !g.Equal(pristine) {
		t.Fatal("second Restore corrupted the grid")
	}
}
