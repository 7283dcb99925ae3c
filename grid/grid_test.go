package grid

import (
	"errors"
	"reflect"
	"testing"
)

// TestFrom2D_Validation ensures constructors reject malformed input.
func TestFrom2D_Validation(t *testing.T) {
	if _, err := From2D(nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("nil rows: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]rune{}); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("no rows: got %v; want ErrEmptyGrid", err)
	}
	if _, err := From2D([][]rune{{}}); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("no columns: got %v; want ErrEmptyGrid", err)
	}
	if _, err := FromStrings([]string{"ab", "a"}); !errors.Is(err, ErrNonRectangular) {
		t.Errorf("jagged rows: got %v; want ErrNonRectangular", err)
	}
}

// TestFrom2D_DeepCopy verifies the constructor does not alias caller storage.
func TestFrom2D_DeepCopy(t *testing.T) {
	rows := [][]rune{[]rune("ab"), []rune("cd")}
	g, err := From2D(rows)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	rows[0][0] = 'z'
	if got := g.At(Coord{X: 0, Y: 0}); got != 'a' {
		t.Errorf("cell (0,0) = %q after caller mutation; want 'a'", got)
	}
}

// TestNeighbors_CanonicalOrder checks the fixed up, down, left, right order
// for an interior cell of a 3×3 grid.
//
//	a b c
//	d e f
//	g h i
func TestNeighbors_CanonicalOrder(t *testing.T) {
	g, err := FromStrings([]string{"abc", "def", "ghi"})
	if err != nil {
		t.Fatalf("FromStrings failed: %v", err)
	}
	got := g.Neighbors(Coord{X: 1, Y: 1}, nil)
	want := []Coord{
		{X: 1, Y: 0}, // up
		{X: 1, Y: 2}, // down
		{X: 0, Y: 1}, // left
		{X: 2, Y: 1}, // right
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors = %v; want %v", got, want)
	}
}

// TestNeighbors_Corners verifies boundary clipping: a corner has exactly two
// orthogonal neighbors, still in canonical relative order.
func TestNeighbors_Corners(t *testing.T) {
	g, _ := FromStrings([]string{"ab", "cd"})
	got := g.Neighbors(Coord{X: 0, Y: 0}, nil)
	want := []Coord{
		{X: 0, Y: 1}, // down
		{X: 1, Y: 0}, // right
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("corner neighbors = %v; want %v", got, want)
	}
}

// TestNeighbors_OutOfRange documents the fail-silent contract: no neighbors,
// no panic, no error.
func TestNeighbors_OutOfRange(t *testing.T) {
	g, _ := FromStrings([]string{"ab"})
	if got := g.Neighbors(Coord{X: 5, Y: 5}, nil); len(got) != 0 {
		t.Errorf("out-of-range neighbors = %v; want none", got)
	}
}

// TestNeighbors_Conn8 checks that diagonals follow the orthogonal four.
func TestNeighbors_Conn8(t *testing.T) {
	g, err := FromStrings([]string{"abc", "def", "ghi"}, WithConnectivity(Conn8))
	if err != nil {
		t.Fatalf("FromStrings failed: %v", err)
	}
	got := g.Neighbors(Coord{X: 1, Y: 1}, nil)
	want := []Coord{
		{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 1}, // orthogonal
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, // diagonal
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Conn8 neighbors = %v; want %v", got, want)
	}
}

// TestCells_RowMajor verifies the canonical start-point scan order.
func TestCells_RowMajor(t *testing.T) {
	g, _ := FromStrings([]string{"ab", "cd"})
	var got []Coord
	for c := range g.Cells {
		got = append(got, c)
	}
	want := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scan order = %v; want %v", got, want)
	}
}

// TestIndexCoordinate_RoundTrip checks row-major index mapping both ways.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, _ := FromStrings([]string{"abcd", "efgh", "ijkl"})
	for c := range g.Cells {
		if back := g.Coordinate(g.Index(c)); back != c {
			t.Fatalf("round-trip %v → %d → %v", c, g.Index(c), back)
		}
	}
}

// TestSet_Bounds verifies Set mutates in range and rejects out of range.
func TestSet_Bounds(t *testing.T) {
	g, _ := FromStrings([]string{"ab"})
	if err := g.Set(Coord{X: 1, Y: 0}, 'z'); err != nil {
		t.Fatalf("in-range Set failed: %v", err)
	}
	if got := g.At(Coord{X: 1, Y: 0}); got != 'z' {
		t.Errorf("cell = %q after Set; want 'z'", got)
	}
	if err := g.Set(Coord{X: 9, Y: 9}, 'z'); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-range Set: got %v; want ErrOutOfBounds", err)
	}
}

// TestCloneEqual verifies a clone matches, shares nothing, and Equal detects
// both dimension and content differences.
func TestCloneEqual(t *testing.T) {
	g, _ := FromStrings([]string{"ab", "cd"})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone not Equal to original")
	}
	_ = c.Set(Coord{X: 0, Y: 0}, 'z')
	if g.Equal(c) {
		t.Error("Equal true after clone mutation")
	}
	if got := g.At(Coord{X: 0, Y: 0}); got != 'a' {
		t.Errorf("original mutated through clone: %q", got)
	}
	other, _ := FromStrings([]string{"ab"})
	if g.Equal(other) {
		t.Error("Equal true for differing dimensions")
	}
	if g.Equal(nil) {
		t.Error("Equal true for nil")
	}
}
