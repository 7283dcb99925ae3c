// Package grid treats a rectangular 2D field of single-character cells as a
// traversable space: bounded neighbor enumeration in a fixed canonical order,
// deep-copied storage, and an in-place visited strategy with guaranteed restore.
package grid

import (
	"slices"
)

// canonical orthogonal offsets: up, down, left, right.
// The order is load-bearing: it decides which valid path a search finds first.
var conn4Offsets = [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// diagonal offsets appended after the orthogonal four under Conn8:
// up-left, up-right, down-left, down-right.
var diagOffsets = [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Grid wraps a rectangular [][]rune. The input is deep-copied on construction;
// mutation happens only through Set (or an InPlaceTracker, which restores).
type Grid struct {
	width, height int
	cells         [][]rune
	offsets       [][2]int
}

// From2D constructs a Grid from a non-empty, rectangular 2D rune slice.
// It deep-copies the input. Returns ErrEmptyGrid if rows has no rows or no
// columns, ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]rune, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	cells := make([][]rune, h)
	for y := 0; y < h; y++ {
		cells[y] = slices.Clone(rows[y])
	}
	offsets := conn4Offsets
	if o.Conn == Conn8 {
		offsets = append(slices.Clone(conn4Offsets), diagOffsets...)
	}

	return &Grid{width: w, height: h, cells: cells, offsets: offsets}, nil
}

// FromStrings constructs a Grid from one string per row.
// Convenience wrapper over From2D; same validation and errors.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	runes := make([][]rune, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
	}

	return From2D(runes, opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries. O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the value stored at c. Panics on out-of-bounds access;
// callers enumerate via Neighbors or Cells, which only yield valid coords.
func (g *Grid) At(c Coord) rune {
	return g.cells[c.Y][c.X]
}

// Set overwrites the value at c. Returns ErrOutOfBounds for invalid c.
func (g *Grid) Set(c Coord, v rune) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	g.cells[c.Y][c.X] = v

	return nil
}

// Neighbors appends the in-range neighbors of c to dst and returns it,
// in canonical order: up, down, left, right (then diagonals under Conn8).
// Out-of-range c yields no neighbors rather than an error; callers that must
// distinguish "no neighbor" from "bad input" pre-check with InBounds.
// No side effects. O(1).
func (g *Grid) Neighbors(c Coord, dst []Coord) []Coord {
	if !g.InBounds(c) {
		return dst
	}
	for _, d := range g.offsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Cells iterates all coordinates in row-major order (top-to-bottom,
// left-to-right) — the canonical scan order for start-point selection.
func (g *Grid) Cells(yield func(Coord) bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !yield(Coord{X: x, Y: y}) {
				return
			}
		}
	}
}

// Index maps c to a row-major index: y*Width + x. O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord. O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Clone returns a deep copy sharing no storage with g.
func (g *Grid) Clone() *Grid {
	cells := make([][]rune, g.height)
	for y, row := range g.cells {
		cells[y] = slices.Clone(row)
	}

	return &Grid{width: g.width, height: g.height, cells: cells, offsets: g.offsets}
}

// Equal reports whether g and other have identical dimensions and cell values.
// Connectivity is not compared; it affects traversal, not content.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		if !slices.Equal(g.cells[y], other.cells[y]) {
			return false
		}
	}

	return true
}
