// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridwalk.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in canonical order: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 appends the four diagonals after the canonical orthogonal order.
	Conn8
)

// Coord identifies a single cell: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)" for diagnostics and hook output.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Option configures grid construction via functional arguments.
type Option func(*Options)

// Options holds tunable grid parameters.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8 neighbor enumeration.
// Unknown values fall back to Conn4.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c == Conn8 {
			o.Conn = Conn8
		} else {
			o.Conn = Conn4
		}
	}
}
