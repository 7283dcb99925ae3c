// Package wordsearch answers whether a word can be traced through a letter
// grid along orthogonally adjacent cells without revisiting a cell within one
// path, via the gridwalk engine's constrained path search.
package wordsearch

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/traverse"
)

// Exists reports whether word can be traced through g.
// A nil grid or empty word yields false, never an error.
func Exists(g *grid.Grid, word string, opts ...Option) (bool, error) {
	_, found, err := Path(g, word, opts...)

	return found, err
}

// Path returns the coordinates of the first match found under the canonical
// orders — start cells scanned row-major, directions tried up, down, left,
// right — or (nil, false, nil) when the word cannot be traced. The order
// decides which valid path is reported first, never whether one exists.
//
// Within one path no cell repeats; separate start attempts may revisit cells
// freely, so each attempt gets a fresh tracker. With TrackInPlace the grid is
// restored before Path returns, on success and failure alike.
// Complexity: O(W×H×d^L) worst case for word length L.
func Path(g *grid.Grid, word string, opts ...Option) ([]grid.Coord, bool, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, false, o.err
	}
	// identity result for the task: absent input finds nothing
	if g == nil || word == "" {
		return nil, false, nil
	}

	letters := []rune(word)
	// step judges the candidate as the path element at the given depth:
	// wrong letter prunes, the final letter completes.
	step := func(p grid.Coord, depth int) traverse.Verdict {
		if depth >= len(letters) || g.At(p) != letters[depth] {
			return traverse.Prune
		}
		if depth == len(letters)-1 {
			return traverse.Accept
		}

		return traverse.Advance
	}

	var path []grid.Coord
	var found bool
	var searchErr error
	g.Cells(func(c grid.Coord) bool {
		if g.At(c) != letters[0] {
			return true
		}
		engineOpts := []traverse.Option[grid.Coord]{
			traverse.WithContext[grid.Coord](o.Ctx),
		}
		var restore func()
		if o.Tracking == TrackInPlace {
			t := grid.NewInPlaceTracker(g, grid.DefaultSentinel)
			restore = t.Restore
			engineOpts = append(engineOpts, traverse.WithTracker[grid.Coord](t))
		}
		p, ok, err := traverse.Search[grid.Coord](g, c, step, engineOpts...)
		if restore != nil {
			// a failed search already unwound every mark; a successful one
			// leaves the path marked until here
			restore()
		}
		if err != nil {
			searchErr = err

			return false
		}
		if ok {
			path, found = p, true

			return false
		}

		return true
	})
	if searchErr != nil {
		return nil, false, searchErr
	}

	return path, found, nil
}
