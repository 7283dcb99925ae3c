// Package islands counts connected components of land cells in a 2D grid,
// driving the gridwalk traversal engine once per component instead of
// re-implementing the sweep per call site.
package islands

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/traverse"
)

// Count returns the number of connected land components in g.
// A nil grid is the empty map and yields 0, never an error.
//
// The scan proceeds in row-major order; every land cell belongs to exactly
// one component, so the counter increments once per component regardless of
// method or tracking strategy.
// Complexity: O(W×H×d) time for the sweep methods, O(W×H×α) for union-find.
func Count(g *grid.Grid, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// Components returns every connected land component, ordered by the row-major
// position of its first cell. For the sweep methods each component lists its
// cells in visit order; for union-find, in row-major order.
// A nil grid yields an empty result, never an error.
func Components(g *grid.Grid, opts ...Option) ([][]grid.Coord, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return [][]grid.Coord{}, nil
	}
	if o.Method == MethodUnionFind {
		return unionFind(g, o)
	}

	return sweep(g, o)
}

// sweep scans row-major for an unvisited land cell, then hands the whole
// component to the traversal engine. One tracker spans all engine calls, so
// a component is never re-entered from a later start point.
func sweep(g *grid.Grid, o Options) ([][]grid.Coord, error) {
	var tracker traverse.Tracker[grid.Coord]
	if o.Tracking == TrackInPlace {
		t := grid.NewInPlaceTracker(g, grid.DefaultSentinel)
		defer t.Restore()
		tracker = t
	} else {
		tracker = traverse.NewSetTracker[grid.Coord]()
	}

	order := traverse.BFS
	if o.Method == MethodDFS {
		order = traverse.DFS
	}
	// Under in-place tracking a visited neighbor holds the sentinel and fails
	// the land test; under auxiliary tracking the engine's visited check
	// skips it. Either way only unvisited land joins the frontier.
	landOnly := func(_, next grid.Coord) bool { return o.IsLand(g.At(next)) }

	comps := make([][]grid.Coord, 0)
	var walkErr error
	g.Cells(func(c grid.Coord) bool {
		if tracker.Visited(c) || !o.IsLand(g.At(c)) {
			return true
		}
		res, err := traverse.Walk[grid.Coord](g, c,
			traverse.WithContext[grid.Coord](o.Ctx),
			traverse.WithOrder[grid.Coord](order),
			traverse.WithTracker[grid.Coord](tracker),
			traverse.WithFilterNeighbor[grid.Coord](landOnly),
		)
		if err != nil {
			walkErr = err

			return false
		}
		comps = append(comps, res.Order)

		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return comps, nil
}

// unionFind merges adjacent land cells in a disjoint-set structure with path
// compression and union by rank, then groups cells by root. No frontier, no
// visited marks; the grid is read-only throughout.
func unionFind(g *grid.Grid, o Options) ([][]grid.Coord, error) {
	total := g.Width() * g.Height()
	parent := make([]int, total)
	rank := make([]int, total)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression to avoid deep chains.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	var ctxErr error
	var nbuf []grid.Coord
	g.Cells(func(c grid.Coord) bool {
		select {
		case <-o.Ctx.Done():
			ctxErr = o.Ctx.Err()

			return false
		default:
		}
		if !o.IsLand(g.At(c)) {
			return true
		}
		nbuf = g.Neighbors(c, nbuf[:0])
		for _, n := range nbuf {
			if o.IsLand(g.At(n)) {
				union(g.Index(c), g.Index(n))
			}
		}

		return true
	})
	if ctxErr != nil {
		return nil, ctxErr
	}

	// Group land cells by root, components ordered by first occurrence.
	byRoot := make(map[int]int) // root → index into comps
	comps := make([][]grid.Coord, 0)
	g.Cells(func(c grid.Coord) bool {
		if !o.IsLand(g.At(c)) {
			return true
		}
		root := find(g.Index(c))
		i, ok := byRoot[root]
		if !ok {
			i = len(comps)
			byRoot[root] = i
			comps = append(comps, nil)
		}
		comps[i] = append(comps[i], c)

		return true
	})

	return comps, nil
}
