// Package islands counts connected components ("islands") of land cells in a
// rectangular grid.
//
// What:
//
//   - Count: number of components. Components: the cells of each one.
//   - Three interchangeable methods — MethodBFS, MethodDFS (engine sweeps)
//     and MethodUnionFind (disjoint-set merge, grounded on the classic
//     path-compression + union-by-rank formulation).
//   - Two visited strategies for the sweep methods — TrackAuxiliary
//     (auxiliary set, grid untouched) and TrackInPlace (sentinel marking
//     with restoration before return).
//
// Why:
//
//   - Land/water map analysis with a pluggable land classifier (WithLand).
//   - Cross-checking: all method × tracking combinations must agree on any
//     input, which the test suite exercises — including single-column
//     U-shape islands, where frontier discipline could plausibly diverge.
//
// Identity results:
//
//	A nil grid yields 0 components and no error; so does an all-water grid.
//	Malformed (non-rectangular) input is rejected earlier, at grid
//	construction.
//
// Complexity:
//
//   - Sweep methods: O(W×H×d) time, O(W×H) memory (d = 4 or 8 neighbors).
//   - Union-find:    O(W×H×d×α(W×H)) time, O(W×H) memory.
//
// Caveat: TrackInPlace writes grid.DefaultSentinel over visited cells during
// the sweep; a custom WithLand classifier must not treat the sentinel as land.
//
// Errors:
//
//   - ErrUnknownMethod / ErrUnknownTracking for invalid options.
//   - Context errors when a WithContext deadline fires mid-sweep.
package islands
