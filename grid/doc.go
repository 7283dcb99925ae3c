// Package grid provides the rectangular-field half of gridwalk's traversal
// space: bounded neighbor enumeration, row-major scanning, and two visited
// strategies for the traversal engine.
//
// What:
//
//   - Grid wraps a rectangular [][]rune, deep-copied on construction.
//   - Neighbors enumerates in-range adjacent cells in canonical order:
//     up, down, left, right (plus diagonals under Conn8).
//   - Cells iterates all coordinates in row-major order — the canonical
//     start-point scan for component counting and path search.
//   - InPlaceTracker implements sentinel-based visited marking with
//     guaranteed restoration (Unmark per cell, Restore for the whole grid).
//
// Why:
//
//   - Island/component detection on land-water maps.
//   - Word search and other constrained path exploration on letter boards.
//   - Any algorithm needing a uniform "position → neighbors" contract
//     without committing to a concrete traversal order.
//
// Determinism:
//
//	Neighbor order and the row-major cell scan are fixed, so any traversal
//	built on them is fully reproducible. Order decides which valid path a
//	search reports first, never whether a solution exists.
//
// Complexity:
//
//   - From2D / FromStrings / Clone: O(W×H) time and memory.
//   - InBounds, At, Set, Neighbors, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Set called with an invalid coordinate.
//
// Neighbors itself never errors: out-of-range input yields an empty result,
// and callers that need to distinguish "no neighbor" from "bad coordinate"
// pre-check with InBounds.
package grid
