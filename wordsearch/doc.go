// Package wordsearch traces words through letter grids.
//
// What:
//
//   - Exists: boolean existence of a path spelling the word along
//     orthogonally adjacent cells, no cell reused within one path.
//   - Path: the coordinates of the first match under the canonical orders
//     (row-major start scan; up, down, left, right direction order).
//
// Why:
//
//   - Letter-board puzzles and any "trace this sequence through a grid"
//     query where backtracking must leave the board intact.
//
// Guarantees:
//
//   - A path longer than the word is never considered: the step function
//     prunes at word length.
//   - With TrackInPlace, backtracking restores each abandoned cell and the
//     grid is bit-identical to its pre-call state when the search returns,
//     found or not.
//   - Both tracking strategies return identical answers.
//
// Identity results: a nil grid or empty word finds nothing — (false, nil),
// not an error.
//
// Complexity: O(W×H×d^L) worst case for word length L and d directions.
package wordsearch
