// Package bintree provides binary-tree construction and serialization for
// gridwalk's traversal engine.
//
// What:
//
//   - Node: value plus exclusively-owned Left/Right children, no cycles.
//   - FromLevelOrder: build a tree from a flat level-order array where Null
//     marks a missing child (LeetCode convention).
//   - ToLevelOrder: the inverse, trimming trailing Nulls so a build/serialize
//     round-trip reproduces the input modulo trailing Nulls.
//   - Height: edges on the longest root-to-leaf path (-1 for nil).
//   - Children: canonical neighbor enumeration (left before right) in the
//     same append-to-dst shape as grid.Neighbors, so both spaces plug into
//     traverse.Space.
//
// Why:
//
//   - Level-order output (one sub-array per BFS depth) over trees built from
//     compact array literals.
//   - Any tree algorithm needing a uniform neighbor contract.
//
// Complexity: FromLevelOrder and ToLevelOrder are O(n) time and memory;
// Height is O(n) time, O(h) stack; Children is O(1).
//
// There are no error returns: a nil or empty input is a valid empty tree,
// and every operation on it yields the task's identity result.
package bintree
