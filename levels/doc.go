// Package levels renders a binary tree as one value slice per breadth-first
// depth layer.
//
// What:
//
//   - Levels: [][]int, one sub-slice per level, values left-to-right within
//     the level. Built on the engine's BFS level snapshot, which pins
//     positions enqueued mid-level to the next level.
//   - Flatten: concatenation of levels — a valid breadth-first visit order.
//
// Properties the tests hold it to:
//
//   - len(Levels(root)) == bintree.Height(root) + 1 for non-nil roots.
//   - Each level holds at most twice the nodes of the previous one.
//   - Rebuilding via bintree.FromLevelOrder and re-leveling is stable.
//
// A nil root is a valid empty tree: empty output, no error.
package levels
