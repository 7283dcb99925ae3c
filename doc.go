// Package gridwalk is a reusable traversal toolkit for 2D grids and binary
// trees — one parameterized engine in place of the near-identical BFS, DFS,
// and backtracking bodies that grid/tree problems tend to re-implement.
//
// 🚀 What is gridwalk?
//
//	A small, deterministic library that brings together:
//		• grid/      — rectangular rune fields: bounded neighbor enumeration in a
//		               fixed canonical order, row-major scanning, sentinel-based
//		               in-place visited tracking with guaranteed restore
//		• bintree/   — binary trees: level-order build/serialize with a Null
//		               sentinel, canonical child enumeration
//		• traverse/  — the engine: Walk (exhaustive BFS with level snapshots, or
//		               explicit-stack DFS) and Search (constrained backtracking
//		               path search), generic over any comparable position type
//		• islands/   — connected-component counting (BFS, DFS, or union-find)
//		• levels/    — level-order output for trees
//		• wordsearch/— word existence and first-match paths over letter grids
//
// ✨ Why choose gridwalk?
//
//   - Deterministic – canonical neighbor and scan orders make every traversal
//     reproducible; order decides which answer comes first, never whether one exists
//   - Strategy-swappable – visited tracking (auxiliary set vs. in-place sentinel)
//     and frontier discipline (BFS vs. DFS) are parameters, proven equivalent in tests
//   - Pure functions – no I/O, no global state; observability via hooks
//     (OnVisit, OnEnqueue) and context cancellation on every loop
//
// Quick ASCII example:
//
//	    1 1 0
//	    0 1 0
//	    0 0 1
//
//	holds two islands: the L-shape in the corner and the lone cell at the far end.
//
// Dive into each package's doc.go for contracts, complexity, and error
// taxonomy.
package gridwalk
