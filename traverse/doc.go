// Package traverse is gridwalk's traversal engine: one parameterized loop
// replacing the family of near-identical BFS/DFS/backtracking bodies that
// grid and tree problems otherwise re-implement per task.
//
// What
//
//   - Space[P]: uniform neighbor enumeration — grids and binary trees plug in
//     through the same contract.
//   - Tracker[P]: interchangeable visited strategies. SetTracker (auxiliary
//     map, source untouched) is the default; grid.InPlaceTracker (sentinel
//     marking with guaranteed restore) is the O(1)-overhead alternative.
//     Traversal results are identical under any correct Tracker.
//   - Walk: exhaustive traversal. BFS (FIFO frontier with per-level
//     snapshots — positions enqueued mid-level belong to the next level) or
//     DFS (explicit LIFO stack, no recursion). Returns Order, Depth, Parent,
//     and Levels (BFS only).
//   - Search: constrained depth-first path search with backtracking. A
//     StepFunc judges each candidate (Prune / Advance / Accept); dead ends
//     are unmarked on the way out, so a failed search leaves an in-place
//     tracked source bit-identical to its pre-call state.
//
// Why
//
//   - Connected-component sweeps (island counting) via Walk + DFS or BFS.
//   - Level-order layering of trees via Walk + BFS Levels.
//   - Word-search style existence/path queries via Search.
//
// Determinism
//
//	The engine enqueues neighbors exactly in the order the Space enumerates
//	them, so with a deterministic Space the visit sequence is fully
//	reproducible. Under DFS, neighbors are pushed in reverse so the first
//	canonical neighbor is explored first, matching the recursive preorder.
//
// Failure semantics
//
//	No path found is not an error: Search returns (nil, false, nil). Errors
//	are reserved for invalid input (ErrSpaceNil, ErrStepNil), invalid options
//	(ErrOptionViolation), cancellation, and OnVisit aborts.
//
// Complexity (n = reachable positions, d = max neighbor degree)
//
//   - Walk:   O(n·d) time, O(n) memory for frontier, tracker and result.
//   - Search: O(d^L) worst-case time for path length L, O(L) extra memory
//     beyond the tracker — the usual backtracking bound.
//
// Options
//
//   - WithContext(ctx):        cancellation/deadline, checked per iteration.
//   - WithOrder(BFS|DFS):      frontier discipline for Walk.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0); 0 = none.
//   - WithTracker(t):          visited strategy.
//   - WithOnVisit(fn):         per-visit hook; error aborts the traversal.
//   - WithOnEnqueue(fn):       frontier-join hook (may fire more than once
//     per position under DFS; the visited check on pop keeps visits unique).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,next)==false.
package traverse
