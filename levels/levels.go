// Package levels produces level-order output for binary trees via the
// gridwalk traversal engine's BFS level snapshots.
package levels

import (
	"github.com/katalvlaran/gridwalk/bintree"
	"github.com/katalvlaran/gridwalk/traverse"
)

// space adapts bintree's canonical child enumeration to traverse.Space.
type space struct{}

func (space) Neighbors(n *bintree.Node, dst []*bintree.Node) []*bintree.Node {
	return bintree.Children(n, dst)
}

// Levels returns one sub-slice per BFS level of the tree rooted at root,
// values in left-to-right encounter order within each level. The number of
// levels equals bintree.Height(root)+1. A nil root yields an empty result,
// never an error.
//
// Engine options (context, hooks, filters) pass through; the frontier
// discipline is pinned to BFS regardless of any WithOrder supplied, since
// level output is only defined breadth-first.
// Complexity: O(n) time and memory.
func Levels(root *bintree.Node, opts ...traverse.Option[*bintree.Node]) ([][]int, error) {
	if root == nil {
		return [][]int{}, nil
	}
	opts = append(opts, traverse.WithOrder[*bintree.Node](traverse.BFS))
	res, err := traverse.Walk[*bintree.Node](space{}, root, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(res.Levels))
	for i, level := range res.Levels {
		out[i] = make([]int, len(level))
		for j, n := range level {
			out[i][j] = n.Val
		}
	}

	return out, nil
}

// Flatten concatenates levels into a single breadth-first visitation order.
func Flatten(levels [][]int) []int {
	out := make([]int, 0)
	for _, level := range levels {
		out = append(out, level...)
	}

	return out
}
