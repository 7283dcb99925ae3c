// Package bintree provides the binary-tree half of gridwalk's traversal space:
// a pointer-linked Node plus level-order construction and serialization.
package bintree

import (
	"math"
)

// Null marks a missing node in a level-order array.
// math.MinInt is outside the value range this library ever stores in a node.
const Null = math.MinInt

// Node is a binary tree node. Left and Right are exclusively owned by the
// parent; a well-formed tree contains no cycles and no shared subtrees.
type Node struct {
	Val   int
	Left  *Node
	Right *Node
}

// FromLevelOrder builds a tree from a flat level-order array in which Null
// marks a missing child. Children of a Null position are not represented in
// the input (LeetCode convention). Returns nil for an empty array or an array
// whose first element is Null.
// Complexity: O(n) time and memory.
func FromLevelOrder(values []int) *Node {
	if len(values) == 0 || values[0] == Null {
		return nil
	}
	root := &Node{Val: values[0]}
	// frontier of nodes awaiting children, consumed FIFO
	queue := []*Node{root}
	i := 1
	for len(queue) > 0 && i < len(values) {
		n := queue[0]
		queue = queue[1:]
		if values[i] != Null {
			n.Left = &Node{Val: values[i]}
			queue = append(queue, n.Left)
		}
		i++
		if i < len(values) && values[i] != Null {
			n.Right = &Node{Val: values[i]}
			queue = append(queue, n.Right)
		}
		i++
	}

	return root
}

// ToLevelOrder serializes the tree back to a flat level-order array,
// emitting Null for missing children of present nodes and trimming trailing
// Nulls. Round-trip with FromLevelOrder reproduces the input array modulo
// trailing Nulls. Returns an empty slice for a nil root.
// Complexity: O(n) time and memory.
func ToLevelOrder(root *Node) []int {
	if root == nil {
		return []int{}
	}
	out := make([]int, 0)
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, Null)
			continue
		}
		out = append(out, n.Val)
		queue = append(queue, n.Left, n.Right)
	}
	// trim trailing Nulls
	end := len(out)
	for end > 0 && out[end-1] == Null {
		end--
	}

	return out[:end]
}

// Height returns the number of edges on the longest root-to-leaf path.
// A single node has height 0; a nil tree has height -1.
func Height(root *Node) int {
	if root == nil {
		return -1
	}
	lh, rh := Height(root.Left), Height(root.Right)
	if lh > rh {
		return lh + 1
	}

	return rh + 1
}

// Children appends the non-nil children of n to dst, left before right —
// the canonical order for tree traversal. A nil n yields no children.
func Children(n *Node, dst []*Node) []*Node {
	if n == nil {
		return dst
	}
	if n.Left != nil {
		dst = append(dst, n.Left)
	}
	if n.Right != nil {
		dst = append(dst, n.Right)
	}

	return dst
}
