package bintree

import (
	"reflect"
	"testing"
)

// TestFromLevelOrder_Shape builds the classic [3,9,20,Null,Null,15,7] tree
// and checks the pointer structure directly.
//
//	    3
//	   / \
//	  9  20
//	     / \
//	    15  7
func TestFromLevelOrder_Shape(t *testing.T) {
	root := FromLevelOrder([]int{3, 9, 20, Null, Null, 15, 7})
	if root == nil || root.Val != 3 {
		t.Fatalf("root = %+v; want Val 3", root)
	}
	if root.Left == nil || root.Left.Val != 9 {
		t.Fatalf("root.Left = %+v; want Val 9", root.Left)
	}
	if root.Left.Left != nil || root.Left.Right != nil {
		t.Error("node 9 should be a leaf")
	}
	if root.Right == nil || root.Right.Val != 20 {
		t.Fatalf("root.Right = %+v; want Val 20", root.Right)
	}
	if root.Right.Left == nil || root.Right.Left.Val != 15 {
		t.Errorf("node 20 left child = %+v; want Val 15", root.Right.Left)
	}
	if root.Right.Right == nil || root.Right.Right.Val != 7 {
		t.Errorf("node 20 right child = %+v; want Val 7", root.Right.Right)
	}
}

// TestFromLevelOrder_Empty covers the identity cases.
func TestFromLevelOrder_Empty(t *testing.T) {
	if root := FromLevelOrder(nil); root != nil {
		t.Errorf("nil input: got %+v; want nil tree", root)
	}
	if root := FromLevelOrder([]int{}); root != nil {
		t.Errorf("empty input: got %+v; want nil tree", root)
	}
	if root := FromLevelOrder([]int{Null}); root != nil {
		t.Errorf("Null root: got %+v; want nil tree", root)
	}
}

// TestLevelOrder_RoundTrip verifies build-then-serialize reproduces the input
// modulo trailing Nulls.
func TestLevelOrder_RoundTrip(t *testing.T) {
	cases := [][]int{
		{3, 9, 20, Null, Null, 15, 7},
		{1},
		{1, 2},
		{1, Null, 2},
		{1, 2, 3, 4, Null, Null, 5},
		{5, 3, 8, 1, 4, 7, 9},
	}
	for _, in := range cases {
		got := ToLevelOrder(FromLevelOrder(in))
		if !reflect.DeepEqual(got, in) {
			t.Errorf("round-trip %v = %v", in, got)
		}
	}
	// trailing Nulls are trimmed, not preserved
	got := ToLevelOrder(FromLevelOrder([]int{1, 2, Null}))
	if want := []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("trailing Null: got %v; want %v", got, want)
	}
	if got := ToLevelOrder(nil); len(got) != 0 {
		t.Errorf("nil root: got %v; want empty", got)
	}
}

// TestHeight covers nil, single node, and a skewed chain.
func TestHeight(t *testing.T) {
	if h := Height(nil); h != -1 {
		t.Errorf("nil height = %d; want -1", h)
	}
	if h := Height(FromLevelOrder([]int{1})); h != 0 {
		t.Errorf("single-node height = %d; want 0", h)
	}
	// 1 → 2 → 3 left-skewed chain
	chain := FromLevelOrder([]int{1, 2, Null, 3})
	if h := Height(chain); h != 2 {
		t.Errorf("chain height = %d; want 2", h)
	}
	if h := Height(FromLevelOrder([]int{3, 9, 20, Null, Null, 15, 7})); h != 2 {
		t.Errorf("tree height = %d; want 2", h)
	}
}

// TestChildren verifies canonical left-before-right enumeration and the
// fail-silent contract for nil nodes.
func TestChildren(t *testing.T) {
	root := FromLevelOrder([]int{3, 9, 20})
	got := Children(root, nil)
	if len(got) != 2 || got[0].Val != 9 || got[1].Val != 20 {
		t.Errorf("children of root = %v; want [9 20]", got)
	}
	onlyRight := FromLevelOrder([]int{1, Null, 2})
	got = Children(onlyRight, nil)
	if len(got) != 1 || got[0].Val != 2 {
		t.Errorf("children with missing left = %v; want [2]", got)
	}
	if got = Children(nil, nil); len(got) != 0 {
		t.Errorf("children of nil = %v; want none", got)
	}
}
