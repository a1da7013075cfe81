package bvh

import "github.com/polaris-render/bvhtrace/types"

// Node is a fixed-layout tree record: a bounding box plus either a leaf's
// primitive range or an internal node's left-child index.
//
// A node is a leaf iff PrimCount != 0. For a leaf, FirstIndex indexes into
// the owning Bvh's PrimIndices permutation, spanning PrimCount entries.
// For an internal node, FirstIndex is the index of the left child node,
// with the right child implicitly at FirstIndex+1.
type Node struct {
	BBox       types.BBox
	PrimCount  uint32
	FirstIndex uint32
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.PrimCount != 0
}

// Bvh is a pointer-free binary tree over a primitive-index permutation.
//
// nodes[0] is the root unless the tree is empty (no primitives). Every
// internal node's children sit at strictly greater indices than the
// parent, so the node array is forward-referencing. PrimIndices is a
// permutation of [0, N) for N input primitives, and the leaf ranges
// partition [0, N) with no overlap.
type Bvh struct {
	Nodes       []Node
	PrimIndices []uint32
}

// Empty reports whether the tree holds no primitives.
func (b *Bvh) Empty() bool {
	return len(b.Nodes) == 0
}

// Depth returns the tree depth rooted at the given node index (1 for a
// leaf, 1 + max(child depths) for an internal node).
func (b *Bvh) Depth(nodeIndex uint32) int {
	n := b.Nodes[nodeIndex]
	if n.IsLeaf() {
		return 1
	}
	left := b.Depth(n.FirstIndex)
	right := b.Depth(n.FirstIndex + 1)
	if left > right {
		return 1 + left
	}
	return 1 + right
}

// LeafCount returns the number of leaf nodes in the tree.
func (b *Bvh) LeafCount() int {
	count := 0
	for _, n := range b.Nodes {
		if n.IsLeaf() {
			count++
		}
	}
	return count
}
