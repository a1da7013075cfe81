package bvh

import "testing"

func TestBvhDepthLeaf(t *testing.T) {
	b := &Bvh{Nodes: []Node{{PrimCount: 1, FirstIndex: 0}}}
	if d := b.Depth(0); d != 1 {
		t.Fatalf("expected depth 1 for a single leaf; got %d", d)
	}
}

func TestBvhDepthBalancedPair(t *testing.T) {
	b := &Bvh{Nodes: []Node{
		{PrimCount: 0, FirstIndex: 1},
		{PrimCount: 1, FirstIndex: 0},
		{PrimCount: 1, FirstIndex: 1},
	}}
	if d := b.Depth(0); d != 2 {
		t.Fatalf("expected depth 2; got %d", d)
	}
}

func TestBvhLeafCount(t *testing.T) {
	b := &Bvh{Nodes: []Node{
		{PrimCount: 0, FirstIndex: 1},
		{PrimCount: 1, FirstIndex: 0},
		{PrimCount: 2, FirstIndex: 1},
	}}
	if c := b.LeafCount(); c != 2 {
		t.Fatalf("expected 2 leaves; got %d", c)
	}
}

func TestBvhEmpty(t *testing.T) {
	b := &Bvh{}
	if !b.Empty() {
		t.Fatalf("a Bvh with no nodes should be Empty")
	}
}
