package bvh

import (
	"math"
	"sort"

	"github.com/polaris-render/bvhtrace/types"
)

// SAHConfig collects the tuning options for the binned surface-area-
// heuristic builder.
type SAHConfig struct {
	// MinPrims: nodes with fewer primitives become leaves unconditionally.
	MinPrims int
	// MaxPrims: nodes larger than this must split even if the SAH
	// rejects every split (falls back to a median split).
	MaxPrims int
	// TraversalCost is the ratio of node-visit cost to primitive-
	// intersection cost, in SAH units where cost(prim) = 1.
	TraversalCost float32
	// BinCount is the number of bins evaluated per axis.
	BinCount int
}

// DefaultSAHConfig returns the reference tuning values.
func DefaultSAHConfig() SAHConfig {
	return SAHConfig{
		MinPrims:      2,
		MaxPrims:      8,
		TraversalCost: 1.0,
		BinCount:      16,
	}
}

// sahBuilder holds the mutable state threaded through the top-down
// recursion: the inputs, the primitive-index permutation and the growing
// node array. The monotonically increasing allocation counter is passed
// to buildRecursive as a pointer.
type sahBuilder struct {
	cfg     SAHConfig
	bboxes  []types.BBox
	centers []types.Vec3
	prims   []uint32
	nodes   []Node
}

// BuildSAH constructs a Bvh over the given primitive boxes and centroids
// using a top-down binned SAH split, falling back to a median split when
// the heuristic rejects every candidate on an oversized node.
//
// BuildSAH does not retain references to bboxes or centers.
func BuildSAH(bboxes []types.BBox, centers []types.Vec3, cfg SAHConfig) *Bvh {
	n := len(bboxes)
	if n == 0 {
		return &Bvh{}
	}

	b := &sahBuilder{
		cfg:     cfg,
		bboxes:  bboxes,
		centers: centers,
		prims:   make([]uint32, n),
		nodes:   make([]Node, 1, 2*n-1),
	}
	for i := range b.prims {
		b.prims[i] = uint32(i)
	}
	b.nodes[0] = Node{PrimCount: uint32(n), FirstIndex: 0}

	nodeCount := 1
	b.buildRecursive(0, &nodeCount)
	b.nodes = b.nodes[:nodeCount]

	return &Bvh{Nodes: b.nodes, PrimIndices: b.prims}
}

// bin accumulates the box and count of every primitive whose centroid
// falls into it along one axis.
type bin struct {
	box   types.BBox
	count int
}

func (bn *bin) extend(other bin) {
	bn.box = bn.box.ExtendBox(other.box)
	bn.count += other.count
}

// cost returns half_area(box) * count, the accumulated bin's SAH
// contribution. A bin with no primitives contributes 0 rather than
// evaluating half_area on an untouched EmptyBBox: with the min=+Inf,
// max=-Inf empty sentinel, half_area(EmptyBBox()) is +Inf, and Inf*0 is
// NaN, not 0 — this single guard is what lets the correct empty-box
// convention coexist with binned SAH's zero-count accumulators.
func (bn bin) cost() float32 {
	if bn.count == 0 {
		return 0
	}
	return bn.box.HalfArea() * float32(bn.count)
}

// split is a candidate partition of a node's primitive range: split at
// bin index rightBin (bins [0, rightBin) go left, [rightBin, BinCount)
// go right) along axis, with the given SAH cost. rightBin == 0 means "no
// valid split was found"; such a split's cost is +Inf so ordinary `<`
// comparison always ranks it worse than a real candidate.
type split struct {
	axis     int
	cost     float32
	rightBin int
}

func noSplit(axis int) split {
	return split{axis: axis, cost: float32(math.Inf(1)), rightBin: 0}
}

func binIndex(axis int, box types.BBox, center types.Vec3, binCount int) int {
	extent := box.Max[axis] - box.Min[axis]
	idx := int((center[axis] - box.Min[axis]) * (float32(binCount) / extent))
	if idx < 0 {
		idx = 0
	}
	if idx > binCount-1 {
		idx = binCount - 1
	}
	return idx
}

// findBestSplit bins the primitives in [first, first+count) of the node's
// range along axis and sweeps left-to-right/right-to-left to find the
// minimum-cost split.
func (b *sahBuilder) findBestSplit(axis int, node Node) split {
	binCount := b.cfg.BinCount
	bins := make([]bin, binCount)
	for i := range bins {
		bins[i].box = types.EmptyBBox()
	}
	for i := uint32(0); i < node.PrimCount; i++ {
		primIndex := b.prims[node.FirstIndex+i]
		idx := binIndex(axis, node.BBox, b.centers[primIndex], binCount)
		bins[idx].box = bins[idx].box.ExtendBox(b.bboxes[primIndex])
		bins[idx].count++
	}

	rightCost := make([]float32, binCount)
	var rightAccum bin
	rightAccum.box = types.EmptyBBox()
	for i := binCount - 1; i > 0; i-- {
		rightAccum.extend(bins[i])
		rightCost[i] = rightAccum.cost()
	}

	best := noSplit(axis)
	var leftAccum bin
	leftAccum.box = types.EmptyBBox()
	for i := 0; i < binCount-1; i++ {
		leftAccum.extend(bins[i])
		cost := leftAccum.cost() + rightCost[i+1]
		if cost < best.cost {
			best.cost = cost
			best.rightBin = i + 1
		}
	}
	return best
}

// buildRecursive partitions the primitive range owned by nodes[nodeIndex]
// and returns once the subtree rooted there is fully built.
func (b *sahBuilder) buildRecursive(nodeIndex uint32, nodeCount *int) {
	node := &b.nodes[nodeIndex]

	box := types.EmptyBBox()
	for i := uint32(0); i < node.PrimCount; i++ {
		box = box.ExtendBox(b.bboxes[b.prims[node.FirstIndex+i]])
	}
	node.BBox = box

	if int(node.PrimCount) < b.cfg.MinPrims {
		return
	}

	best := noSplit(0)
	for axis := 0; axis < 3; axis++ {
		candidate := b.findBestSplit(axis, *node)
		if candidate.cost < best.cost {
			best = candidate
		}
	}

	leafCost := box.HalfArea() * (float32(node.PrimCount) - b.cfg.TraversalCost)

	first := node.FirstIndex
	count := node.PrimCount
	var firstRight uint32

	if best.rightBin == 0 || best.cost > leafCost {
		if int(count) <= b.cfg.MaxPrims {
			return
		}
		// Fall back to a median split along the largest axis.
		axis := box.LargestAxis()
		rng := b.prims[first : first+count]
		sort.Slice(rng, func(i, j int) bool {
			return b.centers[rng[i]][axis] < b.centers[rng[j]][axis]
		})
		firstRight = first + count/2
	} else {
		firstRight = partitionByBin(b.prims[first:first+count], b.centers, node.BBox, best.axis, best.rightBin, b.cfg.BinCount) + first
	}

	leftCount := firstRight - first
	rightCount := count - leftCount

	firstChild := uint32(*nodeCount)
	*nodeCount += 2
	b.nodes = append(b.nodes, Node{PrimCount: leftCount, FirstIndex: first})
	b.nodes = append(b.nodes, Node{PrimCount: rightCount, FirstIndex: firstRight})

	node = &b.nodes[nodeIndex]
	node.FirstIndex = firstChild
	node.PrimCount = 0

	b.buildRecursive(firstChild, nodeCount)
	b.buildRecursive(firstChild+1, nodeCount)
}

// partitionByBin reorders prims in place so that every index whose bin is
// < rightBin precedes every index whose bin is >= rightBin, and returns
// the number of indices in the left partition.
func partitionByBin(prims []uint32, centers []types.Vec3, box types.BBox, axis, rightBin, binCount int) uint32 {
	i, j := 0, len(prims)-1
	for i <= j {
		for i <= j && binIndex(axis, box, centers[prims[i]], binCount) < rightBin {
			i++
		}
		for i <= j && binIndex(axis, box, centers[prims[j]], binCount) >= rightBin {
			j--
		}
		if i < j {
			prims[i], prims[j] = prims[j], prims[i]
			i++
			j--
		}
	}
	return uint32(i)
}
