package bvh

import (
	"sort"

	"github.com/polaris-render/bvhtrace/types"
)

// PLOCConfig collects the tuning options for the bottom-up agglomerative
// (Parallel Locally-Ordered Clustering) builder.
type PLOCConfig struct {
	// SearchRadius bounds the merge-partner search window around each
	// position in the working sequence.
	SearchRadius int
	// MortonGridDim is the per-axis resolution of the Morton lattice
	// (1024 gives a 10-bit-per-axis, 30-bit code).
	MortonGridDim int
}

// DefaultPLOCConfig returns the reference tuning values.
func DefaultPLOCConfig() PLOCConfig {
	return PLOCConfig{
		SearchRadius:  14,
		MortonGridDim: 1024,
	}
}

// BuildPLOC constructs a Bvh over the given primitive boxes and centroids
// by Morton-sorting the primitives into a 1D sequence and repeatedly
// merging mutual-nearest-neighbor pairs until a single root remains.
//
// BuildPLOC does not retain references to bboxes or centers.
func BuildPLOC(bboxes []types.BBox, centers []types.Vec3, cfg PLOCConfig) *Bvh {
	n := len(bboxes)
	if n == 0 {
		return &Bvh{}
	}

	prims := mortonSort(centers, cfg.MortonGridDim)

	current := make([]Node, n)
	for i, p := range prims {
		current[i] = Node{PrimCount: 1, FirstIndex: uint32(i), BBox: bboxes[p]}
	}

	nodes := make([]Node, 2*n-1)
	cursor := len(nodes)

	merge := make([]int, n)
	for len(current) > 1 {
		for i := range current {
			merge[i] = findMergePartner(current, i, cfg.SearchRadius)
		}

		next := make([]Node, 0, len(current))
		for i := range current {
			j := merge[i]
			if merge[j] != i {
				// Not a mutual nearest-neighbor pair: carry i forward.
				next = append(next, current[i])
				continue
			}
			if i > j {
				// Mutual pair, already emitted while processing j.
				continue
			}

			cursor -= 2
			nodes[cursor+0] = current[i]
			nodes[cursor+1] = current[j]

			next = append(next, Node{
				BBox:       current[i].BBox.ExtendBox(current[j].BBox),
				PrimCount:  0,
				FirstIndex: uint32(cursor),
			})
		}
		current = next
	}

	nodes[0] = current[0]
	return &Bvh{Nodes: nodes, PrimIndices: prims}
}

// findMergePartner returns the index j != i in the window
// [max(0, i-R), min(len, i+R+1)) that minimizes half_area(union(box_i,
// box_j)), with ties broken by the first (lowest-index) candidate found.
func findMergePartner(nodes []Node, i, radius int) int {
	begin := i - radius
	if begin < 0 {
		begin = 0
	}
	end := i + radius + 1
	if end > len(nodes) {
		end = len(nodes)
	}

	best := -1
	var bestCost float32
	for k := begin; k < end; k++ {
		if k == i {
			continue
		}
		cost := nodes[i].BBox.ExtendBox(nodes[k].BBox).HalfArea()
		if best == -1 || cost < bestCost {
			best = k
			bestCost = cost
		}
	}
	return best
}

// mortonSort maps each centroid onto a MortonGridDim-per-axis lattice,
// bit-interleaves the coordinates into a 30-bit Morton code, and returns
// a permutation of [0, N) sorted ascending by code, ties broken by
// original index (a stable sort).
func mortonSort(centers []types.Vec3, gridDim int) []uint32 {
	n := len(centers)
	bounds := types.EmptyBBox()
	for _, c := range centers {
		bounds = bounds.Extend(c)
	}
	diag := bounds.Diagonal()

	codes := make([]uint32, n)
	for i, c := range centers {
		codes[i] = mortonEncode(c, bounds.Min, diag, gridDim)
	}

	order := make([]uint32, n)
	for i := range order {
		order[i] = uint32(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return codes[order[a]] < codes[order[b]]
	})
	return order
}

func mortonEncode(center, boundsMin, diag types.Vec3, gridDim int) uint32 {
	scale := [3]float32{}
	for axis := 0; axis < 3; axis++ {
		if diag[axis] > 0 {
			scale[axis] = float32(gridDim) / diag[axis]
		}
	}

	var q [3]uint32
	for axis := 0; axis < 3; axis++ {
		v := (center[axis] - boundsMin[axis]) * scale[axis]
		qi := int32(v)
		if qi < 0 {
			qi = 0
		}
		if qi > int32(gridDim-1) {
			qi = int32(gridDim - 1)
		}
		q[axis] = uint32(qi)
	}
	return mortonSplit(q[0]) | (mortonSplit(q[1]) << 1) | (mortonSplit(q[2]) << 2)
}

// mortonSplit spaces the low 10 bits of x by two zero bits each, via the
// standard magic-mask bit-spreading sequence.
func mortonSplit(x uint32) uint32 {
	x &= 0x3FF
	x = (x | (x << 16)) & 0x30000FF
	x = (x | (x << 8)) & 0x300F00F
	x = (x | (x << 4)) & 0x30C30C3
	x = (x | (x << 2)) & 0x09249249
	return x
}
