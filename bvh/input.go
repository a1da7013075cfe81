package bvh

import "github.com/polaris-render/bvhtrace/types"

// TriangleInput derives the per-primitive bbox/centroid arrays both
// builders consume from a triangle slice.
func TriangleInput(tris []Triangle) (bboxes []types.BBox, centers []types.Vec3) {
	bboxes = make([]types.BBox, len(tris))
	centers = make([]types.Vec3, len(tris))
	for i, tri := range tris {
		bboxes[i] = tri.BBox()
		centers[i] = tri.Center()
	}
	return bboxes, centers
}
