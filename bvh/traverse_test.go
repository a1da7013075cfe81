package bvh

import (
	"math"
	"testing"

	"github.com/polaris-render/bvhtrace/types"
)

func buildBoth(tris []Triangle) []*Bvh {
	bboxes, centers := TriangleInput(tris)
	return []*Bvh{
		BuildSAH(bboxes, centers, DefaultSAHConfig()),
		BuildPLOC(bboxes, centers, DefaultPLOCConfig()),
	}
}

func TestTraverseSingleTriangleHit(t *testing.T) {
	tris := []Triangle{{P0: types.Vec3{-1, 0, 0}, P1: types.Vec3{1, 0, 0}, P2: types.Vec3{0, 1, 0}}}
	prims := Intersectors(tris)

	for _, b := range buildBoth(tris) {
		ray := NewRay(types.Vec3{0, 0.25, 1}, types.Vec3{0, 0, -1}, 0, math.MaxFloat32)
		hit := b.Traverse(&ray, prims)

		if !hit.Found() || hit.PrimIndex != 0 {
			t.Fatalf("expected hit on primitive 0; got %+v", hit)
		}
		if math.Abs(float64(ray.Tmax-1)) > 1e-3 {
			t.Fatalf("expected ray.Tmax ~= 1; got %v", ray.Tmax)
		}
	}
}

func TestTraverseSingleTriangleMiss(t *testing.T) {
	tris := []Triangle{{P0: types.Vec3{-1, 0, 0}, P1: types.Vec3{1, 0, 0}, P2: types.Vec3{0, 1, 0}}}
	prims := Intersectors(tris)

	for _, b := range buildBoth(tris) {
		ray := NewRay(types.Vec3{10, 10, 1}, types.Vec3{0, 0, -1}, 0, math.MaxFloat32)
		hit := b.Traverse(&ray, prims)

		if hit.Found() {
			t.Fatalf("expected no hit; got %+v", hit)
		}
		if ray.Tmax != math.MaxFloat32 {
			t.Fatalf("ray.Tmax should be unchanged on a miss; got %v", ray.Tmax)
		}
	}
}

func TestTraverseClosestOfTwo(t *testing.T) {
	near := Triangle{P0: types.Vec3{-1, 0, 0}, P1: types.Vec3{1, 0, 0}, P2: types.Vec3{0, 1, 0}}
	far := Triangle{P0: types.Vec3{-1, 0, -1}, P1: types.Vec3{1, 0, -1}, P2: types.Vec3{0, 1, -1}}
	tris := []Triangle{far, near} // deliberately out of z-order
	prims := Intersectors(tris)

	for _, b := range buildBoth(tris) {
		ray := NewRay(types.Vec3{0, 0.25, 2}, types.Vec3{0, 0, -1}, 0, math.MaxFloat32)
		hit := b.Traverse(&ray, prims)

		if !hit.Found() || hit.PrimIndex != 1 {
			t.Fatalf("expected hit on the nearer triangle (index 1); got %+v", hit)
		}
		if math.Abs(float64(ray.Tmax-2)) > 1e-3 {
			t.Fatalf("expected ray.Tmax ~= 2; got %v", ray.Tmax)
		}
	}
}

func TestTraverseTmaxClampSuppressesHit(t *testing.T) {
	near := Triangle{P0: types.Vec3{-1, 0, 0}, P1: types.Vec3{1, 0, 0}, P2: types.Vec3{0, 1, 0}}
	far := Triangle{P0: types.Vec3{-1, 0, -1}, P1: types.Vec3{1, 0, -1}, P2: types.Vec3{0, 1, -1}}
	tris := []Triangle{far, near}
	prims := Intersectors(tris)

	for _, b := range buildBoth(tris) {
		ray := NewRay(types.Vec3{0, 0.25, 2}, types.Vec3{0, 0, -1}, 0, 1.5)
		hit := b.Traverse(&ray, prims)

		if hit.Found() {
			t.Fatalf("expected no hit: both triangles are beyond the clamped tmax; got %+v", hit)
		}
	}
}

func TestTraverseEmptyBuildYieldsNoHit(t *testing.T) {
	b := BuildSAH(nil, nil, DefaultSAHConfig())
	ray := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1}, 0, math.MaxFloat32)

	hit := b.Traverse(&ray, nil)
	if hit.Found() {
		t.Fatalf("expected no hit against an empty Bvh")
	}
}

func TestTraverseSAHAndPLOCAgreeOnHitSet(t *testing.T) {
	tris := quadPrimitives()
	prims := Intersectors(tris)
	bboxes, centers := TriangleInput(tris)

	sah := BuildSAH(bboxes, centers, DefaultSAHConfig())
	ploc := BuildPLOC(bboxes, centers, DefaultPLOCConfig())

	rays := []Ray{
		NewRay(types.Vec3{-1.5, 0.25, -1.5}, types.Vec3{0, 0, 1}, 0, math.MaxFloat32),
		NewRay(types.Vec3{1.5, 0.25, -1.5}, types.Vec3{0, 0, 1}, 0, math.MaxFloat32),
		NewRay(types.Vec3{100, 100, 100}, types.Vec3{0, 0, -1}, 0, math.MaxFloat32),
	}

	for i, r := range rays {
		rs, rp := r, r
		hitSAH := sah.Traverse(&rs, prims)
		hitPLOC := ploc.Traverse(&rp, prims)

		if hitSAH.Found() != hitPLOC.Found() {
			t.Fatalf("ray %d: SAH and PLOC disagree on hit/no-hit (%v vs %v)", i, hitSAH.Found(), hitPLOC.Found())
		}
		if hitSAH.Found() && hitSAH.PrimIndex != hitPLOC.PrimIndex {
			t.Fatalf("ray %d: SAH and PLOC disagree on hit primitive (%d vs %d)", i, hitSAH.PrimIndex, hitPLOC.PrimIndex)
		}
	}
}
