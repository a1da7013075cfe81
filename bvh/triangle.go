package bvh

import "github.com/polaris-render/bvhtrace/types"

// Triangle is the reference primitive: three vertices in object space.
type Triangle struct {
	P0, P1, P2 types.Vec3
}

// Center returns the triangle's centroid, the arithmetic mean of its
// three vertices.
func (t Triangle) Center() types.Vec3 {
	return t.P0.Add(t.P1).Add(t.P2).Mul(1.0 / 3.0)
}

// BBox returns the triangle's axis-aligned bounding box.
func (t Triangle) BBox() types.BBox {
	return types.BBoxFromPoint(t.P0).Extend(t.P1).Extend(t.P2)
}

// Intersectors adapts a triangle slice to the traversal's Intersector
// table contract.
func Intersectors(tris []Triangle) []Intersector {
	out := make([]Intersector, len(tris))
	for i := range tris {
		out[i] = tris[i]
	}
	return out
}

// Intersect runs the Möller–Trumbore ray/triangle test. On success it
// advances ray.Tmax to the hit distance and returns true; on failure (miss,
// or any of t/u/v/w being NaN) it leaves the ray untouched and returns
// false. No epsilon tolerances are applied: degenerate (zero-area or NaN)
// triangles are handled purely by the NaN-safe comparisons below.
func (t Triangle) Intersect(ray *Ray) bool {
	e1 := t.P0.Sub(t.P1)
	e2 := t.P2.Sub(t.P0)
	n := e1.Cross(e2)

	c := t.P0.Sub(ray.Org)
	r := ray.Dir.Cross(c)
	invDet := 1.0 / n.Dot(ray.Dir)

	u := r.Dot(e2) * invDet
	v := r.Dot(e1) * invDet
	w := 1.0 - u - v

	// Written so that any NaN in u, v or t yields a failed comparison,
	// never a false positive.
	if u >= 0 && v >= 0 && w >= 0 {
		tHit := n.Dot(c) * invDet
		if tHit >= ray.Tmin && tHit <= ray.Tmax {
			ray.Tmax = tHit
			return true
		}
	}
	return false
}
