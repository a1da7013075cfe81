package bvh

import "github.com/polaris-render/bvhtrace/types"

// noHit is the reserved primitive index meaning "no intersection found".
const noHit = ^uint32(0)

// Ray is a single scalar ray: an origin, a direction (not required to be
// unit length) and an active t-interval. tmax is advanced in place as
// closer hits are found during traversal; tmin is never mutated.
type Ray struct {
	Org, Dir   types.Vec3
	Tmin, Tmax float32
}

// NewRay builds a ray with the given origin, direction and t-interval.
func NewRay(org, dir types.Vec3, tmin, tmax float32) Ray {
	return Ray{Org: org, Dir: dir, Tmin: tmin, Tmax: tmax}
}

// InvDir returns the component-wise safe reciprocal of the ray direction.
func (r Ray) InvDir() types.Vec3 {
	return types.Vec3{
		types.SafeInverse(r.Dir[0]),
		types.SafeInverse(r.Dir[1]),
		types.SafeInverse(r.Dir[2]),
	}
}

// Hit is the closest intersection found along a ray: the primitive index,
// or the no-hit sentinel.
type Hit struct {
	PrimIndex uint32
}

// NoHit returns the no-hit sentinel value.
func NoHit() Hit {
	return Hit{PrimIndex: noHit}
}

// Found reports whether h records an actual intersection.
func (h Hit) Found() bool {
	return h.PrimIndex != noHit
}
