package bvh

import "github.com/polaris-render/bvhtrace/types"

// slabIntersect runs the ray/AABB slab test against box, returning the
// entry/exit t interval intersected with the ray's own [Tmin, Tmax]. The
// box is hit iff the returned tmin <= tmax.
//
// SafeInverse guarantees InvDir is always finite, so axis-aligned rays
// never produce a false miss via a 0*Inf indeterminate form.
func slabIntersect(ray Ray, box types.BBox) (tmin, tmax float32) {
	inv := ray.InvDir()

	lo := box.Min.Sub(ray.Org).MulElem(inv)
	hi := box.Max.Sub(ray.Org).MulElem(inv)

	near := types.MinVec3(lo, hi)
	far := types.MaxVec3(lo, hi)

	tmin = robustMax(near[0], robustMax(near[1], robustMax(near[2], ray.Tmin)))
	tmax = robustMin(far[0], robustMin(far[1], robustMin(far[2], ray.Tmax)))
	return tmin, tmax
}

// robustMin mirrors `a < b ? a : b` exactly, including its NaN behavior:
// unlike math.Min, a NaN a returns b, but a NaN b returns b too (the
// comparison is false either way).
func robustMin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// robustMax mirrors `a > b ? a : b` exactly; see robustMin.
func robustMax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
