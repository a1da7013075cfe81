// Package camera implements the fixed pinhole camera used to shoot
// primary rays into a scene.
package camera

import (
	"math"

	"github.com/polaris-render/bvhtrace/bvh"
	"github.com/polaris-render/bvhtrace/types"
)

// Camera is a pinhole camera defined by its origin and an orthonormal
// forward/up/right basis. Unlike the original frustrum-corner camera this
// derives right on construction rather than caching per-corner rays:
// there is exactly one fixed view to support, so there is nothing to
// amortize.
type Camera struct {
	Org     types.Vec3
	Forward types.Vec3
	Up      types.Vec3
	Right   types.Vec3
}

// New builds a camera from an origin, forward and up vector. Right is
// derived as normalize(forward x up); up is used as supplied and is
// expected to already be orthogonal to forward.
func New(org, forward, up types.Vec3) Camera {
	return Camera{
		Org:     org,
		Forward: forward,
		Up:      up,
		Right:   forward.Cross(up).Normalize(),
	}
}

// Default returns the fixed camera used by the render driver: an eye a
// little above and behind the origin, looking down -Z.
func Default() Camera {
	return New(
		types.Vec3{0, 1, 3},
		types.Vec3{0, 0, -1},
		types.Vec3{0, 1, 0},
	)
}

// RayThrough builds the primary ray through image-plane coordinates u, v,
// each expected in [-1, 1] with (0, 0) at the image center. The resulting
// ray direction is not normalized; Tmin is 0 and Tmax is unbounded.
func (c Camera) RayThrough(u, v float32) bvh.Ray {
	dir := c.Forward.Add(c.Right.Mul(u)).Add(c.Up.Mul(v))
	return bvh.NewRay(c.Org, dir, 0, float32(math.Inf(1)))
}
