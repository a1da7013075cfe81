package types

import "math"

// BBox is an axis-aligned bounding box given by its min and max corners.
//
// The empty box is the sentinel with Min = (+Inf, +Inf, +Inf) and
// Max = (-Inf, -Inf, -Inf); extending it by any point or box yields the
// bound of that operand.
type BBox struct {
	Min, Max Vec3
}

// EmptyBBox returns the empty-box sentinel.
func EmptyBBox() BBox {
	return BBox{
		Min: Vec3{posInf, posInf, posInf},
		Max: Vec3{negInf, negInf, negInf},
	}
}

// BBoxFromPoint returns the degenerate box containing only p.
func BBoxFromPoint(p Vec3) BBox {
	return BBox{Min: p, Max: p}
}

// Extend returns b extended to contain p.
func (b BBox) Extend(p Vec3) BBox {
	return b.ExtendBox(BBoxFromPoint(p))
}

// ExtendBox returns b extended to contain other.
func (b BBox) ExtendBox(other BBox) BBox {
	return BBox{
		Min: MinVec3(b.Min, other.Min),
		Max: MaxVec3(b.Max, other.Max),
	}
}

// Diagonal returns Max - Min.
func (b BBox) Diagonal() Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfArea returns half the surface area of the box:
// dx*dy + dy*dz + dz*dx.
func (b BBox) HalfArea() float32 {
	d := b.Diagonal()
	return d[0]*d[1] + d[1]*d[2] + d[2]*d[0]
}

// LargestAxis returns the index (0, 1 or 2) of the box's longest diagonal component.
func (b BBox) LargestAxis() int {
	d := b.Diagonal()
	axis := 0
	if d[axis] < d[1] {
		axis = 1
	}
	if d[axis] < d[2] {
		axis = 2
	}
	return axis
}

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)
