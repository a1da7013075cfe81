// Package types defines the scalar vector and bounding-box primitives
// shared by the bvh, camera and render packages.
package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec3 is an ordered triple of IEEE-754 single-precision floats.
type Vec3 f32.Vec3

// XYZ builds a vector from its components.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns the component-wise sum of v and v2.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Sub returns the component-wise difference v - v2.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// MulElem returns the component-wise product of v and v2.
func (v Vec3) MulElem(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1.0 / l)
}

// Dot returns the dot product of v and v2.
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Cross returns the cross product of v and v2.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{
		v[1]*v2[2] - v[2]*v2[1],
		v[2]*v2[0] - v[0]*v2[2],
		v[0]*v2[1] - v[1]*v2[0],
	}
}

// MinVec3 returns the component-wise minimum of v1 and v2.
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// MaxVec3 returns the component-wise maximum of v1 and v2.
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}

// SafeInverse returns 1/x, clamping |x| up to machine epsilon with the sign
// of x so the result is always finite and nonzero.
func SafeInverse(x float32) float32 {
	if float32(math.Abs(float64(x))) <= epsilon {
		return float32(math.Copysign(float64(1.0/epsilon), float64(x)))
	}
	return 1.0 / x
}

const epsilon = 1.1920929e-07 // float32 machine epsilon
