package vmath

import "math"

// Euler holds rotation angles in radians, applied in XYZ order (object rotates Z first, then Y, then X)
// Angles are never wrapped; wrap-around at 2π is cosmetic
type Euler struct {
	X, Y, Z float64
}

// RotateX rotates v about the X axis by angle (right-handed)
func RotateX(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotateY rotates v about the Y axis by angle (right-handed)
// x' = x·cos + z·sin, z' = -x·sin + z·cos
func RotateY(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// RotateZ rotates v about the Z axis by angle (right-handed)
func RotateZ(v Vec3F, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// Apply rotates v by the Euler angles, matrix order Rx·Ry·Rz
func (e Euler) Apply(v Vec3F) Vec3F {
	if e.Z != 0 {
		v = RotateZ(v, e.Z)
	}
	if e.Y != 0 {
		v = RotateY(v, e.Y)
	}
	if e.X != 0 {
		v = RotateX(v, e.X)
	}
	return v
}

// Add returns component-wise sum of two Euler rotations
// Only meaningful for layering small offsets onto an accumulated rotation
func (e Euler) Add(o Euler) Euler {
	return Euler{e.X + o.X, e.Y + o.Y, e.Z + o.Z}
}
