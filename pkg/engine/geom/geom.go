// Package geom is a small float32 vector and transform package for the house
// scene. Trigonometry goes through chewxy/math32.
package geom

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normal returns v scaled to unit length, or the zero vector.
func (v Vec3) Normal() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Mat3 is a 3x3 rotation/scale basis stored by rows.
type Mat3 [3][3]float32

// Identity3 returns the identity basis.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotX returns a rotation of angle radians about the X axis.
func RotX(angle float32) Mat3 {
	s, c := math32.Sincos(angle)
	return Mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

// RotY returns a rotation of angle radians about the Y axis.
func RotY(angle float32) Mat3 {
	s, c := math32.Sincos(angle)
	return Mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

// RotZ returns a rotation of angle radians about the Z axis.
func RotZ(angle float32) Mat3 {
	s, c := math32.Sincos(angle)
	return Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Apply returns m * v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transform places a node: a basis followed by a translation.
type Transform struct {
	Pos   Vec3
	Basis Mat3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Basis: Identity3()}
}

// At returns a translation-only transform.
func At(x, y, z float32) Transform {
	return Transform{Pos: Vec3{x, y, z}, Basis: Identity3()}
}

// Rotated returns t with rot applied after its current basis.
func (t Transform) Rotated(rot Mat3) Transform {
	t.Basis = t.Basis.Mul(rot)
	return t
}

// Point maps a point in t's local space to its parent space.
func (t Transform) Point(p Vec3) Vec3 {
	return t.Basis.Apply(p).Add(t.Pos)
}

// Compose returns the transform that applies child inside parent.
func Compose(parent, child Transform) Transform {
	return Transform{
		Pos:   parent.Point(child.Pos),
		Basis: parent.Basis.Mul(child.Basis),
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
