package camera

import (
	"sync"

	"github.com/chewxy/math32"

	"portfoliohouse/pkg/engine/geom"
)

// Orbit and zoom limits of the viewing rig.
const (
	FieldOfView = 60 // degrees, vertical

	MinDistance = 5
	MaxDistance = 12

	MinPolar = math32.Pi / 4
	MaxPolar = math32.Pi / 2

	LookAtHeight = 1
)

// StartEye is the eye position when the camera rests on the first room.
var StartEye = geom.V3(0, 2, 8)

// Rig is the user-controlled part of the camera pose: orbit angles and
// distance around a look-at point that follows the eased axis position.
// Panning is not supported. Rig implements Surface.
type Rig struct {
	mu sync.Mutex

	axis     float32
	azimuth  float32 // radians around +Y, 0 looks down -Z
	polar    float32 // radians from +Y
	distance float32
}

// NewRig returns a rig in the start pose at axis 0.
func NewRig() *Rig {
	r := &Rig{}
	r.Reset()
	return r
}

// Reset restores the start pose, keeping the axis position.
func (r *Rig) Reset() {
	offset := StartEye.Sub(geom.V3(0, LookAtHeight, 0))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.distance = offset.Length()
	r.polar = math32.Acos(offset.Y / r.distance)
	r.azimuth = math32.Atan2(offset.X, offset.Z)
}

// SetCameraAxis implements Surface.
func (r *Rig) SetCameraAxis(x float64) {
	r.mu.Lock()
	r.axis = float32(x)
	r.mu.Unlock()
}

// Axis returns the last axis position received from the controller.
func (r *Rig) Axis() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.axis
}

// Orbit rotates the eye around the look-at point by the given degrees.
// The polar angle is clamped so the camera never goes below the floor
// horizon or past straight down.
func (r *Rig) Orbit(delAzimuth, delPolar float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.azimuth += geom.DegToRad(delAzimuth)
	r.polar = geom.Clamp(r.polar+geom.DegToRad(delPolar), MinPolar, MaxPolar)
}

// Zoom scales the eye distance by (1 + pct), clamped to [MinDistance, MaxDistance].
// Negative values move closer.
func (r *Rig) Zoom(pct float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.distance = geom.Clamp(r.distance*(1+pct), MinDistance, MaxDistance)
}

// Distance returns the eye distance from the look-at point.
func (r *Rig) Distance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.distance
}

// Polar returns the polar angle in radians.
func (r *Rig) Polar() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.polar
}

// LookAt returns the look-at point for the current axis position.
func (r *Rig) LookAt() geom.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return geom.V3(r.axis, LookAtHeight, 0)
}

// Eye returns the eye position for the current axis position.
func (r *Rig) Eye() geom.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, cp := math32.Sincos(r.polar)
	sa, ca := math32.Sincos(r.azimuth)
	offset := geom.V3(r.distance*sp*sa, r.distance*cp, r.distance*sp*ca)
	return geom.V3(r.axis, LookAtHeight, 0).Add(offset)
}
