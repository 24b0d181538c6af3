package camera

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestRig_StartPose(t *testing.T) {
	r := NewRig()
	eye := r.Eye()
	if !approx(eye.X, 0) || !approx(eye.Y, 2) || !approx(eye.Z, 8) {
		t.Errorf("Eye() = %v, want (0, 2, 8)", eye)
	}
	if at := r.LookAt(); at.X != 0 || at.Y != LookAtHeight || at.Z != 0 {
		t.Errorf("LookAt() = %v, want (0, 1, 0)", at)
	}
}

func TestRig_FollowsAxis(t *testing.T) {
	r := NewRig()
	r.SetCameraAxis(45)
	if got := r.Eye().X; !approx(got, 45) {
		t.Errorf("Eye().X = %v, want 45", got)
	}
	if got := r.LookAt().X; got != 45 {
		t.Errorf("LookAt().X = %v, want 45", got)
	}
}

func TestRig_ZoomClamped(t *testing.T) {
	r := NewRig()
	r.Zoom(-0.9)
	if got := r.Distance(); got != MinDistance {
		t.Errorf("Distance() after zooming in = %v, want %v", got, MinDistance)
	}
	r.Zoom(10)
	if got := r.Distance(); got != MaxDistance {
		t.Errorf("Distance() after zooming out = %v, want %v", got, MaxDistance)
	}
}

func TestRig_OrbitPolarClamped(t *testing.T) {
	r := NewRig()
	r.Orbit(0, -180)
	if got := r.Polar(); !approx(got, MinPolar) {
		t.Errorf("Polar() = %v, want %v", got, MinPolar)
	}
	r.Orbit(0, 180)
	if got := r.Polar(); !approx(got, MaxPolar) {
		t.Errorf("Polar() = %v, want %v", got, MaxPolar)
	}
	if eye := r.Eye(); eye.Y < LookAtHeight-1e-4 {
		t.Errorf("Eye().Y = %v, want at or above look-at height", eye.Y)
	}
}

func TestRig_ResetKeepsAxis(t *testing.T) {
	r := NewRig()
	r.SetCameraAxis(30)
	r.Orbit(40, 10)
	r.Reset()
	if got := r.Axis(); got != 30 {
		t.Errorf("Axis() after Reset = %v, want 30", got)
	}
	if eye := r.Eye(); !approx(eye.Z, 8) {
		t.Errorf("Eye().Z after Reset = %v, want 8", eye.Z)
	}
}
