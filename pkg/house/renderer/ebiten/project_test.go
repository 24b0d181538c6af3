package ebiten

import (
	"testing"

	"github.com/chewxy/math32"

	"portfoliohouse/pkg/engine/geom"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func TestProject_TargetAtCentre(t *testing.T) {
	p := NewProjector(geom.V3(0, 2, 8), geom.V3(0, 1, 0), 60, 800, 600)
	x, y, depth, ok := p.Project(geom.V3(0, 1, 0))
	if !ok {
		t.Fatal("Project(target) ok = false")
	}
	if !near(x, 400) || !near(y, 300) {
		t.Errorf("Project(target) = (%v, %v), want (400, 300)", x, y)
	}
	if !near(depth, math32.Sqrt(65)) {
		t.Errorf("depth = %v, want %v", depth, math32.Sqrt(65))
	}
}

func TestProject_BehindCamera(t *testing.T) {
	p := NewProjector(geom.V3(0, 0, 5), geom.V3(0, 0, 0), 60, 800, 600)
	if _, _, _, ok := p.Project(geom.V3(0, 0, 10)); ok {
		t.Error("Project(point behind camera) ok = true")
	}
}

func TestProject_RightIsRight(t *testing.T) {
	p := NewProjector(geom.V3(0, 0, 5), geom.V3(0, 0, 0), 60, 800, 600)
	x, y, _, _ := p.Project(geom.V3(1, 1, 0))
	if x <= 400 {
		t.Errorf("x = %v, want right of centre", x)
	}
	if y >= 300 {
		t.Errorf("y = %v, want above centre", y)
	}
}

func TestClipPolygon(t *testing.T) {
	p := NewProjector(geom.V3(0, 0, 5), geom.V3(0, 0, 0), 60, 800, 600)

	front := []geom.Vec3{geom.V3(-1, -1, 0), geom.V3(1, -1, 0), geom.V3(1, 1, 0), geom.V3(-1, 1, 0)}
	if pts, _ := p.ClipPolygon(front); len(pts) != 4 {
		t.Errorf("ClipPolygon(front) = %d points, want 4", len(pts))
	}

	behind := []geom.Vec3{geom.V3(-1, -1, 9), geom.V3(1, -1, 9), geom.V3(1, 1, 9)}
	if pts, _ := p.ClipPolygon(behind); pts != nil {
		t.Errorf("ClipPolygon(behind) = %v, want nil", pts)
	}

	// A floor quad running under the camera is cut at the near plane.
	straddle := []geom.Vec3{geom.V3(-1, -1, -5), geom.V3(1, -1, -5), geom.V3(1, -1, 10), geom.V3(-1, -1, 10)}
	pts, depth := p.ClipPolygon(straddle)
	if len(pts) != 4 {
		t.Errorf("ClipPolygon(straddle) = %d points, want 4", len(pts))
	}
	if depth <= 0 {
		t.Errorf("depth = %v, want positive", depth)
	}
}
