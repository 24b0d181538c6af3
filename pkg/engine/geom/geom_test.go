package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-5
}

func nearVec(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestRotY_QuarterTurn(t *testing.T) {
	got := RotY(math32.Pi / 2).Apply(V3(1, 0, 0))
	want := V3(0, 0, -1)
	if !nearVec(got, want) {
		t.Errorf("RotY(pi/2).Apply(1,0,0) = %v, want %v", got, want)
	}
}

func TestCompose_TranslatesChildIntoParent(t *testing.T) {
	parent := At(15, 0, 0).Rotated(RotY(math32.Pi))
	child := At(1, 2, 3)

	got := Compose(parent, child).Pos
	want := V3(14, 2, -3)
	if !nearVec(got, want) {
		t.Errorf("Compose().Pos = %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("x.Cross(y) = %v, want (0,0,1)", got)
	}
}

func TestNormal_ZeroVector(t *testing.T) {
	if got := (Vec3{}).Normal(); got != (Vec3{}) {
		t.Errorf("Normal() of zero = %v, want zero", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float32 }{
		{-1, 0}, {0.5, 0.5}, {3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
