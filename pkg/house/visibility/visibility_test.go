package visibility

import (
	"testing"

	"portfoliohouse/pkg/house/rooms"
)

func TestVisibleRooms_SizeAndContainsActive(t *testing.T) {
	reg := rooms.Default()
	for active := 0; active < reg.Len(); active++ {
		visible := VisibleRooms(reg, active)
		if visible.Size() > 3 {
			t.Errorf("VisibleRooms(%d).Size() = %d, want <= 3", active, visible.Size())
		}
		if !visible.Has(reg.At(active).ID) {
			t.Errorf("VisibleRooms(%d) does not contain active room %q", active, reg.At(active).ID)
		}
	}
}

func TestVisibleRooms_Neighbours(t *testing.T) {
	reg := rooms.Default()
	tests := []struct {
		active int
		want   []string
	}{
		{0, []string{rooms.Entrance, rooms.About}},
		{1, []string{rooms.Entrance, rooms.About, rooms.Skills}},
		{3, []string{rooms.Skills, rooms.Experience, rooms.Projects}},
		{5, []string{rooms.Projects, rooms.Contact}},
	}

	for _, tt := range tests {
		visible := VisibleRooms(reg, tt.active)
		if visible.Size() != len(tt.want) {
			t.Errorf("VisibleRooms(%d).Size() = %d, want %d", tt.active, visible.Size(), len(tt.want))
		}
		for _, id := range tt.want {
			if !visible.Has(id) {
				t.Errorf("VisibleRooms(%d) missing %q", tt.active, id)
			}
		}
	}
}

func TestWindow_ContiguousAndClamped(t *testing.T) {
	tests := []struct {
		n, active  int
		wantLo, hi int
	}{
		{6, 0, 0, 1},
		{6, 2, 1, 3},
		{6, 5, 4, 5},
		{6, -4, 0, 1},
		{6, 10, 4, 5},
		{1, 0, 0, 0},
		{0, 0, 0, -1},
	}

	for _, tt := range tests {
		lo, hi := Window(tt.n, tt.active)
		if lo != tt.wantLo || hi != tt.hi {
			t.Errorf("Window(%d, %d) = (%d, %d), want (%d, %d)", tt.n, tt.active, lo, hi, tt.wantLo, tt.hi)
		}
	}
}

func TestVisibleIndices(t *testing.T) {
	got := VisibleIndices(6, 3)
	want := []int{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("VisibleIndices(6, 3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VisibleIndices(6, 3) = %v, want %v", got, want)
			break
		}
	}
	if got := VisibleIndices(0, 0); got != nil {
		t.Errorf("VisibleIndices(0, 0) = %v, want nil", got)
	}
}

func TestIsVisible(t *testing.T) {
	if !IsVisible(6, 2, 3) {
		t.Error("IsVisible(6, 2, 3) = false, want true")
	}
	if IsVisible(6, 2, 4) {
		t.Error("IsVisible(6, 2, 4) = true, want false")
	}
}
