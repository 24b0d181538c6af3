package nav

import (
	"errors"
	"testing"

	"portfoliohouse/pkg/house/rooms"
)

func TestGoToPrevious_AtFirstRoom(t *testing.T) {
	nv := New(6)
	calls := 0
	nv.OnChange(func(prev, next int) { calls++ })

	nv.GoToPrevious()
	nv.GoToPrevious()

	if nv.Active() != 0 {
		t.Errorf("Active() = %d, want 0", nv.Active())
	}
	if calls != 0 {
		t.Errorf("OnChange called %d times, want 0", calls)
	}
	if nv.CanGoPrevious() {
		t.Error("CanGoPrevious() = true at first room, want false")
	}
}

func TestGoToNext_AtLastRoom(t *testing.T) {
	nv := New(6)
	if err := nv.GoTo(5); err != nil {
		t.Fatalf("GoTo(5) error = %v", err)
	}

	nv.GoToNext()
	if nv.Active() != 5 {
		t.Errorf("Active() = %d, want 5", nv.Active())
	}
	if nv.CanGoNext() {
		t.Error("CanGoNext() = true at last room, want false")
	}
}

func TestGoTo_OutOfRange(t *testing.T) {
	nv := New(6)
	if err := nv.GoTo(2); err != nil {
		t.Fatalf("GoTo(2) error = %v", err)
	}

	for _, i := range []int{-1, 6, 100} {
		err := nv.GoTo(i)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("GoTo(%d) error = %v, want ErrInvalidIndex", i, err)
		}
		if nv.Active() != 2 {
			t.Errorf("Active() after GoTo(%d) = %d, want 2", i, nv.Active())
		}
	}
}

func TestOnChange_ReportsTransitions(t *testing.T) {
	nv := New(6)
	type change struct{ prev, next int }
	var got []change
	nv.OnChange(func(prev, next int) { got = append(got, change{prev, next}) })

	nv.GoToNext()
	nv.GoToNext()
	_ = nv.GoTo(5)
	_ = nv.GoTo(5)
	nv.GoToPrevious()

	want := []change{{0, 1}, {1, 2}, {2, 5}, {5, 4}}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNew_PanicsWithoutRooms(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) did not panic")
		}
	}()
	New(0)
}

func TestControls_Layout(t *testing.T) {
	reg := rooms.Default()
	nv := New(reg.Len())

	buttons := Controls(reg, nv)
	if len(buttons) != reg.Len()+2 {
		t.Fatalf("len(Controls()) = %d, want %d", len(buttons), reg.Len()+2)
	}
	if first := buttons[0]; first.Kind != ButtonPrevious || !first.Disabled {
		t.Errorf("first button = %+v, want disabled previous", first)
	}
	if last := buttons[len(buttons)-1]; last.Kind != ButtonNext || last.Disabled {
		t.Errorf("last button = %+v, want enabled next", last)
	}
	if !buttons[1].Active || buttons[1].IsSelectable() {
		t.Errorf("entrance button = %+v, want active and not selectable", buttons[1])
	}
	if buttons[4].Icon != rooms.IconBriefcase || buttons[4].Target != 3 {
		t.Errorf("experience button = %+v, want briefcase targeting 3", buttons[4])
	}

	_ = nv.GoTo(5)
	buttons = Controls(reg, nv)
	if !buttons[len(buttons)-1].Disabled {
		t.Error("next button enabled at last room, want disabled")
	}
}

func TestPress(t *testing.T) {
	reg := rooms.Default()
	nv := New(reg.Len())

	buttons := Controls(reg, nv)
	if err := Press(nv, buttons[4]); err != nil {
		t.Fatalf("Press(experience) error = %v", err)
	}
	if nv.Active() != 3 {
		t.Errorf("Active() = %d, want 3", nv.Active())
	}

	if err := Press(nv, Button{Kind: ButtonRoom, Target: 9}); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Press(room 9) error = %v, want ErrInvalidIndex", err)
	}

	_ = Press(nv, Button{Kind: ButtonNext})
	if nv.Active() != 4 {
		t.Errorf("Active() after next = %d, want 4", nv.Active())
	}
}
