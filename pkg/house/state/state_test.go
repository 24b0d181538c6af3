package state

import (
	"fmt"
	"testing"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/house/camera"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/scene"
)

func newView(t *testing.T) (*View, *frame.Manual) {
	t.Helper()
	sched := frame.NewManual()
	return New(rooms.Default(), content.Default(), sched, camera.DefaultConfig()), sched
}

func TestNew_StartsAtFirstRoom(t *testing.T) {
	v, _ := newView(t)
	if v.Nav.Active() != 0 {
		t.Errorf("Nav.Active() = %d, want 0", v.Nav.Active())
	}
	if v.Camera.Position() != 0 || !v.Camera.Settled() {
		t.Errorf("camera = %v settled=%v, want 0 settled", v.Camera.Position(), v.Camera.Settled())
	}
	if v.Mounted() {
		t.Error("Mounted() = true before Mount")
	}
}

func TestGoTo_DrivesCamera(t *testing.T) {
	v, sched := newView(t)
	v.Mount()

	if err := v.Nav.GoTo(5); err != nil {
		t.Fatalf("GoTo(5) error = %v", err)
	}
	if v.Camera.Target() != 75 {
		t.Fatalf("Camera.Target() = %v, want 75", v.Camera.Target())
	}

	prev := v.Camera.Position()
	for sched.Advance() {
		pos := v.Camera.Position()
		if pos != 75 && 75-pos >= 75-prev {
			t.Fatalf("distance to 75 did not decrease: %v -> %v", prev, pos)
		}
		prev = pos
	}
	if v.Camera.Position() != 75 {
		t.Errorf("Camera.Position() = %v, want 75", v.Camera.Position())
	}
	if got := v.Rig.Axis(); got != 75 {
		t.Errorf("Rig.Axis() = %v, want 75", got)
	}
}

func TestGoTo_BeforeMountDoesNotTick(t *testing.T) {
	v, sched := newView(t)
	_ = v.Nav.GoTo(2)
	sched.AdvanceN(5)
	if v.Camera.Position() != 0 {
		t.Errorf("Camera.Position() = %v before mount, want 0", v.Camera.Position())
	}

	v.Mount()
	sched.RunUntilIdle(1000)
	if v.Camera.Position() != 30 {
		t.Errorf("Camera.Position() = %v after mount, want 30", v.Camera.Position())
	}
}

func TestRetarget_MidTransition(t *testing.T) {
	v, sched := newView(t)
	v.Mount()

	v.Nav.GoToNext()
	sched.AdvanceN(10)
	mid := v.Camera.Position()
	if mid <= 0 || mid >= 15 {
		t.Fatalf("Camera.Position() = %v, want between 0 and 15", mid)
	}

	_ = v.Nav.GoTo(3)
	sched.Advance()
	if v.Camera.Position() <= mid {
		t.Errorf("Camera.Position() = %v, want past %v toward 45", v.Camera.Position(), mid)
	}
	sched.RunUntilIdle(1000)
	if v.Camera.Position() != 45 {
		t.Errorf("Camera.Position() = %v, want 45", v.Camera.Position())
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	v, _ := newView(t)
	for i := 0; i < 8; i++ {
		v.AddMessage(fmt.Sprint(i))
	}
	if len(v.Messages) != MaxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(v.Messages), MaxMessages)
	}
	if v.Messages[0] != "3" || v.Messages[4] != "7" {
		t.Errorf("Messages = %v, want 3..7", v.Messages)
	}
}

func TestNavigation_AddsMessage(t *testing.T) {
	v, _ := newView(t)
	v.Nav.GoToNext()
	if len(v.Messages) != 1 {
		t.Fatalf("Messages = %v, want one entry", v.Messages)
	}
}

func TestPostAndDrain(t *testing.T) {
	v, _ := newView(t)
	done := make(chan struct{})
	go func() {
		v.Post(func(v *View) { v.AddMessage("from goroutine") })
		close(done)
	}()
	<-done

	if n := v.Drain(); n != 1 {
		t.Errorf("Drain() = %d, want 1", n)
	}
	if v.Messages[len(v.Messages)-1] != "from goroutine" {
		t.Errorf("Messages = %v", v.Messages)
	}
	if n := v.Drain(); n != 0 {
		t.Errorf("second Drain() = %d, want 0", n)
	}
}

func TestDrawList_FollowsVisibility(t *testing.T) {
	v, _ := newView(t)
	_ = v.Nav.GoTo(4)

	stats := scene.Summarize(v.DrawList())
	if stats.Rooms.Size() != 3 {
		t.Errorf("rooms in draw list = %d, want 3", stats.Rooms.Size())
	}
	if stats.Rooms.Has(rooms.Entrance) {
		t.Error("draw list contains entrance while at projects")
	}
}

func TestProgress(t *testing.T) {
	v, sched := newView(t)
	v.Mount()
	_ = v.Nav.GoTo(1)
	if got := v.Progress(0); got != 0 {
		t.Errorf("Progress() before any tick = %v, want 0", got)
	}
	sched.RunUntilIdle(1000)
	if got := v.Progress(0); got != 1 {
		t.Errorf("Progress() settled = %v, want 1", got)
	}
}
