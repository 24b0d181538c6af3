package frame

import "testing"

func TestLoop_RunFrameRunsPendingOnce(t *testing.T) {
	l := NewLoop()
	calls := 0
	l.RequestFrame(func() { calls++ })

	if got := l.RunFrame(); got != 1 {
		t.Errorf("RunFrame() = %d, want 1", got)
	}
	if got := l.RunFrame(); got != 0 {
		t.Errorf("second RunFrame() = %d, want 0", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestLoop_RescheduleDefersToNextFrame(t *testing.T) {
	l := NewLoop()
	calls := 0
	var tick func()
	tick = func() {
		calls++
		if calls < 3 {
			l.RequestFrame(tick)
		}
	}
	l.RequestFrame(tick)

	for frame := 1; frame <= 3; frame++ {
		l.RunFrame()
		if calls != frame {
			t.Fatalf("after frame %d calls = %d, want %d", frame, calls, frame)
		}
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestLoop_Cancel(t *testing.T) {
	l := NewLoop()
	ran := false
	h := l.RequestFrame(func() { ran = true })
	l.Cancel(h)
	l.Cancel(h) // second cancel is a no-op
	l.RunFrame()

	if ran {
		t.Error("cancelled callback ran")
	}
	if l.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", l.Frames())
	}
}

func TestManual_RunUntilIdle(t *testing.T) {
	m := NewManual()
	remaining := 5
	var tick func()
	tick = func() {
		remaining--
		if remaining > 0 {
			m.RequestFrame(tick)
		}
	}
	m.RequestFrame(tick)

	if got := m.RunUntilIdle(100); got != 5 {
		t.Errorf("RunUntilIdle(100) = %d, want 5", got)
	}
	if m.Advance() {
		t.Error("Advance() = true on idle scheduler, want false")
	}
}

func TestManual_RunUntilIdleStopsAtMax(t *testing.T) {
	m := NewManual()
	var tick func()
	tick = func() { m.RequestFrame(tick) }
	m.RequestFrame(tick)

	if got := m.RunUntilIdle(10); got != 10 {
		t.Errorf("RunUntilIdle(10) = %d, want 10", got)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}
