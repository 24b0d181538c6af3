package camera

import (
	"errors"
	"math"
	"testing"

	"portfoliohouse/pkg/engine/frame"
)

// recorder is a Surface that keeps every position it was given.
type recorder struct {
	positions []float64
}

func (r *recorder) SetCameraAxis(x float64) {
	r.positions = append(r.positions, x)
}

func newAttached(t *testing.T, start float64) (*Controller, *frame.Manual, *recorder) {
	t.Helper()
	sched := frame.NewManual()
	c := New(sched, DefaultConfig(), start)
	rec := &recorder{}
	c.Attach(rec)
	return c, sched, rec
}

func TestStep(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name        string
		pos, target float64
		want        float64
		wantSettled bool
	}{
		{"moves five percent", 0, 15, 0.75, false},
		{"moves backwards", 15, 0, 14.25, false},
		{"snaps within epsilon", 14.95, 15, 15, true},
		{"snaps at epsilon", 14.9, 15, 15, true},
		{"already there", 30, 30, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, settled := Step(tt.pos, tt.target, cfg)
			if math.Abs(got-tt.want) > 1e-9 || settled != tt.wantSettled {
				t.Errorf("Step(%v, %v) = (%v, %v), want (%v, %v)",
					tt.pos, tt.target, got, settled, tt.want, tt.wantSettled)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
	}{
		{DefaultConfig(), false},
		{Config{Damping: 1, Epsilon: 0.1}, false},
		{Config{Damping: 0, Epsilon: 0.1}, true},
		{Config{Damping: 1.5, Epsilon: 0.1}, true},
		{Config{Damping: 0.05, Epsilon: 0}, true},
		{Config{Damping: math.NaN(), Epsilon: 0.1}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%+v.Validate() = %v, wantErr %v", tt.cfg, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%+v.Validate() = %v, want ErrInvalidConfig", tt.cfg, err)
		}
	}
}

func TestController_ConvergesAndStops(t *testing.T) {
	c, sched, rec := newAttached(t, 0)
	c.SetTarget(15)

	maxTicks := TicksToSettle(15, c.Config())
	ran := sched.RunUntilIdle(maxTicks + 5)

	if c.Position() != 15 {
		t.Fatalf("Position() = %v, want exactly 15", c.Position())
	}
	if ran > maxTicks {
		t.Errorf("settled after %d ticks, want at most %d", ran, maxTicks)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after settling, want 0", sched.Pending())
	}

	before := len(rec.positions)
	sched.AdvanceN(10)
	if len(rec.positions) != before {
		t.Errorf("surface updated %d more times after settling, want 0", len(rec.positions)-before)
	}
}

func TestController_NeverOvershoots(t *testing.T) {
	c, sched, rec := newAttached(t, 0)
	c.SetTarget(75)
	sched.RunUntilIdle(1000)

	for i, p := range rec.positions {
		if p < 0 || p > 75 {
			t.Fatalf("position %d = %v, outside [0, 75]", i, p)
		}
	}
}

func TestController_RetargetMidTransition(t *testing.T) {
	c, sched, rec := newAttached(t, 0)
	c.SetTarget(15)
	sched.AdvanceN(5)

	mid := c.Position()
	if mid <= 0 || mid >= 15 {
		t.Fatalf("Position() after 5 ticks = %v, want strictly between 0 and 15", mid)
	}

	c.SetTarget(45)
	if sched.Pending() != 1 {
		t.Errorf("Pending() after retarget = %d, want 1 (no duplicate tick loop)", sched.Pending())
	}

	prev := mid
	rec.positions = nil
	sched.RunUntilIdle(1000)
	for _, p := range rec.positions {
		if p < prev {
			t.Fatalf("position moved backwards from %v to %v after retarget", prev, p)
		}
		prev = p
	}
	if c.Position() != 45 {
		t.Errorf("Position() = %v, want exactly 45", c.Position())
	}
}

func TestController_LongJumpStrictlyApproaches(t *testing.T) {
	c, sched, rec := newAttached(t, 0)
	c.SetTarget(75)
	sched.RunUntilIdle(1000)

	prevDist := math.Inf(1)
	for i, p := range rec.positions[1:] {
		dist := math.Abs(75 - p)
		if dist >= prevDist && dist != 0 {
			t.Fatalf("tick %d: distance %v did not decrease from %v", i, dist, prevDist)
		}
		prevDist = dist
	}
	if c.Position() != 75 {
		t.Errorf("Position() = %v, want exactly 75", c.Position())
	}
	if got, max := c.Ticks(), uint64(TicksToSettle(75, c.Config())); got > max {
		t.Errorf("Ticks() = %d, want at most %d", got, max)
	}
}

func TestController_NoSurfaceIsNoop(t *testing.T) {
	sched := frame.NewManual()
	c := New(sched, DefaultConfig(), 0)
	c.SetTarget(15)

	if sched.Pending() != 0 {
		t.Errorf("Pending() without surface = %d, want 0", sched.Pending())
	}
	sched.AdvanceN(3)
	if c.Position() != 0 || c.Ticks() != 0 {
		t.Errorf("Position(), Ticks() = %v, %d without surface, want 0, 0", c.Position(), c.Ticks())
	}

	rec := &recorder{}
	c.Attach(rec)
	sched.RunUntilIdle(1000)
	if c.Position() != 15 {
		t.Errorf("Position() after Attach = %v, want 15", c.Position())
	}
	if len(rec.positions) == 0 || rec.positions[0] != 0 {
		t.Errorf("first surface update = %v, want initial position 0", rec.positions)
	}
}

func TestController_DetachStopsTicks(t *testing.T) {
	c, sched, _ := newAttached(t, 0)
	c.SetTarget(30)
	sched.AdvanceN(2)
	c.Detach()

	pos := c.Position()
	sched.AdvanceN(5)
	if c.Position() != pos {
		t.Errorf("Position() changed from %v to %v while detached", pos, c.Position())
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() after Detach = %d, want 0", sched.Pending())
	}
}

func TestController_SetTargetToCurrentDoesNotSchedule(t *testing.T) {
	c, sched, _ := newAttached(t, 30)
	c.SetTarget(30)
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sched.Pending())
	}
	if !c.Settled() {
		t.Error("Settled() = false, want true")
	}
}

func TestTicksToSettle(t *testing.T) {
	cfg := DefaultConfig()
	if got := TicksToSettle(0.05, cfg); got != 1 {
		t.Errorf("TicksToSettle(0.05) = %d, want 1", got)
	}
	if got := TicksToSettle(10, Config{Damping: 1, Epsilon: 0.1}); got != 2 {
		t.Errorf("TicksToSettle(10, damping 1) = %d, want 2", got)
	}
	// 75 * 0.95^n <= 0.1 first holds at n = 130.
	if got := TicksToSettle(75, cfg); got != 131 {
		t.Errorf("TicksToSettle(75) = %d, want 131", got)
	}
}
