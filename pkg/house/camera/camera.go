// Package camera eases the viewpoint along the navigation axis toward the
// active room.
//
// Each tick moves the camera a fixed fraction of the remaining distance
// (exponential decay, never overshooting). Once the remaining distance is
// within epsilon the camera snaps onto the target and stops scheduling ticks.
// Changing the target mid-transition needs no special handling: every tick
// reads the current target afresh.
package camera

import (
	"errors"
	"fmt"
	"math"

	"portfoliohouse/pkg/engine/frame"
)

// Reference easing parameters, tuned for a 60Hz refresh.
const (
	DefaultDamping = 0.05
	DefaultEpsilon = 0.1
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("camera: invalid config")

// Config holds the easing parameters.
type Config struct {
	Damping float64 // Fraction of the remaining distance covered per tick, in (0, 1]
	Epsilon float64 // Distance at which the camera snaps onto the target, > 0
}

// DefaultConfig returns the reference easing parameters.
func DefaultConfig() Config {
	return Config{Damping: DefaultDamping, Epsilon: DefaultEpsilon}
}

// Validate checks the easing parameters.
func (c Config) Validate() error {
	if !(c.Damping > 0 && c.Damping <= 1) {
		return fmt.Errorf("%w: damping %v not in (0, 1]", ErrInvalidConfig, c.Damping)
	}
	if !(c.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidConfig, c.Epsilon)
	}
	return nil
}

// Step advances pos one tick toward target.
// It returns the new position and whether the camera has settled.
func Step(pos, target float64, cfg Config) (next float64, settled bool) {
	delta := target - pos
	if math.Abs(delta) <= cfg.Epsilon {
		return target, true
	}
	return pos + delta*cfg.Damping, false
}

// TicksToSettle returns how many ticks Step needs to settle from the given
// distance, counting the final snapping tick.
func TicksToSettle(distance float64, cfg Config) int {
	distance = math.Abs(distance)
	if distance <= cfg.Epsilon {
		return 1
	}
	if cfg.Damping >= 1 {
		return 2
	}
	moves := math.Ceil(math.Log(cfg.Epsilon/distance) / math.Log(1-cfg.Damping))
	return int(moves) + 1
}

// Surface receives the camera position each tick. The rendering surface owns
// the rest of the pose (orbit, zoom, field of view).
type Surface interface {
	SetCameraAxis(x float64)
}

// Controller owns the eased camera position and its tick loop.
// It is not safe for concurrent use; navigation handlers and ticks run on the
// same frame loop.
type Controller struct {
	sched   frame.Scheduler
	cfg     Config
	surface Surface

	position float64
	target   float64

	scheduled bool
	handle    frame.Handle
	ticks     uint64
}

// New creates a settled controller at the given position.
func New(sched frame.Scheduler, cfg Config, start float64) *Controller {
	return &Controller{
		sched:    sched,
		cfg:      cfg,
		position: start,
		target:   start,
	}
}

// Attach connects the rendering surface and resumes easing if the camera is
// away from its target.
func (c *Controller) Attach(s Surface) {
	c.surface = s
	if s == nil {
		return
	}
	s.SetCameraAxis(c.position)
	if c.position != c.target {
		c.schedule()
	}
}

// Detach disconnects the rendering surface and cancels any pending tick.
func (c *Controller) Detach() {
	c.surface = nil
	if c.scheduled {
		c.sched.Cancel(c.handle)
		c.scheduled = false
	}
}

// Attached reports whether a rendering surface is connected.
func (c *Controller) Attached() bool {
	return c.surface != nil
}

// SetTarget sets the axis position to ease toward. A pending transition
// simply continues toward the new target.
func (c *Controller) SetTarget(x float64) {
	c.target = x
	if c.position != c.target {
		c.schedule()
	}
}

// Position returns the current camera axis position.
func (c *Controller) Position() float64 {
	return c.position
}

// Target returns the axis position being eased toward.
func (c *Controller) Target() float64 {
	return c.target
}

// Settled reports whether the camera rests on its target.
func (c *Controller) Settled() bool {
	return c.position == c.target
}

// Ticks returns how many ticks have moved or snapped the camera.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// Config returns the easing parameters.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the easing parameters; an in-flight transition uses
// them from its next tick.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

func (c *Controller) schedule() {
	if c.scheduled || c.surface == nil {
		return
	}
	c.scheduled = true
	c.handle = c.sched.RequestFrame(c.tick)
}

func (c *Controller) tick() {
	c.scheduled = false
	if c.surface == nil {
		return
	}

	next, settled := Step(c.position, c.target, c.cfg)
	c.position = next
	c.ticks++
	c.surface.SetCameraAxis(c.position)

	if !settled {
		c.schedule()
	}
}
