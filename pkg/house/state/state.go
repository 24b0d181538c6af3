// Package state holds the View: everything one visit to the house needs,
// wired so that navigation drives the camera.
package state

import (
	"fmt"
	"math"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/house/camera"
	"portfoliohouse/pkg/house/content"
	"portfoliohouse/pkg/house/nav"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/scene"
	"portfoliohouse/pkg/house/theme"
	"portfoliohouse/pkg/house/visibility"
)

// MaxMessages is how many status messages the view keeps.
const MaxMessages = 5

// postBuffer bounds mutations queued from other goroutines between frames.
const postBuffer = 16

// View is the state of one visit. All fields are owned by the frame loop
// goroutine; other goroutines hand work over with Post.
type View struct {
	Rooms  *rooms.Registry
	Nav    *nav.Navigator
	Camera *camera.Controller
	Rig    *camera.Rig
	Theme  *theme.Latch
	Doc    *content.Document
	Sched  frame.Scheduler

	Messages []string
	ShowHelp bool
	Quit     bool

	posts chan func(*View)
}

// New creates a view with the first room active and the camera resting on it.
func New(reg *rooms.Registry, doc *content.Document, sched frame.Scheduler, cfg camera.Config) *View {
	v := &View{
		Rooms:    reg,
		Nav:      nav.New(reg.Len()),
		Camera:   camera.New(sched, cfg, reg.At(0).Axis),
		Rig:      camera.NewRig(),
		Theme:    theme.NewLatch(),
		Doc:      doc,
		Sched:    sched,
		Messages: make([]string, 0, MaxMessages),
		posts:    make(chan func(*View), postBuffer),
	}
	v.Rig.SetCameraAxis(reg.At(0).Axis)
	v.Nav.OnChange(v.roomChanged)
	return v
}

func (v *View) roomChanged(_, next int) {
	d := v.Rooms.At(next)
	v.Camera.SetTarget(d.Axis)
	v.AddMessage(fmt.Sprintf(gotext.Get("ENTERED_ROOM"), "ROOM{"+d.DisplayName+"}"))
}

// Mount attaches the rendering surface: the theme latch may now report the
// resolved theme and the camera starts easing.
func (v *View) Mount() {
	v.Theme.Mount()
	v.Camera.Attach(v.Rig)
}

// Unmount detaches the rendering surface and stops camera ticks.
func (v *View) Unmount() {
	v.Camera.Detach()
}

// Mounted reports whether the rendering surface is attached.
func (v *View) Mounted() bool {
	return v.Camera.Attached()
}

// AddMessage adds a status message, keeping only the last MaxMessages.
// Messages keep their markup; renderers format them when drawing.
func (v *View) AddMessage(msg string) {
	v.Messages = append(v.Messages, msg)
	if len(v.Messages) > MaxMessages {
		v.Messages = v.Messages[len(v.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages.
func (v *View) ClearMessages() {
	v.Messages = v.Messages[:0]
}

// Post queues fn to run on the frame loop goroutine. It reports false if the
// queue is full and fn was dropped.
func (v *View) Post(fn func(*View)) bool {
	select {
	case v.posts <- fn:
		return true
	default:
		return false
	}
}

// Drain runs every queued Post. The host calls it once per frame.
func (v *View) Drain() int {
	n := 0
	for {
		select {
		case fn := <-v.posts:
			fn(v)
			n++
		default:
			return n
		}
	}
}

// SetDocument replaces the content document.
func (v *View) SetDocument(doc *content.Document) {
	v.Doc = doc
}

// ActiveRoom returns the descriptor of the active room.
func (v *View) ActiveRoom() rooms.Descriptor {
	return v.Rooms.At(v.Nav.Active())
}

// VisibleRooms returns the ids of the rooms mounted this frame.
func (v *View) VisibleRooms() mapset.Set[string] {
	return visibility.VisibleRooms(v.Rooms, v.Nav.Active())
}

// DrawList returns this frame's scene.
func (v *View) DrawList() []scene.Node {
	return scene.Compose(v.Rooms, v.VisibleRooms(), v.Theme.IsDark(), v.Doc)
}

// Controls returns the navigation bar.
func (v *View) Controls() []nav.Button {
	return nav.Controls(v.Rooms, v.Nav)
}

// Progress returns how far the camera is through its current transition,
// from 0 (just left) to 1 (settled), measured against one room spacing or
// the full remaining distance, whichever is larger.
func (v *View) Progress(from float64) float64 {
	total := math.Abs(v.Camera.Target() - from)
	if total == 0 {
		return 1
	}
	left := math.Abs(v.Camera.Target() - v.Camera.Position())
	return math.Max(0, math.Min(1, 1-left/total))
}
