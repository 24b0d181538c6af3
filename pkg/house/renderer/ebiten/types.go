// Package ebiten renders the house in a window with Ebiten: the visible
// rooms' draw lists are projected through the camera rig and painted back to
// front, with the navigation HUD on top.
package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/state"
)

// hitBox is a clickable HUD region and the intent it dispatches.
type hitBox struct {
	rect   image.Rectangle
	intent input.Intent
}

// dragState tracks a pointer drag used to orbit the camera.
type dragState struct {
	active bool
	moved  bool
	startX int
	startY int
	lastX  int
	lastY  int
}

// EbitenRenderer is the Ebiten-based graphical renderer.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	loop   *frame.Loop
	view   *state.View
	handle func(input.Intent)

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	monoFontSource     *text.GoTextFaceSource

	// Cached faces keyed by rounded pixel size
	faces     map[int]*text.GoTextFace
	boldFaces map[int]*text.GoTextFace

	// Frames drawn; the surface is mounted after the first one so the
	// loading screen is shown at least once.
	frames int

	// Intents queued by GetInput callers and pointer handling
	pending []input.Intent

	hits  []hitBox
	drag  dragState
	wheel float64

	windowOpenedLogged bool
}
