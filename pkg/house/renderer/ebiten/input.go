package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "portfoliohouse/pkg/engine/input"
)

// Pointer tuning.
const (
	dragThreshold   = 4   // pixels before a press becomes a drag
	dragDegPerPixel = 0.3 // orbit degrees per pixel dragged
	wheelNotch      = 1.0 // wheel delta per zoom step
)

// specialKeys maps non-printing keys to raw input codes.
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyF9:             "f9",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// checkInput queues intents from the keyboard, pointer and gamepads.
func (e *EbitenRenderer) checkInput() {
	now := time.Now()

	for key, code := range specialKeys {
		if inpututil.IsKeyJustPressed(key) {
			e.queue(engineinput.DeviceKeyboard, code, now)
		}
	}
	// Printable keys arrive as characters so the keyboard layout is honoured.
	for _, r := range ebiten.AppendInputChars(nil) {
		code := string(r)
		if r == ' ' {
			code = "space"
		}
		e.queue(engineinput.DeviceKeyboard, code, now)
	}

	e.checkGamepadInput(now)
	e.checkPointer()
}

func (e *EbitenRenderer) queue(dev engineinput.Device, code string, now time.Time) {
	raw := engineinput.RawInput{Device: dev, Code: code, Timestamp: now}
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
	if intent.Action != engineinput.ActionNone {
		e.pending = append(e.pending, intent)
	}
}

func (e *EbitenRenderer) checkGamepadInput(now time.Time) {
	buttons := map[ebiten.StandardGamepadButton]string{
		ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
		ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
		ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
		ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
		ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
		ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, code := range buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				e.queue(engineinput.DeviceGamepad, code, now)
			}
		}
	}
}

// checkPointer handles clicks on the HUD, drag to orbit and wheel to zoom.
func (e *EbitenRenderer) checkPointer() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.drag = dragState{active: true, startX: x, startY: y, lastX: x, lastY: y}
	}

	if e.drag.active && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !e.drag.moved && abs(x-e.drag.startX)+abs(y-e.drag.startY) >= dragThreshold {
			e.drag.moved = true
		}
		if e.drag.moved {
			dx, dy := x-e.drag.lastX, y-e.drag.lastY
			e.view.Rig.Orbit(-float32(dx)*dragDegPerPixel, -float32(dy)*dragDegPerPixel)
		}
		e.drag.lastX, e.drag.lastY = x, y
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if e.drag.active && !e.drag.moved {
			if intent, ok := e.hitAt(x, y); ok {
				e.pending = append(e.pending, intent)
			}
		}
		e.drag = dragState{}
	}

	_, wy := ebiten.Wheel()
	e.wheel += wy
	for e.wheel >= wheelNotch {
		e.wheel -= wheelNotch
		e.pending = append(e.pending, engineinput.Intent{Action: engineinput.ActionZoomIn})
	}
	for e.wheel <= -wheelNotch {
		e.wheel += wheelNotch
		e.pending = append(e.pending, engineinput.Intent{Action: engineinput.ActionZoomOut})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
