package input

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent of the visitor.
type Action int

const (
	ActionNone Action = iota

	// Navigation
	ActionPrevious
	ActionNext
	ActionGoToRoom // Intent.Room holds the target index

	// View
	ActionZoomIn
	ActionZoomOut
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionResetView
	ActionToggleTheme

	// Meta / tools
	ActionHelp
	ActionExport
	ActionDumpScene
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the visitor wants.
type Intent struct {
	Action Action
	Room   int // Target room index for ActionGoToRoom
}

// GoTo returns an intent to jump to room i.
func GoTo(i int) Intent {
	return Intent{Action: ActionGoToRoom, Room: i}
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_left", "3", "gamepad_start").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten's inpututil and terminal raw mode already report one event per
// press, so this is a thin conversion that keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Digits are handled by
// MapToIntent since they carry a room number.
var defaultBindings = map[string]Action{
	"arrow_left": ActionPrevious,
	"h":          ActionPrevious,
	"p":          ActionPrevious,
	"previous":   ActionPrevious,

	"arrow_right": ActionNext,
	"l":           ActionNext,
	"n":           ActionNext,
	"next":        ActionNext,
	"space":       ActionNext,

	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	"[":          ActionOrbitLeft,
	"]":          ActionOrbitRight,
	"arrow_up":   ActionOrbitUp,
	"k":          ActionOrbitUp,
	"arrow_down": ActionOrbitDown,
	"j":          ActionOrbitDown,
	"0":          ActionResetView,
	"r":          ActionResetView,

	"t":     ActionToggleTheme,
	"theme": ActionToggleTheme,

	"?":    ActionHelp,
	"help": ActionHelp,

	"x":      ActionExport,
	"export": ActionExport,
	"f9":     ActionDumpScene,
	"dump":   ActionDumpScene,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,

	"gamepad_dpad_left":  ActionPrevious,
	"gamepad_dpad_right": ActionNext,
	"gamepad_dpad_up":    ActionOrbitUp,
	"gamepad_dpad_down":  ActionOrbitDown,
	"gamepad_start":      ActionToggleTheme,
	"gamepad_b":          ActionQuit,
}

// bindings is the active table; SetSingleBinding edits it.
var bindings = maps.Clone(defaultBindings)

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = maps.Clone(defaultBindings)
}

// ErrUnknownAction is returned for an action name ParseAction does not know.
var ErrUnknownAction = errors.New("input: unknown action")

// actionNames are the names used for actions in the preferences file.
var actionNames = map[string]Action{
	"previous":     ActionPrevious,
	"next":         ActionNext,
	"zoom_in":      ActionZoomIn,
	"zoom_out":     ActionZoomOut,
	"orbit_left":   ActionOrbitLeft,
	"orbit_right":  ActionOrbitRight,
	"orbit_up":     ActionOrbitUp,
	"orbit_down":   ActionOrbitDown,
	"reset_view":   ActionResetView,
	"toggle_theme": ActionToggleTheme,
	"help":         ActionHelp,
	"export":       ActionExport,
	"dump_scene":   ActionDumpScene,
	"quit":         ActionQuit,
}

// ParseAction returns the action with the given preferences name.
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// ApplyBindings rebinds each named action to a single key code, as read
// from the [bindings] table of the preferences file.
func ApplyBindings(byName map[string]string) error {
	for name, code := range byName {
		action, ok := ParseAction(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		SetSingleBinding(action, code)
	}
	return nil
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent. Digits 1-9 jump to rooms
// 0-8; the navigator rejects rooms that do not exist.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	if len(ev.Code) == 1 && ev.Code[0] >= '1' && ev.Code[0] <= '9' {
		n, _ := strconv.Atoi(ev.Code)
		return GoTo(n - 1)
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a gettext key naming an action.
func ActionName(a Action) string {
	switch a {
	case ActionPrevious:
		return "ACTION_PREVIOUS"
	case ActionNext:
		return "ACTION_NEXT"
	case ActionGoToRoom:
		return "ACTION_GOTO_ROOM"
	case ActionZoomIn:
		return "ACTION_ZOOM_IN"
	case ActionZoomOut:
		return "ACTION_ZOOM_OUT"
	case ActionOrbitLeft:
		return "ACTION_ORBIT_LEFT"
	case ActionOrbitRight:
		return "ACTION_ORBIT_RIGHT"
	case ActionOrbitUp:
		return "ACTION_ORBIT_UP"
	case ActionOrbitDown:
		return "ACTION_ORBIT_DOWN"
	case ActionResetView:
		return "ACTION_RESET_VIEW"
	case ActionToggleTheme:
		return "ACTION_TOGGLE_THEME"
	case ActionHelp:
		return "ACTION_HELP"
	case ActionExport:
		return "ACTION_EXPORT"
	case ActionDumpScene:
		return "ACTION_DUMP_SCENE"
	case ActionQuit:
		return "ACTION_QUIT"
	default:
		return "ACTION_NONE"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help screen doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reserved codes can never be rebound.
func reserved(code string) bool {
	switch code {
	case "arrow_left", "arrow_right", "q":
		return true
	}
	return len(code) == 1 && code[0] >= '1' && code[0] <= '9'
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Arrow keys, room digits and "q" stay bound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved(code) {
		bindings[code] = action
	}
}
