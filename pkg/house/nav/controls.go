package nav

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/locale"
	"portfoliohouse/pkg/house/rooms"
)

// ButtonKind distinguishes the navigation bar buttons.
type ButtonKind int

const (
	ButtonPrevious ButtonKind = iota
	ButtonRoom
	ButtonNext
)

// Button is one control on the navigation bar.
type Button struct {
	Kind     ButtonKind
	Label    string     // Translated label
	Icon     rooms.Icon // Room icon; only meaningful for ButtonRoom
	Target   int        // Room index a ButtonRoom jumps to
	Active   bool       // The room this button targets is active
	Disabled bool
}

// GetLabel returns the display label.
func (b Button) GetLabel() string {
	return b.Label
}

// IsSelectable reports whether pressing the button does anything.
func (b Button) IsSelectable() bool {
	return !b.Disabled && !b.Active
}

// GetHelpText returns a short hint for the button.
func (b Button) GetHelpText() string {
	switch b.Kind {
	case ButtonPrevious:
		return gotext.Get("NAV_PREVIOUS_HELP")
	case ButtonNext:
		return gotext.Get("NAV_NEXT_HELP")
	default:
		return fmt.Sprintf(gotext.Get("NAV_ROOM_HELP"), b.Label)
	}
}

// Controls returns the navigation bar: previous, one button per room, next.
func Controls(reg *rooms.Registry, nv *Navigator) []Button {
	buttons := make([]Button, 0, reg.Len()+2)
	buttons = append(buttons, Button{
		Kind:     ButtonPrevious,
		Label:    gotext.Get("NAV_PREVIOUS"),
		Target:   max(0, nv.Active()-1),
		Disabled: !nv.CanGoPrevious(),
	})
	for i, d := range reg.ListRooms() {
		buttons = append(buttons, Button{
			Kind:   ButtonRoom,
			Label:  locale.T(d.DisplayName),
			Icon:   d.Icon,
			Target: i,
			Active: i == nv.Active(),
		})
	}
	buttons = append(buttons, Button{
		Kind:     ButtonNext,
		Label:    gotext.Get("NAV_NEXT"),
		Target:   min(reg.Len()-1, nv.Active()+1),
		Disabled: !nv.CanGoNext(),
	})
	return buttons
}

// Press applies the button to the navigator.
func Press(nv *Navigator, b Button) error {
	switch b.Kind {
	case ButtonPrevious:
		nv.GoToPrevious()
	case ButtonNext:
		nv.GoToNext()
	default:
		return nv.GoTo(b.Target)
	}
	return nil
}
