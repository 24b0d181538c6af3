package renderer

import (
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/state"
)

// Renderer defines the interface for rendering surfaces.
// Implementations include the Ebiten window and the terminal.
type Renderer interface {
	// Init prepares the surface (fonts, colors, window).
	Init()

	// Clear clears the display.
	Clear()

	// RenderFrame renders the current state of the view.
	RenderFrame(v *state.View)

	// GetInput returns the next visitor intent, or ActionNone if there is none.
	GetInput() input.Intent

	// FormatText formats a message with the renderer's markup system.
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the visitor.
	ShowMessage(msg string)

	// Run mounts the surface on v and drives frames until the visitor quits.
	// Every intent read from the surface is passed to handle on the loop
	// goroutine.
	Run(v *state.View, handle func(input.Intent)) error
}

// Current holds the active renderer instance.
var Current Renderer

// SetRenderer sets the active renderer.
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer.
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer.
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a frame with the current renderer.
func RenderFrame(v *state.View) {
	if Current != nil {
		Current.RenderFrame(v)
	}
}

// GetInput gets an intent from the current renderer.
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// FormatText formats a message with the current renderer's markup, or strips
// the markup when no renderer is set.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return PlainString(msg, args...)
}

// ShowMessage displays a message with the current renderer.
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
