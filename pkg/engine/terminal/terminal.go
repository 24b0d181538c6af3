// Package terminal queries and clears the controlling terminal.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinWidth is the narrowest layout the TUI renderer attempts.
	MinWidth = 40
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width, at least MinWidth.
func GetWidth() int {
	width, _ := GetSize()
	return max(width, MinWidth)
}

// Clear erases the screen and homes the cursor.
func Clear(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
}

// HideCursor hides the cursor until ShowCursor is called.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25l")
}

// ShowCursor shows the cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\x1b[?25h")
}
