package tour

import (
	"fmt"

	"portfoliohouse/pkg/house/state"
)

// logMessage adds a formatted message to the view's message log. Markup is
// kept for the renderer.
func logMessage(v *state.View, msg string, a ...any) {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	v.AddMessage(msg)
}
