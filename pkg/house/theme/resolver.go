package theme

import (
	"github.com/muesli/termenv"
)

// Resolver determines the system theme. It may block (terminal queries do),
// so callers run it off the frame loop and post the result back.
type Resolver interface {
	Resolve() Mode
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func() Mode

// Resolve implements Resolver.
func (f ResolverFunc) Resolve() Mode {
	return f()
}

// Fixed returns a resolver that always reports m.
func Fixed(m Mode) Resolver {
	return ResolverFunc(func() Mode { return m })
}

// TerminalResolver asks the terminal for its background colour.
type TerminalResolver struct{}

// Resolve implements Resolver.
func (TerminalResolver) Resolve() Mode {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// ForPreference returns the resolver for a configured theme name.
// "dark" and "light" are fixed; anything else follows the terminal.
func ForPreference(name string) Resolver {
	m, err := ParseMode(name)
	if err != nil || m == Pending {
		return TerminalResolver{}
	}
	return Fixed(m)
}
