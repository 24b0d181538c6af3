// Package theme resolves dark or light styling and holds the palettes the
// room builders and renderers draw with.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Mode is a resolved (or not yet resolved) theme.
type Mode int

const (
	Pending Mode = iota
	Dark
	Light
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("theme: unknown mode")

func (m Mode) String() string {
	switch m {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return "pending"
	}
}

// Toggled returns the opposite of m. Pending toggles to Light, since an
// unresolved theme is shown dark.
func (m Mode) Toggled() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ParseMode parses "dark" or "light". "system" and "" parse as Pending.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	case "", "system":
		return Pending, nil
	default:
		return Pending, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Latch is the small context object renderers consult for the theme.
// Until the surface is mounted and a mode has been resolved it reports dark,
// so the first frames never flash the light palette.
type Latch struct {
	mu       sync.RWMutex
	mounted  bool
	mode     Mode
	explicit bool // The visitor toggled; resolutions no longer apply
}

// NewLatch returns an unmounted, unresolved latch.
func NewLatch() *Latch {
	return &Latch{}
}

// Mount marks the rendering surface as mounted.
func (l *Latch) Mount() {
	l.mu.Lock()
	l.mounted = true
	l.mu.Unlock()
}

// Mounted reports whether the rendering surface is mounted.
func (l *Latch) Mounted() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mounted
}

// Resolve records the resolved mode. It is ignored once the visitor has
// toggled the theme.
func (l *Latch) Resolve(m Mode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.explicit {
		return
	}
	l.mode = m
}

// Mode returns the resolved mode, or Pending.
func (l *Latch) Mode() Mode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mode
}

// Toggle flips between dark and light and returns the new mode.
func (l *Latch) Toggle() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mode = l.effective().Toggled()
	l.explicit = true
	return l.mode
}

// IsDark reports whether dark styling applies.
func (l *Latch) IsDark() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.effective() == Dark
}

// Palette returns the palette for the effective mode.
func (l *Latch) Palette() Palette {
	if l.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

func (l *Latch) effective() Mode {
	if !l.mounted || l.mode == Pending {
		return Dark
	}
	return l.mode
}
