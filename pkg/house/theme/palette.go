package theme

import (
	"fmt"
	"image/color"
)

// Palette holds the base surface colours for one theme.
type Palette struct {
	Floor     color.RGBA
	Wall      color.RGBA
	Desk      color.RGBA
	Panel     color.RGBA
	Text      color.RGBA
	TextMuted color.RGBA
	RoomBg    color.RGBA
}

var (
	DarkPalette = Palette{
		Floor:     Hex("#0a0a0f"),
		Wall:      Hex("#0d0d15"),
		Desk:      Hex("#1a1a24"),
		Panel:     Hex("#0a0a0f"),
		Text:      Hex("#ffffff"),
		TextMuted: Hex("#94a3b8"),
		RoomBg:    Hex("#0f172a"),
	}

	LightPalette = Palette{
		Floor:     Hex("#f1f5f9"),
		Wall:      Hex("#e2e8f0"),
		Desk:      Hex("#cbd5e1"),
		Panel:     Hex("#f8fafc"),
		Text:      Hex("#0f172a"),
		TextMuted: Hex("#475569"),
		RoomBg:    Hex("#f1f5f9"),
	}
)

// Accent colours shared by both themes.
var (
	Pink   = Hex("#f472b6")
	Indigo = Hex("#818cf8")
	Teal   = Hex("#2dd4bf")
	Orange = Hex("#fb923c")
	Cyan   = Hex("#14b8a6")
	Purple = Hex("#a855f7")
	Red    = Hex("#ef4444")
	Green  = Hex("#22c55e")
	Amber  = Hex("#f59e0b")
	Blue   = Hex("#3b82f6")
)

// Accents cycles through the accent colours for repeated items.
var Accents = []color.RGBA{Pink, Indigo, Teal, Orange, Cyan}

// Accent returns the accent for item i.
func Accent(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Accents[i%len(Accents)]
}

// Tint is a per-room background colour pair.
type Tint struct {
	Dark, Light color.RGBA
}

// Pick returns the tint for the given theme.
func (t Tint) Pick(isDark bool) color.RGBA {
	if isDark {
		return t.Dark
	}
	return t.Light
}

// Room background tints keyed by room id.
var RoomTints = map[string]Tint{
	"entrance":   {Hex("#0f172a"), Hex("#f1f5f9")},
	"about":      {Hex("#0f172a"), Hex("#f1f5f9")},
	"skills":     {Hex("#1e1b4b"), Hex("#e0e7ff")},
	"experience": {Hex("#172554"), Hex("#dbeafe")},
	"projects":   {Hex("#1c1917"), Hex("#fef3c7")},
	"contact":    {Hex("#0f172a"), Hex("#f1f5f9")},
}

// RoomTint returns the tint for a room, falling back to the palette background.
func RoomTint(id string, isDark bool) color.RGBA {
	if t, ok := RoomTints[id]; ok {
		return t.Pick(isDark)
	}
	if isDark {
		return DarkPalette.RoomBg
	}
	return LightPalette.RoomBg
}

// Hex parses "#rrggbb" into an opaque colour. It panics on malformed input,
// so it is only used for the constant palettes above.
func Hex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic(fmt.Sprintf("theme: bad colour %q: %v", s, err))
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// CSS returns c as a "#rrggbb" string.
func CSS(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns opaque c at the given alpha, premultiplied as
// color.RGBA requires.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 0xff) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
