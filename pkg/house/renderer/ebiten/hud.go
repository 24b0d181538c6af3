package ebiten

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/engine/locale"
	"portfoliohouse/pkg/house/nav"
	"portfoliohouse/pkg/house/renderer"
	"portfoliohouse/pkg/house/theme"
)

// HUD layout in pixels.
const (
	hudMargin     = 16
	badgeRadius   = 20
	buttonHeight  = 36
	buttonPadding = 14
	buttonGap     = 6
	navBarPadding = 8
	cornerRadius  = 10
	messageGap    = 20
)

// drawHUD draws the overlay and records clickable regions.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	e.hits = e.hits[:0]
	e.drawNameBadge(screen)
	e.drawThemeToggle(screen)
	navTop := e.drawNavBar(screen)
	e.drawInstructions(screen, navTop)
	e.drawMessages(screen, navTop)
	if e.view.ShowHelp {
		e.drawHelp(screen)
	}
}

func (e *EbitenRenderer) drawNameBadge(screen *ebiten.Image) {
	v := e.view
	pal := v.Theme.Palette()
	cx, cy := float32(hudMargin+badgeRadius), float32(hudMargin+badgeRadius)

	vector.DrawFilledCircle(screen, cx, cy, badgeRadius, theme.Indigo, true)
	drawTextCentered(screen, v.Doc.Initials(), e.getSansBoldFontFace(uiFontSize), float64(cx), float64(cy), color.White)

	x := float64(cx + badgeRadius + 10)
	drawText(screen, v.Doc.Personal.Name, e.getSansBoldFontFace(uiFontSize), x, float64(cy)-uiFontSize, pal.Text)
	drawText(screen, v.Doc.Personal.Title, e.getSansFontFace(uiFontSize-3), x, float64(cy)+2, pal.TextMuted)
}

func (e *EbitenRenderer) drawThemeToggle(screen *ebiten.Image) {
	v := e.view
	pal := v.Theme.Palette()
	face := e.getSansFontFace(uiFontSize)

	label := gotext.Get("THEME_LIGHT")
	if v.Theme.IsDark() {
		label = gotext.Get("THEME_DARK")
	}
	tw, _ := text.Measure(label, face, 0)
	w := float32(tw) + 2*buttonPadding
	x := float32(screen.Bounds().Dx()) - hudMargin - w
	y := float32(hudMargin)

	drawRoundedRect(screen, x, y, w, buttonHeight, cornerRadius, theme.WithAlpha(pal.Panel, 220), pal.TextMuted, 1)
	drawTextCentered(screen, label, face, float64(x+w/2), float64(y+buttonHeight/2), pal.Text)
	e.addHit(x, y, w, buttonHeight, input.Intent{Action: input.ActionToggleTheme})
}

// buttonText returns the label drawn on a navigation button.
func buttonText(b nav.Button) string {
	switch b.Kind {
	case nav.ButtonPrevious:
		return "‹"
	case nav.ButtonNext:
		return "›"
	default:
		return b.GetLabel()
	}
}

// drawNavBar draws the bottom navigation bar and returns its top edge.
func (e *EbitenRenderer) drawNavBar(screen *ebiten.Image) float32 {
	v := e.view
	pal := v.Theme.Palette()
	face := e.getSansFontFace(uiFontSize)
	buttons := v.Controls()

	widths := make([]float32, len(buttons))
	total := float32(2*navBarPadding - buttonGap)
	for i, b := range buttons {
		tw, _ := text.Measure(buttonText(b), face, 0)
		widths[i] = float32(tw) + 2*buttonPadding
		total += widths[i] + buttonGap
	}

	sw, sh := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	barH := float32(buttonHeight + 2*navBarPadding)
	barX := (sw - total) / 2
	barY := sh - hudMargin - barH
	drawRoundedRect(screen, barX, barY, total, barH, cornerRadius+navBarPadding, theme.WithAlpha(pal.Panel, 230), pal.TextMuted, 1)

	x := barX + navBarPadding
	y := barY + navBarPadding
	for i, b := range buttons {
		w := widths[i]
		fg := pal.Text
		switch {
		case b.Disabled:
			fg = pal.TextMuted
		case b.Active:
			accent := theme.Accent(b.Target)
			drawRoundedRect(screen, x, y, w, buttonHeight, cornerRadius, accent, nil, 0)
			fg = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		drawTextCentered(screen, buttonText(b), face, float64(x+w/2), float64(y+buttonHeight/2), fg)

		if !b.Disabled {
			e.addHit(x, y, w, buttonHeight, buttonIntent(b))
		}
		x += w + buttonGap
	}
	return barY
}

func buttonIntent(b nav.Button) input.Intent {
	switch b.Kind {
	case nav.ButtonPrevious:
		return input.Intent{Action: input.ActionPrevious}
	case nav.ButtonNext:
		return input.Intent{Action: input.ActionNext}
	default:
		return input.GoTo(b.Target)
	}
}

func (e *EbitenRenderer) drawInstructions(screen *ebiten.Image, navTop float32) {
	pal := e.view.Theme.Palette()
	drawTextCentered(screen, gotext.Get("INSTRUCTIONS"), e.getSansFontFace(uiFontSize-3),
		float64(screen.Bounds().Dx())/2, float64(navTop)-12, pal.TextMuted)
}

func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, navTop float32) {
	v := e.view
	pal := v.Theme.Palette()
	face := e.getSansFontFace(uiFontSize - 2)

	y := float64(navTop) - 40 - float64(len(v.Messages))*messageGap
	for i, msg := range v.Messages {
		// Older messages fade.
		alpha := uint8(120 + 135*(i+1)/len(v.Messages))
		drawText(screen, renderer.Plain(msg), face, hudMargin, y, theme.WithAlpha(pal.Text, alpha))
		y += messageGap
	}
}

func (e *EbitenRenderer) drawHelp(screen *ebiten.Image) {
	pal := e.view.Theme.Palette()
	face := e.getSansFontFace(uiFontSize)
	mono := e.getMonoFontFace()

	actions := []input.Action{
		input.ActionPrevious, input.ActionNext, input.ActionGoToRoom,
		input.ActionOrbitLeft, input.ActionOrbitRight, input.ActionOrbitUp, input.ActionOrbitDown,
		input.ActionZoomIn, input.ActionZoomOut, input.ActionResetView,
		input.ActionToggleTheme, input.ActionExport, input.ActionDumpScene, input.ActionQuit,
	}
	bindings := input.GetBindingsByAction()

	w, h := float32(460), float32(len(actions)*24+60)
	x := (float32(screen.Bounds().Dx()) - w) / 2
	y := (float32(screen.Bounds().Dy()) - h) / 2
	drawRoundedRect(screen, x, y, w, h, cornerRadius, theme.WithAlpha(pal.Panel, 240), pal.TextMuted, 1)
	drawTextCentered(screen, gotext.Get("ACTION_HELP"), e.getSansBoldFontFace(titleFontSize), float64(x+w/2), float64(y+24), pal.Text)

	row := float64(y + 52)
	for _, a := range actions {
		keys := bindings[a]
		if a == input.ActionGoToRoom {
			keys = []string{"1-9"}
		}
		drawText(screen, locale.T(input.ActionName(a)), face, float64(x+20), row, pal.Text)
		drawText(screen, strings.Join(keys, " "), mono, float64(x+220), row+2, pal.TextMuted)
		row += 24
	}
}

// drawLoading is shown until the surface is mounted.
func (e *EbitenRenderer) drawLoading(screen *ebiten.Image) {
	pal := e.view.Theme.Palette()
	cx, cy := float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2

	drawTextCentered(screen, e.view.Doc.Personal.Name, e.getSansBoldFontFace(titleFontSize+8), cx, cy-40, pal.Text)
	drawTextCentered(screen, gotext.Get("LOADING_PORTFOLIO"), e.getSansFontFace(uiFontSize), cx, cy, pal.TextMuted)

	// Spinner
	var path vector.Path
	start := float32(e.frames) * 0.1
	path.Arc(float32(cx), float32(cy+40), 12, start, start+float32(math.Pi)*1.5, vector.Clockwise)
	strokeOpts := &vector.StrokeOptions{Width: 3}
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(theme.Indigo)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

func (e *EbitenRenderer) addHit(x, y, w, h float32, intent input.Intent) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	e.hits = append(e.hits, hitBox{rect: r, intent: intent})
}

// hitAt returns the intent of the HUD region under (x, y).
func (e *EbitenRenderer) hitAt(x, y int) (input.Intent, bool) {
	pt := image.Pt(x, y)
	for _, h := range e.hits {
		if pt.In(h.rect) {
			return h.intent, true
		}
	}
	return input.Intent{}, false
}
