// Package tui renders the house in a terminal: the active room's panels,
// the navigation bar and a track showing the camera easing between rooms.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/engine/locale"
	"portfoliohouse/pkg/engine/terminal"
	"portfoliohouse/pkg/house/nav"
	"portfoliohouse/pkg/house/renderer"
	"portfoliohouse/pkg/house/rooms"
	"portfoliohouse/pkg/house/scene"
	"portfoliohouse/pkg/house/state"
	"portfoliohouse/pkg/house/theme"
)

// FrameInterval is how often the terminal loop runs a frame.
const FrameInterval = time.Second / 60

// Room icons
var roomIcons = map[rooms.Icon]string{
	rooms.IconHome:      "⌂",
	rooms.IconUser:      "☺",
	rooms.IconCode:      "‹›",
	rooms.IconBriefcase: "▤",
	rooms.IconFolder:    "▣",
	rooms.IconMessage:   "✉",
}

// TUIRenderer is the terminal-based renderer implementation.
type TUIRenderer struct {
	loop *frame.Loop
	out  io.Writer

	keys chan input.Intent
	errs chan error
}

// New creates a terminal renderer driving loop.
func New(loop *frame.Loop) *TUIRenderer {
	return &TUIRenderer{
		loop: loop,
		out:  os.Stdout,
		keys: make(chan input.Intent, 8),
		errs: make(chan error, 1),
	}
}

// Init disables colors when stdin is not an interactive terminal.
func (t *TUIRenderer) Init() {
	if !input.IsTerminal() {
		color.Disable()
	}
}

// Clear clears the terminal screen.
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput returns a pending intent without blocking.
func (t *TUIRenderer) GetInput() input.Intent {
	select {
	case intent := <-t.keys:
		return intent
	default:
		return input.Intent{Action: input.ActionNone}
	}
}

// FormatText formats a message with the markup system.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatString(msg, args...)
}

// ShowMessage prints a message on its own line.
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprint(t.out, renderer.Styled(msg)+"\r\n")
}

// RenderFrame redraws the whole screen.
func (t *TUIRenderer) RenderFrame(v *state.View) {
	t.Clear()
	// Raw mode does not translate newlines.
	fmt.Fprint(t.out, strings.ReplaceAll(Screen(v, terminal.GetWidth()), "\n", "\r\n"))
}

// Run puts the terminal in raw mode and drives frames until the visitor
// quits or presses Ctrl+C.
func (t *TUIRenderer) Run(v *state.View, handle func(input.Intent)) error {
	term, err := input.OpenTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer term.Close()

	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)

	go t.readKeys(term)

	v.Mount()
	defer v.Unmount()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	dirty := true
	for !v.Quit {
		select {
		case intent := <-t.keys:
			handle(intent)
			dirty = true

		case err := <-t.errs:
			if errors.Is(err, input.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err

		case <-ticker.C:
			if v.Drain() > 0 {
				dirty = true
			}
			if t.loop.RunFrame() > 0 {
				dirty = true
			}
			if dirty {
				t.RenderFrame(v)
				dirty = false
			}
		}
	}

	t.Clear()
	t.ShowMessage(gotext.Get("GOODBYE"))
	return nil
}

func (t *TUIRenderer) readKeys(term *input.Terminal) {
	for {
		intent, err := term.ReadIntent()
		if err != nil {
			t.errs <- err
			return
		}
		if intent.Action != input.ActionNone {
			t.keys <- intent
		}
	}
}

// Screen composes one frame of terminal output for a screen width.
func Screen(v *state.View, width int) string {
	var b strings.Builder

	writeHeader(&b, v, width)
	b.WriteString("\n")

	active := v.ActiveRoom()
	tint := accent(v, active.ID)
	fmt.Fprintf(&b, "%s %s  %s\n\n",
		tint.Sprint(roomIcons[active.Icon]),
		tint.Sprint(strings.ToUpper(locale.T(active.DisplayName))),
		renderer.ColorSubtle.Sprintf("(%d/%d)", v.Nav.Active()+1, v.Rooms.Len()))

	writeRoom(&b, v, active.ID)
	b.WriteString("\n")

	writeTrack(&b, v, width)
	b.WriteString("\n")
	writeNavBar(&b, v.Controls())
	b.WriteString("\n")

	writeMessages(&b, v, width)

	if v.ShowHelp {
		writeHelp(&b)
	} else {
		b.WriteString(renderer.Styled(gotext.Get("TUI_INSTRUCTIONS")) + "\n")
	}
	return b.String()
}

func writeHeader(b *strings.Builder, v *state.View, width int) {
	doc := v.Doc
	badge := renderer.ColorActive.Sprintf(" %s ", doc.Initials())
	name := badge + " " + doc.Personal.Name + renderer.ColorSubtle.Sprint(" · "+doc.Personal.Title)

	mode := "THEME_LIGHT"
	if v.Theme.IsDark() {
		mode = "THEME_DARK"
	}
	toggle := renderer.FormatString("ACTION{t} %s", locale.T(mode))

	pad := width - renderer.VisibleWidth(name) - renderer.VisibleWidth(toggle)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(name + strings.Repeat(" ", pad) + toggle + "\n")
}

// writeRoom prints the text carried by the active room's draw list.
func writeRoom(b *strings.Builder, v *state.View, id string) {
	tint := accent(v, id)
	for _, n := range v.DrawList() {
		if n.Room != id {
			continue
		}
		switch n.Kind {
		case scene.Text:
			fmt.Fprintf(b, "  %s\n", tint.Sprint(n.Text))
		case scene.Panel:
			if n.Text != "" {
				fmt.Fprintf(b, "  %s\n", color.Bold.Sprint(n.Text))
			}
			for _, line := range n.Lines {
				fmt.Fprintf(b, "    %s\n", line)
			}
		}
	}
}

// writeTrack draws the navigation axis with a mark per room and the camera.
func writeTrack(b *strings.Builder, v *state.View, width int) {
	list := v.Rooms.ListRooms()
	first, last := list[0].Axis, list[len(list)-1].Axis
	cols := width - 4
	if cols < len(list) {
		cols = len(list)
	}

	col := func(x float64) int {
		if last == first {
			return 0
		}
		c := int((x - first) / (last - first) * float64(cols-1))
		return max(0, min(cols-1, c))
	}

	track := []rune(strings.Repeat("─", cols))
	marks := make([]string, cols)
	for i, d := range list {
		c := col(d.Axis)
		track[c] = '●'
		if i == v.Nav.Active() {
			marks[c] = renderer.ColorRoom.Sprint("●")
		}
	}
	camCol := col(v.Camera.Position())

	var line strings.Builder
	for c, r := range track {
		switch {
		case c == camCol:
			line.WriteString(renderer.ColorItem.Sprint("▲"))
		case marks[c] != "":
			line.WriteString(marks[c])
		default:
			line.WriteString(renderer.ColorSubtle.Sprint(string(r)))
		}
	}
	fmt.Fprintf(b, "  %s\n", line.String())

	status := fmt.Sprintf("x=%.2f → %.0f", v.Camera.Position(), v.Camera.Target())
	if v.Camera.Settled() {
		status = fmt.Sprintf("x=%.0f", v.Camera.Position())
	}
	fmt.Fprintf(b, "  %s\n", renderer.ColorSubtle.Sprint(status))
}

func writeNavBar(b *strings.Builder, buttons []nav.Button) {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		var label string
		switch btn.Kind {
		case nav.ButtonPrevious:
			label = "◀ " + btn.GetLabel()
		case nav.ButtonNext:
			label = btn.GetLabel() + " ▶"
		default:
			label = fmt.Sprintf("%d %s %s", btn.Target+1, roomIcons[btn.Icon], btn.GetLabel())
		}

		switch {
		case btn.Disabled:
			parts = append(parts, renderer.ColorSubtle.Sprintf("[%s]", label))
		case btn.Active:
			parts = append(parts, renderer.ColorActive.Sprintf("[%s]", label))
		default:
			parts = append(parts, "["+label+"]")
		}
	}
	b.WriteString("  " + strings.Join(parts, " ") + "\n")
}

func writeMessages(b *strings.Builder, v *state.View, width int) {
	label := " " + gotext.Get("MESSAGES") + " "
	side := max(1, (width-len([]rune(label)))/2)
	rest := max(1, width-side-len([]rune(label)))

	b.WriteString(renderer.ColorSubtle.Sprint(strings.Repeat("─", side)+label+strings.Repeat("─", rest)) + "\n")
	if len(v.Messages) == 0 {
		b.WriteString(renderer.ColorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")) + "\n")
	}
	for _, msg := range v.Messages {
		b.WriteString("  " + renderer.Styled(msg) + "\n")
	}
	b.WriteString(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)) + "\n")
}

func writeHelp(b *strings.Builder) {
	actions := []input.Action{
		input.ActionPrevious, input.ActionNext, input.ActionGoToRoom,
		input.ActionOrbitLeft, input.ActionOrbitRight, input.ActionZoomIn, input.ActionZoomOut,
		input.ActionResetView, input.ActionToggleTheme, input.ActionExport, input.ActionDumpScene,
		input.ActionHelp, input.ActionQuit,
	}
	bindings := input.GetBindingsByAction()
	for _, a := range actions {
		keys := bindings[a]
		if a == input.ActionGoToRoom {
			keys = []string{"1-9"}
		}
		fmt.Fprintf(b, "  %-20s %s\n", locale.T(input.ActionName(a)), renderer.ColorAction.Sprint(strings.Join(keys, ", ")))
	}
}

func accent(v *state.View, id string) color.RGBColor {
	c := v.Theme.Palette().Text
	if i := v.Rooms.IndexOf(id); i >= 0 {
		c = theme.Accent(i)
	}
	return color.RGB(c.R, c.G, c.B)
}
