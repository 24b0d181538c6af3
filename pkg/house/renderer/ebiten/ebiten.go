package ebiten

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"portfoliohouse/pkg/engine/frame"
	"portfoliohouse/pkg/engine/input"
	"portfoliohouse/pkg/house/renderer"
	"portfoliohouse/pkg/house/state"
)

// New creates an Ebiten renderer driving loop, with the given window size.
func New(loop *frame.Loop, width, height int) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  width,
		windowHeight: height,
		loop:         loop,
		faces:        make(map[int]*text.GoTextFace),
		boldFaces:    make(map[int]*text.GoTextFace),
	}
}

// Init loads fonts and configures the window.
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Printf("Failed to load fonts: %v", err)
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: Draw repaints the whole screen every frame.
func (e *EbitenRenderer) Clear() {}

// RenderFrame is a no-op: Ebiten calls Draw itself.
func (e *EbitenRenderer) RenderFrame(v *state.View) {}

// GetInput returns the oldest queued intent, or ActionNone.
func (e *EbitenRenderer) GetInput() input.Intent {
	if len(e.pending) == 0 {
		return input.Intent{Action: input.ActionNone}
	}
	intent := e.pending[0]
	e.pending = e.pending[1:]
	return intent
}

// FormatText formats a message, dropping markup styling.
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.PlainString(msg, args...)
}

// ShowMessage adds a message to the view's log.
func (e *EbitenRenderer) ShowMessage(msg string) {
	if e.view != nil {
		e.view.AddMessage(msg)
	}
}

// Run opens the window and blocks until it is closed or the visitor quits.
func (e *EbitenRenderer) Run(v *state.View, handle func(input.Intent)) error {
	e.view = v
	e.handle = handle
	defer v.Unmount()

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// Update handles input and advances one frame (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	v := e.view
	if !v.Mounted() && e.frames > 0 && e.sansFontSource != nil {
		v.Mount()
	}

	if v.Mounted() {
		e.checkInput()
		for intent := e.GetInput(); intent.Action != input.ActionNone; intent = e.GetInput() {
			e.handle(intent)
		}
	}

	v.Drain()
	e.loop.RunFrame()

	if v.Quit {
		return ebiten.Termination
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Draw renders the frame (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	defer func() { e.frames++ }()

	v := e.view
	pal := v.Theme.Palette()
	screen.Fill(pal.RoomBg)

	if e.sansFontSource == nil {
		return
	}
	if !v.Mounted() {
		e.drawLoading(screen)
		return
	}

	e.drawScene(screen)
	e.drawHUD(screen)
}
