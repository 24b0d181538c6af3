package ebiten

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels for HUD text.
const (
	uiFontSize    = 15
	titleFontSize = 20
	minFontSize   = 6
	maxFontSize   = 96
)

func loadFontSource(ttf []byte, name string) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("load %s font: %w", name, err)
	}
	return src, nil
}

// loadFonts loads the Go fonts bundled with x/image.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.sansFontSource, err = loadFontSource(goregular.TTF, "regular"); err != nil {
		return err
	}
	if e.sansBoldFontSource, err = loadFontSource(gobold.TTF, "bold"); err != nil {
		return err
	}
	if e.monoFontSource, err = loadFontSource(gomono.TTF, "mono"); err != nil {
		return err
	}
	return nil
}

// sizeKey rounds and clamps a font size so faces can be cached.
func sizeKey(size float64) int {
	return int(math.Max(minFontSize, math.Min(maxFontSize, math.Round(size))))
}

// getSansFontFace returns a cached sans-serif face of about the given size.
func (e *EbitenRenderer) getSansFontFace(size float64) *text.GoTextFace {
	k := sizeKey(size)
	if f, ok := e.faces[k]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.sansFontSource, Size: float64(k)}
	e.faces[k] = f
	return f
}

// getSansBoldFontFace returns a cached bold face of about the given size.
func (e *EbitenRenderer) getSansBoldFontFace(size float64) *text.GoTextFace {
	k := sizeKey(size)
	if f, ok := e.boldFaces[k]; ok {
		return f
	}
	f := &text.GoTextFace{Source: e.sansBoldFontSource, Size: float64(k)}
	e.boldFaces[k] = f
	return f
}

// getMonoFontFace returns a monospace face for key hints.
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	return &text.GoTextFace{Source: e.monoFontSource, Size: uiFontSize - 2}
}
