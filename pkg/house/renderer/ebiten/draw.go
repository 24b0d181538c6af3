package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfoliohouse/pkg/house/camera"
)

// drawScene projects the visible rooms through the camera rig and paints
// them back to front.
func (e *EbitenRenderer) drawScene(screen *ebiten.Image) {
	v := e.view
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := NewProjector(v.Rig.Eye(), v.Rig.LookAt(), camera.FieldOfView, w, h)

	t := float32(e.frames) / float32(ebiten.TPS())
	for _, pr := range buildPrims(v.DrawList(), p, t) {
		switch pr.kind {
		case primPolygon:
			fillPolygon(screen, pr.pts, pr.color)
		case primDisc:
			vector.DrawFilledCircle(screen, pr.x, pr.y, pr.radius, pr.color, true)
		case primRing:
			vector.StrokeCircle(screen, pr.x, pr.y, pr.radius, pr.width, pr.color, true)
		case primText:
			if pr.size < minFontSize {
				continue
			}
			face := e.getSansFontFace(float64(pr.size))
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(pr.x), float64(pr.y))
			op.ColorScale.ScaleWithColor(pr.color)
			op.SecondaryAlign = text.AlignCenter
			if pr.center {
				op.PrimaryAlign = text.AlignCenter
			}
			text.Draw(screen, pr.text, face, op)
		}
	}
}

func fillPolygon(screen *ebiten.Image, pts [][2]float32, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		path.LineTo(pt[0], pt[1])
	}
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, nil, drawOpts)
}

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, vector.Clockwise)
	p.Close()
}

// drawRoundedRect fills a rounded rectangle and optionally strokes its border.
func drawRoundedRect(screen *ebiten.Image, x, y, w, h, radius float32, bg color.Color, border color.Color, borderWidth float32) {
	var path vector.Path
	appendRoundedRect(&path, x, y, w, h, radius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bg)
	vector.FillPath(screen, &path, nil, drawOpts)

	if border == nil || borderWidth <= 0 {
		return
	}
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(border)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centred on (x, y).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
