package ebiten

import (
	"image/color"
	"sort"

	"github.com/chewxy/math32"

	"portfoliohouse/pkg/engine/geom"
	"portfoliohouse/pkg/house/scene"
)

type primKind int

const (
	primPolygon primKind = iota
	primDisc
	primRing
	primText
)

// prim is one screen-space shape, sorted back to front before drawing.
type prim struct {
	kind   primKind
	pts    [][2]float32 // primPolygon
	x, y   float32      // primDisc, primRing, primText
	radius float32      // primDisc, primRing: pixels
	width  float32      // primRing: stroke pixels
	size   float32      // primText: font pixels
	text   string
	center bool // primText: centred on (x, y) rather than starting there
	color  color.RGBA
	depth  float32
}

// Panel text layout in world units.
const (
	panelHeadingSize = 0.28
	panelLineSize    = 0.18
	panelLineGap     = 0.3
	panelInset       = 0.3

	floatAmplitude = 0.08
	floatSpeed     = 1.5
)

// Key light direction for flat shading.
var lightDir = geom.V3(0.4, 1, 0.6).Normal()

var boxFaces = [6]struct {
	normal  geom.Vec3
	corners [4]geom.Vec3
}{
	{geom.V3(0, 0, 1), [4]geom.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{geom.V3(0, 0, -1), [4]geom.Vec3{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}}},
	{geom.V3(1, 0, 0), [4]geom.Vec3{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}}},
	{geom.V3(-1, 0, 0), [4]geom.Vec3{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}}},
	{geom.V3(0, 1, 0), [4]geom.Vec3{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}}},
	{geom.V3(0, -1, 0), [4]geom.Vec3{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
}

// buildPrims turns a draw list into screen shapes ordered back to front.
// t is the animation clock in seconds.
func buildPrims(nodes []scene.Node, p Projector, t float32) []prim {
	var out []prim
	for i, n := range nodes {
		if n.Kind.IsLight() {
			continue
		}
		tr := n.Transform
		if n.Floating {
			tr.Pos.Y += floatAmplitude * math32.Sin(t*floatSpeed+float32(i%7))
		}

		switch n.Kind {
		case scene.Plane:
			out = appendQuad(out, p, tr, n.Size.X, n.Size.Y, n.Material)

		case scene.Box, scene.RoundedBox:
			out = appendBox(out, p, tr, n.Size, n.Material)

		case scene.Cylinder:
			r := max(n.Size.X, n.Size.Z)
			out = appendBox(out, p, tr, geom.V3(2*r, n.Size.Y, 2*r), n.Material)

		case scene.Sphere, scene.Octahedron, scene.Circle:
			out = appendDisc(out, p, tr.Pos, n.Size.X, shade(n.Material, 1))

		case scene.Torus:
			if x, y, depth, ok := p.Project(tr.Pos); ok {
				s := p.Scale(depth)
				out = append(out, prim{kind: primRing, x: x, y: y, radius: n.Size.X * s,
					width: max(1, 2*n.Size.Y*s), color: shade(n.Material, 1), depth: depth})
			}

		case scene.Text:
			out = appendText(out, p, tr.Pos, n.Text, n.Size.X, n.Material.Color, true, 0)

		case scene.Panel:
			out = appendPanel(out, p, tr, n)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].depth > out[b].depth
	})
	return out
}

func appendQuad(out []prim, p Projector, tr geom.Transform, w, h float32, m scene.Material) []prim {
	hw, hh := w/2, h/2
	corners := []geom.Vec3{
		tr.Point(geom.V3(-hw, -hh, 0)),
		tr.Point(geom.V3(hw, -hh, 0)),
		tr.Point(geom.V3(hw, hh, 0)),
		tr.Point(geom.V3(-hw, hh, 0)),
	}
	pts, depth := p.ClipPolygon(corners)
	if pts == nil {
		return out
	}
	normal := tr.Basis.Apply(geom.V3(0, 0, 1))
	return append(out, prim{kind: primPolygon, pts: pts, color: shade(m, lambert(normal)), depth: depth})
}

func appendBox(out []prim, p Projector, tr geom.Transform, size geom.Vec3, m scene.Material) []prim {
	half := size.Scale(0.5)
	for _, f := range boxFaces {
		normal := tr.Basis.Apply(f.normal)
		center := tr.Point(f.normal.Mul(half))
		if normal.Dot(p.Eye().Sub(center)) <= 0 {
			continue
		}
		corners := make([]geom.Vec3, 4)
		for i, c := range f.corners {
			corners[i] = tr.Point(c.Mul(half))
		}
		pts, depth := p.ClipPolygon(corners)
		if pts == nil {
			continue
		}
		out = append(out, prim{kind: primPolygon, pts: pts, color: shade(m, lambert(normal)), depth: depth})
	}
	return out
}

func appendDisc(out []prim, p Projector, pos geom.Vec3, r float32, c color.RGBA) []prim {
	x, y, depth, ok := p.Project(pos)
	if !ok {
		return out
	}
	return append(out, prim{kind: primDisc, x: x, y: y, radius: r * p.Scale(depth), color: c, depth: depth})
}

func appendText(out []prim, p Projector, pos geom.Vec3, s string, height float32, c color.RGBA, center bool, bias float32) []prim {
	if s == "" {
		return out
	}
	x, y, depth, ok := p.Project(pos)
	if !ok {
		return out
	}
	return append(out, prim{kind: primText, x: x, y: y, size: height * p.Scale(depth), text: s,
		center: center, color: c, depth: depth - bias})
}

func appendPanel(out []prim, p Projector, tr geom.Transform, n scene.Node) []prim {
	top := n.Size.Y/2 - panelInset
	left := -n.Size.X/2 + panelInset

	// Text sits a hair in front of its card so it sorts after it.
	const bias = 0.01
	if n.Text != "" {
		out = appendText(out, p, tr.Point(geom.V3(0, top-panelHeadingSize/2, 0)), n.Text, panelHeadingSize, n.Material.Color, true, bias)
		top -= panelHeadingSize + panelLineGap
	}
	for i, line := range n.Lines {
		pos := tr.Point(geom.V3(left, top-float32(i)*panelLineGap, 0))
		out = appendText(out, p, pos, line, panelLineSize, n.Material.Color, false, bias)
	}
	return out
}

// lambert returns the diffuse brightness of a surface facing normal.
func lambert(normal geom.Vec3) float32 {
	return 0.55 + 0.45*max(0, normal.Dot(lightDir))
}

// shade applies brightness and opacity to a material colour. Emissive
// surfaces ignore the light.
func shade(m scene.Material, brightness float32) color.RGBA {
	if m.Emissive > 0 {
		brightness = 1
	}
	c := m.Color
	a := m.Alpha()
	scale := func(v uint8) uint8 {
		return uint8(math32.Min(255, float32(v)*brightness) * a)
	}
	// Premultiplied alpha, as ebiten expects.
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: uint8(255 * a)}
}
