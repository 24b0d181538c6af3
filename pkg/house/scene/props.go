package scene

import (
	"github.com/chewxy/math32"

	"portfoliohouse/pkg/engine/geom"
	"portfoliohouse/pkg/house/theme"
)

// Room shell dimensions, shared by every room.
const (
	RoomWidth  = 14
	WallHeight = 10
	FloorY     = -3
	CeilingY   = 7
	WallY      = 2
)

var (
	halfPi  = math32.Pi / 2
	floorUp = geom.RotX(-halfPi)
	ceilUp  = geom.RotX(halfPi)
)

func at(x, y, z float32) geom.Transform {
	return geom.At(x, y, z)
}

func rotated(x, y, z float32, rot geom.Mat3) geom.Transform {
	return geom.At(x, y, z).Rotated(rot)
}

// shell is the plain room: floor, three walls and a ceiling in one colour.
func shell(wall, floor, ceiling Material) []Node {
	half := float32(RoomWidth) / 2
	return []Node{
		plane("floor", RoomWidth, RoomWidth, floor, rotated(0, FloorY, 0, floorUp)),
		plane("back-wall", RoomWidth, WallHeight, wall, at(0, WallY, -half)),
		plane("left-wall", RoomWidth, WallHeight, wall, rotated(-half, WallY, 0, geom.RotY(halfPi))),
		plane("right-wall", RoomWidth, WallHeight, wall, rotated(half, WallY, 0, geom.RotY(-halfPi))),
		plane("ceiling", RoomWidth, RoomWidth, ceiling, rotated(0, CeilingY, 0, ceilUp)),
	}
}

func plainRoom(roomID string, isDark bool) []Node {
	tint := matte(theme.RoomTint(roomID, isDark), 0.9)
	floor := tint
	floor.Roughness = 0.8
	return shell(tint, floor, tint)
}

// colorfulRoom is the entrance shell with neon accent strips.
func colorfulRoom(isDark bool) []Node {
	p := pick(isDark, theme.DarkPalette, theme.LightPalette)
	floor := Material{Color: p.Floor, Roughness: 0.3, Metalness: 0.2}
	nodes := shell(matte(p.Wall, 0.9), floor, matte(p.Floor, 0.9))

	return append(nodes,
		box("accent-left", 0.1, 4, 0.1, glow(theme.Pink, 2), at(-6.5, 5, -6.9)),
		box("accent-right", 0.1, 4, 0.1, glow(theme.Indigo, 2), at(6.5, 5, -6.9)),
		box("accent-top", 13, 0.1, 0.1, glow(theme.Teal, 1.5), at(0, 6.8, -6.9)),
		box("neon-left", 0.1, 0.1, 4, glow(theme.Orange, 2), at(-6.9, 0, -5)),
		box("neon-right", 0.1, 0.1, 4, glow(theme.Hex("#a78bfa"), 2), at(6.9, 0, -5)),
		box("led-back", 14, 0.08, 0.08, glow(theme.Cyan, 2), at(0, -2.95, -6.9)),
		box("led-left", 0.08, 0.08, 14, glow(theme.Pink, 2), at(-6.9, -2.95, 0)),
		box("led-right", 0.08, 0.08, 14, glow(theme.Indigo, 2), at(6.9, -2.95, 0)),
	)
}

// floatingFrame is a framed content card. The frame hovers gently.
func floatingFrame(name string, w, h float32, heading string, lines []string, isDark bool, where geom.Transform) []Node {
	p := pick(isDark, theme.DarkPalette, theme.LightPalette)
	g := newGroup(where).add(
		box(name+"/frame", w+0.3, h+0.3, 0.1, metal(theme.Cyan, 0.8, 0.2), geom.Identity()),
		box(name+"/inner", w, h, 0.05, matte(p.Panel, 0.9), at(0, 0, 0.06)),
		panel(name, w, h, heading, lines, p.Text, at(0, 0, 0.15)),
	)
	return g.floating().nodes
}

func flowerPot() []Node {
	leaf := matte(theme.Green, 0.6)
	nodes := []Node{
		cylinder("pot", 0.12, 0.08, 0.24, matte(theme.Hex("#c2410c"), 0.85), at(0, 0.12, 0)),
		torus("pot-rim", 0.12, 0.015, matte(theme.Hex("#9a3412"), 0.8), rotated(0, 0.25, 0, floorUp)),
		cylinder("soil", 0.1, 0.1, 0.04, matte(theme.Hex("#3d2314"), 1), at(0, 0.22, 0)),
		cylinder("stem", 0.018, 0.025, 0.32, matte(theme.Hex("#15803d"), 0.6), at(0, 0.38, 0)),
	}
	for i := 0; i < 8; i++ {
		a := float32(i) * 2 * math32.Pi / 8
		s, c := math32.Sincos(a)
		nodes = append(nodes, sphere("leaf", 0.055, matte(theme.Hex("#16a34a"), 0.5), at(c*0.1, 0.4, s*0.1)))
	}
	nodes = append(nodes,
		sphere("bud", 0.035, glow(theme.Hex("#fbbf24"), 0.5), at(0, 0.58, 0)),
		sphere("blossom", 0.025, glow(theme.Hex("#fb7185"), 0.4), at(-0.05, 0.52, 0.03)),
		sphere("blossom", 0.028, glow(theme.Hex("#c084fc"), 0.4), at(0.04, 0.55, -0.03)),
		sphere("leaf", 0.04, leaf, at(0.07, 0.45, 0)),
	)
	return nodes
}

var bookColors = []string{"#f472b6", "#818cf8", "#2dd4bf", "#fb923c", "#a78bfa", "#38bdf8", "#facc15"}

func bookshelf(isDark bool) []Node {
	nodes := []Node{
		box("bookshelf", 1.5, 2.4, 0.4, matte(pick(isDark, theme.Hex("#1a1a24"), theme.Hex("#94a3b8")), 0.6), geom.Identity()),
	}
	shelf := matte(pick(isDark, theme.Hex("#2d2d3a"), theme.Hex("#cbd5e1")), 0.5)
	for si, y := range []float32{-0.8, 0, 0.8} {
		nodes = append(nodes, box("shelf", 1.4, 0.04, 0.32, shelf, at(0, y, 0)))
		for bi := 0; bi < 5; bi++ {
			// Heights are deterministic; builders must stay pure.
			h := 0.35 - float32((si*5+bi)%4)*0.025
			c := theme.Hex(bookColors[(si*5+bi)%len(bookColors)])
			nodes = append(nodes, box("book", 0.08, h, 0.22, matte(c, 0.7), at(-0.5+float32(bi)*0.25, y+0.22, 0)))
		}
	}
	return nodes
}

func wallClock(isDark bool) []Node {
	tick := matte(pick(isDark, theme.Hex("#ffffff"), theme.Hex("#1e293b")), 0.5)
	nodes := []Node{
		cylinder("clock-face", 0.4, 0.4, 0.05, matte(pick(isDark, theme.Hex("#1a1a24"), theme.Hex("#f8fafc")), 0.3), rotated(0, 0, 0, ceilUp)),
		torus("clock-rim", 0.4, 0.03, metal(theme.Cyan, 0.8, 0.2), geom.Identity()),
	}
	for i := 0; i < 12; i++ {
		s, c := math32.Sincos(float32(i) * 2 * math32.Pi / 12)
		nodes = append(nodes, box("clock-tick", 0.02, 0.06, 0.01, tick, at(s*0.32, c*0.32, 0.03)))
	}
	return append(nodes,
		box("hour-hand", 0.02, 0.18, 0.01, matte(theme.Pink, 0.5), rotated(0.08, 0.08, 0.04, geom.RotZ(-0.8))),
		box("minute-hand", 0.015, 0.26, 0.01, matte(theme.Indigo, 0.5), rotated(0, 0.12, 0.045, geom.RotZ(0.2))),
		sphere("clock-pin", 0.025, glow(theme.Cyan, 1), at(0, 0, 0.05)),
	)
}

func floorLamp(isDark bool) []Node {
	warm := theme.Hex("#fef3c7")
	return []Node{
		cylinder("lamp-base", 0.25, 0.28, 0.04, metal(pick(isDark, theme.Hex("#1a1a24"), theme.Hex("#6b7280")), 0.7, 0.3), at(0, 0.02, 0)),
		cylinder("lamp-pole", 0.025, 0.025, 2.4, metal(pick(isDark, theme.Hex("#2d2d3a"), theme.Hex("#9ca3af")), 0.8, 0.2), at(0, 1.2, 0)),
		cylinder("lamp-shade", 0.25, 0.35, 0.4, matte(pick(isDark, theme.Hex("#0f172a"), theme.Hex("#f1f5f9")), 0.9), at(0, 2.3, 0)),
		sphere("lamp-bulb", 0.08, glow(warm, pick[float32](isDark, 2, 3)), at(0, 2.2, 0)),
		pointLight("lamp-light", warm, pick[float32](isDark, 12, 8), 5, at(0, 2.1, 0)),
	}
}

func areaRug(isDark bool) []Node {
	return []Node{
		plane("rug", 4, 2.5, matte(pick(isDark, theme.Hex("#1e3a5f"), theme.Hex("#bfdbfe")), 0.95), rotated(0, 0, 0, floorUp)),
		circle("rug-ring", 2, translucent(theme.Cyan, 0.6), rotated(0, 0.001, 0, floorUp)),
		circle("rug-center", 0.5, translucent(theme.Pink, 0.5), rotated(0, 0.002, 0, floorUp)),
	}
}

func wallArt(isDark bool) []Node {
	return []Node{
		box("art-frame", 1.2, 0.9, 0.08, metal(pick(isDark, theme.Hex("#2d2d3a"), theme.Hex("#d1d5db")), 0.3, 0.5), geom.Identity()),
		plane("art-canvas", 1, 0.7, matte(theme.Hex("#0ea5e9"), 0.8), at(0, 0, 0.045)),
		circle("art-sun", 0.15, glow(theme.Pink, 0.3), at(-0.2, 0.1, 0.05)),
		circle("art-moon", 0.12, glow(theme.Hex("#fbbf24"), 0.3), at(0.2, -0.1, 0.05)),
		plane("art-diamond", 0.15, 0.15, glow(theme.Indigo, 0.3), rotated(0.1, 0.15, 0.05, geom.RotZ(math32.Pi/4))),
	}
}

func desk(isDark bool) []Node {
	p := pick(isDark, theme.DarkPalette, theme.LightPalette)
	leg := metal(pick(isDark, theme.Hex("#2d2d3a"), theme.Hex("#94a3b8")), 0.4, 0.3)
	return []Node{
		roundedBox("desk-top", 4, 0.08, 1.8, Material{Color: p.Desk, Roughness: 0.2, Metalness: 0.3}, geom.Identity()),
		box("desk-leg", 0.08, 1.4, 1.6, leg, at(-1.7, -0.75, 0)),
		box("desk-leg", 0.08, 1.4, 1.6, leg, at(1.7, -0.75, 0)),
		box("desk-led", 3.8, 0.06, 0.06, glow(theme.Cyan, 3), at(0, -0.1, 0.85)),
		box("desk-led", 3.8, 0.06, 0.06, glow(theme.Pink, 3), at(0, -0.1, -0.85)),
		box("desk-led", 0.06, 0.06, 1.6, glow(theme.Indigo, 3), at(-1.85, -0.1, 0)),
		box("desk-led", 0.06, 0.06, 1.6, glow(theme.Orange, 3), at(1.85, -0.1, 0)),
	}
}

func gamingChair(isDark bool) []Node {
	seat := matte(pick(isDark, theme.Hex("#1a1a24"), theme.Hex("#374151")), 0.5)
	frame := metal(theme.Hex("#1a1a24"), 0.5, 0.3)
	return []Node{
		roundedBox("chair-seat", 1.1, 0.15, 1.1, seat, geom.Identity()),
		roundedBox("chair-back", 1.1, 1.5, 0.15, seat, rotated(0, 0.85, -0.5, geom.RotX(0.15))),
		box("chair-wing", 0.12, 1.2, 0.5, seat, rotated(-0.6, 0.7, -0.35, geom.RotX(0.1).Mul(geom.RotZ(-0.15)))),
		box("chair-wing", 0.12, 1.2, 0.5, seat, rotated(0.6, 0.7, -0.35, geom.RotX(0.1).Mul(geom.RotZ(0.15)))),
		box("chair-accent", 0.05, 1.3, 0.02, glow(theme.Pink, 1.5), at(0, 0.85, -0.42)),
		box("chair-column", 0.15, 0.4, 0.15, frame, at(0, -0.3, 0)),
		box("chair-base", 0.6, 0.05, 0.4, frame, at(0, -0.5, 0)),
	}
}

// ultrawideMonitor shows either the compact skills grid or the owner's title.
func ultrawideMonitor(isDark bool, heading string, lines []string) []Node {
	stand := metal(pick(isDark, theme.Hex("#1a1a24"), theme.Hex("#9ca3af")), 0.7, 0.2)
	return []Node{
		box("monitor-bezel", 3, 1.3, 0.1, metal(pick(isDark, theme.Hex("#0a0a0f"), theme.Hex("#d1d5db")), 0.5, 0.2), geom.Identity()),
		plane("monitor-screen", 2.85, 1.15, glow(pick(isDark, theme.Hex("#0f172a"), theme.Hex("#f8fafc")), 0.2), at(0, 0, 0.06)),
		box("monitor-led", 2.9, 0.04, 0.02, glow(theme.Cyan, 2), at(0, -0.6, 0.06)),
		box("monitor-stand", 0.1, 0.4, 0.1, stand, at(0, -0.85, 0.3)),
		box("monitor-foot", 1.2, 0.04, 0.6, stand, rotated(0, -1.05, 0.4, geom.RotX(-0.3))),
		panel("monitor-content", 2.7, 1.05, heading, lines, pick(isDark, theme.DarkPalette.Text, theme.LightPalette.Text), at(0, 0, 0.1)),
	}
}

func rgbKeyboard() []Node {
	nodes := []Node{box("keyboard", 1.2, 0.05, 0.4, matte(theme.Hex("#0a0a0f"), 0.3), geom.Identity())}
	for i, c := range []string{"#f472b6", "#818cf8", "#2dd4bf", "#fb923c"} {
		z := -0.12 + float32(i)*0.08
		nodes = append(nodes, box("key-row", 1.1, 0.008, 0.06, glow(theme.Hex(c), 1.5), at(0, 0.025, z)))
	}
	return nodes
}

func rgbMouse() []Node {
	return []Node{
		roundedBox("mouse", 0.18, 0.05, 0.28, matte(theme.Hex("#0a0a0f"), 0.3), geom.Identity()),
		torus("mouse-ring", 0.08, 0.01, glow(theme.Cyan, 2), rotated(0, 0.01, 0, ceilUp)),
		cylinder("mouse-wheel", 0.015, 0.015, 0.04, glow(theme.Pink, 1), rotated(0, 0.03, 0.05, ceilUp)),
	}
}

func pcTower() []Node {
	return []Node{
		box("tower", 0.5, 1.3, 0.6, metal(theme.Hex("#0a0a0f"), 0.3, 0.2), geom.Identity()),
		plane("tower-glass", 1.1, 0.45, translucent(theme.Cyan, 0.15), rotated(0.26, 0, 0, geom.RotY(halfPi))),
		torus("tower-fan", 0.12, 0.02, glow(theme.Pink, 2), at(0.2, 0.35, 0.05)),
		torus("tower-fan", 0.12, 0.02, glow(theme.Indigo, 2), at(0.2, -0.1, 0.05)),
		torus("tower-fan", 0.1, 0.02, glow(theme.Teal, 2), at(0.2, -0.55, 0.05)),
		cylinder("tower-power", 0.03, 0.03, 0.02, glow(theme.Cyan, 3), rotated(0, 0.55, 0.28, ceilUp)),
		box("tower-strip", 0.03, 1, 0.02, glow(theme.Indigo, 2), at(-0.22, 0, 0.28)),
	}
}

// wallDisplay is the entrance's big name board.
func wallDisplay(isDark bool, name, title, tagline string, specializations []string) []Node {
	p := pick(isDark, theme.DarkPalette, theme.LightPalette)
	nodes := []Node{
		box("display", 11, 5.5, 0.15, matte(p.Panel, 0.8), geom.Identity()),
		box("display-edge", 0.1, 5.3, 0.02, glow(theme.Pink, 2.5), at(-5.4, 0, 0.08)),
		box("display-edge", 0.1, 5.3, 0.02, glow(theme.Indigo, 2.5), at(5.4, 0, 0.08)),
		box("display-edge", 10.9, 0.1, 0.02, glow(theme.Teal, 2.5), at(0, 2.65, 0.08)),
		box("display-edge", 10.9, 0.1, 0.02, glow(theme.Orange, 2.5), at(0, -2.65, 0.08)),
		label("display-name", name, 0.7, p.Text, at(0, 1.5, 0.1)),
		box("display-rule", 5, 0.08, 0.02, glow(theme.Cyan, 2.5), at(0, 0.8, 0.1)),
		label("display-title", title, 0.35, theme.Cyan, at(0, 0.3, 0.1)),
		label("display-tagline", tagline, 0.2, p.TextMuted, at(0, -0.3, 0.1)),
		panel("display-specializations", 8, 0.8, "", specializations, p.Text, at(0, -1.4, 0.2)),
	}
	corners := [][2]float32{{-4.8, 2}, {4.8, 2}, {-4.8, -2}, {4.8, -2}}
	for i, xy := range corners {
		nodes = append(nodes, box("display-corner", 0.35, 0.35, 0.06, glow(theme.Accent(i), 2), at(xy[0], xy[1], 0.1)))
	}
	return nodes
}

func floatingDecor(i int) []Node {
	return []Node{octahedron("decor", 0.15, glow(theme.Accent(i), 1), geom.Identity())}
}

func ceilingLight() []Node {
	white := theme.Hex("#ffffff")
	return []Node{
		box("ceiling-fixture", 2.5, 0.1, 0.5, metal(theme.Hex("#1a1a24"), 0.5, 0.3), geom.Identity()),
		box("ceiling-panel", 2.3, 0.02, 0.4, glow(white, 0.5), at(0, -0.06, 0)),
		pointLight("ceiling-light", white, 30, 10, at(0, -0.5, 0)),
	}
}
