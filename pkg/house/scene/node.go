// Package scene describes each room as a flat draw list of primitive shapes.
//
// Builders are pure: given a room origin, the theme and the content document
// they return the same nodes every time. Renderers only interpret the list;
// nothing here knows how a shape is drawn.
package scene

import (
	"image/color"

	"portfoliohouse/pkg/engine/geom"
)

// Kind is the primitive shape of a node.
type Kind int

const (
	Plane Kind = iota // Size.X by Size.Y in the local XY plane
	Box
	RoundedBox
	Cylinder // Size.X top radius, Size.Y height, Size.Z bottom radius
	Sphere   // Size.X radius
	Torus    // Size.X radius, Size.Y tube radius, in the local XY plane
	Octahedron
	Circle // Size.X radius, in the local XY plane
	Text   // Size.X font height in world units
	Panel  // Size.X by Size.Y content card: Text is the heading, Lines the body
	PointLight
	AmbientLight
)

var kindNames = [...]string{
	Plane:        "plane",
	Box:          "box",
	RoundedBox:   "rounded-box",
	Cylinder:     "cylinder",
	Sphere:       "sphere",
	Torus:        "torus",
	Octahedron:   "octahedron",
	Circle:       "circle",
	Text:         "text",
	Panel:        "panel",
	PointLight:   "point-light",
	AmbientLight: "ambient-light",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsLight reports whether the node lights the scene rather than being drawn.
func (k Kind) IsLight() bool {
	return k == PointLight || k == AmbientLight
}

// Material is the surface of a node. For lights Color is the light colour and
// Intensity its strength.
type Material struct {
	Color     color.RGBA
	Emissive  float32 // Glow strength; 0 is unlit
	Metalness float32
	Roughness float32
	Opacity   float32 // 0 means opaque
	Intensity float32 // Lights only
	Distance  float32 // Point light falloff distance; 0 is unbounded
}

// Alpha returns the effective opacity in [0, 1].
func (m Material) Alpha() float32 {
	if m.Opacity <= 0 || m.Opacity > 1 {
		return 1
	}
	return m.Opacity
}

// Node is one record in a draw list.
type Node struct {
	Kind      Kind
	Name      string
	Room      string // Owning room id; empty for global lights
	Transform geom.Transform
	Size      geom.Vec3
	Material  Material
	Text      string
	Lines     []string
	Floating  bool // Bobs gently in place
}

// Position returns the node's world position.
func (n Node) Position() geom.Vec3 {
	return n.Transform.Pos
}

func matte(c color.RGBA, roughness float32) Material {
	return Material{Color: c, Roughness: roughness}
}

func metal(c color.RGBA, metalness, roughness float32) Material {
	return Material{Color: c, Metalness: metalness, Roughness: roughness}
}

func glow(c color.RGBA, intensity float32) Material {
	return Material{Color: c, Emissive: intensity}
}

func translucent(c color.RGBA, opacity float32) Material {
	return Material{Color: c, Roughness: 0.9, Opacity: opacity}
}

// group accumulates nodes under a shared transform.
type group struct {
	at    geom.Transform
	nodes []Node
}

func newGroup(at geom.Transform) *group {
	return &group{at: at}
}

func (g *group) add(nodes ...Node) *group {
	for _, n := range nodes {
		n.Transform = geom.Compose(g.at, n.Transform)
		g.nodes = append(g.nodes, n)
	}
	return g
}

func (g *group) floating() *group {
	for i := range g.nodes {
		g.nodes[i].Floating = true
	}
	return g
}

func box(name string, w, h, d float32, m Material, at geom.Transform) Node {
	return Node{Kind: Box, Name: name, Transform: at, Size: geom.V3(w, h, d), Material: m}
}

func roundedBox(name string, w, h, d float32, m Material, at geom.Transform) Node {
	return Node{Kind: RoundedBox, Name: name, Transform: at, Size: geom.V3(w, h, d), Material: m}
}

func plane(name string, w, h float32, m Material, at geom.Transform) Node {
	return Node{Kind: Plane, Name: name, Transform: at, Size: geom.V3(w, h, 0), Material: m}
}

func cylinder(name string, rTop, rBottom, h float32, m Material, at geom.Transform) Node {
	return Node{Kind: Cylinder, Name: name, Transform: at, Size: geom.V3(rTop, h, rBottom), Material: m}
}

func sphere(name string, r float32, m Material, at geom.Transform) Node {
	return Node{Kind: Sphere, Name: name, Transform: at, Size: geom.V3(r, r, r), Material: m}
}

func torus(name string, r, tube float32, m Material, at geom.Transform) Node {
	return Node{Kind: Torus, Name: name, Transform: at, Size: geom.V3(r, tube, 0), Material: m}
}

func octahedron(name string, r float32, m Material, at geom.Transform) Node {
	return Node{Kind: Octahedron, Name: name, Transform: at, Size: geom.V3(r, r, r), Material: m}
}

func circle(name string, r float32, m Material, at geom.Transform) Node {
	return Node{Kind: Circle, Name: name, Transform: at, Size: geom.V3(r, r, 0), Material: m}
}

func label(name, s string, height float32, c color.RGBA, at geom.Transform) Node {
	return Node{Kind: Text, Name: name, Transform: at, Size: geom.V3(height, height, 0), Material: Material{Color: c}, Text: s}
}

func panel(name string, w, h float32, heading string, lines []string, c color.RGBA, at geom.Transform) Node {
	return Node{Kind: Panel, Name: name, Transform: at, Size: geom.V3(w, h, 0), Material: Material{Color: c}, Text: heading, Lines: lines}
}

func pointLight(name string, c color.RGBA, intensity, distance float32, at geom.Transform) Node {
	return Node{Kind: PointLight, Name: name, Transform: at, Material: Material{Color: c, Intensity: intensity, Distance: distance}}
}

func ambientLight(name string, intensity float32) Node {
	return Node{Kind: AmbientLight, Name: name, Transform: geom.Identity(), Material: Material{Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, Intensity: intensity}}
}

// pick returns dark when isDark, otherwise light.
func pick[T any](isDark bool, dark, light T) T {
	if isDark {
		return dark
	}
	return light
}
