package ebiten

import (
	"github.com/chewxy/math32"

	"portfoliohouse/pkg/engine/geom"
)

// nearPlane is the camera-space depth below which geometry is clipped.
const nearPlane = 0.1

// Projector maps world points to screen pixels for a perspective camera.
type Projector struct {
	eye                   geom.Vec3
	right, up, forward    geom.Vec3
	focal                 float32
	halfWidth, halfHeight float32
}

// NewProjector creates a projector for a camera at eye looking at target with
// the given vertical field of view in degrees, on a width x height screen.
func NewProjector(eye, target geom.Vec3, fovDeg float32, width, height int) Projector {
	forward := target.Sub(eye).Normal()
	right := forward.Cross(geom.V3(0, 1, 0)).Normal()
	up := right.Cross(forward)

	halfHeight := float32(height) / 2
	return Projector{
		eye:        eye,
		right:      right,
		up:         up,
		forward:    forward,
		focal:      halfHeight / math32.Tan(geom.DegToRad(fovDeg)/2),
		halfWidth:  float32(width) / 2,
		halfHeight: halfHeight,
	}
}

// Eye returns the camera position.
func (p Projector) Eye() geom.Vec3 {
	return p.eye
}

// ToCamera returns p in camera space: x right, y up, z depth along the view.
func (p Projector) ToCamera(world geom.Vec3) geom.Vec3 {
	d := world.Sub(p.eye)
	return geom.V3(d.Dot(p.right), d.Dot(p.up), d.Dot(p.forward))
}

// ScreenOf maps a camera-space point in front of the near plane to pixels.
func (p Projector) ScreenOf(c geom.Vec3) (x, y float32) {
	return p.halfWidth + c.X*p.focal/c.Z, p.halfHeight - c.Y*p.focal/c.Z
}

// Project maps a world point to pixels and depth. ok is false for points
// behind the near plane.
func (p Projector) Project(world geom.Vec3) (x, y, depth float32, ok bool) {
	c := p.ToCamera(world)
	if c.Z < nearPlane {
		return 0, 0, c.Z, false
	}
	x, y = p.ScreenOf(c)
	return x, y, c.Z, true
}

// Scale returns how many pixels one world unit spans at depth.
func (p Projector) Scale(depth float32) float32 {
	return p.focal / depth
}

// ClipPolygon projects a world-space polygon, clipping it against the near
// plane. It returns screen points and the mean camera depth, or nil if the
// polygon is entirely behind the camera.
func (p Projector) ClipPolygon(world []geom.Vec3) (pts [][2]float32, depth float32) {
	cam := make([]geom.Vec3, len(world))
	for i, w := range world {
		cam[i] = p.ToCamera(w)
	}

	var clipped []geom.Vec3
	for i, cur := range cam {
		prev := cam[(i+len(cam)-1)%len(cam)]
		curIn, prevIn := cur.Z >= nearPlane, prev.Z >= nearPlane
		if curIn != prevIn {
			t := (nearPlane - prev.Z) / (cur.Z - prev.Z)
			clipped = append(clipped, prev.Add(cur.Sub(prev).Scale(t)))
		}
		if curIn {
			clipped = append(clipped, cur)
		}
	}
	if len(clipped) < 3 {
		return nil, 0
	}

	pts = make([][2]float32, len(clipped))
	for i, c := range clipped {
		x, y := p.ScreenOf(c)
		pts[i] = [2]float32{x, y}
		depth += c.Z
	}
	return pts, depth / float32(len(clipped))
}
