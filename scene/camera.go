package scene

import (
	"cogentcore.org/core/math32"
)

const (
	minZoom  = 0.25
	maxZoom  = 8
	maxPitch = 85 * math32.Pi / 180
)

// Camera is an orthographic orbit camera around Target. Terminal cells are
// about twice as tall as they are wide, so vertical scale is halved.
type Camera struct {
	Target math32.Vector3
	Radius float32
	Yaw    float32
	Pitch  float32
	Zoom   float32
}

// FrameBox aims a camera at the centre of b at a distance that fits all of
// it. The slight initial yaw mirrors a view from the front-right so the bin
// axis is visible.
func FrameBox(b math32.Box3) Camera {
	c := Camera{Zoom: 1, Yaw: -0.35, Pitch: 0.2}
	if b.IsEmpty() {
		c.Radius = 1
		return c
	}
	c.Target = b.Center()
	c.Radius = b.Size().Length() / 2
	if c.Radius <= 0 {
		c.Radius = 1
	}
	return c
}

// Orbit rotates around the target. Pitch stops short of straight up/down.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = math32.Clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Dolly scales the zoom by f.
func (c *Camera) Dolly(f float32) {
	c.Zoom = math32.Clamp(c.Zoom*f, minZoom, maxZoom)
}

// view rotates p into camera space: yaw about Y, then pitch about X.
func (c Camera) view(p math32.Vector3) math32.Vector3 {
	v := p.Sub(c.Target)
	sy, cy := math32.Sincos(c.Yaw)
	x := v.X*cy + v.Z*sy
	z := -v.X*sy + v.Z*cy
	sp, cp := math32.Sincos(c.Pitch)
	y := v.Y*cp - z*sp
	z = v.Y*sp + z*cp
	return math32.Vec3(x, y, z)
}

// scale is cells per scene unit horizontally for a w x h canvas.
func (c Camera) scale(w, h int) float32 {
	if c.Radius <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	sx := float32(w) / 2 / c.Radius
	// rows hold half as many units, keep the sphere inside the height too
	if sy := float32(h) / c.Radius; sy < sx {
		sx = sy
	}
	return sx * c.Zoom
}

// Project maps a scene point to fractional canvas coordinates.
func (c Camera) Project(p math32.Vector3, w, h int) (col, row float32) {
	v := c.view(p)
	s := c.scale(w, h)
	col = float32(w)/2 + v.X*s
	row = float32(h)/2 - v.Y*s/2
	return col, row
}
