package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera on the z axis looking towards the origin.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Z      float64

	projection mgl64.Mat4
}

func NewCamera(fov, aspect, near, far, z float64) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far, Z: z}
	c.UpdateProjection()
	return c
}

// UpdateProjection must be called after changing FOV, Aspect, Near or Far.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

func (c *Camera) View() mgl64.Mat4 { return mgl64.Translate3D(0, 0, -c.Z) }

func (c *Camera) ViewProjection() mgl64.Mat4 { return c.projection.Mul4(c.View()) }

// Project maps a world point to pixel coordinates on a width x height surface.
// depth is the distance in front of the camera; ok is false for points outside
// the near/far range.
func (c *Camera) Project(vp mgl64.Mat4, p mgl64.Vec3, width, height int) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near || w > c.Far {
		return 0, 0, w, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = (nx + 1) / 2 * float64(width)
	y = (1 - ny) / 2 * float64(height)
	return x, y, w, true
}

// PixelsPerUnit returns how many pixels one world unit spans at the given depth.
func (c *Camera) PixelsPerUnit(depth float64, height int) float64 {
	if depth <= 0 {
		return 0
	}
	focal := float64(height) / 2 / math.Tan(mgl64.DegToRad(c.FOV)/2)
	return focal / depth
}
