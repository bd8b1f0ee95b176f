package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/audio-sphere/internal/scene"
)

const minParticleRadius = 1.0

// Renderer draws a scene through a camera onto an ebiten image of its own size.
type Renderer struct {
	Antialias bool

	width, height int

	edgesFor *scene.SphereGeometry
	edges    []scene.Edge
	points   []mgl64.Vec3
}

func New() *Renderer {
	return &Renderer{Antialias: true}
}

func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

func (r *Renderer) Render(dst *ebiten.Image, s *scene.Scene, cam *scene.Camera) {
	dst.Fill(s.Background)

	vp := cam.ViewProjection()
	if s.Reference != nil {
		r.drawWireframe(dst, s.Reference, cam, vp)
	}
	if s.Group != nil && s.Group.Batch != nil {
		r.drawBatch(dst, s.Group, cam, vp)
	}
}

func (r *Renderer) drawWireframe(dst *ebiten.Image, m *scene.Mesh, cam *scene.Camera, vp mgl64.Mat4) {
	if r.edgesFor != m.Geometry {
		r.edges = m.Geometry.Edges()
		r.edgesFor = m.Geometry
	}

	clr := withOpacity(m.Color, m.Opacity)
	verts := m.Geometry.Vertices
	for _, e := range r.edges {
		x0, y0, _, ok0 := cam.Project(vp, verts[e[0]], r.width, r.height)
		x1, y1, _, ok1 := cam.Project(vp, verts[e[1]], r.width, r.height)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, r.Antialias)
	}
}

func (r *Renderer) drawBatch(dst *ebiten.Image, g *scene.Group, cam *scene.Camera, vp mgl64.Mat4) {
	b := g.Batch
	radius := b.Geometry.Radius

	r.points = g.WorldPositions(r.points)
	for _, world := range r.points {
		x, y, depth, ok := cam.Project(vp, world, r.width, r.height)
		if !ok {
			continue
		}
		px := radius * cam.PixelsPerUnit(depth, r.height)
		if px < minParticleRadius {
			px = minParticleRadius
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(px), b.Color, r.Antialias)
	}
}

// withOpacity returns clr with its alpha scaled by opacity (0-1).
func withOpacity(clr color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(clamp01(opacity) * float64(clr.A))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
