package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// InstancedBatch is a fixed number of identical meshes, each placed by its own
// matrix. The whole batch can be offset by Position.
type InstancedBatch struct {
	Geometry *SphereGeometry
	Color    color.RGBA
	Position mgl64.Vec3

	// Directions holds one unit vector (x, y, z) per instance.
	Directions []float32

	matrices []mgl64.Mat4
}

func NewInstancedBatch(g *SphereGeometry, clr color.RGBA, count int) *InstancedBatch {
	if count < 0 {
		count = 0
	}
	m := make([]mgl64.Mat4, count)
	for i := range m {
		m[i] = mgl64.Ident4()
	}
	return &InstancedBatch{
		Geometry:   g,
		Color:      clr,
		Directions: make([]float32, 3*count),
		matrices:   m,
	}
}

func (b *InstancedBatch) Count() int { return len(b.matrices) }

func (b *InstancedBatch) MatrixAt(i int) mgl64.Mat4 { return b.matrices[i] }

func (b *InstancedBatch) SetMatrixAt(i int, m mgl64.Mat4) { b.matrices[i] = m }

func (b *InstancedBatch) DirectionAt(i int) mgl64.Vec3 {
	return mgl64.Vec3{float64(b.Directions[3*i]), float64(b.Directions[3*i+1]), float64(b.Directions[3*i+2])}
}

func (b *InstancedBatch) SetDirectionAt(i int, d mgl64.Vec3) {
	b.Directions[3*i] = float32(d[0])
	b.Directions[3*i+1] = float32(d[1])
	b.Directions[3*i+2] = float32(d[2])
}

// Matrix returns the batch's own transform (translation by Position).
func (b *InstancedBatch) Matrix() mgl64.Mat4 {
	return mgl64.Translate3D(b.Position[0], b.Position[1], b.Position[2])
}
