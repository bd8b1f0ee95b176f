package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a single drawable geometry.
type Mesh struct {
	Geometry  *SphereGeometry
	Color     color.RGBA
	Opacity   float64
	Wireframe bool
}

// Group rotates its batch with XYZ Euler angles (radians).
type Group struct {
	Rotation mgl64.Vec3
	Batch    *InstancedBatch
}

func (g *Group) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(g.Rotation[0]).
		Mul4(mgl64.HomogRotate3DY(g.Rotation[1])).
		Mul4(mgl64.HomogRotate3DZ(g.Rotation[2]))
}

// WorldPositions writes the world-space centre of every batch instance into
// dst, reusing its storage. Instances are placed by the group rotation applied
// after the batch offset, so only the batch translates along z.
func (g *Group) WorldPositions(dst []mgl64.Vec3) []mgl64.Vec3 {
	dst = dst[:0]
	if g.Batch == nil {
		return dst
	}
	model := g.Matrix().Mul4(g.Batch.Matrix())
	for i := 0; i < g.Batch.Count(); i++ {
		dst = append(dst, model.Mul4x1(g.Batch.MatrixAt(i).Col(3)).Vec3())
	}
	return dst
}

// Scene is the root of everything drawn.
type Scene struct {
	Background color.RGBA
	Reference  *Mesh
	Group      *Group
}
