package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestGroupWorldPositions(t *testing.T) {
	tests := []struct {
		name     string
		rotation mgl64.Vec3
		batchZ   float64
		instance mgl64.Vec3
		want     mgl64.Vec3
	}{
		{"identity", mgl64.Vec3{}, 0, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}},
		{"batch offset only", mgl64.Vec3{}, 1.5, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1.5}},
		{"yaw carries the offset", mgl64.Vec3{0, math.Pi / 2, 0}, 1, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}},
		{"roll", mgl64.Vec3{0, 0, math.Pi / 2}, 0, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}},
		// Rx applied last: Ry sends +z to +x, which Rx leaves alone.
		{"xyz order", mgl64.Vec3{math.Pi / 2, math.Pi / 2, 0}, 1, mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}},
		{"offset adds to instance before rotation", mgl64.Vec3{0, math.Pi, 0}, 1, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInstancedBatch(NewSphereGeometry(0.01, 4, 4), color.RGBA{}, 1)
			b.SetMatrixAt(0, mgl64.Translate3D(tt.instance[0], tt.instance[1], tt.instance[2]))
			b.Position[2] = tt.batchZ
			g := &Group{Rotation: tt.rotation, Batch: b}

			got := g.WorldPositions(nil)
			if len(got) != 1 {
				t.Fatalf("got %d positions, want 1", len(got))
			}
			if !got[0].ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("world position = %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestGroupWorldPositionsReusesBuffer(t *testing.T) {
	b := NewInstancedBatch(NewSphereGeometry(0.01, 4, 4), color.RGBA{}, 3)
	g := &Group{Batch: b}

	buf := make([]mgl64.Vec3, 10)
	got := g.WorldPositions(buf)
	if len(got) != 3 || &got[0] != &buf[0] {
		t.Errorf("got %d positions in a new buffer, want 3 in place", len(got))
	}
	if got := (&Group{}).WorldPositions(nil); len(got) != 0 {
		t.Errorf("empty group returned %d positions", len(got))
	}
}
