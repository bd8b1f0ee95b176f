package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphereGeometry is an indexed UV sphere centred on the origin.
type SphereGeometry struct {
	Radius   float64
	Vertices []mgl64.Vec3
	// Indices holds three vertex indices per triangle.
	Indices []int
}

// NewSphereGeometry builds a sphere with widthSegments columns and heightSegments
// rows. The collapsed triangles at both poles are left out.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *SphereGeometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	g := &SphereGeometry{Radius: radius}
	grid := make([][]int, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		row := make([]int, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			sinV := math.Sin(v * math.Pi)
			g.Vertices = append(g.Vertices, mgl64.Vec3{
				-radius * math.Cos(u*2*math.Pi) * sinV,
				radius * math.Cos(v*math.Pi),
				radius * math.Sin(u*2*math.Pi) * sinV,
			})
			row[ix] = len(g.Vertices) - 1
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// TriangleCount returns the number of indexed triangles.
func (g *SphereGeometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (g *SphereGeometry) Triangle(i int) (a, b, c mgl64.Vec3) {
	return g.Vertices[g.Indices[3*i]], g.Vertices[g.Indices[3*i+1]], g.Vertices[g.Indices[3*i+2]]
}

// Edge joins two vertex indices, lower index first.
type Edge [2]int

// Edges returns every triangle edge once, in first-seen order.
func (g *SphereGeometry) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(g.Indices))
	edges := make([]Edge, 0, len(g.Indices))
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tri := [3]int{g.Indices[i], g.Indices[i+1], g.Indices[i+2]}
		for k := 0; k < 3; k++ {
			e := Edge{tri[k], tri[(k+1)%3]}
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
