package scene

import (
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Sampler draws points uniformly distributed over the surface of a geometry.
// Triangles are picked in proportion to their area.
type Sampler struct {
	geometry *SphereGeometry
	cdf      []float64
	rng      *rand.Rand
}

func NewSampler(g *SphereGeometry, rng *rand.Rand) *Sampler {
	cdf := make([]float64, g.TriangleCount())
	total := 0.0
	for i := range cdf {
		a, b, c := g.Triangle(i)
		total += triangleArea(a, b, c)
		cdf[i] = total
	}
	return &Sampler{geometry: g, cdf: cdf, rng: rng}
}

// Sample writes one surface point into out. It does nothing for an empty geometry.
func (s *Sampler) Sample(out *mgl64.Vec3) {
	if len(s.cdf) == 0 {
		return
	}
	i := s.pickTriangle()
	a, b, c := s.geometry.Triangle(i)

	u, v := s.rng.Float64(), s.rng.Float64()
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	*out = a.Add(b.Sub(a).Mul(u)).Add(c.Sub(a).Mul(v))
}

func (s *Sampler) pickTriangle() int {
	r := s.rng.Float64() * s.cdf[len(s.cdf)-1]
	i := sort.Search(len(s.cdf), func(i int) bool { return s.cdf[i] > r })
	if i == len(s.cdf) {
		i--
	}
	return i
}

func triangleArea(a, b, c mgl64.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}
