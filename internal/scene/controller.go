package scene

import (
	"image/color"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-sphere/internal/config"
)

// ErrAnalyserAttached is returned when a second analyser is attached.
var ErrAnalyserAttached = errors.New("scene: analyser already attached")

// Surface is the drawing target whose size follows the viewport.
type Surface interface {
	SetSize(width, height int)
}

// FrequencySource exposes the current byte spectrum of a playing track.
type FrequencySource interface {
	FrequencyData() []uint8
}

var particleColor = color.RGBA{R: 255, G: 255, A: 255}

// Controller owns the session state: scene, camera, sampler and the analyser
// handed over once the audio finishes loading.
type Controller struct {
	Scene  *Scene
	Camera *Camera

	surface  Surface
	sampler  *Sampler
	analyser FrequencySource
}

// New builds the scene for a width x height viewport and fills the particle batch.
func New(cfg config.Config, surface Surface, width, height int, rng *rand.Rand) *Controller {
	c := &Controller{
		Camera: NewCamera(config.FieldOfView, aspect(width, height), config.NearPlane, config.FarPlane, cfg.CameraZ),
		Scene: &Scene{
			Background: cfg.Background,
			Group:      &Group{},
		},
		surface: surface,
	}
	surface.SetSize(width, height)

	c.createSphere(rng)
	c.createParticles(cfg.ParticleCount)
	return c
}

func (c *Controller) createSphere(rng *rand.Rand) {
	c.Scene.Reference = &Mesh{
		Geometry:  NewSphereGeometry(config.SphereRadius, config.SphereWidthSegments, config.SphereHeightSegments),
		Color:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Opacity:   config.SphereOpacity,
		Wireframe: true,
	}
	c.sampler = NewSampler(c.Scene.Reference.Geometry, rng)
}

func (c *Controller) createParticles(count int) {
	geometry := NewSphereGeometry(config.ParticleRadius, config.ParticleSegments, config.ParticleSegments)
	batch := NewInstancedBatch(geometry, particleColor, count)

	var (
		position mgl64.Vec3
		center   mgl64.Vec3
	)
	for i := 0; i < batch.Count(); i++ {
		c.sampler.Sample(&position)
		batch.SetMatrixAt(i, mgl64.Translate3D(position[0], position[1], position[2]))

		dir := position.Sub(center)
		if dir.Len() > 0 {
			dir = dir.Normalize()
		}
		batch.SetDirectionAt(i, dir)
	}
	c.Scene.Group.Batch = batch
}

// Resize follows a viewport change. Non-positive sizes are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Camera.Aspect = aspect(width, height)
	c.Camera.UpdateProjection()
	c.surface.SetSize(width, height)
}

// AttachAnalyser hands over the analyser of the playing track. It can be called
// once per session.
func (c *Controller) AttachAnalyser(a FrequencySource) error {
	if a == nil {
		return errors.New("scene: nil analyser")
	}
	if c.analyser != nil {
		return ErrAnalyserAttached
	}
	c.analyser = a
	return nil
}

func (c *Controller) HasAnalyser() bool { return c.analyser != nil }

// Advance runs one frame: spin the group and, with an analyser attached, push
// the particle batch along z by the mean spectrum level.
func (c *Controller) Advance() {
	g := c.Scene.Group
	g.Rotation[1] += config.RotationSpeedY
	g.Rotation[2] += config.RotationSpeedZ

	if c.analyser == nil {
		return
	}
	g.Batch.Position[2] = mean(c.analyser.FrequencyData()) * config.PulseScale
}

func mean(bins []uint8) float64 {
	if len(bins) == 0 {
		return 0
	}
	sum := 0
	for _, b := range bins {
		sum += int(b)
	}
	return float64(sum) / float64(len(bins))
}

func aspect(width, height int) float64 {
	if height <= 0 {
		return 1
	}
	return float64(width) / float64(height)
}
