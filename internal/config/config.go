package config

import "image/color"

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// Camera
	FieldOfView = 75.0
	NearPlane   = 0.1
	FarPlane    = 100.0

	// Reference sphere
	SphereRadius         = 2.0
	SphereWidthSegments  = 32
	SphereHeightSegments = 16
	SphereOpacity        = 0.1

	// Particle instances
	ParticleRadius   = 0.01
	ParticleSegments = 16

	// Per-frame motion
	RotationSpeedY = 0.002
	RotationSpeedZ = 0.0012
	PulseScale     = 0.01

	VisualRingSize = 8192
)

// Config is fixed at construction and read-only afterwards.
type Config struct {
	CameraZ       float64
	Background    color.RGBA
	ParticleCount int

	AudioPath string
	Volume    float64
	FFTSize   int

	// MaxFrames stops the frame loop after that many updates; 0 runs until cancelled.
	MaxFrames int
}

func Default() Config {
	return Config{
		CameraZ:       4.5,
		Background:    Hex(0x0d021f),
		ParticleCount: 1000,
		AudioPath:     "assets/audio/track.mp3",
		Volume:        0.1,
		FFTSize:       128,
	}
}

// Hex converts a 0xRRGGBB value to an opaque colour.
func Hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
