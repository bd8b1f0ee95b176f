package audio

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	DefaultSmoothing   = 0.8
	DefaultMinDecibels = -100.0
	DefaultMaxDecibels = -30.0
)

// SampleSource provides the most recent mono samples of a playing stream.
type SampleSource interface {
	Samples(n int) []float64
}

// Analyser turns the latest fftSize samples into fftSize/2 byte-scaled bins.
// Magnitudes are Blackman-windowed, smoothed over time and mapped from
// [MinDecibels, MaxDecibels] onto 0..255.
type Analyser struct {
	Smoothing   float64
	MinDecibels float64
	MaxDecibels float64

	src      SampleSource
	fftSize  int
	fft      *fourier.FFT
	window   []float64
	frame    []float64
	coeffs   []complex128
	smoothed []float64
}

// NewAnalyser reads from src. fftSize must be a power of two in [32, 32768].
func NewAnalyser(src SampleSource, fftSize int) (*Analyser, error) {
	if src == nil {
		return nil, errors.New("analyser: nil sample source")
	}
	if fftSize < 32 || fftSize > 32768 || fftSize&(fftSize-1) != 0 {
		return nil, errors.Errorf("analyser: fft size %d is not a power of two in [32, 32768]", fftSize)
	}
	return &Analyser{
		Smoothing:   DefaultSmoothing,
		MinDecibels: DefaultMinDecibels,
		MaxDecibels: DefaultMaxDecibels,
		src:         src,
		fftSize:     fftSize,
		fft:         fourier.NewFFT(fftSize),
		window:      blackman(fftSize),
		frame:       make([]float64, fftSize),
		smoothed:    make([]float64, fftSize/2),
	}, nil
}

func (a *Analyser) FFTSize() int { return a.fftSize }

func (a *Analyser) FrequencyBinCount() int { return a.fftSize / 2 }

// FrequencyData analyses the current samples and returns one byte per bin.
func (a *Analyser) FrequencyData() []uint8 {
	a.update()

	out := make([]uint8, len(a.smoothed))
	scale := 255 / (a.MaxDecibels - a.MinDecibels)
	for i, mag := range a.smoothed {
		if mag <= 0 {
			continue
		}
		db := 20 * math.Log10(mag)
		v := math.Floor(scale * (db - a.MinDecibels))
		out[i] = uint8(math.Max(0, math.Min(255, v)))
	}
	return out
}

func (a *Analyser) update() {
	samples := a.src.Samples(a.fftSize)
	// Right-align so a short read is padded with leading silence.
	pad := a.fftSize - len(samples)
	if pad < 0 {
		samples = samples[-pad:]
		pad = 0
	}
	for i := range a.frame {
		v := 0.0
		if i >= pad {
			v = samples[i-pad]
		}
		a.frame[i] = v * a.window[i]
	}

	a.coeffs = a.fft.Coefficients(a.coeffs, a.frame)
	n := float64(a.fftSize)
	for i := range a.smoothed {
		mag := cmplx.Abs(a.coeffs[i]) / n
		a.smoothed[i] = a.Smoothing*a.smoothed[i] + (1-a.Smoothing)*mag
	}
}

func blackman(n int) []float64 {
	const alpha = 0.16
	a0, a1, a2 := 0.5*(1-alpha), 0.5, 0.5*alpha
	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return w
}
