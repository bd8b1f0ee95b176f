package audio

import (
	"math"

	"github.com/faiface/beep"
)

// rampStreamer yields left samples whose value counts up from next.
type rampStreamer struct {
	next float64
	step float64
	left int
	// level, when set, replaces the ramp with a constant value.
	level *float64
}

func (r *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	if r.left <= 0 {
		return 0, false
	}
	n := min(len(samples), r.left)
	for i := 0; i < n; i++ {
		v := r.next
		if r.level != nil {
			v = *r.level
		}
		samples[i] = [2]float64{v, v}
		r.next += r.step
	}
	r.left -= n
	return n, true
}

func (r *rampStreamer) Err() error { return nil }

func constant(v float64, n int) *rampStreamer {
	return &rampStreamer{left: n, level: &v}
}

func testTrack(level float64, n int, rate beep.SampleRate) *Track {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(constant(level, n))
	return &Track{Name: "test.wav", Buffer: buf, Format: format}
}

// sineTrack holds n samples of a sine completing one cycle every period samples.
func sineTrack(amp float64, period, n int, rate beep.SampleRate) *Track {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	i := 0
	buf.Append(beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k, i = k+1, i+1 {
			v := amp * math.Sin(2*math.Pi*float64(i)/float64(period))
			samples[k] = [2]float64{v, v}
		}
		return k, true
	}))
	return &Track{Name: "sine.wav", Buffer: buf, Format: format}
}

type fakeOutput struct {
	sizes   []int
	inits   []beep.SampleRate
	played  []beep.Streamer
	initErr error
	locks   int
}

func (o *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	if o.initErr != nil {
		return o.initErr
	}
	o.inits = append(o.inits, rate)
	o.sizes = append(o.sizes, bufferSize)
	return nil
}

func (o *fakeOutput) Play(s ...beep.Streamer) { o.played = append(o.played, s...) }

func (o *fakeOutput) Lock() { o.locks++ }

func (o *fakeOutput) Unlock() {}

// pull streams n samples from the i-th played streamer.
func (o *fakeOutput) pull(i, n int) ([][2]float64, int, bool) {
	buf := make([][2]float64, n)
	got, ok := o.played[i].Stream(buf)
	return buf, got, ok
}
