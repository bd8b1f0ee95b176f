package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/pkg/errors"
)

// bufferLatency keeps device pulls near one display frame so the tap tracks
// what is currently audible.
const bufferLatency = time.Second / 60

// Output is the device end of the pipeline. device.Speaker implements it.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// Listener owns the output device. The device is opened at the sample rate of
// the first stream played; later streams are resampled to it.
type Listener struct {
	out   Output
	rate  beep.SampleRate
	ready bool
}

func NewListener(out Output) *Listener {
	return &Listener{out: out}
}

func (l *Listener) SampleRate() beep.SampleRate { return l.rate }

func (l *Listener) play(s beep.Streamer, format beep.Format) error {
	if !l.ready {
		if err := l.out.Init(format.SampleRate, format.SampleRate.N(bufferLatency)); err != nil {
			return errors.Wrap(err, "init output")
		}
		l.rate = format.SampleRate
		l.ready = true
	}
	if format.SampleRate != l.rate {
		s = beep.Resample(4, format.SampleRate, l.rate, s)
	}
	l.out.Play(s)
	return nil
}

// locked runs fn while the output is not pulling samples.
func (l *Listener) locked(fn func()) {
	l.out.Lock()
	defer l.out.Unlock()
	fn()
}
