package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-sphere/internal/config"
)

// Source plays a decoded track through a listener.
// Chain: buffer -> loop -> volume -> ctrl -> tap, so a paused source taps silence.
type Source struct {
	track  *Track
	loop   bool
	volume float64

	seeker   beep.StreamSeeker
	tap      *Tap
	ctrl     *beep.Ctrl
	listener *Listener
}

func NewSource(track *Track) *Source {
	return &Source{track: track, volume: 1}
}

func (s *Source) Track() *Track { return s.track }

// SetLoop and SetVolume take effect on the next Play.
func (s *Source) SetLoop(loop bool) { s.loop = loop }

func (s *Source) SetVolume(v float64) { s.volume = v }

func (s *Source) Playing() bool { return s.ctrl != nil }

// Play starts the track. A source plays at most once.
func (s *Source) Play(l *Listener) error {
	if s.ctrl != nil {
		return errors.New("source already playing")
	}
	seeker, ctrl, tap := s.chain()
	if err := l.play(tap, s.track.Format); err != nil {
		return errors.Wrapf(err, "play %s", s.track.Name)
	}
	s.seeker, s.ctrl, s.tap = seeker, ctrl, tap
	s.listener = l
	return nil
}

func (s *Source) chain() (beep.StreamSeeker, *beep.Ctrl, *Tap) {
	buf := s.track.Buffer
	seeker := buf.Streamer(0, buf.Len())
	var st beep.Streamer = seeker
	if s.loop {
		st = beep.Loop(-1, seeker)
	}
	st = &effects.Volume{
		Streamer: st,
		Base:     10,
		Volume:   math.Log10(math.Max(s.volume, 1e-9)),
		Silent:   s.volume <= 0,
	}
	ctrl := &beep.Ctrl{Streamer: st}
	return seeker, ctrl, NewTap(ctrl, config.VisualRingSize)
}

func (s *Source) SetPaused(paused bool) {
	if s.ctrl == nil {
		return
	}
	s.listener.locked(func() { s.ctrl.Paused = paused })
}

func (s *Source) Paused() bool {
	if s.ctrl == nil {
		return false
	}
	var p bool
	s.listener.locked(func() { p = s.ctrl.Paused })
	return p
}

// Samples returns the last n played samples in mono. Before playback starts
// it returns silence.
func (s *Source) Samples(n int) []float64 {
	if s.tap == nil {
		return make([]float64, n)
	}
	return s.tap.Samples(n)
}

// Position is the playback offset within the track. Looping sources wrap
// back to zero at the end of the track.
func (s *Source) Position() time.Duration {
	if s.seeker == nil {
		return 0
	}
	var pos int
	s.listener.locked(func() { pos = s.seeker.Position() })
	return s.track.Format.SampleRate.D(pos)
}
