package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the analyser can read what was just played.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Samples returns the last n samples mixed down to mono, oldest first.
// Slots never written read as silence.
func (t *Tap) Samples(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		s := t.buffer[idx]
		out[i] = (s[0] + s[1]) / 2
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
