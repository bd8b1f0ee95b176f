// Package device connects the audio pipeline to the system speaker.
package device

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker is the default audio device. The zero value is ready to use.
type Speaker struct{}

func (Speaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (Speaker) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (Speaker) Lock() { speaker.Lock() }

func (Speaker) Unlock() { speaker.Unlock() }
