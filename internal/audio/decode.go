package audio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Track is a fully decoded audio asset held in memory.
type Track struct {
	Name   string
	Buffer *beep.Buffer
	Format beep.Format
}

func (t *Track) Duration() time.Duration {
	return t.Format.SampleRate.D(t.Buffer.Len())
}

// Decode reads the whole file at path into memory. The decoder is chosen by
// extension: .wav, .mp3 or .flac.
func Decode(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open audio")
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	if buf.Len() == 0 {
		return nil, errors.Errorf("%s contains no audio", filepath.Base(path))
	}

	return &Track{Name: filepath.Base(path), Buffer: buf, Format: format}, nil
}

// LoadResult is delivered once when an asynchronous load finishes.
type LoadResult struct {
	Track *Track
	Err   error
}

// LoadAsync decodes path on its own goroutine. The returned channel yields
// exactly one result and is then closed.
func LoadAsync(ctx context.Context, path string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		defer close(ch)
		if err := ctx.Err(); err != nil {
			ch <- LoadResult{Err: err}
			return
		}
		track, err := Decode(path)
		if err == nil && ctx.Err() != nil {
			track, err = nil, ctx.Err()
		}
		ch <- LoadResult{Track: track, Err: err}
	}()
	return ch
}
