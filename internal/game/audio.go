package game

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-sphere/internal/audio"
)

// LoadAudio starts decoding path in the background. The analyser is attached
// by Update once the load completes; a failed load leaves the scene silent.
func (g *Game) LoadAudio(ctx context.Context, path string) {
	if g.listener == nil || g.loads != nil || g.source != nil {
		return
	}
	g.assetName = filepath.Base(path)
	g.loads = audio.LoadAsync(ctx, path)
	g.log.Printf("loading %s", path)
}

func (g *Game) pollAudio() {
	if g.loads == nil {
		return
	}
	select {
	case res, ok := <-g.loads:
		g.loads = nil
		if !ok {
			return
		}
		if res.Err != nil {
			g.fail(res.Err)
			return
		}
		if err := g.attach(res.Track); err != nil {
			g.fail(err)
		}
	default:
	}
}

func (g *Game) attach(track *audio.Track) error {
	src := audio.NewSource(track)
	src.SetLoop(true)
	src.SetVolume(g.cfg.Volume)

	an, err := audio.NewAnalyser(src, g.cfg.FFTSize)
	if err != nil {
		return err
	}
	if err := src.Play(g.listener); err != nil {
		return err
	}
	if err := g.ctrl.AttachAnalyser(an); err != nil {
		return err
	}
	g.source = src
	g.log.Printf("playing %s (%s, %d Hz)", track.Name, formatDuration(track.Duration()), track.Format.SampleRate)
	return nil
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.log.Printf("audio disabled: %v", err)
}

// ResolveAudioPath returns path when the file exists and otherwise asks the
// user to pick one. An empty result with a nil error means the user cancelled.
func ResolveAudioPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", errors.Wrap(err, "select audio file")
	}
	return filename, nil
}
