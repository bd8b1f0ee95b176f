package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func writeWAV(t *testing.T, name string, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, constant(0.25, n), format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeWAV(t *testing.T) {
	path := writeWAV(t, "tone.WAV", 4410)

	track, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if track.Name != "tone.WAV" {
		t.Errorf("Name = %q", track.Name)
	}
	if track.Buffer.Len() != 4410 {
		t.Errorf("Len = %d, want 4410", track.Buffer.Len())
	}
	if track.Format.SampleRate != 44100 {
		t.Errorf("SampleRate = %d", track.Format.SampleRate)
	}
	if d := track.Duration(); d != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	unsupported := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unsupported, []byte("la la la"), 0o644); err != nil {
		t.Fatal(err)
	}
	garbage := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.mp3")},
		{"unsupported", unsupported},
		{"garbage", garbage},
		{"empty", writeWAV(t, "empty.wav", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadAsync(t *testing.T) {
	path := writeWAV(t, "tone.wav", 441)

	ch := LoadAsync(context.Background(), path)
	select {
	case res := <-ch:
		if res.Err != nil {
			t.Fatal(res.Err)
		}
		if res.Track == nil || res.Track.Buffer.Len() != 441 {
			t.Fatalf("unexpected track %+v", res.Track)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("load did not complete")
	}

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after the result")
	}
}

func TestLoadAsyncFailure(t *testing.T) {
	res := <-LoadAsync(context.Background(), filepath.Join(t.TempDir(), "nope.mp3"))
	if res.Err == nil || res.Track != nil {
		t.Errorf("got %+v, want error only", res)
	}
}

func TestLoadAsyncCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := <-LoadAsync(ctx, writeWAV(t, "tone.wav", 10))
	if res.Err != context.Canceled {
		t.Errorf("Err = %v, want context.Canceled", res.Err)
	}
}
