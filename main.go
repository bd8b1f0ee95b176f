package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/audio-sphere/internal/audio/device"
	"github.com/iburimskiy/audio-sphere/internal/config"
	"github.com/iburimskiy/audio-sphere/internal/game"
)

func main() {
	logger := log.New(os.Stderr, "sphere: ", log.LstdFlags)

	cfg := config.Default()
	if len(os.Args) > 1 {
		cfg.AudioPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := game.ResolveAudioPath(cfg.AudioPath)
	if err != nil {
		logger.Printf("running without audio: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Particle Sphere - Space: Play/Pause, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(ctx, cfg, game.Options{Log: logger, Output: device.Speaker{}})
	if path != "" {
		g.LoadAudio(ctx, path)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
