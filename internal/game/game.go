package game

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/audio-sphere/internal/audio"
	"github.com/iburimskiy/audio-sphere/internal/config"
	"github.com/iburimskiy/audio-sphere/internal/render"
	"github.com/iburimskiy/audio-sphere/internal/scene"
)

type Options struct {
	Log    *log.Logger
	Output audio.Output
	Rand   *rand.Rand
}

// Game adapts the scene controller to ebiten's Update/Draw/Layout cycle.
type Game struct {
	cfg config.Config
	log *log.Logger

	loop     *scene.Loop
	ctrl     *scene.Controller
	renderer *render.Renderer

	// audio
	listener  *audio.Listener
	loads     <-chan audio.LoadResult
	assetName string
	source    *audio.Source

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused  bool
	lastErr error
}

func New(ctx context.Context, cfg config.Config, opts Options) *Game {
	if opts.Log == nil {
		opts.Log = log.New(os.Stderr, "", log.LstdFlags)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := render.New()
	g := &Game{
		cfg:      cfg,
		log:      opts.Log,
		loop:     scene.NewLoop(ctx, cfg.MaxFrames),
		renderer: r,
		ctrl:     scene.New(cfg, r, config.WindowWidth, config.WindowHeight, opts.Rand),
		prevKey:  map[ebiten.Key]bool{},
	}
	if opts.Output != nil {
		g.listener = audio.NewListener(opts.Output)
	}
	return g
}

func (g *Game) Update() error {
	if !g.loop.Next() {
		return ebiten.Termination
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.pollAudio()
	g.ctrl.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.ctrl.Scene, g.ctrl.Camera)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.renderer.Size()
	if outsideWidth != w || outsideHeight != h {
		g.ctrl.Resize(outsideWidth, outsideHeight)
	}
	return g.renderer.Size()
}

func (g *Game) status() string {
	var status string
	switch {
	case g.loads != nil:
		status = "Loading " + g.assetName + "..."
	case g.source == nil:
		status = "No audio - Esc/Q to quit"
	case g.paused:
		status = "Paused " + g.assetName + " - Space to play"
	default:
		status = "Playing " + g.assetName + " " + formatDuration(g.source.Position()) +
			"/" + formatDuration(g.source.Track().Duration()) + " - Space to pause"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) togglePause() {
	if g.source == nil {
		return
	}
	g.paused = !g.paused
	g.source.SetPaused(g.paused)
}
