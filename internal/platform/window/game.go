// Package window runs Drop in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
	"github.com/vovakirdan/drop/internal/games/drop"
)

// Options configures the window host.
type Options struct {
	Config  config.DropConfig
	Runtime core.RuntimeConfig
	Sprites *Sprites
	Sink    audio.Sink
	Logger  *log.Logger

	// Now overrides the time source; nil means time.Now.
	Now func() time.Time
}

// debugGlyphW is the advance of the ebitenutil debug font, in pixels.
const debugGlyphW = 6

// Game adapts a drop.Game to ebiten.Game.
type Game struct {
	game    *drop.Game
	sprites *Sprites
	sink    audio.Sink
	logger  *log.Logger
	clock   *core.FrameClock
	input   core.InputFrame
	state   core.GameState
	viewW   int
	viewH   int
}

// NewGame wraps game for Ebitengine and starts its session.
func NewGame(game *drop.Game, opts Options) *Game {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	game.Reset(opts.Runtime)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Game{
		game:    game,
		sprites: opts.Sprites,
		sink:    sink,
		logger:  logger,
		clock:   core.NewFrameClockWith(now, opts.Config.Loop.MaxFrame),
		state:   game.State(),
		input:   core.NewInputFrame(),
		viewW:   int(opts.Config.World.Width),
		viewH:   int(opts.Config.World.Height),
	}
}

// Update polls input and advances the simulation by one frame.
func (g *Game) Update() error {
	g.input.Clear()
	if pollInput(&g.input, float64(g.viewH)) {
		return ebiten.Termination
	}

	g.advance(g.input)
	return nil
}

// advance steps the simulation with in and plays the resulting sounds.
func (g *Game) advance(in core.InputFrame) {
	// The frame that resumes from pause starts with no delta
	if g.state.Paused && in.Has(core.ActionPause) {
		g.clock.Reset()
	}

	result := g.game.Step(g.clock.Tick(), in)
	g.state = result.State
	if n := audio.PlayEvents(g.sink, result.Events); n > 0 {
		g.logger.Debug("raindrops caught", "count", n, "airborne", g.state.Raindrops)
	}
}

// Draw renders the world. World y grows upwards, screen y downwards.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	w := g.game.World()
	h := float64(g.viewH)
	for _, d := range w.Raindrops {
		x, y := spriteOrigin(d.Rect, h)
		drawAt(screen, g.sprites.Droplet, x, y, d.W, d.H)
	}
	x, y := spriteOrigin(w.Bucket.Rect, h)
	drawAt(screen, g.sprites.Bucket, x, y, w.Bucket.W, w.Bucket.H)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("drops: %d", g.state.Raindrops), 4, 4)
	if g.state.Paused {
		msg := "PAUSED - press P to resume"
		ebitenutil.DebugPrintAt(screen, msg, centeredX(msg, g.viewW), g.viewH/2)
	}
}

// centeredX returns the left edge that centers msg, in the debug font, on a
// surface viewW pixels wide.
func centeredX(msg string, viewW int) int {
	return (viewW - len(msg)*debugGlyphW) / 2
}

// Layout fixes the logical viewport; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.viewW, g.viewH
}

// Run opens the window and runs the game until the player quits.
func Run(game *drop.Game, opts Options) error {
	g := NewGame(game, opts)

	winW, winH := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	if winW <= 0 || winH <= 0 {
		winW, winH = g.viewW, g.viewH
	}
	ebiten.SetWindowSize(winW, winH)
	ebiten.SetWindowTitle(game.Title())
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := g.sink.StartMusic(); err != nil {
		g.logger.Error("music failed to start", "err", err)
	}
	g.logger.Info("window opened", "seed", opts.Runtime.Seed, "tps", ebiten.TPS())

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window host: %w", err)
	}
	g.logger.Info("window closed", "frames", g.state.Frames)
	return nil
}
