// Package drop implements the raindrop-catching arcade game.
// Raindrops fall from the top of a fixed 800x480 viewport; the player moves a
// bucket with the pointer or the keyboard to catch them.
package drop

import (
	"math/rand/v2"

	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
)

// Game owns one session: the world, its random source and the pause state.
// It is driven by a host that calls Step once per frame.
type Game struct {
	cfg     config.DropConfig
	runtime core.RuntimeConfig
	world   World
	rng     *rand.Rand
	paused  bool
	frames  int64
}

// New creates a new game from the given configuration.
// Call Reset before the first Step.
func New(cfg config.DropConfig) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Drop"
}

// Reset starts a fresh session: bucket centered, spawn timer started and,
// unless disabled in the config, the first raindrop already spawned.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := uint64(runtime.Seed)
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.world = NewWorld(ParamsFromConfig(g.cfg))
	if g.world.Params.InitialSpawn {
		g.world.Spawn(g.rng)
	}
	g.paused = false
	g.frames = 0
}

// Step advances the session by one frame of dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		// Derive the next seed from the current stream so replays stay deterministic
		g.runtime.Seed = int64(g.rng.Uint64())
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	events := Step(&g.world, dt, in, g.rng)
	return core.StepResult{State: g.State(), Events: events}
}

// World returns a copy of the current world for drawing.
func (g *Game) World() World {
	return g.world.Clone()
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:    g.paused,
		Raindrops: len(g.world.Raindrops),
		Frames:    g.frames,
	}
}
