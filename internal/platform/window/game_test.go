package window

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
	"github.com/vovakirdan/drop/internal/games/drop"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type countingSink struct {
	audio.Nop
	catches int
}

func (s *countingSink) PlayCatch() { s.catches++ }

func newTestGame(cfg config.DropConfig) (*Game, *fakeClock, *countingSink) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	sink := &countingSink{}
	g := NewGame(drop.New(cfg), Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 1},
		Sink:    sink,
		Logger:  log.New(io.Discard),
		Now:     clock.Now,
	})
	return g, clock, sink
}

func TestGameCatchPlaysSound(t *testing.T) {
	// A world as wide as the bucket puts every raindrop right above it
	cfg := config.DefaultDropConfig()
	cfg.World.Width = 64

	g, clock, sink := newTestGame(cfg)
	for range 30 {
		g.advance(core.NewInputFrame())
		clock.Advance(100 * time.Millisecond)
	}
	if sink.catches == 0 {
		t.Fatal("expected at least one catch sound")
	}
	if g.state.Frames != 30 {
		t.Errorf("frames = %d, expected 30", g.state.Frames)
	}
}

func TestGameResumeStartsFromZeroDelta(t *testing.T) {
	g, clock, _ := newTestGame(config.DefaultDropConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.advance(core.NewInputFrame())
	g.advance(pause)
	if !g.state.Paused {
		t.Fatal("expected paused state")
	}
	before := g.game.World().Now

	clock.Advance(2 * time.Second)
	g.advance(pause)
	if g.state.Paused {
		t.Fatal("expected the session to resume")
	}
	if now := g.game.World().Now; now != before {
		t.Errorf("resume frame advanced the world clock: %v -> %v", before, now)
	}

	clock.Advance(50 * time.Millisecond)
	g.advance(core.NewInputFrame())
	if now := g.game.World().Now; now != before+50*time.Millisecond {
		t.Errorf("world clock = %v, expected %v", now, before+50*time.Millisecond)
	}
}

func TestCenteredX(t *testing.T) {
	tests := []struct {
		msg   string
		viewW int
		want  int
	}{
		{"PAUSED - press P to resume", 800, 322},
		{"PAUSED", 800, 382},
		{"", 800, 400},
		{"PAUSED - press P to resume", 156, 0},
	}

	for _, tc := range tests {
		if got := centeredX(tc.msg, tc.viewW); got != tc.want {
			t.Errorf("centeredX(%q, %d) = %d, expected %d", tc.msg, tc.viewW, got, tc.want)
		}
	}
}
