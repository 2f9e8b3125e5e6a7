package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

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
	catches int
	started bool
}

func (s *countingSink) PlayCatch() { s.catches++ }
func (s *countingSink) StartMusic() error {
	s.started = true
	return nil
}
func (s *countingSink) Close() error { return nil }

func newTestModel(cfg config.DropConfig) (Model, *fakeClock, *countingSink) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	sink := &countingSink{}
	m := NewModel(drop.New(cfg), Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Sink:    sink,
		Logger:  log.New(io.Discard),
		Now:     clock.Now,
	})
	m.Init()
	return m, clock, sink
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelInitStartsMusic(t *testing.T) {
	_, _, sink := newTestModel(config.DefaultDropConfig())
	if !sink.started {
		t.Error("Init should start the music")
	}
}

func TestModelHeldKeyMovesBucket(t *testing.T) {
	m, clock, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, TickMsg{}) // first tick has dt 0
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	clock.Advance(100 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if got := m.game.World().Bucket.X; got != 348 {
		t.Fatalf("bucket x = %v, expected 348", got)
	}

	// No repeat arrives, so the hold window runs out
	clock.Advance(400 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if got := m.game.World().Bucket.X; got != 348 {
		t.Errorf("bucket x = %v after hold expired, expected 348", got)
	}
}

func TestModelMouseDragMovesBucket(t *testing.T) {
	m, clock, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, tea.MouseMsg{X: 40, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(t, m, TickMsg{})
	// Cell 40 of 80 maps to world x 405
	if got := m.game.World().Bucket.X; got != 373 {
		t.Fatalf("bucket x = %v, expected 373", got)
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 30, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	clock.Advance(16 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if got := m.game.World().Bucket.X; got != 0 {
		t.Fatalf("bucket x = %v, expected clamp to 0", got)
	}

	m = update(t, m, tea.MouseMsg{X: 79, Y: 10, Action: tea.MouseActionRelease})
	clock.Advance(16 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if got := m.game.World().Bucket.X; got != 0 {
		t.Errorf("bucket x = %v after release, expected 0", got)
	}
}

func TestModelRightButtonIgnored(t *testing.T) {
	m, _, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, tea.MouseMsg{X: 0, Y: 10, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	m = update(t, m, TickMsg{})
	if got := m.game.World().Bucket.X; got != 368 {
		t.Errorf("bucket x = %v, expected 368", got)
	}
}

func TestModelCatchPlaysSound(t *testing.T) {
	cfg := config.DefaultDropConfig()
	// World as wide as the bucket: every raindrop lands in it
	cfg.World.Width = 64

	m, clock, sink := newTestModel(cfg)
	m = update(t, m, TickMsg{})
	for range 25 {
		clock.Advance(100 * time.Millisecond)
		m = update(t, m, TickMsg{})
	}

	if sink.catches == 0 {
		t.Error("expected at least one catch sound")
	}
}

func TestModelPause(t *testing.T) {
	m, clock, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !m.gameState.Paused {
		t.Fatal("expected paused state")
	}

	before := m.game.World()
	clock.Advance(100 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if after := m.game.World(); after.Now != before.Now {
		t.Errorf("world clock advanced while paused: %v -> %v", before.Now, after.Now)
	}
}

func TestModelResumeStartsFromZeroDelta(t *testing.T) {
	m, clock, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	before := m.game.World().Now

	clock.Advance(80 * time.Millisecond)
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if m.gameState.Paused {
		t.Fatal("expected the session to resume")
	}
	if now := m.game.World().Now; now != before {
		t.Errorf("resume frame advanced the world clock: %v -> %v", before, now)
	}

	clock.Advance(50 * time.Millisecond)
	m = update(t, m, TickMsg{})
	if now := m.game.World().Now; now != before+50*time.Millisecond {
		t.Errorf("world clock = %v, expected %v", now, before+50*time.Millisecond)
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(config.DefaultDropConfig())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestModelViewLayout(t *testing.T) {
	m, _, _ := newTestModel(config.DefaultDropConfig())
	m = update(t, m, TickMsg{})

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("View() has %d lines, expected 24", lines)
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should include the help line")
	}
	// Reset spawned the first raindrop
	if !strings.Contains(view, "drops 1") {
		t.Error("View() should show the airborne raindrop count")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(config.DefaultDropConfig())

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
