package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop/internal/audio"
	"github.com/vovakirdan/drop/internal/config"
	"github.com/vovakirdan/drop/internal/core"
	"github.com/vovakirdan/drop/internal/games/drop"
)

// Options configures the terminal host.
type Options struct {
	Config  config.DropConfig
	Runtime core.RuntimeConfig
	Sink    audio.Sink
	Logger  *log.Logger

	// Now overrides the time source; nil means time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model running one Drop session.
// The last terminal row holds the help line; the rest shows the world.
type Model struct {
	game      *drop.Game
	screen    *core.Screen
	clock     *core.FrameClock
	held      *HoldTracker
	keyMapper *KeyMapper
	keys      KeyMap
	help      help.Model
	sink      audio.Sink
	logger    *log.Logger
	now       func() time.Time
	config    core.RuntimeConfig
	worldW    float64
	worldH    float64
	input     core.InputFrame
	pointer   core.Pointer
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *drop.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

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

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		clock:     core.NewFrameClockWith(now, opts.Config.Loop.MaxFrame),
		held:      NewHoldTracker(opts.Config.Terminal.KeyHold),
		keyMapper: NewKeyMapper(keys),
		keys:      keys,
		help:      h,
		sink:      sink,
		logger:    logger,
		now:       now,
		config:    cfg,
		worldW:    opts.Config.World.Width,
		worldH:    opts.Config.World.Height,
		input:     core.NewInputFrame(),
	}
}

// Init starts the session, the music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed, "fps", m.config.TickRate)

	if err := m.sink.StartMusic(); err != nil {
		m.logger.Error("music failed to start", "err", err)
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "frames", m.gameState.Frames)
		return m, tea.Quit
	}

	switch action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		m.held.Press(action, m.now())
	case core.ActionPause, core.ActionRestart:
		m.input.Set(action)
		m.held.Release()
	}

	return m, nil
}

// handleMouse tracks the left button as the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.pointer = m.pointerAt(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.pointer.Pressed = false
	}
	return m, nil
}

// pointerAt maps a terminal cell to a pressed pointer in world space.
// Rows below the world area (the help line) clamp to its bottom row.
func (m Model) pointerAt(col, row int) core.Pointer {
	proj := core.NewProjection(m.worldW, m.worldH, m.screen.Width(), m.screen.Height())
	x, y := proj.ToWorld(
		core.Clamp(col, 0, proj.Cols-1),
		core.Clamp(row, 0, proj.Rows-1),
	)
	return core.Pointer{Pressed: true, X: x, Y: y}
}

// handleResize keeps the world area filling the terminal.
// The logical viewport is fixed, so the session continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The frame that resumes from pause starts with no delta
	if m.gameState.Paused && m.input.Has(core.ActionPause) {
		m.clock.Reset()
	}
	dt := m.clock.Tick()

	m.held.Apply(&m.input, m.now())
	m.input.Pointer = m.pointer

	result := m.game.Step(dt, m.input)
	m.gameState = result.State

	if n := audio.PlayEvents(m.sink, result.Events); n > 0 {
		m.logger.Debug("raindrops caught", "count", n, "airborne", result.State.Raindrops)
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer shows the airborne raindrop count next to the key help.
func (m Model) footer() string {
	status := fmt.Sprintf("drops %d", m.gameState.Raindrops)
	return footerStyle.Render(status + "  " + m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game *drop.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal host: %w", err)
	}
	return nil
}
