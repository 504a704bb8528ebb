package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quantum-maze/internal/core"
	"github.com/vovakirdan/quantum-maze/internal/registry"
	"github.com/vovakirdan/quantum-maze/internal/storage"
)

// Model is the Bubble Tea model for playing one maze variant.
// Keys step the game immediately; ticks only drive auto mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	sink       storage.ScoreSink
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	auto       bool
	quitting   bool
	scoreSaved bool // Whether the current win has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// sink and logger may be nil.
func NewModel(game registry.Game, sink storage.ScoreSink, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sink:       sink,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
	// A single-cell maze is won before any move
	if m.gameState.Won {
		m.recordWin()
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.MoveDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit, action == core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionAuto:
		m.auto = !m.auto
		return m, nil
	case action == core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	m.step()
	return m, nil
}

// handleTick advances once per tick while auto mode is on.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.auto && !m.gameState.GameOver {
		m.inputFrame.Set(core.ActionAdvance)
		m.step()
	}
	return m, tickCmd(m.config.MoveDelay)
}

// step runs the game on the pending input and records a fresh win once.
func (m *Model) step() {
	restarted := m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if restarted {
		m.scoreSaved = false
	}
	m.gameState = result.State

	if m.gameState.Won && !m.scoreSaved {
		m.recordWin()
	}
}

// recordWin is best-effort: a failed save is logged and play continues.
func (m *Model) recordWin() {
	m.scoreSaved = true
	if m.sink == nil {
		return
	}
	steps := m.gameState.Score
	if err := m.sink.RecordWin(m.game.ID(), steps); err != nil {
		m.logger.Warn("could not record score", "game", m.game.ID(), "steps", steps, "error", err)
		return
	}
	m.logger.Debug("score recorded", "game", m.game.ID(), "steps", steps)
}

// Auto reports whether automatic advancing is on.
func (m Model) Auto() bool { return m.auto }

// State returns the last observed game state.
func (m Model) State() core.GameState { return m.gameState }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.auto && m.screen.Height() > 2 {
		m.screen.DrawTextColored(m.screen.Width()-7, 0, " AUTO ", core.ColorBrightCyan)
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
// Auto mode starts on when auto is true.
func Run(game registry.Game, sink storage.ScoreSink, logger *log.Logger, cfg core.RuntimeConfig, auto bool) error {
	model := NewModel(game, sink, logger, cfg)
	model.auto = auto

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
