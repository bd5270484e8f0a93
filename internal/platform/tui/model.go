package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spacewar/internal/config"
	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

// MatchRecorder persists finished matches.
type MatchRecorder interface {
	SaveMatch(r storage.MatchResult) (int64, error)
}

// Options configures a game model.
type Options struct {
	Runtime  core.RuntimeConfig
	Input    config.InputConfig
	Recorder MatchRecorder // optional
	Logger   *log.Logger   // optional
}

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(cfg core.RuntimeConfig)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a match.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  MatchRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	pending   []core.Action // driver actions for the next tick
	taps      []string      // flight keys pressed once since the last tick
	gameState core.GameState
	quitting  bool
	saved     bool // Whether the current finished match has been recorded
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		recorder: opts.Recorder,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMap(opts.Input),
		help:     help.New(),
		holds:    NewHoldTracker(opts.Input.HoldWindow()),
		now:      time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.playRuntime())
	m.logger.Info("match started", "game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// playRuntime is the runtime config minus the help footer row.
func (m Model) playRuntime() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = core.Max(cfg.ScreenH-1, 1)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. A fresh flight key press is queued as
// a tap; repeats feed the hold tracker. The frame is assembled on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested")
		return m, tea.Quit
	case core.ActionRestart:
		m.holds.Reset()
		m.pending = append(m.pending, action)
		return m, nil
	case core.ActionPause:
		m.pending = append(m.pending, action)
		return m, nil
	}

	k := msg.String()
	if _, _, ok := m.keys.Lookup(k); ok {
		if !m.holds.Press(k, m.now()) {
			m.taps = append(m.taps, k)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	runtime := m.playRuntime()
	m.screen.Resize(runtime.ScreenW, runtime.ScreenH)
	if r, ok := m.game.(resizer); ok {
		r.Resize(runtime)
	} else if !m.gameState.GameOver {
		m.game.Reset(runtime)
	}

	return m, nil
}

// Frame assembles the input frame for the next tick from held keys, taps
// and pending driver actions.
func (m Model) Frame() core.MultiInputFrame {
	frame := core.NewMultiInputFrame()
	for _, k := range m.holds.Held(m.now()) {
		id, action, ok := m.keys.Lookup(k)
		if !ok {
			continue
		}
		f := frame.Player(id)
		f.Hold(action)
		frame.SetPlayer(id, f)
	}

	for _, k := range m.taps {
		id, action, ok := m.keys.Lookup(k)
		if !ok {
			continue
		}
		f := frame.Player(id)
		f.Set(action)
		frame.SetPlayer(id, f)
	}

	if len(m.pending) > 0 {
		f := frame.Player1()
		for _, a := range m.pending {
			f.Set(a)
		}
		frame.SetPlayer(core.Player1, f)
	}
	return frame
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.Frame())
	m.pending = nil
	m.taps = nil
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "player", ev.Player, "tick", ev.Tick)
	}

	if !m.gameState.GameOver {
		m.saved = false
	} else if !m.saved {
		m.recordMatch()
		m.saved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// recordMatch logs and stores the outcome of a finished match.
func (m Model) recordMatch() {
	result := storage.MatchFromState(m.game.ID(), m.gameState, m.config.TickRate)
	m.logger.Info("match over",
		"winner", result.Winner,
		"duration", result.Duration(),
		"p1_hits", result.Stats[0].Hits,
		"p2_hits", result.Stats[1].Hits,
	)

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveMatch(result); err != nil {
		m.logger.Warn("could not save match", "error", err)
	}
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
// The full key reference replaces the short help while paused.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.help.ShowAll = m.gameState.Paused
	footer := helpStyle.Render(m.help.View(m.keys))

	rows := core.Max(m.config.ScreenH-lipgloss.Height(footer), 1)
	m.screen.Resize(m.config.ScreenW, rows)
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
