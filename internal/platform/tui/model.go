package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/audio"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/platform/session"
	"github.com/vovakirdan/escape-arcade/internal/registry"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// Options are the host services shared by the terminal screens.
type Options struct {
	Store  *storage.Store // session run ledger, may be nil
	Sink   audio.Sink     // nil plays nothing
	Logger *log.Logger    // nil discards
}

func (o Options) withDefaults() Options {
	if o.Sink == nil {
		o.Sink = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	frame  *core.DrawList
	opts   Options
	config core.RuntimeConfig

	keys  KeyMap
	help  help.Model
	held  *heldKeys
	input core.InputFrame
	clock func() time.Time

	state      core.GameState
	tracker    *session.Tracker
	paused     bool
	showScores bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		frame:  core.NewDrawList(512),
		opts:   opts.withDefaults(),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   newHeldKeys(),
		input:  core.NewInputFrame(),
		clock:  time.Now,
		state:  game.State(),
	}
	m.tracker = session.New(game.ID(), m.opts.Store, m.opts.Logger)
	m.help.Width = cfg.ScreenW

	if w, ok := game.(interface{ Warnings() []error }); ok {
		for _, err := range w.Warnings() {
			m.opts.Logger.Warn("using defaults", "game", game.ID(), "err", err)
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, k := m.keys.Map(msg)
	switch action {
	case HostQuit:
		m.quitting = true
		return m, tea.Quit
	case HostPause:
		m.paused = !m.paused
		if m.paused {
			m.held.releaseAll(&m.input)
		}
		return m, nil
	case HostScores:
		m.showScores = !m.showScores
		return m, nil
	}

	if m.paused || m.showScores {
		return m, nil
	}
	m.held.press(k, m.clock(), &m.input)
	return m, nil
}

// handleResize keeps the frame filling the terminal. Games work in world
// units, so the session is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	m.held.expire(m.clock(), &m.input)
	result := m.game.Step(m.input)
	m.input.Clear()

	audio.PlayAll(m.opts.Sink, result.Tones)
	m.state = result.State
	m.tracker.Observe(result)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".escape", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// render draws the current frame into the cell buffer.
func (m *Model) render() {
	m.game.Draw(m.frame)
	m.screen.Rasterize(m.frame, core.WorldW, core.WorldH)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.showScores:
		board := NewScoreboardModel(m.opts.Store, m.screen.Width(), m.screen.Height())
		board.Focus(m.game.ID())
		body = overlay(board.Summary(), m.screen.Width(), m.screen.Height())
	case m.paused:
		title := lipgloss.NewStyle().Bold(true).Render("PAUSED")
		body = overlay(title+"\n\npress p to resume", m.screen.Width(), m.screen.Height())
	default:
		m.render()
		body = RenderScreen(m.screen)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
