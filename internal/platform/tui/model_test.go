package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/escape-arcade/internal/audio"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// scriptedGame replays queued step results and records the input it was given.
type scriptedGame struct {
	state  core.GameState
	script []core.StepResult
	inputs []core.InputFrame
	resets int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: core.PhaseStart, Lives: 3, Levels: 1}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.state.Frame++
	if len(g.script) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.script[0]
	g.script = g.script[1:]
	r.State.Frame = g.state.Frame
	g.state = r.State
	return r
}

func (g *scriptedGame) Draw(dst *core.DrawList) {
	dst.Reset()
	dst.Background(core.ColorNavy)
	dst.Text(400, 300, 20, core.AlignCenter, core.ColorWhite, "SCRIPTED")
}

func (g *scriptedGame) State() core.GameState { return g.state }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T, g *scriptedGame, opts Options) (Model, *fakeClock) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, opts)
	clock := &fakeClock{now: time.Unix(1000, 0)}
	m.clock = clock.Now
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelResetsGameOnCreate(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.State().Phase != core.PhaseStart {
		t.Errorf("phase = %v, expected start", m.State().Phase)
	}
}

func TestModelForwardsHeldKeysToGame(t *testing.T) {
	g := &scriptedGame{}
	m, clock := newTestModel(t, g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})
	if !g.inputs[0].Pressed(core.KeyRight) {
		t.Fatalf("first tick input = %+v, expected key-down right", g.inputs[0].Events)
	}

	m = update(t, m, TickMsg{})
	if !g.inputs[1].Empty() {
		t.Errorf("second tick input = %+v, expected nothing while held", g.inputs[1].Events)
	}

	clock.advance(firstHold + time.Millisecond)
	update(t, m, TickMsg{})
	want := core.KeyEvent{Kind: core.KeyUpEvent, Key: core.KeyRight}
	if len(g.inputs[2].Events) != 1 || g.inputs[2].Events[0] != want {
		t.Errorf("third tick input = %+v, expected %+v", g.inputs[2].Events, want)
	}
}

func TestModelPauseStopsSimulation(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if len(g.inputs) != 0 {
		t.Fatalf("game stepped %d times while paused", len(g.inputs))
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	m = update(t, m, runeKey('p'))
	update(t, m, TickMsg{})
	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, expected 1 after resuming", len(g.inputs))
	}
	// The press and the release from pausing arrive together.
	if !g.inputs[0].Pressed(core.KeyRight) || len(g.inputs[0].Events) != 2 {
		t.Errorf("input = %+v, expected down then up", g.inputs[0].Events)
	}
}

func TestModelPlaysStepTones(t *testing.T) {
	tone := core.Tone{Wave: core.WaveSquare, Freq: 440, Amp: 0.3, Duration: 100 * time.Millisecond}
	g := &scriptedGame{script: []core.StepResult{{
		State: core.GameState{Phase: core.PhasePlaying, Lives: 3},
		Tones: []core.Tone{tone},
	}}}
	rec := &audio.Recorder{}
	m, _ := newTestModel(t, g, Options{Sink: rec})

	update(t, m, TickMsg{})
	got := rec.Tones()
	if len(got) != 1 || got[0] != tone {
		t.Errorf("tones = %+v, expected %+v", got, tone)
	}
}

func TestModelRecordsFinishedRunOnce(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	playing := core.GameState{Phase: core.PhasePlaying, Lives: 1, Levels: 3}
	over := core.GameState{Phase: core.PhaseGameOver, Score: 40, Level: 1, Levels: 3, GameOver: true}
	g := &scriptedGame{script: []core.StepResult{
		{State: playing, Events: []core.Event{{Kind: core.EventStarted}}},
		{State: playing},
		{State: over, Events: []core.Event{{Kind: core.EventGameOver}}},
		{State: over},
		{State: over},
	}}
	m, _ := newTestModel(t, g, Options{Store: store})

	for range 5 {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 40 || r.Level != 2 || r.Cleared || r.Frames != 2 {
		t.Errorf("run = %+v, expected score 40, level 2, not cleared, 2 frames", r)
	}
}

func TestModelRestartAllowsAnotherRun(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	won := core.GameState{Phase: core.PhaseWin, Score: 90, Level: 2, Levels: 3, GameOver: true, Won: true}
	g := &scriptedGame{script: []core.StepResult{
		{State: won},
		{State: core.GameState{Phase: core.PhasePlaying, Lives: 3}, Events: []core.Event{{Kind: core.EventRestart}}},
		{State: won},
	}}
	m, _ := newTestModel(t, g, Options{Store: store})
	for range 3 {
		m = update(t, m, TickMsg{})
	}

	stats, err := store.Stats("scripted")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Runs != 2 || stats.Cleared != 2 {
		t.Errorf("stats = %+v, expected 2 cleared runs", stats)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})

	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, resize must not reset the game", g.resets)
	}
	if !strings.Contains(m.View(), "SCRIPTED") {
		t.Error("view should show the game frame")
	}
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
