package escape

import (
	"slices"
	"strconv"

	"github.com/vovakirdan/escape-arcade/internal/config"
	"github.com/vovakirdan/escape-arcade/internal/core"
)

// World is one play session: rules, tuning, the player, the active level and
// the score. Step advances it one frame; Draw renders it.
type World struct {
	rules  Rules
	cfg    config.EscapeConfig
	levels LevelSet
	diff   *config.DifficultyManager
	seed   int64 // cosmetic randomness on the end screens

	Phase     core.Phase
	Player    Player
	Score     int
	HighScore int
	NewHigh   bool // the finished run beat the previous high score
	Cleared   bool // every level was completed (shown on the end screen without a WIN phase)
	Frame     int

	current int
	level   *Level

	tones  []core.Tone
	events []core.Event
}

// NewWorld creates a session in the START phase.
func NewWorld(rules Rules, cfg config.EscapeConfig, levels LevelSet, seed int64) *World {
	w := &World{
		rules:  rules,
		cfg:    cfg,
		levels: levels,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		seed:   seed,
		Phase:  core.PhaseStart,
	}
	w.Player = newPlayer(cfg)
	w.loadLevel(0)
	return w
}

// Rules returns the variant rules.
func (w *World) Rules() Rules { return w.rules }

// Config returns the tuning in use.
func (w *World) Config() config.EscapeConfig { return w.cfg }

// Level returns the active stage.
func (w *World) Level() *Level { return w.level }

// CurrentLevel returns the zero-based active level index.
func (w *World) CurrentLevel() int { return w.current }

// LevelCount returns the number of stages.
func (w *World) LevelCount() int { return len(w.levels.Levels) }

// loadLevel builds a fresh copy of stage i, re-seeding its collectibles.
func (w *World) loadLevel(i int) {
	w.current = i
	w.level = buildLevel(i, w.levels.Levels[i], w.cfg, w.diff, w.Score)
}

// Step applies the frame's key events in order, then advances the
// simulation one tick when playing.
func (w *World) Step(in core.InputFrame) core.StepResult {
	w.tones = w.tones[:0]
	w.events = w.events[:0]
	w.Frame++

	for _, ev := range in.Events {
		w.handleKey(ev)
	}

	if w.Phase == core.PhasePlaying {
		w.updateLevel()
		if w.Phase == core.PhasePlaying {
			w.updatePlayer()
		}
	}

	if t, ok := w.melodyTone(); ok {
		w.emitTone(t)
	}

	return core.StepResult{
		State:  w.State(),
		Tones:  slices.Clone(w.tones),
		Events: slices.Clone(w.events),
	}
}

// handleKey routes one key event by phase.
func (w *World) handleKey(ev core.KeyEvent) {
	if ev.Key == core.KeyNone {
		return
	}
	switch w.Phase {
	case core.PhaseStart:
		if ev.Kind == core.KeyDown {
			w.Phase = core.PhasePlaying
			w.emit(core.EventStarted, "")
		}
	case core.PhasePlaying:
		w.handlePlayingKey(ev)
	case core.PhaseGameOver, core.PhaseWin:
		if ev.Kind == core.KeyDown {
			w.restart()
		}
	}
}

func (w *World) handlePlayingKey(ev core.KeyEvent) {
	p := &w.Player
	if ev.Kind == core.KeyUpEvent {
		if ev.Key == core.KeyLeft || ev.Key == core.KeyRight {
			p.StopMoving()
		}
		return
	}
	switch ev.Key {
	case core.KeyLeft:
		p.MoveLeft(w.cfg)
	case core.KeyRight:
		p.MoveRight(w.cfg)
	case core.KeyUp:
		if p.Jump(w.rules.Guard) {
			w.emitTone(toneJump)
			w.emit(core.EventJump, "")
		}
	}
}

// restart replaces the session with a fresh one in PLAYING.
// Only the high score and the frame counter carry over.
func (w *World) restart() {
	fresh := NewWorld(w.rules, w.cfg, w.levels, w.seed)
	fresh.HighScore = w.HighScore
	fresh.Frame = w.Frame
	fresh.tones = w.tones
	fresh.events = w.events
	fresh.Phase = core.PhasePlaying
	*w = *fresh
	w.emit(core.EventRestart, "")
}

// loseLife costs one life. At zero the run ends; otherwise the player
// respawns with power-ups cleared.
func (w *World) loseLife(hitTone bool) {
	w.Player.Lives--
	if hitTone {
		w.emitTone(toneHit)
	}
	w.emit(core.EventLifeLost, strconv.Itoa(w.Player.Lives))
	if w.Player.Lives <= 0 {
		w.finish(core.PhaseGameOver)
		return
	}
	w.Player.resetPosition(w.cfg)
}

// advanceLevel moves past the exit of the active stage.
func (w *World) advanceLevel() {
	w.emitTone(toneLevelUp)
	if w.current+1 >= len(w.levels.Levels) {
		w.Cleared = true
		if w.rules.HasWin {
			w.finish(core.PhaseWin)
		} else {
			w.finish(core.PhaseGameOver)
		}
		return
	}
	w.loadLevel(w.current + 1)
	w.Player.resetPosition(w.cfg)
	w.emit(core.EventLevelUp, w.level.Name)
}

// finish enters a terminal phase and records the high score.
func (w *World) finish(phase core.Phase) {
	w.Phase = phase
	w.NewHigh = w.Score > w.HighScore
	if w.NewHigh {
		w.HighScore = w.Score
	}
	if phase == core.PhaseWin {
		w.emit(core.EventWin, "")
	} else {
		w.emit(core.EventGameOver, "")
	}
}

func (w *World) emit(kind core.EventKind, detail string) {
	w.events = append(w.events, core.Event{Kind: kind, Detail: detail})
}

// State returns the host-facing summary.
func (w *World) State() core.GameState {
	return core.GameState{
		Phase:     w.Phase,
		Score:     w.Score,
		HighScore: w.HighScore,
		Lives:     w.Player.Lives,
		Level:     w.current,
		Levels:    len(w.levels.Levels),
		Frame:     w.Frame,
		GameOver:  w.Phase == core.PhaseGameOver || w.Phase == core.PhaseWin,
		Won:       w.Phase == core.PhaseWin || w.Cleared,
	}
}
