package core

// World dimensions in world units. Collision and clamping depend on these.
const (
	WorldW = 800
	WorldH = 600
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; hosts use the screen size to scale.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (characters or pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for cosmetic randomness
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  WorldW,
		ScreenH:  WorldH,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the game-state machine position.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWin
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase
	Score     int  // Current score
	HighScore int  // Best score this session
	Lives     int  // Remaining lives
	Level     int  // Zero-based active level index
	Levels    int  // Number of levels
	Frame     int  // Ticks simulated since the session began
	GameOver  bool // Whether the run has ended (gameover or win)
	Won       bool // Whether the run ended by clearing every level
}

// EventKind names a semantic gameplay event.
type EventKind string

const (
	EventStarted     EventKind = "started"
	EventJump        EventKind = "jump"
	EventLifeLost    EventKind = "life_lost"
	EventShieldBreak EventKind = "shield_break"
	EventCollect     EventKind = "collect"
	EventPowerUp     EventKind = "power_up"
	EventLevelUp     EventKind = "level_up"
	EventGameOver    EventKind = "game_over"
	EventWin         EventKind = "win"
	EventRestart     EventKind = "restart"
)

// Event is something that happened during a step. Detail is kind-specific
// (power-up type, level name).
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any tones and events emitted during the tick.
type StepResult struct {
	State  GameState
	Tones  []Tone
	Events []Event
}

// Has reports whether an event of the given kind was emitted.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
