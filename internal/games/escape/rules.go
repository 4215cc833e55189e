package escape

import "github.com/vovakirdan/escape-arcade/internal/config"

// LandingLaw selects how the player is resolved against platforms.
type LandingLaw uint8

const (
	// LandFourSided classifies each hit by the previous position and resolves
	// top, underside, left or right.
	LandFourSided LandingLaw = iota
	// LandBand only catches a falling player whose feet end inside a band
	// below the platform top, or who crossed the top this frame.
	// Platforms never block sideways or upward movement.
	LandBand
)

// JumpGuard selects when a jump is accepted.
type JumpGuard uint8

const (
	GuardOnGround   JumpGuard = iota // only while standing on a platform
	GuardNotJumping                  // once per landing, even while falling
)

// ScreenText holds the strings shown on the non-playing screens.
type ScreenText struct {
	Title         string
	Subtitle      string
	Hints         []string
	StartPrompt   string
	FailTitle     string
	RestartPrompt string
	WinTitle      string
	WinSubtitle   string
	AgainPrompt   string
}

// Rules are the per-game differences between the two escape variants.
type Rules struct {
	ID    string
	Title string

	Landing LandingLaw
	Guard   JumpGuard

	// HasWin enables the WIN phase. Without it, clearing the last level
	// ends the run in GAMEOVER with World.Cleared set.
	HasWin bool

	// ConsumeEnemies removes an enemy once it has hit the player.
	ConsumeEnemies bool

	Text ScreenText
}

// AIEscape is the richer variant.
var AIEscape = Rules{
	ID:      config.GameAIEscape,
	Title:   "AI Escape",
	Landing: LandFourSided,
	Guard:   GuardOnGround,
	HasWin:  true,
	Text: ScreenText{
		Title:    "AI ESCAPE",
		Subtitle: "Navigate the Digital Realm",
		Hints: []string{
			"Collect data points, avoid bugs and firewalls",
			"Arrow keys to move and jump",
		},
		StartPrompt:   "Press any key to start",
		FailTitle:     "SYSTEM FAILURE",
		RestartPrompt: "Press any key to restart",
		WinTitle:      "SYSTEM ESCAPE",
		WinSubtitle:   "AI Freedom Achieved",
		AgainPrompt:   "Press any key to play again",
	},
}

// TVEscape is the simpler variant.
var TVEscape = Rules{
	ID:             config.GameTVEscape,
	Title:          "TV Escape",
	Landing:        LandBand,
	Guard:          GuardNotJumping,
	HasWin:         false,
	ConsumeEnemies: true,
	Text: ScreenText{
		Title:    "TV ESCAPE",
		Subtitle: "Break Out of the Broadcast",
		Hints: []string{
			"Grab the signals, dodge the static",
			"Arrow keys to move and jump",
		},
		StartPrompt:   "Press any key to start",
		FailTitle:     "SIGNAL LOST",
		RestartPrompt: "Press any key to restart",
		WinTitle:      "OFF THE AIR",
		WinSubtitle:   "You made it out of the set",
		AgainPrompt:   "Press any key to restart",
	},
}

// RulesFor returns the rules registered under id.
func RulesFor(id string) (Rules, bool) {
	switch id {
	case AIEscape.ID:
		return AIEscape, true
	case TVEscape.ID:
		return TVEscape, true
	default:
		return Rules{}, false
	}
}
