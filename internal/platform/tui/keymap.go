package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Terminals report presses and auto-repeats but never releases.
// A held key is released once repeats stop arriving.
const (
	firstHold  = 550 * time.Millisecond // covers the terminal's initial repeat delay
	repeatHold = 150 * time.Millisecond
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Pause  key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Scores, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HostAction is a key handled by the terminal host itself.
type HostAction int

const (
	HostNone HostAction = iota
	HostPause
	HostScores
	HostQuit
)

// Map translates a key message to either a host action or a game key.
// Keys without a binding become core.KeyOther so they still count as "any key".
func (k KeyMap) Map(msg tea.KeyMsg) (HostAction, core.Key) {
	switch {
	case key.Matches(msg, k.Quit):
		return HostQuit, core.KeyNone
	case key.Matches(msg, k.Pause):
		return HostPause, core.KeyNone
	case key.Matches(msg, k.Scores):
		return HostScores, core.KeyNone
	case key.Matches(msg, k.Left):
		return HostNone, core.KeyLeft
	case key.Matches(msg, k.Right):
		return HostNone, core.KeyRight
	case key.Matches(msg, k.Jump):
		return HostNone, core.KeyUp
	}
	return HostNone, core.KeyOther
}

// heldKeys synthesises key-down and key-up transitions from a stream of
// presses and auto-repeats.
type heldKeys struct {
	until map[core.Key]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{until: make(map[core.Key]time.Time)}
}

// press records a press or repeat of k at now and appends the resulting transitions.
// Pressing one direction releases the other.
func (h *heldKeys) press(k core.Key, now time.Time, f *core.InputFrame) {
	if k == core.KeyOther {
		f.Press(k)
		f.Release(k)
		return
	}

	if opp, ok := opposite(k); ok {
		if _, held := h.until[opp]; held {
			delete(h.until, opp)
			f.Release(opp)
		}
	}

	if _, held := h.until[k]; held {
		h.until[k] = now.Add(repeatHold)
		return
	}
	h.until[k] = now.Add(firstHold)
	f.Press(k)
}

// expire releases every key whose repeats stopped before now.
func (h *heldKeys) expire(now time.Time, f *core.InputFrame) {
	// Fixed order keeps the event sequence deterministic.
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp} {
		if t, held := h.until[k]; held && now.After(t) {
			delete(h.until, k)
			f.Release(k)
		}
	}
}

// releaseAll drops every held key, used when the game is paused.
func (h *heldKeys) releaseAll(f *core.InputFrame) {
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight, core.KeyUp} {
		if _, held := h.until[k]; held {
			delete(h.until, k)
			f.Release(k)
		}
	}
}

func (h *heldKeys) isHeld(k core.Key) bool {
	_, ok := h.until[k]
	return ok
}

func opposite(k core.Key) (core.Key, bool) {
	switch k {
	case core.KeyLeft:
		return core.KeyRight, true
	case core.KeyRight:
		return core.KeyLeft, true
	}
	return core.KeyNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
