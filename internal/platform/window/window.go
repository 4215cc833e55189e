// Package window runs a game in a desktop window with ebiten.
// The window keeps the world's 800x600 logical size and scales to fit.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/escape-arcade/internal/audio"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/platform/session"
	"github.com/vovakirdan/escape-arcade/internal/registry"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// Options are the host services of the window.
type Options struct {
	Store  *storage.Store // session run ledger, may be nil
	Sink   audio.Sink     // nil plays nothing
	Logger *log.Logger    // nil discards
	Scale  float64        // window size relative to the world, default 1
}

func (o Options) withDefaults() Options {
	if o.Sink == nil {
		o.Sink = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game    registry.Game
	opts    Options
	painter *painter
	frame   *core.DrawList
	keys    *keyState
	input   core.InputFrame
	tracker *session.Tracker

	pressed  []ebiten.Key
	released []ebiten.Key
	paused   bool
}

// New resets game with cfg and prepares a host for it.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) (*Host, error) {
	opts = opts.withDefaults()
	p, err := newPainter()
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = core.WorldW, core.WorldH
	game.Reset(cfg)

	if w, ok := game.(interface{ Warnings() []error }); ok {
		for _, err := range w.Warnings() {
			opts.Logger.Warn("using defaults", "game", game.ID(), "err", err)
		}
	}

	return &Host{
		game:    game,
		opts:    opts,
		painter: p,
		frame:   core.NewDrawList(512),
		keys:    newKeyState(),
		input:   core.NewInputFrame(),
		tracker: session.New(game.ID(), opts.Store, opts.Logger),
	}, nil
}

// Update collects this tick's key transitions and advances the game.
func (h *Host) Update() error {
	h.pressed = inpututil.AppendJustPressedKeys(h.pressed[:0])
	for _, k := range h.pressed {
		switch hostKey(k) {
		case hostQuit:
			return ebiten.Termination
		case hostPause:
			h.paused = !h.paused
			if h.paused {
				h.keys.releaseAll(&h.input)
			}
			continue
		}
		if !h.paused {
			h.keys.down(k, &h.input)
		}
	}

	h.released = inpututil.AppendJustReleasedKeys(h.released[:0])
	for _, k := range h.released {
		if hostKey(k) == hostNone {
			h.keys.up(k, &h.input)
		}
	}

	if h.paused {
		return nil
	}

	result := h.game.Step(h.input)
	h.input.Clear()
	audio.PlayAll(h.opts.Sink, result.Tones)
	h.tracker.Observe(result)
	return nil
}

// Draw paints the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	h.game.Draw(h.frame)
	h.painter.paint(screen, h.frame)

	if h.paused {
		h.frame.Reset()
		h.frame.FillRect(0, 0, core.WorldW, core.WorldH, core.ColorBlack).WithAlpha(160)
		h.frame.Text(core.WorldW/2, core.WorldH/2, 40, core.AlignCenter, core.ColorWhite, "PAUSED")
		h.frame.Text(core.WorldW/2, core.WorldH/2+40, 18, core.AlignCenter, core.ColorGray, "press P to resume")
		h.painter.paint(screen, h.frame)
	}
}

// Layout keeps the logical screen at world size.
func (h *Host) Layout(int, int) (int, int) {
	return core.WorldW, core.WorldH
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	h, err := New(game, cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(core.WorldW*h.opts.Scale), int(core.WorldH*h.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

var _ ebiten.Game = (*Host)(nil)
