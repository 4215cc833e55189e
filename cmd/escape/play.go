package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/escape-arcade/internal/audio"
	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
	"github.com/vovakirdan/escape-arcade/internal/platform/tui"
	"github.com/vovakirdan/escape-arcade/internal/registry"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up/W/Space       - Jump
  Any key          - Start, or restart after the run ends
  P/Esc            - Pause
  Tab              - Session scores
  Q/Ctrl+C         - Quit

Terminals report no key releases, so a key counts as held while it
auto-repeats and is let go shortly after the repeats stop.

Difficulty options:
  easy   - 5 lives, slower firewalls
  normal - Default tuning
  hard   - 2 lives, enemies speed up on later levels
  fixed  - No per-level scaling

Examples:
  escape play aiescape
  escape play tvescape --difficulty easy
  escape play aiescape --config ./my-escape.yaml
  escape play aiescape --levels ./my-levels.yaml --mute`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd, menuCmd} {
		addGameFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{playCmd, windowCmd, menuCmd} {
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Master volume from 0 to 1")
	}
}

// addGameFlags registers the flags that tune a game before it is created.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Path to custom level YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// createGame applies the game flags and creates gameID, exiting on an unknown ID.
func createGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'escape list' to see available games.")
		os.Exit(1)
	}

	// Set config path and difficulty for games before creation
	escape.SetConfigPath(flagConfig)
	escape.SetLevelsPath(flagLevels)
	escape.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	return game
}

// terminalConfig returns a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openSink opens the speaker, falling back to silence.
func openSink(logger *log.Logger) audio.Sink {
	sink, err := audio.Open(audio.Options{Mute: flagMute, Volume: flagVolume})
	if err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	return sink
}

// openStore opens the session ledger. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run ledger disabled", "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	game := createGame(args[0])
	logger := newLogger(io.Discard)

	sink := openSink(logger)
	defer sink.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Sink: sink, Logger: logger}
	if err := tui.Run(game, terminalConfig(), opts); err != nil {
		logger.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
