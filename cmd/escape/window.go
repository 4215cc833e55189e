package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the game in an 800x600 window.

Controls:
  Left/Right, A/D  - Move
  Up/W/Space       - Jump
  Any key          - Start, or restart after the run ends
  P                - Pause
  Esc/Q            - Quit

Examples:
  escape window aiescape
  escape window tvescape --scale 1.5`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to 800x600")
}

func runWindow(cmd *cobra.Command, args []string) {
	game := createGame(args[0])
	logger := newLogger(os.Stderr)

	sink := openSink(logger)
	defer sink.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	opts := window.Options{Store: store, Sink: sink, Logger: logger, Scale: flagScale}
	if err := window.Run(game, cfg, opts); err != nil {
		logger.Error("window closed", "err", err)
		os.Exit(1)
	}

	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil && best > 0 {
			fmt.Printf("Best this session: %d\n", best)
		}
	}
}
