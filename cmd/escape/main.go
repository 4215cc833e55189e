// escape runs AI Escape and TV Escape in the terminal or in a window.
//
// Usage:
//
//	escape list              - List available games
//	escape play <game>       - Play a game in the terminal
//	escape window <game>     - Play a game in a desktop window
//	escape menu              - Pick games interactively
//	escape sim <game>        - Run a game headless and print its final state
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/escape-arcade/internal/games/escape"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

// logFile is the open --log-file, closed when main returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape - single-screen platformers for terminal and desktop",
	Long: `Escape bundles two single-screen platformers that share one physics
and collision core:

  aiescape  - AI Escape: guide a rogue AI past bugs, robots and firewalls
  tvescape  - TV Escape: jump out of the television, channel by channel

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  sim      - Headless run printing the final state as YAML

Examples:
  escape list
  escape play aiescape
  escape window tvescape --difficulty easy
  escape menu
  escape sim aiescape --ticks 600 --press "1:right,120:up"`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Terminal hosts own the screen, so
// without --log-file they log nowhere; fallback is used otherwise.
func newLogger(fallback io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}

	w := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			logFile = f
			w = f
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "escape",
		Level:           level,
	})
}
