package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/games/escape"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

var (
	flagTicks int
	flagPress string
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless and print its final state",
	Long: `Run the simulation without a screen for a fixed number of ticks and
print the final state as YAML. With --seed the run is reproducible.

The press script is a comma-separated list of tick:key entries. A key
name presses the key on that tick; a leading minus releases it.
Key names: left, right, up (or jump, space), any other name is "any key".

Examples:
  escape sim aiescape --ticks 300 --press "1:enter,2:right"
  escape sim tvescape --seed 7 --ticks 900 --press "1:x,2:right,40:up,41:-up"`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagPress, "press", "", `Key script, e.g. "1:enter,2:right,60:-right"`)
}

// scriptEvent is one scripted key transition applied before tick Tick.
type scriptEvent struct {
	Tick  int
	Event core.KeyEvent
}

// parseScript reads a press script. Entries may come in any order; they are
// applied by tick and then in the order written.
func parseScript(s string) ([]scriptEvent, error) {
	var out []scriptEvent
	for entry := range strings.SplitSeq(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tickStr, name, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("script: %q is not tick:key", entry)
		}
		tick, err := strconv.Atoi(strings.TrimSpace(tickStr))
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("script: bad tick in %q", entry)
		}

		kind := core.KeyDown
		name = strings.TrimSpace(name)
		if rest, found := strings.CutPrefix(name, "-"); found {
			kind = core.KeyUpEvent
			name = rest
		}
		if name == "" {
			return nil, fmt.Errorf("script: missing key in %q", entry)
		}
		out = append(out, scriptEvent{Tick: tick, Event: core.KeyEvent{Kind: kind, Key: core.ParseKey(name)}})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Tick < out[j].Tick })
	return out, nil
}

// simReport is the YAML printed by sim.
type simReport struct {
	escape.Snapshot `yaml:",inline"`
	Tones           int            `yaml:"tones"`
	Events          map[string]int `yaml:"events,omitempty"`
}

// simulate resets game and runs it for ticks steps.
func simulate(game registry.Game, cfg core.RuntimeConfig, ticks int, script []scriptEvent) simReport {
	game.Reset(cfg)

	report := simReport{Events: make(map[string]int)}
	in := core.NewInputFrame()
	next := 0
	for tick := 1; tick <= ticks; tick++ {
		in.Clear()
		for next < len(script) && script[next].Tick == tick {
			in.Events = append(in.Events, script[next].Event)
			next++
		}
		result := game.Step(in)
		report.Tones += len(result.Tones)
		for _, ev := range result.Events {
			report.Events[string(ev.Kind)]++
		}
	}

	if s, ok := game.(interface{ Snapshot() escape.Snapshot }); ok {
		report.Snapshot = s.Snapshot()
	} else {
		st := game.State()
		report.Snapshot = escape.Snapshot{
			Game:      game.ID(),
			Frame:     st.Frame,
			Phase:     st.Phase.String(),
			Level:     st.Level,
			Score:     st.Score,
			HighScore: st.HighScore,
			Lives:     st.Lives,
			Cleared:   st.Won,
		}
	}
	return report
}

func runSim(cmd *cobra.Command, args []string) {
	game := createGame(args[0])
	logger := newLogger(os.Stderr)

	script, err := parseScript(flagPress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = 1 // sim runs are reproducible by default
	}

	report := simulate(game, cfg, flagTicks, script)
	if w, ok := game.(interface{ Warnings() []error }); ok {
		for _, err := range w.Warnings() {
			logger.Warn("using defaults", "game", game.ID(), "err", err)
		}
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
