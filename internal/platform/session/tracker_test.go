package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

func result(frame int, st core.GameState, kinds ...core.EventKind) core.StepResult {
	st.Frame = frame
	r := core.StepResult{State: st}
	for _, k := range kinds {
		r.Events = append(r.Events, core.Event{Kind: k})
	}
	return r
}

func TestTrackerRecordsOncePerRun(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	tr := New("aiescape", store, nil)
	playing := core.GameState{Phase: core.PhasePlaying, Lives: 3, Levels: 3}
	over := core.GameState{Phase: core.PhaseGameOver, Score: 25, Level: 0, Levels: 3, GameOver: true}

	steps := []struct {
		res       core.StepResult
		wantSaved bool
	}{
		{result(10, playing, core.EventStarted), false},
		{result(11, playing), false},
		{result(130, over, core.EventLifeLost, core.EventGameOver), true},
		{result(131, over), false},
	}
	for i, s := range steps {
		run, saved := tr.Observe(s.res)
		if saved != s.wantSaved {
			t.Fatalf("step %d: saved = %v, expected %v", i, saved, s.wantSaved)
		}
		if saved && (run.Frames != 120 || run.Level != 1 || run.ID == 0) {
			t.Errorf("run = %+v, expected 120 frames on level 1 with an id", run)
		}
	}

	runs, err := store.TopRuns("aiescape", 0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 25 {
		t.Errorf("runs = %+v, expected one run scoring 25", runs)
	}
}

func TestTrackerRestartStartsNewRun(t *testing.T) {
	tr := New("tvescape", nil, nil)
	won := core.GameState{Phase: core.PhaseGameOver, Score: 30, Level: 2, Levels: 3, GameOver: true, Won: true}
	playing := core.GameState{Phase: core.PhasePlaying, Lives: 3, Levels: 3}

	if _, saved := tr.Observe(result(5, won)); !saved {
		t.Fatal("first finish should be recorded")
	}
	tr.Observe(result(6, playing, core.EventRestart))
	run, saved := tr.Observe(result(16, won))
	if !saved {
		t.Fatal("finish after restart should be recorded")
	}
	if !run.Cleared || run.Frames != 10 || run.Outcome() != "cleared" {
		t.Errorf("run = %+v, expected a cleared 10-frame run", run)
	}
}

func TestTrackerLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	tr := New("aiescape", nil, logger)

	st := core.GameState{Phase: core.PhasePlaying}
	r := result(3, st)
	r.Events = []core.Event{{Kind: core.EventPowerUp, Detail: "shield"}}
	tr.Observe(r)

	out := buf.String()
	for _, want := range []string{"power_up", "shield", "aiescape"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
