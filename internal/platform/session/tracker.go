// Package session follows a game's step results on behalf of a host:
// it logs gameplay events and records each finished run in the ledger.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/storage"
)

// Tracker watches one game session. The zero value is not usable; call New.
type Tracker struct {
	gameID string
	store  *storage.Store
	logger *log.Logger

	runStart int  // frame the current run began on
	saved    bool // the finished run is already in the ledger
}

// New creates a tracker for gameID. A nil store records nothing and a nil
// logger discards.
func New(gameID string, store *storage.Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{
		gameID: gameID,
		store:  store,
		logger: logger,
	}
}

// Observe processes one step result. It returns the run it recorded, if the
// step finished one.
func (t *Tracker) Observe(result core.StepResult) (storage.Run, bool) {
	st := result.State
	for _, ev := range result.Events {
		t.logger.Debug("event", "game", t.gameID, "kind", ev.Kind, "detail", ev.Detail, "frame", st.Frame)
		switch ev.Kind {
		case core.EventStarted, core.EventRestart:
			t.runStart = st.Frame
			t.saved = false
		}
	}

	if !st.GameOver || t.saved {
		return storage.Run{}, false
	}
	t.saved = true

	run := storage.Run{
		GameID:  t.gameID,
		Score:   st.Score,
		Level:   st.Level + 1,
		Cleared: st.Won,
		Frames:  st.Frame - t.runStart,
	}
	t.logger.Info("run finished", "game", run.GameID, "score", run.Score, "outcome", run.Outcome())
	if t.store == nil {
		return run, true
	}
	id, err := t.store.SaveRun(run)
	if err != nil {
		t.logger.Error("cannot record run", "err", err)
		return run, true
	}
	run.ID = id
	return run, true
}
