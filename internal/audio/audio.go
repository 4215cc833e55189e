// Package audio plays the tones emitted by the game core.
package audio

import (
	"sync"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Sink consumes tone events. Play must not block the game loop.
type Sink interface {
	Play(t core.Tone)
	Close() error
}

// Nop is a silent sink.
type Nop struct{}

func (Nop) Play(core.Tone) {}

func (Nop) Close() error { return nil }

// Recorder keeps every tone it is given. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	tones []core.Tone
}

func (r *Recorder) Play(t core.Tone) {
	r.mu.Lock()
	r.tones = append(r.tones, t)
	r.mu.Unlock()
}

func (r *Recorder) Close() error { return nil }

// Tones returns a copy of what was played so far.
func (r *Recorder) Tones() []core.Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Tone(nil), r.tones...)
}

// PlayAll forwards a step's tones to the sink in order.
func PlayAll(s Sink, tones []core.Tone) {
	for _, t := range tones {
		s.Play(t)
	}
}
