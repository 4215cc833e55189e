package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Options configure the speaker sink.
type Options struct {
	Mute   bool
	Volume float64 // master volume, 0..1
}

// Speaker plays tones on the system audio device through one shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

var speakerOnce struct {
	sync.Once
	err error
}

// Open returns a Speaker, or Nop when muted. The audio device is initialised
// once per process; a failed initialisation is returned every time.
func Open(opts Options) (Sink, error) {
	if opts.Mute {
		return Nop{}, nil
	}

	speakerOnce.Do(func() {
		speakerOnce.err = speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	})
	if speakerOnce.err != nil {
		return Nop{}, fmt.Errorf("audio: cannot initialise speaker: %w", speakerOnce.err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(opts.Volume, 0, 1),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts a tone; it stops itself after the tone's duration.
func (s *Speaker) Play(t core.Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || t.Duration <= 0 {
		return
	}

	st := Streamer(t, s.volume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}
