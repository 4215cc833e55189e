package escape

import (
	"time"

	"github.com/vovakirdan/escape-arcade/internal/core"
)

// Trigger tones.
var (
	toneJump        = core.Tone{Wave: core.WaveSquare, Freq: 440, Amp: 0.1, Duration: 100 * time.Millisecond}
	toneHit         = core.Tone{Wave: core.WaveSawtooth, Freq: 220, Amp: 0.1, Duration: 100 * time.Millisecond}
	toneCollect     = core.Tone{Wave: core.WaveSine, Freq: 660, Amp: 0.1, Duration: 100 * time.Millisecond}
	toneLevelUp     = core.Tone{Wave: core.WaveTriangle, Freq: 880, Amp: 0.2, Duration: 300 * time.Millisecond}
	toneShieldBreak = core.Tone{Wave: core.WaveSquare, Freq: 220, Amp: 0.1, Duration: 100 * time.Millisecond}
)

// melodyNote is how long each ambient note sounds.
const melodyNote = 200 * time.Millisecond

// powerUpTone returns the pickup sound for a power-up kind.
func powerUpTone(kind PowerUpKind) core.Tone {
	switch kind {
	case PowerSpeed:
		return core.Tone{Wave: core.WaveSawtooth, Freq: 880, Amp: 0.1, Duration: 200 * time.Millisecond}
	case PowerShield:
		return core.Tone{Wave: core.WaveSine, Freq: 440, Amp: 0.1, Duration: 300 * time.Millisecond}
	default:
		return core.Tone{Wave: core.WaveTriangle, Freq: 660, Amp: 0.1, Duration: 200 * time.Millisecond}
	}
}

// melodyTone returns the ambient note due on this frame, if any.
// Notes step through the active level's arpeggio every MelodyEvery frames.
func (w *World) melodyTone() (core.Tone, bool) {
	every := w.cfg.Audio.MelodyEvery
	if every <= 0 || w.Frame%every != 0 {
		return core.Tone{}, false
	}
	notes := w.Level().Melody
	if len(notes) == 0 {
		return core.Tone{}, false
	}
	note := notes[(w.Frame/every)%len(notes)]
	return core.Tone{
		Wave:     core.WaveSine,
		Freq:     core.MidiToFreq(note),
		Amp:      w.cfg.Audio.MelodyAmp,
		Duration: melodyNote,
	}, true
}

func (w *World) emitTone(t core.Tone) {
	w.tones = append(w.tones, t)
}
