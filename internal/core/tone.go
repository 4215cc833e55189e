package core

import (
	"math"
	"time"
)

// Waveform is the oscillator shape of a tone.
type Waveform uint8

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Tone is a fire-and-forget audio request.
// The host starts it immediately and stops it after Duration.
type Tone struct {
	Wave     Waveform
	Freq     float64 // Hz
	Amp      float64 // 0..1
	Duration time.Duration
}

// MidiToFreq converts a MIDI note number to Hz (A4 = 69 = 440 Hz).
func MidiToFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}
