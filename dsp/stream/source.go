package stream

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-octaver/dsp/core"
)

// Source produces mono samples on demand.
type Source interface {
	Next() float64
}

// Waveform selects the oscillator shape.
type Waveform int

const (
	// Sine is a pure tone.
	Sine Waveform = iota
	// Saw is a naive rising sawtooth, rich in harmonics.
	Saw
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

// ParseWaveform maps a name to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine":
		return Sine, nil
	case "saw", "sawtooth":
		return Saw, nil
	default:
		return Sine, fmt.Errorf("unknown waveform: %q", name)
	}
}

// Oscillator is a fixed-frequency test tone Source.
type Oscillator struct {
	wave      Waveform
	amplitude float64
	step      float64
	phase     float64
}

// NewOscillator creates an oscillator. frequency must lie in
// (0, sampleRate/2).
func NewOscillator(wave Waveform, frequency, amplitude, sampleRate float64) (*Oscillator, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("oscillator sample rate must be > 0 and finite: %f", sampleRate)
	}
	if !core.IsFinitePositive(frequency) || frequency >= sampleRate/2 {
		return nil, fmt.Errorf("oscillator frequency must be in (0, %f): %f", sampleRate/2, frequency)
	}
	if !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("oscillator amplitude must be finite: %f", amplitude)
	}
	if wave != Sine && wave != Saw {
		return nil, fmt.Errorf("oscillator waveform not supported: %s", wave)
	}

	return &Oscillator{
		wave:      wave,
		amplitude: amplitude,
		step:      frequency / sampleRate,
	}, nil
}

// Next returns the next sample.
func (o *Oscillator) Next() float64 {
	var v float64
	if o.wave == Saw {
		v = 2*o.phase - 1
	} else {
		v = math.Sin(2 * math.Pi * o.phase)
	}

	o.phase += o.step
	if o.phase >= 1 {
		o.phase--
	}

	return o.amplitude * v
}
