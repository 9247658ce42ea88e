package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-octaver/dsp/core"
)

// ToneMeter measures amplitude and phase of one known frequency by
// correlating a block against precomputed quadrature references.
//
// Results are exact for blocks holding a whole number of cycles; otherwise
// neighbouring components leak in at roughly 1/(pi*cycles) of their level.
type ToneMeter struct {
	frequency float64
	cos       []float64
	sin       []float64
}

// NewToneMeter prepares references of size samples for frequency, which must
// lie in (0, sampleRate/2).
func NewToneMeter(frequency, sampleRate float64, size int) (*ToneMeter, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0 and finite: %f", sampleRate)
	}
	if !core.IsFinitePositive(frequency) || frequency >= sampleRate/2 {
		return nil, fmt.Errorf("spectrum: tone frequency must be in (0, %f): %f", sampleRate/2, frequency)
	}
	if size < 1 {
		return nil, fmt.Errorf("spectrum: tone meter size must be >= 1: %d", size)
	}

	m := &ToneMeter{
		frequency: frequency,
		cos:       make([]float64, size),
		sin:       make([]float64, size),
	}
	w := 2 * math.Pi * frequency / sampleRate
	for i := range size {
		m.sin[i], m.cos[i] = math.Sincos(w * float64(i))
	}

	return m, nil
}

// Frequency returns the measured frequency in Hz.
func (m *ToneMeter) Frequency() float64 { return m.frequency }

// Size returns the longest block the meter correlates.
func (m *ToneMeter) Size() int { return len(m.cos) }

// Measure returns amplitude A and phase phi of the component
// A*cos(w*n + phi) in the first Size samples of block.
func (m *ToneMeter) Measure(block []float64) (amplitude, phase float64) {
	n := min(len(block), len(m.cos))
	if n == 0 {
		return 0, 0
	}

	re := vecmath.DotProduct(block[:n], m.cos[:n])
	im := -vecmath.DotProduct(block[:n], m.sin[:n])

	return 2 * math.Hypot(re, im) / float64(n), math.Atan2(im, re)
}

// ToneAmplitude measures the amplitude of frequency over all of input.
func ToneAmplitude(input []float64, frequency, sampleRate float64) (float64, error) {
	if len(input) == 0 {
		return 0, errEmptySignal
	}

	m, err := NewToneMeter(frequency, sampleRate, len(input))
	if err != nil {
		return 0, err
	}

	amplitude, _ := m.Measure(input)
	return amplitude, nil
}
