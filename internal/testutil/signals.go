// Package testutil holds signal generators and assertions shared by tests.
package testutil

import (
	"math"
	"math/rand/v2"
)

// Sine returns n samples of amplitude*sin(2*pi*freqHz*i/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	w := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}
	return out
}

// Noise returns n uniform samples in [-amplitude, amplitude). The same seed
// always yields the same sequence.
func Noise(seed uint64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// Sawtooth generates a naive (non band-limited) rising sawtooth.
func Sawtooth(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := freqHz / sampleRate
	phase := 0.0
	for i := range out {
		out[i] = amplitude * (2*phase - 1)
		phase += step
		if phase >= 1 {
			phase--
		}
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
