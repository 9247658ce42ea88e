// Package delay provides a circular delay line with fractional reads.
package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-octaver/dsp/core"
	"github.com/cwbudde/algo-octaver/dsp/interp"
)

// guardSamples is the headroom ReadFractional keeps for the interpolator's
// right-hand neighbours.
const guardSamples = 3

// Option configures a Line at construction time.
type Option func(*Line)

// WithMode selects the interpolation used by ReadFractional.
func WithMode(mode interp.Mode) Option {
	return func(d *Line) {
		d.mode = mode
	}
}

// Line is a circular delay line.
//
// Delays are measured from the write head: Read(1) returns the most
// recently written sample.
type Line struct {
	buffer   []float64
	writePos int
	mode     interp.Mode
}

// New returns a delay line of fixed size.
func New(size int, opts ...Option) (*Line, error) {
	if size <= guardSamples {
		return nil, fmt.Errorf("delay size must be > %d: %d", guardSamples, size)
	}

	d := &Line{buffer: make([]float64, size), mode: interp.Hermite}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d, nil
}

// ForMaxDelay returns a line able to serve fractional delays up to
// maxDelay samples.
func ForMaxDelay(maxDelay float64, opts ...Option) (*Line, error) {
	if maxDelay < 0 || math.IsNaN(maxDelay) || math.IsInf(maxDelay, 0) {
		return nil, fmt.Errorf("delay max must be >= 0 and finite: %f", maxDelay)
	}

	return New(int(math.Ceil(maxDelay))+guardSamples+1, opts...)
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Mode returns the interpolation mode.
func (d *Line) Mode() interp.Mode {
	return d.mode
}

// MaxDelay returns the largest delay ReadFractional serves without clamping.
func (d *Line) MaxDelay() float64 {
	return float64(len(d.buffer) - guardSamples)
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	readPos := (d.writePos - delay) % size
	if readPos < 0 {
		readPos += size
	}
	return d.buffer[readPos]
}

// ReadFractional reads a fractional delay, clamped to [1, MaxDelay].
func (d *Line) ReadFractional(delay float64) float64 {
	if !(delay >= 1) {
		delay = 1
	}
	if maxDelay := d.MaxDelay(); delay > maxDelay {
		delay = maxDelay
	}

	p := int(delay)
	t := delay - float64(p)

	x0 := d.Read(p)
	x1 := d.Read(p + 1)
	if d.mode == interp.Linear {
		return interp.Linear2(t, x0, x1)
	}

	xm1 := d.Read(max(1, p-1))
	x2 := d.Read(p + 2)
	return interp.Hermite4(t, xm1, x0, x1, x2)
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
