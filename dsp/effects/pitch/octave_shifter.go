package pitch

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-octaver/dsp/core"
	"github.com/cwbudde/algo-octaver/dsp/delay"
	"github.com/cwbudde/algo-octaver/dsp/interp"
)

// OctaveShifter shifts a mono signal up or down by a fixed ratio using two
// crossfaded, ramp-modulated delay lines.
//
// Pitch offset:
//   - +1 = one octave up (ratio 2)
//   - -1 = one octave down (ratio 0.5)
//   - magnitudes between scale the modulation depth: ratio 1+d up, 1-d/2 down
//
// Process, ProcessBlock, ProcessInPlace, Reset and Depth belong to the audio
// goroutine. SetPitchOffset and PitchOffset may be called from any goroutine;
// they never block the audio path.
type OctaveShifter struct {
	period        Period
	maxDepth      float64
	smoothingTime float64
	mode          interp.Mode
	blockSize     int

	offset atomic.Uint64
	depth  smoother
	a, b   *branch

	depthBuf []float64
	bufA     []float64
	bufB     []float64
	gainBuf  []float64
}

// NewOctaveShifter constructs a shifter set to one octave up.
func NewOctaveShifter(sampleRate float64, opts ...Option) (*OctaveShifter, error) {
	if !core.IsFinitePositive(sampleRate) {
		return nil, configError("sample rate", sampleRate, "must be > 0 and finite")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	p, err := NewPeriod(sampleRate, cfg.activeTime, cfg.fadeTime)
	if err != nil {
		return nil, err
	}

	down, err := NewRamp(p, Down)
	if err != nil {
		return nil, err
	}
	up, err := NewRamp(p, Up)
	if err != nil {
		return nil, err
	}
	window, err := NewFadeWindow(p)
	if err != nil {
		return nil, err
	}

	ramps := [2][]float64{Down: down, Up: up}
	sweeps := [2]float64{Down: sweepSamples(p, Down), Up: sweepSamples(p, Up)}
	dir := DirectionOf(defaultPitchOffset)

	// The branch reads one sample behind the write head at zero delay.
	maxDelay := cfg.maxDelaySamples(p) + 1
	lineA, err := delay.ForMaxDelay(maxDelay, delay.WithMode(cfg.mode))
	if err != nil {
		return nil, fmt.Errorf("octave shifter delay line: %w", err)
	}
	lineB, err := delay.ForMaxDelay(maxDelay, delay.WithMode(cfg.mode))
	if err != nil {
		return nil, fmt.Errorf("octave shifter delay line: %w", err)
	}

	s := &OctaveShifter{
		period:        p,
		maxDepth:      cfg.maxDepth,
		smoothingTime: cfg.smoothingTime,
		mode:          cfg.mode,
		blockSize:     cfg.blockSize,
		a:             newBranch(ramps, sweeps, window, lineA, 0, dir),
		b:             newBranch(ramps, sweeps, window, lineB, p.Half(), dir),
		depthBuf:      make([]float64, cfg.blockSize),
		bufA:          make([]float64, cfg.blockSize),
		bufB:          make([]float64, cfg.blockSize),
		gainBuf:       make([]float64, cfg.blockSize),
	}
	s.offset.Store(math.Float64bits(defaultPitchOffset))
	_, target := s.control(defaultPitchOffset)
	s.depth = newSmoother(cfg.smoothingTime, sampleRate, target)

	return s, nil
}

// SampleRate returns the sample rate in Hz.
func (s *OctaveShifter) SampleRate() float64 { return s.period.SampleRate }

// ActiveTime returns the audible part of each cycle in seconds.
func (s *OctaveShifter) ActiveTime() float64 { return s.period.ActiveTime }

// FadeTime returns the crossfade edge length in seconds.
func (s *OctaveShifter) FadeTime() float64 { return s.period.FadeTime }

// SmoothingTime returns the depth smoothing time constant in seconds.
func (s *OctaveShifter) SmoothingTime() float64 { return s.smoothingTime }

// MaxDepth returns the depth clamp.
func (s *OctaveShifter) MaxDepth() float64 { return s.maxDepth }

// Interpolation returns the delay line interpolation mode.
func (s *OctaveShifter) Interpolation() interp.Mode { return s.mode }

// BlockSize returns the ProcessBlock chunk size.
func (s *OctaveShifter) BlockSize() int { return s.blockSize }

// Period returns the modulation cycle.
func (s *OctaveShifter) Period() Period { return s.period }

// SetPitchOffset sets direction and depth. Positive values shift up, zero and
// negative values shift down, and the magnitude is the modulation depth,
// clamped to [0, MaxDepth] when it is applied.
//
// The depth glides to the new value with the smoothing time constant. A
// direction change is picked up by each branch at the start of its next
// cycle.
func (s *OctaveShifter) SetPitchOffset(offset float64) {
	s.offset.Store(math.Float64bits(offset))
}

// PitchOffset returns the value last passed to SetPitchOffset.
func (s *OctaveShifter) PitchOffset() float64 {
	return math.Float64frombits(s.offset.Load())
}

// Direction returns the requested shift direction.
func (s *OctaveShifter) Direction() Direction {
	return DirectionOf(s.PitchOffset())
}

// PitchRatio returns the nominal frequency ratio of the requested offset.
func (s *OctaveShifter) PitchRatio() float64 {
	dir, depth := s.control(s.PitchOffset())
	return ratioFor(dir, depth)
}

// Depth returns the smoothed depth the branches used on the last sample.
func (s *OctaveShifter) Depth() float64 { return s.depth.current }

// Reset clears both delay lines, restores the half-period branch offset and
// lands the depth on the requested value.
func (s *OctaveShifter) Reset() {
	dir, target := s.control(s.PitchOffset())
	s.depth.setTarget(target)
	s.depth.snap()
	s.a.reset(0, dir)
	s.b.reset(s.period.Half(), dir)
}

// Process shifts one sample.
func (s *OctaveShifter) Process(sample float64) float64 {
	dir, target := s.control(s.PitchOffset())
	s.depth.setTarget(target)
	depth := s.depth.next()

	return mix(s.a.process(sample, depth, dir), s.b.process(sample, depth, dir))
}

// ProcessBlock shifts src into dst. dst may alias src. The pitch offset is
// read once per chunk of BlockSize samples; otherwise the output equals
// calling Process on every sample.
func (s *OctaveShifter) ProcessBlock(dst, src []float64) error {
	if len(dst) < len(src) {
		return fmt.Errorf("octave shifter destination too short: %d < %d", len(dst), len(src))
	}

	for start := 0; start < len(src); start += s.blockSize {
		end := min(start+s.blockSize, len(src))
		s.processChunk(dst[start:end], src[start:end])
	}

	return nil
}

// ProcessInPlace shifts buf in place.
func (s *OctaveShifter) ProcessInPlace(buf []float64) {
	_ = s.ProcessBlock(buf, buf)
}

func (s *OctaveShifter) processChunk(dst, src []float64) {
	n := len(src)
	dir, target := s.control(s.PitchOffset())
	s.depth.setTarget(target)

	depth := s.depthBuf[:n]
	for i := range depth {
		depth[i] = s.depth.next()
	}

	a := s.bufA[:n]
	b := s.bufB[:n]
	gains := s.gainBuf[:n]
	s.a.processBlock(a, gains, src, depth, dir)
	s.b.processBlock(b, gains, src, depth, dir)
	mixBlock(dst, a, b)
}

// control turns a raw offset into a direction and a usable depth.
func (s *OctaveShifter) control(offset float64) (Direction, float64) {
	depth := math.Abs(offset)
	switch {
	case math.IsNaN(depth):
		depth = 0
	case depth > s.maxDepth:
		depth = s.maxDepth
	}
	return DirectionOf(offset), depth
}
