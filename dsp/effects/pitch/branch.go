package pitch

import (
	"github.com/cwbudde/algo-octaver/dsp/delay"
	"github.com/cwbudde/algo-vecmath"
)

// branch is one ramp-modulated, windowed delay path.
//
// ramps, sweeps and window are shared read-only with the sibling branch.
type branch struct {
	ramps  [2][]float64
	sweeps [2]float64
	window []float64

	line  *delay.Line
	phase int
	dir   Direction
}

func newBranch(ramps [2][]float64, sweeps [2]float64, window []float64,
	line *delay.Line, phase int, dir Direction,
) *branch {
	return &branch{
		ramps:  ramps,
		sweeps: sweeps,
		window: window,
		line:   line,
		phase:  phase,
		dir:    dir,
	}
}

// tick advances the branch by one sample and returns the delayed sample and
// its window gain separately.
//
// dir is latched only at phase 0, where the window is silent, so a direction
// flip never swaps ramps in the middle of an audible cycle.
func (b *branch) tick(x, depth float64, dir Direction) (delayed, gain float64) {
	if b.phase == 0 {
		b.dir = dir
	}

	delaySamples := b.ramps[b.dir][b.phase] * b.sweeps[b.dir] * depth

	b.line.Write(x)
	delayed = b.line.ReadFractional(1 + delaySamples)
	gain = b.window[b.phase]

	b.phase++
	if b.phase == len(b.window) {
		b.phase = 0
	}

	return delayed, gain
}

func (b *branch) process(x, depth float64, dir Direction) float64 {
	delayed, gain := b.tick(x, depth, dir)
	return delayed * gain
}

// processBlock writes len(src) windowed samples to dst. gains is scratch of
// the same length; depth carries the per-sample smoothed depth.
func (b *branch) processBlock(dst, gains, src, depth []float64, dir Direction) {
	for i, x := range src {
		dst[i], gains[i] = b.tick(x, depth[i], dir)
	}
	vecmath.MulBlockInPlace(dst, gains)
}

func (b *branch) reset(phase int, dir Direction) {
	b.line.Reset()
	b.phase = phase
	b.dir = dir
}
