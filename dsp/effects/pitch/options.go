package pitch

import (
	"math"

	"github.com/cwbudde/algo-octaver/dsp/core"
	"github.com/cwbudde/algo-octaver/dsp/interp"
)

const (
	// DefaultActiveTime is the audible part of one modulation cycle in seconds.
	DefaultActiveTime = 0.100
	// DefaultFadeTime is the length of each crossfade edge in seconds.
	DefaultFadeTime = 0.025
	// DefaultSmoothingTime is the time constant of the depth smoother in seconds.
	DefaultSmoothingTime = 0.010
	// DefaultMaxDepth bounds the modulation depth the delay lines are sized for.
	DefaultMaxDepth = 2.0

	defaultPitchOffset = 1.0
	defaultBlockSize   = 256
	maxBlockSize       = 1 << 16
)

// Option mutates octave shifter construction parameters.
type Option func(*config) error

type config struct {
	activeTime    float64
	fadeTime      float64
	smoothingTime float64
	maxDepth      float64
	mode          interp.Mode
	blockSize     int
}

func defaultConfig() config {
	return config{
		activeTime:    DefaultActiveTime,
		fadeTime:      DefaultFadeTime,
		smoothingTime: DefaultSmoothingTime,
		maxDepth:      DefaultMaxDepth,
		mode:          interp.Hermite,
		blockSize:     defaultBlockSize,
	}
}

// WithActiveTime sets the audible part of each cycle in seconds.
func WithActiveTime(seconds float64) Option {
	return func(cfg *config) error {
		if !core.IsFinitePositive(seconds) {
			return configError("active time", seconds, "must be > 0 and finite")
		}
		cfg.activeTime = seconds
		return nil
	}
}

// WithFadeTime sets the crossfade edge length in seconds.
func WithFadeTime(seconds float64) Option {
	return func(cfg *config) error {
		if !core.IsFinitePositive(seconds) {
			return configError("fade time", seconds, "must be > 0 and finite")
		}
		cfg.fadeTime = seconds
		return nil
	}
}

// WithSmoothingTime sets the depth smoothing time constant in seconds.
// Zero disables smoothing.
func WithSmoothingTime(seconds float64) Option {
	return func(cfg *config) error {
		if seconds < 0 || !core.IsFinite(seconds) {
			return configError("smoothing time", seconds, "must be >= 0 and finite")
		}
		cfg.smoothingTime = seconds
		return nil
	}
}

// WithMaxDepth sets the largest modulation depth the shifter accepts.
// Larger offsets are clamped to it.
func WithMaxDepth(depth float64) Option {
	return func(cfg *config) error {
		if !core.IsFinitePositive(depth) {
			return configError("max depth", depth, "must be > 0 and finite")
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithInterpolation selects the delay line read interpolation.
func WithInterpolation(mode interp.Mode) Option {
	return func(cfg *config) error {
		if mode != interp.Hermite && mode != interp.Linear {
			return configError("interpolation mode", float64(mode), "is not supported")
		}
		cfg.mode = mode
		return nil
	}
}

// WithBlockSize sets the chunk size ProcessBlock uses for its scratch buffers.
func WithBlockSize(size int) Option {
	return func(cfg *config) error {
		if size < 1 || size > maxBlockSize {
			return configError("block size", float64(size), "must be in [1, 65536]")
		}
		cfg.blockSize = size
		return nil
	}
}

func (cfg config) maxDelaySamples(p Period) float64 {
	return math.Max(sweepSamples(p, Up), sweepSamples(p, Down)) * cfg.maxDepth
}
