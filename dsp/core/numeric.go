package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsFinitePositive reports whether v is finite and strictly greater than zero.
func IsFinitePositive(v float64) bool {
	return v > 0 && IsFinite(v)
}

// SecondsToSamples converts a duration to the nearest whole number of samples.
func SecondsToSamples(seconds, sampleRate float64) int {
	return int(math.Round(seconds * sampleRate))
}

// OnePoleCoefficient returns the per-sample smoothing coefficient of a
// one-pole lowpass with time constant tau seconds. The result is in (0, 1];
// a non-positive tau yields 1 (no smoothing).
func OnePoleCoefficient(tau, sampleRate float64) float64 {
	if tau <= 0 || !IsFinitePositive(sampleRate) {
		return 1
	}

	return 1 - math.Exp(-1/(tau*sampleRate))
}
