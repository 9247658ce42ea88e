package core

import "fmt"

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave splits frames of interleaved samples into per-channel
// slices. dst must hold channels slices of at least len(src)/channels
// samples each. It returns the number of frames written.
func Deinterleave(dst [][]float64, src []float64) (int, error) {
	channels := len(dst)
	if channels == 0 {
		return 0, fmt.Errorf("deinterleave needs at least one channel")
	}

	frames := len(src) / channels
	for ch := range dst {
		if len(dst[ch]) < frames {
			return 0, fmt.Errorf("channel %d buffer too short: %d < %d", ch, len(dst[ch]), frames)
		}
	}

	for i := range frames {
		base := i * channels
		for ch := range channels {
			dst[ch][i] = src[base+ch]
		}
	}

	return frames, nil
}

// Interleave merges frames per-channel samples into dst and returns the
// number of values written.
func Interleave(dst []float64, src [][]float64, frames int) (int, error) {
	channels := len(src)
	if channels == 0 {
		return 0, fmt.Errorf("interleave needs at least one channel")
	}

	if len(dst) < frames*channels {
		return 0, fmt.Errorf("interleave destination too short: %d < %d", len(dst), frames*channels)
	}

	for i := range frames {
		base := i * channels
		for ch := range channels {
			dst[base+ch] = src[ch][i]
		}
	}

	return frames * channels, nil
}
