package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-octaver/dsp/core"
)

// Bank runs one independent OctaveShifter per channel under a shared pitch
// control.
type Bank struct {
	shifters []*OctaveShifter
	scratch  [][]float64
}

// NewBank constructs channels shifters with identical options.
func NewBank(channels int, sampleRate float64, opts ...Option) (*Bank, error) {
	if channels < 1 {
		return nil, configError("channel count", float64(channels), "must be >= 1")
	}

	b := &Bank{
		shifters: make([]*OctaveShifter, channels),
		scratch:  make([][]float64, channels),
	}
	for ch := range channels {
		s, err := NewOctaveShifter(sampleRate, opts...)
		if err != nil {
			return nil, err
		}
		b.shifters[ch] = s
		b.scratch[ch] = make([]float64, s.BlockSize())
	}

	return b, nil
}

// Channels returns the number of channels.
func (b *Bank) Channels() int { return len(b.shifters) }

// Channel returns the shifter for channel ch.
func (b *Bank) Channel(ch int) *OctaveShifter { return b.shifters[ch] }

// SetPitchOffset applies offset to every channel.
func (b *Bank) SetPitchOffset(offset float64) {
	for _, s := range b.shifters {
		s.SetPitchOffset(offset)
	}
}

// PitchOffset returns the offset of the first channel.
func (b *Bank) PitchOffset() float64 { return b.shifters[0].PitchOffset() }

// Reset resets every channel.
func (b *Bank) Reset() {
	for _, s := range b.shifters {
		s.Reset()
	}
}

// ProcessInterleaved shifts interleaved frames in place.
func (b *Bank) ProcessInterleaved(buf []float64) error {
	channels := len(b.shifters)
	if len(buf)%channels != 0 {
		return fmt.Errorf("octave shifter bank buffer length %d is not a multiple of %d channels",
			len(buf), channels)
	}

	chunk := len(b.scratch[0]) * channels
	for start := 0; start < len(buf); start += chunk {
		end := min(start+chunk, len(buf))

		frames, err := core.Deinterleave(b.scratch, buf[start:end])
		if err != nil {
			return err
		}
		for ch, s := range b.shifters {
			s.ProcessInPlace(b.scratch[ch][:frames])
		}
		if _, err := core.Interleave(buf[start:end], b.scratch, frames); err != nil {
			return err
		}
	}

	return nil
}
