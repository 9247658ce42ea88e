package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-octaver/dsp/effects/pitch"
)

const bytesPerSample = 4

// Reader renders shifted audio as interleaved float32 little-endian frames.
// The mono shifter output is copied to every channel.
type Reader struct {
	src      Source
	shifter  *pitch.OctaveShifter
	channels int
	gain     float64
	block    []float64
}

// NewReader wraps src and shifter. The shifter keeps accepting
// SetPitchOffset from other goroutines while Read runs.
func NewReader(src Source, shifter *pitch.OctaveShifter, channels int) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("stream reader source must not be nil")
	}
	if shifter == nil {
		return nil, fmt.Errorf("stream reader shifter must not be nil")
	}
	if channels < 1 {
		return nil, fmt.Errorf("stream reader channel count must be >= 1: %d", channels)
	}

	return &Reader{
		src:      src,
		shifter:  shifter,
		channels: channels,
		gain:     1,
		block:    make([]float64, shifter.BlockSize()),
	}, nil
}

// Channels returns the number of interleaved output channels.
func (r *Reader) Channels() int { return r.channels }

// FrameSize returns the byte length of one interleaved frame.
func (r *Reader) FrameSize() int { return r.channels * bytesPerSample }

// SetGain sets the linear output gain. It belongs to the goroutine that
// calls Read.
func (r *Reader) SetGain(gain float64) { r.gain = gain }

// Read fills p with whole frames. It returns io.ErrShortBuffer when p cannot
// hold a single frame.
func (r *Reader) Read(p []byte) (int, error) {
	frameSize := r.FrameSize()
	frames := len(p) / frameSize
	if frames == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}

	n := 0
	for frames > 0 {
		chunk := min(frames, len(r.block))
		block := r.block[:chunk]
		for i := range block {
			block[i] = r.src.Next()
		}
		r.shifter.ProcessInPlace(block)

		for _, v := range block {
			bits := math.Float32bits(float32(v * r.gain))
			for range r.channels {
				binary.LittleEndian.PutUint32(p[n:], bits)
				n += bytesPerSample
			}
		}
		frames -= chunk
	}

	return n, nil
}
