package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-octaver/dsp/core"
)

// Period describes one modulation cycle in samples.
//
// A cycle is an active region of ActiveLen samples (fade-in, sustain,
// fade-out) followed by a silent pad of PadLen = ActiveLen - 2*FadeLen
// samples. Len is therefore always even and Half is exactly
// ActiveLen - FadeLen.
type Period struct {
	SampleRate float64
	ActiveTime float64
	FadeTime   float64

	ActiveLen int
	FadeLen   int
	PadLen    int
}

// NewPeriod validates the timing parameters and rounds them to samples.
func NewPeriod(sampleRate, activeTime, fadeTime float64) (Period, error) {
	if !core.IsFinitePositive(sampleRate) {
		return Period{}, configError("sample rate", sampleRate, "must be > 0 and finite")
	}
	if !core.IsFinitePositive(activeTime) {
		return Period{}, configError("active time", activeTime, "must be > 0 and finite")
	}
	if !core.IsFinitePositive(fadeTime) {
		return Period{}, configError("fade time", fadeTime, "must be > 0 and finite")
	}
	if activeTime <= 2*fadeTime {
		return Period{}, configError("active time", activeTime,
			fmt.Sprintf("must exceed twice the fade time (%f)", fadeTime))
	}

	p := Period{
		SampleRate: sampleRate,
		ActiveTime: activeTime,
		FadeTime:   fadeTime,
		ActiveLen:  core.SecondsToSamples(activeTime, sampleRate),
		FadeLen:    core.SecondsToSamples(fadeTime, sampleRate),
	}
	p.PadLen = p.ActiveLen - 2*p.FadeLen

	if err := p.validate(); err != nil {
		return Period{}, err
	}

	return p, nil
}

func (p Period) validate() error {
	if !core.IsFinitePositive(p.SampleRate) {
		return configError("sample rate", p.SampleRate, "must be > 0 and finite")
	}
	if p.FadeLen < 1 {
		return configError("fade time", p.FadeTime, "is shorter than one sample")
	}
	if p.PadLen < 1 || p.PadLen != p.ActiveLen-2*p.FadeLen {
		return configError("active time", p.ActiveTime, "leaves no sustain region at this sample rate")
	}
	return nil
}

// Len returns the number of samples in one cycle.
func (p Period) Len() int { return p.ActiveLen + p.PadLen }

// Half returns the phase offset between the two branches.
func (p Period) Half() int { return p.Len() / 2 }

// Seconds returns the cycle duration.
func (p Period) Seconds() float64 { return float64(p.Len()) / p.SampleRate }
