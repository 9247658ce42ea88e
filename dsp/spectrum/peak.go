package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-octaver/dsp/core"
	"github.com/cwbudde/algo-octaver/dsp/window"
)

var errEmptySignal = errors.New("spectrum: signal must not be empty")

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer) error

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) AnalyzerOption {
	return func(a *Analyzer) error {
		if _, err := window.Generate(t, 1); err != nil {
			return fmt.Errorf("spectrum: %w", err)
		}
		a.windowType = t
		return nil
	}
}

// Analyzer finds the dominant frequency of fixed-size frames. It owns its
// FFT plan and scratch buffers, so repeated calls do not allocate.
type Analyzer struct {
	sampleRate float64
	size       int
	windowType window.Type
	windowLen  int

	plan   *algofft.Plan[complex128]
	window []float64
	frame  []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	power  []float64
}

// NewAnalyzer creates an analyzer for frames of up to size samples. The FFT
// length is size rounded up to a power of two.
func NewAnalyzer(size int, sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	if size < 4 {
		return nil, fmt.Errorf("spectrum: analyzer size must be >= 4: %d", size)
	}
	if !core.IsFinitePositive(sampleRate) {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0 and finite: %f", sampleRate)
	}

	n := nextPowerOfTwo(size)
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	bins := n/2 + 1

	a := &Analyzer{
		sampleRate: sampleRate,
		size:       size,
		windowType: window.TypeHann,
		plan:       plan,
		window:     make([]float64, size),
		frame:      make([]float64, size),
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		power:      make([]float64, bins),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type { return a.windowType }

// Size returns the maximum frame length.
func (a *Analyzer) Size() int { return a.size }

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return len(a.in) }

// Peak returns the frequency in Hz of the strongest non-DC component of
// signal. Only the first Size samples are analyzed. The bin is refined by
// parabolic interpolation of the log power.
func (a *Analyzer) Peak(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, errEmptySignal
	}

	m := min(len(signal), a.size)
	if m != a.windowLen {
		if err := window.Fill(a.window[:m], a.windowType); err != nil {
			return 0, fmt.Errorf("spectrum: %w", err)
		}
		a.windowLen = m
	}
	frame := a.frame[:m]
	copy(frame, signal[:m])
	removeMean(frame)
	if err := window.ApplyInPlace(frame, a.window[:m]); err != nil {
		return 0, fmt.Errorf("spectrum: %w", err)
	}

	for i := range a.in {
		a.in[i] = 0
	}
	for i, v := range frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	for k := range a.power {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}
	vecmath.Power(a.power, a.re, a.im)

	best := 1
	for k := 2; k < len(a.power); k++ {
		if a.power[k] > a.power[best] {
			best = k
		}
	}

	bin := float64(best)
	if best+1 < len(a.power) {
		bin += parabolicOffset(a.power[best-1], a.power[best], a.power[best+1])
	}

	return bin * a.sampleRate / float64(len(a.in)), nil
}

// PeakFrequency is a one-shot Analyzer.Peak over the whole signal.
func PeakFrequency(signal []float64, sampleRate float64, opts ...AnalyzerOption) (float64, error) {
	if len(signal) == 0 {
		return 0, errEmptySignal
	}

	a, err := NewAnalyzer(max(len(signal), 4), sampleRate, opts...)
	if err != nil {
		return 0, err
	}

	return a.Peak(signal)
}

func removeMean(x []float64) {
	mean := vecmath.Sum(x) / float64(len(x))
	for i := range x {
		x[i] -= mean
	}
}

// parabolicOffset fits a parabola through three log-power bins and returns
// the vertex offset from the centre bin, in [-0.5, 0.5].
func parabolicOffset(left, centre, right float64) float64 {
	const floor = 1e-300
	l := math.Log(math.Max(left, floor))
	c := math.Log(math.Max(centre, floor))
	r := math.Log(math.Max(right, floor))

	den := l - 2*c + r
	if den == 0 {
		return 0
	}

	return core.Clamp(0.5*(l-r)/den, -0.5, 0.5)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
