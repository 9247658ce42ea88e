// Package window generates the analysis windows used ahead of the FFT in
// spectrum measurements.
//
// All windows are symmetric cosine sums evaluated over [0, 1].
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop
)

var (
	errMismatchedLength = errors.New("samples and coefficients must have same length")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
)

// Cosine-sum coefficients a0, a1, ... for w(x) = sum a_k cos(2*pi*k*x).
var cosineCoeffs = map[Type][]float64{
	TypeRectangular:    {1},
	TypeHann:           {0.5, -0.5},
	TypeHamming:        {0.54, -0.46},
	TypeBlackman:       {0.42, -0.5, 0.08},
	TypeBlackmanHarris: {0.35875, -0.48829, 0.14128, -0.01168},
	TypeFlatTop:        {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
}

var names = map[Type]string{
	TypeRectangular:    "rectangular",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackman-harris",
	TypeFlatTop:        "flattop",
}

// String returns the window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a window name to a Type.
func ParseType(name string) (Type, error) {
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return TypeHann, fmt.Errorf("unknown window: %q", name)
}

// Generate returns size coefficients of window t.
func Generate(t Type, size int) ([]float64, error) {
	out := make([]float64, max(size, 0))
	if err := Fill(out, t); err != nil {
		return nil, err
	}
	return out, nil
}

// Fill writes window t over the whole of dst.
func Fill(dst []float64, t Type) error {
	if len(dst) == 0 {
		return fmt.Errorf("window size must be > 0: %d", len(dst))
	}
	coeffs, ok := cosineCoeffs[t]
	if !ok {
		return fmt.Errorf("window type not supported: %s", t)
	}

	if len(dst) == 1 {
		dst[0] = 1
		return nil
	}

	den := float64(len(dst) - 1)
	for i := range dst {
		dst[i] = cosineSum(float64(i)/den, coeffs)
	}
	return nil
}

// ApplyInPlace multiplies samples by coeffs.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

// CoherentGain returns the mean of the coefficients, the factor by which the
// window scales the amplitude of a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("window size must be > 0: %d", 0)
	}

	sum := 0.0
	for _, v := range coeffs {
		sum += v
	}
	gain := sum / float64(len(coeffs))
	if gain == 0 {
		return 0, errZeroCoherentGain
	}
	return gain, nil
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
