package pitch

import (
	"math"

	"github.com/cwbudde/algo-octaver/dsp/core"
)

// smootherSnap is the distance below which the smoother lands on its target.
const smootherSnap = 1e-9

// smoother is a one-pole exponential approach toward a target, matching the
// setTargetAtTime curve: after one time constant the value has covered
// 1 - 1/e of the distance.
type smoother struct {
	coef    float64
	current float64
	target  float64
}

func newSmoother(tau, sampleRate, initial float64) smoother {
	return smoother{
		coef:    core.OnePoleCoefficient(tau, sampleRate),
		current: initial,
		target:  initial,
	}
}

func (s *smoother) setTarget(target float64) {
	s.target = target
}

func (s *smoother) next() float64 {
	if s.current == s.target {
		return s.current
	}

	s.current += (s.target - s.current) * s.coef
	if math.Abs(s.target-s.current) < smootherSnap {
		s.current = s.target
	}

	return s.current
}

func (s *smoother) snap() {
	s.current = s.target
}
