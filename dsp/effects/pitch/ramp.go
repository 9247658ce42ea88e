package pitch

import "fmt"

// Direction selects which way the shifter moves the pitch.
type Direction int

const (
	// Down lowers the pitch: the delay grows over the ramp.
	Down Direction = iota
	// Up raises the pitch: the delay shrinks over the ramp.
	Up
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionOf maps a signed pitch offset to a direction. Positive offsets
// shift up; zero, negative and NaN offsets shift down.
func DirectionOf(offset float64) Direction {
	if offset > 0 {
		return Up
	}
	return Down
}

// NewRamp builds the delay-time modulation table for one cycle.
//
// Over the active region the Down ramp rises as i/ActiveLen and the Up ramp
// falls as (ActiveLen-i)/Len; the pad is zero. Values lie in [0, 1].
func NewRamp(p Period, dir Direction) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if dir != Down && dir != Up {
		return nil, fmt.Errorf("octave shifter ramp direction must be up or down: %d", int(dir))
	}

	n := p.Len()
	ramp := make([]float64, n)
	active := float64(p.ActiveLen)
	total := float64(n)

	for i := range p.ActiveLen {
		if dir == Up {
			ramp[i] = (active - float64(i)) / total
		} else {
			ramp[i] = float64(i) / active
		}
	}

	return ramp, nil
}

// sweepSamples returns how many samples of delay a ramp value of 1 maps to at
// depth 1. The values make depth 1 an exact octave: the Down ramp grows the
// delay by half a sample per sample, the Up ramp shrinks it by one.
func sweepSamples(p Period, dir Direction) float64 {
	if dir == Up {
		return float64(p.Len())
	}
	return float64(p.ActiveLen) / 2
}

// ratioFor returns the nominal pitch ratio for a direction and depth.
func ratioFor(dir Direction, depth float64) float64 {
	if dir == Up {
		return 1 + depth
	}
	return 1 - depth/2
}
