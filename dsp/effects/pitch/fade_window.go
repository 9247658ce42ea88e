package pitch

import "math"

// NewFadeWindow builds the branch gain envelope for one cycle.
//
// The envelope fades in over FadeLen samples, holds at 1, fades out over
// FadeLen samples and stays at 0 through the pad. Both fades are square-root
// shaped, so two windows offset by Period.Half sum to unit power across every
// crossover.
func NewFadeWindow(p Period) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	w := make([]float64, p.Len())
	fadeLen := float64(p.FadeLen)
	fadeIn := p.FadeLen
	fadeOut := p.ActiveLen - p.FadeLen

	for i := range p.ActiveLen {
		switch {
		case i < fadeIn:
			w[i] = math.Sqrt(float64(i) / fadeLen)
		case i >= fadeOut:
			w[i] = math.Sqrt(1 - float64(i-fadeOut)/fadeLen)
		default:
			w[i] = 1
		}
	}

	return w, nil
}
