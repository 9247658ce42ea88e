package pitch

import "github.com/cwbudde/algo-vecmath"

func mix(a, b float64) float64 {
	return a + b
}

// mixBlock sums two branch blocks into dst. dst may alias a.
func mixBlock(dst, a, b []float64) {
	copy(dst, a)
	vecmath.AddBlockInPlace(dst, b)
}
