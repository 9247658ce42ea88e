package main

import "math"

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// applyKey maps one key press to a new pitch offset. The sign bit of the
// offset carries the direction even at depth zero, so switching direction
// while silent is remembered for the next depth key.
func applyKey(key byte, current float64) (offset float64, quit, changed bool) {
	switch {
	case key == 'q' || key == 'Q' || key == keyCtrlC || key == keyEscape:
		return current, true, false
	case key == 'u' || key == 'U':
		return math.Abs(current), false, true
	case key == 'd' || key == 'D':
		return math.Copysign(current, -1), false, true
	case key >= '0' && key <= '9':
		return math.Copysign(float64(key-'0')/10, current), false, true
	case key == '!': // shift+1
		return math.Copysign(1, current), false, true
	default:
		return current, false, false
	}
}
