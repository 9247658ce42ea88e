// Package interp reads between samples for fractional delays.
//
// [Linear2] blends the two neighbours of the read position. [Hermite4] fits a
// cubic through four and is the default. [Mode] names the choice so a delay
// line can fix it at construction time.
package interp
