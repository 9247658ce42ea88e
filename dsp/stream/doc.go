// Package stream adapts an octave shifter to pull-based audio backends.
//
// A [Reader] pulls samples from a [Source], shifts them and renders
// interleaved float32 little-endian frames, the layout oto and most host
// APIs consume. Read does not allocate, so it is safe to call from a
// realtime callback goroutine.
package stream
