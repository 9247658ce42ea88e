// Package pitch provides a real-time octave shifter built from two modulated
// delay lines.
//
// Each branch reads its delay line at a time that follows a one-way ramp, so
// the read head drifts against the write head and the pitch moves by a fixed
// ratio. When a ramp resets the delay jumps; the two branches run half a
// period apart and a square-root crossfade window hides every jump while the
// other branch carries the signal.
//
// Included types:
//   - OctaveShifter: the two-branch pipeline with a lock-free pitch control.
//   - Bank: independent shifters for multi-channel material.
//   - NewRamp and NewFadeWindow: the precomputed modulation and gain tables.
package pitch
