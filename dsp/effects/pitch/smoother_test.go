package pitch

import (
	"math"
	"testing"
)

func TestSmootherTimeConstant(t *testing.T) {
	s := newSmoother(0.01, 48000, 0)
	s.setTarget(1)

	var v float64
	for range 480 {
		v = s.next()
	}

	want := 1 - 1/math.E
	if math.Abs(v-want) > 1e-6 {
		t.Fatalf("after one time constant = %v, want %v", v, want)
	}
}

func TestSmootherSettlesExactly(t *testing.T) {
	s := newSmoother(0.001, 48000, 2)
	s.setTarget(0.5)

	for range 48000 {
		s.next()
	}
	if s.current != 0.5 {
		t.Fatalf("current = %v, want exactly 0.5", s.current)
	}
}

func TestSmootherZeroTimeJumps(t *testing.T) {
	s := newSmoother(0, 48000, 0)
	s.setTarget(1.5)

	if got := s.next(); got != 1.5 {
		t.Fatalf("next() = %v, want 1.5", got)
	}
}

func TestSmootherSnap(t *testing.T) {
	s := newSmoother(0.01, 48000, 0)
	s.setTarget(1)
	s.snap()

	if got := s.next(); got != 1 {
		t.Fatalf("next() after snap = %v, want 1", got)
	}
}
