package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinitePositive(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{v: 48000, want: true},
		{v: 1e-9, want: true},
		{v: 0, want: false},
		{v: -1, want: false},
		{v: math.NaN(), want: false},
		{v: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		if got := IsFinitePositive(tt.v); got != tt.want {
			t.Fatalf("IsFinitePositive(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestSecondsToSamples(t *testing.T) {
	if got := SecondsToSamples(0.1, 48000); got != 4800 {
		t.Fatalf("SecondsToSamples(0.1, 48000) = %d, want 4800", got)
	}

	if got := SecondsToSamples(0.02, 44100); got != 882 {
		t.Fatalf("SecondsToSamples(0.02, 44100) = %d, want 882", got)
	}
}

func TestOnePoleCoefficient(t *testing.T) {
	if got := OnePoleCoefficient(0, 48000); got != 1 {
		t.Fatalf("zero tau: got %v want 1", got)
	}

	c := OnePoleCoefficient(0.01, 48000)
	if c <= 0 || c >= 1 {
		t.Fatalf("coefficient out of range: %v", c)
	}

	// After tau seconds a step response reaches 1 - 1/e.
	y := 0.0
	for range 480 {
		y += (1 - y) * c
	}

	if want := 1 - math.Exp(-1); math.Abs(y-want) > 1e-3 {
		t.Fatalf("step response after tau: got %v want %v", y, want)
	}
}
