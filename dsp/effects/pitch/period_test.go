package pitch

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-octaver/internal/testutil"
)

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		active     float64
		fade       float64
		wantField  string
		wantLen    int
		wantHalf   int
	}{
		{name: "defaults 48k", sampleRate: 48000, active: 0.1, fade: 0.025, wantLen: 7200, wantHalf: 3600},
		{name: "44.1k", sampleRate: 44100, active: 0.1, fade: 0.02, wantLen: 7056, wantHalf: 3528},
		{name: "short fades", sampleRate: 48000, active: 0.05, fade: 0.005, wantLen: 4320, wantHalf: 2160},
		{name: "zero sample rate", sampleRate: 0, active: 0.1, fade: 0.025, wantField: "sample rate"},
		{name: "NaN sample rate", sampleRate: math.NaN(), active: 0.1, fade: 0.025, wantField: "sample rate"},
		{name: "negative active", sampleRate: 48000, active: -0.1, fade: 0.025, wantField: "active time"},
		{name: "Inf fade", sampleRate: 48000, active: 0.1, fade: math.Inf(1), wantField: "fade time"},
		{name: "active equals twice fade", sampleRate: 48000, active: 0.1, fade: 0.05, wantField: "active time"},
		{name: "active below twice fade", sampleRate: 48000, active: 0.1, fade: 0.08, wantField: "active time"},
		{name: "fade below one sample", sampleRate: 10, active: 1, fade: 0.01, wantField: "fade time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPeriod(tt.sampleRate, tt.active, tt.fade)
			if tt.wantField != "" {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("NewPeriod() error = %v, want *ConfigurationError", err)
				}
				if cfgErr.Field != tt.wantField {
					t.Fatalf("Field = %q, want %q", cfgErr.Field, tt.wantField)
				}
				if !errors.Is(err, ErrConfiguration) {
					t.Fatal("error does not wrap ErrConfiguration")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewPeriod() error = %v", err)
			}
			if got := p.Len(); got != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := p.Half(); got != tt.wantHalf {
				t.Fatalf("Half() = %d, want %d", got, tt.wantHalf)
			}
			if p.PadLen != p.ActiveLen-2*p.FadeLen {
				t.Fatalf("PadLen = %d, want %d", p.PadLen, p.ActiveLen-2*p.FadeLen)
			}
		})
	}
}

func TestPeriodSeconds(t *testing.T) {
	p, err := NewPeriod(48000, 0.1, 0.025)
	if err != nil {
		t.Fatalf("NewPeriod() error = %v", err)
	}

	// 2*active - 2*fade
	if got := p.Seconds(); math.Abs(got-0.15) > 1e-12 {
		t.Fatalf("Seconds() = %f, want 0.15", got)
	}
}

func TestNewRamp(t *testing.T) {
	p, err := NewPeriod(48000, 0.1, 0.025)
	if err != nil {
		t.Fatalf("NewPeriod() error = %v", err)
	}

	for _, dir := range []Direction{Down, Up} {
		t.Run(dir.String(), func(t *testing.T) {
			ramp, err := NewRamp(p, dir)
			if err != nil {
				t.Fatalf("NewRamp() error = %v", err)
			}
			if len(ramp) != p.Len() {
				t.Fatalf("len = %d, want %d", len(ramp), p.Len())
			}
			testutil.RequireInRange(t, ramp, 0, 1)

			for i := 1; i < p.ActiveLen; i++ {
				rising := ramp[i] > ramp[i-1]
				if rising != (dir == Down) {
					t.Fatalf("index %d: ramp %v -> %v is not monotonic for %s", i, ramp[i-1], ramp[i], dir)
				}
			}
			for i := p.ActiveLen; i < len(ramp); i++ {
				if ramp[i] != 0 {
					t.Fatalf("pad index %d = %v, want 0", i, ramp[i])
				}
			}
		})
	}
}

func TestNewRampEndpoints(t *testing.T) {
	p, _ := NewPeriod(48000, 0.1, 0.025)

	down, _ := NewRamp(p, Down)
	if down[0] != 0 {
		t.Fatalf("down[0] = %v, want 0", down[0])
	}

	up, _ := NewRamp(p, Up)
	want := float64(p.ActiveLen) / float64(p.Len())
	if math.Abs(up[0]-want) > 1e-15 {
		t.Fatalf("up[0] = %v, want %v", up[0], want)
	}
}

func TestNewRampRejectsBadInput(t *testing.T) {
	if _, err := NewRamp(Period{}, Up); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("zero Period error = %v, want ErrConfiguration", err)
	}

	p, _ := NewPeriod(48000, 0.1, 0.025)
	if _, err := NewRamp(p, Direction(7)); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		offset float64
		want   Direction
	}{
		{1, Up},
		{0.01, Up},
		{math.Inf(1), Up},
		{0, Down},
		{math.Copysign(0, -1), Down},
		{-1, Down},
		{math.NaN(), Down},
	}
	for _, tt := range tests {
		if got := DirectionOf(tt.offset); got != tt.want {
			t.Fatalf("DirectionOf(%v) = %s, want %s", tt.offset, got, tt.want)
		}
	}

	if got := Direction(5).String(); got != "Direction(5)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRatioFor(t *testing.T) {
	tests := []struct {
		dir   Direction
		depth float64
		want  float64
	}{
		{Up, 1, 2},
		{Down, 1, 0.5},
		{Up, 0, 1},
		{Down, 0, 1},
		{Up, 0.5, 1.5},
		{Down, 2, 0},
	}
	for _, tt := range tests {
		if got := ratioFor(tt.dir, tt.depth); got != tt.want {
			t.Fatalf("ratioFor(%s, %v) = %v, want %v", tt.dir, tt.depth, got, tt.want)
		}
	}
}
