package pitch

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-octaver/internal/testutil"
)

func TestNewBankValidates(t *testing.T) {
	if _, err := NewBank(0, 48000); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("zero channels error = %v, want ErrConfiguration", err)
	}
	if _, err := NewBank(2, -1); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("negative sample rate error = %v, want ErrConfiguration", err)
	}

	b, err := NewBank(3, 48000, WithBlockSize(32))
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	if b.Channels() != 3 {
		t.Fatalf("Channels() = %d, want 3", b.Channels())
	}
}

func TestBankMatchesIndependentShifters(t *testing.T) {
	const frames = 5000

	left := testutil.Sine(300, 48000, 0.7, frames)
	right := testutil.Noise(13, 0.5, frames)

	b, err := NewBank(2, 48000, WithBlockSize(64))
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	b.SetPitchOffset(-1)
	if got := b.PitchOffset(); got != -1 {
		t.Fatalf("PitchOffset() = %v, want -1", got)
	}

	buf := make([]float64, 2*frames)
	for i := range frames {
		buf[2*i] = left[i]
		buf[2*i+1] = right[i]
	}
	if err := b.ProcessInterleaved(buf); err != nil {
		t.Fatalf("ProcessInterleaved() error = %v", err)
	}

	for ch, src := range [][]float64{left, right} {
		s, _ := NewOctaveShifter(48000, WithBlockSize(64))
		s.SetPitchOffset(-1)
		want := make([]float64, frames)
		if err := s.ProcessBlock(want, src); err != nil {
			t.Fatalf("ProcessBlock() error = %v", err)
		}

		got := make([]float64, frames)
		for i := range frames {
			got[i] = buf[2*i+ch]
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}
}

func TestBankProcessInterleavedRejectsPartialFrames(t *testing.T) {
	b, _ := NewBank(2, 48000)
	if err := b.ProcessInterleaved(make([]float64, 5)); err == nil {
		t.Fatal("expected error for partial frame")
	}
}

func TestBankReset(t *testing.T) {
	b, _ := NewBank(1, 48000)
	in := testutil.Noise(1, 1, 3000)

	first := append([]float64(nil), in...)
	_ = b.ProcessInterleaved(first)

	b.Reset()
	second := append([]float64(nil), in...)
	_ = b.ProcessInterleaved(second)

	testutil.RequireSliceNearlyEqual(t, second, first, 0)

	if b.Channel(0) == nil {
		t.Fatal("Channel(0) = nil")
	}
}
