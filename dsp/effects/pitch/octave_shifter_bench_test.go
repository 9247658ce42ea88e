package pitch

import (
	"testing"

	"github.com/cwbudde/algo-octaver/dsp/interp"
)

func BenchmarkOctaveShifterProcess(b *testing.B) {
	s, _ := NewOctaveShifter(48000)

	b.ResetTimer()

	x := 0.25
	for range b.N {
		x = s.Process(x) * 0.5
	}
}

func BenchmarkOctaveShifterProcessInPlace1024(b *testing.B) {
	for _, mode := range []interp.Mode{interp.Hermite, interp.Linear} {
		b.Run(mode.String(), func(b *testing.B) {
			s, _ := NewOctaveShifter(48000, WithInterpolation(mode))
			s.SetPitchOffset(-1)

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = 0.25
			}

			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				s.ProcessInPlace(buf)
			}
		})
	}
}

func BenchmarkBankProcessInterleavedStereo(b *testing.B) {
	bank, _ := NewBank(2, 48000)
	buf := make([]float64, 2048)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_ = bank.ProcessInterleaved(buf)
	}
}
