// Command octaver-live plays a test tone through the octave shifter and lets
// you change the shift from the keyboard while it plays.
//
// Keys:
//
//	u / d   shift up / down, keeping the depth
//	0 - 9   depth in tenths (1 = 0.1, 0 = no shift)
//	!       full depth, one octave
//	q       quit
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-octaver/dsp/effects/pitch"
	"github.com/cwbudde/algo-octaver/dsp/stream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", 48000, "Output sample rate in Hz")
	freq := flag.Float64("freq", 220, "Test tone frequency in Hz")
	waveName := flag.String("wave", "saw", "Test tone waveform: sine, saw")
	amp := flag.Float64("amp", 0.3, "Test tone amplitude")
	shift := flag.Float64("shift", 1, "Initial pitch offset")
	gain := flag.Float64("gain", 1, "Output gain applied after shifting")
	channels := flag.Int("channels", 2, "Output channels (1 or 2)")
	latency := flag.Duration("latency", 40*time.Millisecond, "Device buffer size")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *channels != 1 && *channels != 2 {
		return fmt.Errorf("channels must be 1 or 2: %d", *channels)
	}

	wave, err := stream.ParseWaveform(*waveName)
	if err != nil {
		return err
	}
	osc, err := stream.NewOscillator(wave, *freq, *amp, float64(*rate))
	if err != nil {
		return err
	}
	shifter, err := pitch.NewOctaveShifter(float64(*rate))
	if err != nil {
		return err
	}
	shifter.SetPitchOffset(*shift)
	shifter.Reset()

	reader, err := stream.NewReader(osc, shifter, *channels)
	if err != nil {
		return err
	}
	reader.SetGain(*gain)

	if *verbose {
		log.Printf("Tone: %s %.1f Hz at %d Hz, %d channels", wave, *freq, *rate, *channels)
		log.Printf("Cycle: %d samples, branch offset %d", shifter.Period().Len(), shifter.Period().Half())
		log.Printf("Stream: float32 frames of %d bytes, gain %.2f", reader.FrameSize(), *gain)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   *rate,
		ChannelCount: *channels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   *latency,
	})
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(reader)
	defer func() { _ = player.Close() }()

	term, err := openTerminal(os.Stdin)
	if err != nil {
		return err
	}
	defer term.Close()

	player.Play()
	printStatus(shifter)

	for b := range term.Keys() {
		offset, quit, changed := applyKey(b, shifter.PitchOffset())
		if quit {
			break
		}
		if changed {
			shifter.SetPitchOffset(offset)
			printStatus(shifter)
		}
		if err := player.Err(); err != nil {
			return fmt.Errorf("audio playback failed: %w", err)
		}
	}

	fmt.Print("\r\n")
	return nil
}

func printStatus(s *pitch.OctaveShifter) {
	fmt.Printf("\rshift %+.1f  %-4s  ratio %.2f   ", s.PitchOffset(), s.Direction(), s.PitchRatio())
}
