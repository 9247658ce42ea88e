// Command octaver shifts the pitch of a WAV file up or down by an octave.
//
// Usage:
//
//	octaver input.wav output.wav                 # one octave up
//	octaver -shift -1 input.wav output.wav       # one octave down
//	octaver -shift 0.5 -analyze in.wav out.wav   # a fifth up, report pitch
//
// Every channel is shifted independently. The output keeps the input's
// sample rate, channel count and bit depth.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-octaver/dsp/effects/pitch"
	"github.com/cwbudde/algo-octaver/dsp/interp"
	"github.com/cwbudde/algo-octaver/dsp/window"
)

const minRequiredArgs = 2

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	shift := flag.Float64("shift", 1, "Pitch offset: +1 octave up, -1 octave down, magnitude scales the depth")
	active := flag.Float64("active", pitch.DefaultActiveTime, "Active time of each modulation cycle in seconds")
	fade := flag.Float64("fade", pitch.DefaultFadeTime, "Crossfade time in seconds (must be < active/2)")
	block := flag.Int("block", 4096, "Frames per processing chunk")
	interpolation := flag.String("interp", "hermite", "Delay interpolation: hermite, linear")
	analyze := flag.Bool("analyze", false, "Print the dominant frequency of input and output")
	windowName := flag.String("window", "hann", "Analysis window: hann, hamming, blackman, blackman-harris, flattop, rectangular")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	mode, err := interp.ParseMode(*interpolation)
	if err != nil {
		return err
	}
	win, err := window.ParseType(*windowName)
	if err != nil {
		return err
	}

	cfg := shiftConfig{
		offset: *shift,
		frames: *block,
		opts: []pitch.Option{
			pitch.WithActiveTime(*active),
			pitch.WithFadeTime(*fade),
			pitch.WithInterpolation(mode),
		},
		analyze: *analyze,
		window:  win,
		verbose: *verbose,
	}

	inputPath, outputPath := args[0], args[1]
	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Pitch offset: %+.3f", *shift)
		log.Printf("Active/fade: %.3fs/%.3fs, interpolation %s", *active, *fade, mode)
	}

	start := time.Now()
	stats, err := shiftWAV(inputPath, outputPath, cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Shifted %s -> %s (ratio %.3f)\n",
		filepath.Base(inputPath), filepath.Base(outputPath), stats.ratio)
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.sampleRate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Output peak %.2f dBFS, RMS %.2f dBFS\n", stats.levels.peakDB(), stats.levels.rmsDB())
	if stats.analysis != nil {
		fmt.Printf("  Dominant frequency: %.1f Hz -> %.1f Hz\n", stats.analysis.inputHz, stats.analysis.outputHz)
	}
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			secs, float64(stats.frames)/float64(stats.sampleRate)/secs)
	}

	return nil
}
