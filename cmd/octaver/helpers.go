package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-octaver/dsp/core"
	"github.com/cwbudde/algo-octaver/dsp/effects/pitch"
	"github.com/cwbudde/algo-octaver/dsp/spectrum"
	"github.com/cwbudde/algo-octaver/dsp/window"
)

const (
	wavFormatPCM = 1

	// Analysis looks at up to this many frames of the first channel.
	maxAnalysisFrames = 1 << 16
	minAnalysisFrames = 64
)

type shiftConfig struct {
	offset  float64
	frames  int
	opts    []pitch.Option
	analyze bool
	window  window.Type
	verbose bool
}

type shiftStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	ratio      float64
	levels     levelMeter
	analysis   *pitchAnalysis
}

type pitchAnalysis struct {
	inputHz  float64
	outputHz float64
}

// wavInput holds a validated input file.
type wavInput struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
}

func openWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	if _, err := sampleScale(bitDepth); err != nil {
		_ = f.Close()
		return nil, err
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	return &wavInput{
		file:     f,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

func (w *wavInput) Close() error {
	return w.file.Close()
}

// wavOutput wraps the output file and its encoder.
type wavOutput struct {
	file    *os.File
	encoder *wav.Encoder
}

func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutput, error) {
	if _, err := sampleScale(bitDepth); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutput{
		file:    f,
		encoder: wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormatPCM),
	}, nil
}

func (w *wavOutput) Write(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutput) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return w.file.Close()
}

// sampleScale returns the full-scale value of signed PCM at bitDepth.
func sampleScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return math.Exp2(float64(bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d (want 16, 24 or 32)", bitDepth)
	}
}

func intsToFloats(dst []float64, src []int, scale float64) {
	inv := 1 / scale
	for i, v := range src {
		dst[i] = float64(v) * inv
	}
}

func floatsToInts(dst []int, src []float64, scale float64) {
	hi := scale - 1
	for i, v := range src {
		dst[i] = int(math.Round(core.Clamp(v*scale, -scale, hi)))
	}
}

// levelMeter accumulates peak and RMS over a whole file.
type levelMeter struct {
	peak  float64
	sumSq float64
	count int
}

func (m *levelMeter) add(x []float64) {
	if len(x) == 0 {
		return
	}
	m.peak = math.Max(m.peak, math.Max(floats.Max(x), -floats.Min(x)))
	m.sumSq += floats.Dot(x, x)
	m.count += len(x)
}

func (m *levelMeter) rms() float64 {
	if m.count == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.count))
}

func (m *levelMeter) peakDB() float64 { return toDB(m.peak) }
func (m *levelMeter) rmsDB() float64  { return toDB(m.rms()) }

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// firstChannel appends channel 0 of interleaved frames to dst, up to limit
// samples in total.
func firstChannel(dst, interleaved []float64, channels, limit int) []float64 {
	for i := 0; i < len(interleaved) && len(dst) < limit; i += channels {
		dst = append(dst, interleaved[i])
	}
	return dst
}

func analyzePitch(in, out []float64, sampleRate float64, win window.Type) (*pitchAnalysis, error) {
	if len(in) < minAnalysisFrames {
		return nil, fmt.Errorf("input too short to analyze: %d frames", len(in))
	}

	inHz, err := spectrum.PeakFrequency(in, sampleRate, spectrum.WithWindow(win))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze input: %w", err)
	}
	outHz, err := spectrum.PeakFrequency(out, sampleRate, spectrum.WithWindow(win))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze output: %w", err)
	}

	return &pitchAnalysis{inputHz: inHz, outputHz: outHz}, nil
}

// shiftWAV reads inputPath, shifts every channel and writes outputPath with
// the same format.
func shiftWAV(inputPath, outputPath string, cfg shiftConfig) (stats *shiftStats, err error) {
	if cfg.frames < 1 {
		return nil, fmt.Errorf("block size must be >= 1: %d", cfg.frames)
	}

	input, err := openWAVInput(inputPath, cfg.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	bank, err := pitch.NewBank(input.channels, float64(input.rate), cfg.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create octave shifter: %w", err)
	}
	bank.SetPitchOffset(cfg.offset)
	bank.Reset()

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	scale, _ := sampleScale(input.bitDepth)
	format := &audio.Format{NumChannels: input.channels, SampleRate: input.rate}
	n := cfg.frames * input.channels
	intBuf := &audio.IntBuffer{Format: format, Data: make([]int, n), SourceBitDepth: input.bitDepth}
	samples := make([]float64, n)

	stats = &shiftStats{
		sampleRate: input.rate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
		ratio:      bank.Channel(0).PitchRatio(),
	}

	var analysisIn, analysisOut []float64
	if cfg.analyze {
		analysisIn = make([]float64, 0, maxAnalysisFrames)
		analysisOut = make([]float64, 0, maxAnalysisFrames)
	}

	for {
		intBuf.Data = intBuf.Data[:cap(intBuf.Data)]
		got, err := input.decoder.PCMBuffer(intBuf)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		got -= got % input.channels
		if got == 0 {
			break
		}

		chunk := samples[:got]
		intsToFloats(chunk, intBuf.Data[:got], scale)
		if cfg.analyze {
			analysisIn = firstChannel(analysisIn, chunk, input.channels, maxAnalysisFrames)
		}

		if err := bank.ProcessInterleaved(chunk); err != nil {
			return nil, fmt.Errorf("failed to shift audio data: %w", err)
		}
		if cfg.analyze {
			analysisOut = firstChannel(analysisOut, chunk, input.channels, maxAnalysisFrames)
		}
		stats.levels.add(chunk)

		intBuf.Data = intBuf.Data[:got]
		floatsToInts(intBuf.Data, chunk, scale)
		if err := output.Write(intBuf); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
		stats.frames += int64(got / input.channels)
	}

	if cfg.verbose {
		log.Printf("Processed %d frames", stats.frames)
	}

	if cfg.analyze {
		stats.analysis, err = analyzePitch(analysisIn, analysisOut, float64(input.rate), cfg.window)
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
