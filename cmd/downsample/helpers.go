package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	downsampler "github.com/tphakala/go-audio-downsampler"
	"github.com/tphakala/go-audio-downsampler/internal/audiofile"
	"github.com/tphakala/go-audio-downsampler/internal/spectrum"
)

// options holds the parsed command line.
type options struct {
	inputPath  string
	outputPath string
	targetRate int
	method     downsampler.ConvolutionMethod
	bitDepth   int
	analyze    bool
	verbose    bool
}

type downsampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
}

func parseMethod(s string) (downsampler.ConvolutionMethod, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return downsampler.ConvolutionAuto, nil
	case "direct":
		return downsampler.ConvolutionDirect, nil
	case "fft":
		return downsampler.ConvolutionFFT, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want auto, direct or fft)", s)
	}
}

// targetRateHz converts a kHz flag value to whole Hz, as WAV headers store
// integer rates (22.05 kHz -> 22050 Hz).
func targetRateHz(kHz float64) int {
	return int(math.Round(kHz * kHzToHz))
}

// downsampleFile loads the input, downsamples it and writes a mono WAV.
func downsampleFile(opts options) (*downsampleStats, error) {
	clip, err := audiofile.Load(opts.inputPath)
	if err != nil {
		return nil, err
	}

	if opts.verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %.2fs",
			clip.SampleRate, clip.SourceChannels, clip.BitDepth, clip.Duration())
	}

	d, err := downsampler.New(&downsampler.Config{
		SourceRate: float64(clip.SampleRate),
		TargetRate: float64(opts.targetRate),
		Method:     opts.method,
	})
	if err != nil {
		if errors.Is(err, downsampler.ErrInvalidRate) {
			return nil, fmt.Errorf("cannot convert %s: %w", opts.inputPath, err)
		}
		return nil, err
	}

	if opts.verbose {
		info := d.GetInfo()
		log.Printf("Filter: %d taps, cutoff %g Hz, DC gain %.4f, latency %d samples",
			info.FilterLength, info.Cutoff, info.DCGain, info.Latency)
		log.Printf("SIMD: %s", info.SIMDType)
	}

	output, err := d.Process(clip.Samples)
	if err != nil {
		return nil, fmt.Errorf("downsampling failed: %w", err)
	}

	if opts.analyze {
		logDominant("input", clip.Samples, float64(clip.SampleRate))
		logDominant("output", output, float64(opts.targetRate))
	}

	bitDepth := opts.bitDepth
	if bitDepth == 0 {
		bitDepth = audiofile.OutputBitDepth(clip.BitDepth)
	}

	if err := audiofile.Save(opts.outputPath, output, opts.targetRate, bitDepth); err != nil {
		return nil, err
	}

	return &downsampleStats{
		inputRate:     clip.SampleRate,
		outputRate:    opts.targetRate,
		channels:      clip.SourceChannels,
		bitDepth:      bitDepth,
		inputSamples:  len(clip.Samples),
		outputSamples: len(output),
	}, nil
}

func logDominant(label string, samples []float64, sampleRate float64) {
	s := spectrum.Analyze(samples, sampleRate)
	log.Printf("Spectrum (%s): dominant %.1f Hz, Nyquist %g Hz, resolution %.2f Hz",
		label, s.DominantFrequency(), s.Nyquist(), s.BinWidth)
}
