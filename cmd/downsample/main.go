// Command downsample converts an audio file to a lower sample rate and
// writes the result as a mono WAV file.
//
// Usage:
//
//	downsample -rate 16 input.wav output.wav
//	downsample -rate 22.05 -analyze music.mp3 music_22k.wav
//	downsample -rate 8 -method fft -bits 16 speech.ogg speech_8k.wav
//
// WAV, AIFF, MP3 and Ogg Vorbis inputs are supported. Multi-channel inputs
// are mixed down to mono before downsampling.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

const (
	// CLI defaults
	defaultRateKHz  = 16.0
	minRequiredArgs = 2

	// Conversion constants
	kHzToHz = 1000
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 8, 16, 22.05, 44.1)")
	method := flag.String("method", "auto", "Convolution method: auto, direct, fft")
	bits := flag.Int("bits", 0, "Output bit depth: 16, 24 or 32 (0 keeps the input depth)")
	analyze := flag.Bool("analyze", false, "Log the dominant frequency before and after downsampling")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -rate 16 speech.wav speech_16k.wav    # Downsample for speech recognition\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 8 call.mp3 call_8k.wav          # Telephony rate\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 22.05 -analyze in.ogg out.wav  # Report spectral peaks\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	convMethod, err := parseMethod(*method)
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	opts := options{
		inputPath:  args[0],
		outputPath: args[1],
		targetRate: targetRateHz(*rateKHz),
		method:     convMethod,
		bitDepth:   *bits,
		analyze:    *analyze,
		verbose:    *verbose,
	}

	if opts.verbose {
		log.Printf("Input: %s", opts.inputPath)
		log.Printf("Output: %s", opts.outputPath)
		log.Printf("Target rate: %d Hz", opts.targetRate)
		log.Printf("Method: %s", opts.method)
	}

	start := time.Now()
	stats, err := downsampleFile(opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Downsampled %s -> %s\n", filepath.Base(opts.inputPath), filepath.Base(opts.outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d source channels, %d-bit)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.inputRate)/elapsed.Seconds())

	return nil
}
