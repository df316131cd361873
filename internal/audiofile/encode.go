package audiofile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM = 1
	monoChannels = 1

	bitDepth16 = 16
	bitDepth24 = 24
	bitDepth32 = 32
)

// Save writes samples as a mono PCM WAV file at path.
func Save(path string, samples []float64, sampleRate, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return Encode(f, samples, sampleRate, bitDepth)
}

// Encode writes samples as a mono PCM WAV stream. Samples are clamped to
// [-1, 1] and rounded to the nearest integer code.
func Encode(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if !validBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Data:           quantize(samples, bitDepth),
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	// Close finalizes the RIFF header sizes
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// OutputBitDepth returns sourceDepth if Encode can write it and the
// default 16-bit depth otherwise (e.g. for 8-bit sources).
func OutputBitDepth(sourceDepth int) int {
	if validBitDepth(sourceDepth) {
		return sourceDepth
	}
	return defaultBitDepth
}

func validBitDepth(bitDepth int) bool {
	switch bitDepth {
	case bitDepth16, bitDepth24, bitDepth32:
		return true
	default:
		return false
	}
}

// quantize converts normalized samples to signed integer codes.
func quantize(samples []float64, bitDepth int) []int {
	scale := fullScale(bitDepth)
	maxVal := scale - 1
	minVal := -scale

	out := make([]int, len(samples))
	for i, s := range samples {
		v := math.Round(s * scale)
		out[i] = int(math.Max(minVal, math.Min(maxVal, v)))
	}
	return out
}
