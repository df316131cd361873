package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	downsampler "github.com/tphakala/go-audio-downsampler"
	"github.com/tphakala/go-audio-downsampler/internal/audiofile"
)

func writeSineWAV(t *testing.T, path string, rate, numSamples int, freq float64) {
	t.Helper()
	samples := make([]float64, numSamples)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	require.NoError(t, audiofile.Save(path, samples, rate, 16))
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    downsampler.ConvolutionMethod
		wantErr bool
	}{
		{"", downsampler.ConvolutionAuto, false},
		{"auto", downsampler.ConvolutionAuto, false},
		{"DIRECT", downsampler.ConvolutionDirect, false},
		{"fft", downsampler.ConvolutionFFT, false},
		{"polyphase", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMethod(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetRateHz(t *testing.T) {
	assert.Equal(t, 22050, targetRateHz(22.05))
	assert.Equal(t, 44100, targetRateHz(44.1))
	assert.Equal(t, 16000, targetRateHz(16))
	assert.Equal(t, 8000, targetRateHz(8))
}

func TestDownsampleFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.wav")
	outputPath := filepath.Join(tmpDir, "output.wav")
	writeSineWAV(t, inputPath, 44100, 4410, 1000)

	stats, err := downsampleFile(options{
		inputPath:  inputPath,
		outputPath: outputPath,
		targetRate: 22050,
		analyze:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, 44100, stats.inputRate)
	assert.Equal(t, 22050, stats.outputRate)
	assert.Equal(t, 1, stats.channels)
	assert.Equal(t, 16, stats.bitDepth)
	assert.Equal(t, 4410, stats.inputSamples)
	assert.Equal(t, 2205, stats.outputSamples)

	clip, err := audiofile.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, 22050, clip.SampleRate)
	assert.Len(t, clip.Samples, 2205)
}

func TestDownsampleFile_OverrideBitDepth(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.wav")
	outputPath := filepath.Join(tmpDir, "output.wav")
	writeSineWAV(t, inputPath, 48000, 4800, 440)

	stats, err := downsampleFile(options{
		inputPath:  inputPath,
		outputPath: outputPath,
		targetRate: 16000,
		method:     downsampler.ConvolutionFFT,
		bitDepth:   24,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, stats.bitDepth)
	assert.Equal(t, 1600, stats.outputSamples)

	clip, err := audiofile.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, 24, clip.BitDepth)
}

func TestDownsampleFile_RejectsUpsampling(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input.wav")
	writeSineWAV(t, inputPath, 22050, 2205, 1000)

	_, err := downsampleFile(options{
		inputPath:  inputPath,
		outputPath: filepath.Join(tmpDir, "output.wav"),
		targetRate: 44100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, downsampler.ErrInvalidRate)
	assert.NoFileExists(t, filepath.Join(tmpDir, "output.wav"))
}

func TestDownsampleFile_MissingInput(t *testing.T) {
	_, err := downsampleFile(options{
		inputPath:  "/nonexistent/file.wav",
		outputPath: filepath.Join(t.TempDir(), "output.wav"),
		targetRate: 16000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestDownsampleFile_UnsupportedExtension(t *testing.T) {
	_, err := downsampleFile(options{
		inputPath:  "input.flac",
		outputPath: filepath.Join(t.TempDir(), "output.wav"),
		targetRate: 16000,
	})
	require.ErrorIs(t, err, audiofile.ErrUnsupportedFormat)
}

// TestDownsampleFile_8BitInputWrites16Bit verifies an 8-bit source is
// written at 16 bits when no output depth is requested.
func TestDownsampleFile_8BitInputWrites16Bit(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "input_u8.wav")
	outputPath := filepath.Join(tmpDir, "output.wav")

	f, err := os.Create(inputPath)
	require.NoError(t, err)
	data := make([]int, 4410)
	for i := range data {
		data[i] = 128 + int(math.Round(64*math.Sin(2*math.Pi*1000*float64(i)/44100)))
	}
	enc := wav.NewEncoder(f, 44100, 8, 1, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 8,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	stats, err := downsampleFile(options{
		inputPath:  inputPath,
		outputPath: outputPath,
		targetRate: 22050,
	})
	require.NoError(t, err)
	assert.Equal(t, 16, stats.bitDepth)
	assert.Equal(t, 2205, stats.outputSamples)

	clip, err := audiofile.Load(outputPath)
	require.NoError(t, err)
	assert.Equal(t, 16, clip.BitDepth)
	assert.Len(t, clip.Samples, 2205)
}
