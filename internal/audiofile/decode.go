// Package audiofile loads audio files into mono float64 buffers and writes
// mono PCM WAV files.
//
// Decoded samples are normalized to [-1, 1]. Multi-channel sources are mixed
// down to mono by averaging each frame.
package audiofile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

const (
	// go-mp3 always produces 16-bit little-endian interleaved stereo
	mp3Channels       = 2
	mp3BytesPerSample = 2
	mp3BitDepth       = 16

	// Nominal depth reported for Vorbis, which decodes to float
	vorbisBitDepth = 16

	defaultBitDepth = 16

	wavUnsignedBitDepth = 8
	wavUnsignedOffset   = 128
)

// Clip is a decoded mono audio buffer with its source properties.
type Clip struct {
	// Samples holds the mono signal, normalized to [-1, 1].
	Samples []float64

	// SampleRate of Samples in Hz.
	SampleRate int

	// SourceChannels is the channel count before the mono downmix.
	SourceChannels int

	// BitDepth is the PCM depth of the source (nominal for compressed formats).
	BitDepth int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Clip, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	clip, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return clip, nil
}

// Decode reads a complete stream in the given format.
func Decode(r io.ReadSeeker, format Format) (*Clip, error) {
	switch format {
	case FormatWAV:
		return decodeWAV(r)
	case FormatAIFF:
		return decodeAIFF(r)
	case FormatMP3:
		return decodeMP3(r)
	case FormatVorbis:
		return decodeVorbis(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	// 8-bit WAV PCM is unsigned
	if dec.BitDepth == wavUnsignedBitDepth {
		for i := range buf.Data {
			buf.Data[i] -= wavUnsignedOffset
		}
	}

	return clipFromIntBuffer(buf, int(dec.BitDepth))
}

func decodeAIFF(r io.ReadSeeker) (*Clip, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	return clipFromIntBuffer(buf, int(dec.BitDepth))
}

// clipFromIntBuffer normalizes interleaved integer PCM and mixes it to mono.
func clipFromIntBuffer(buf *audio.IntBuffer, bitDepth int) (*Clip, error) {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: missing format information", ErrInvalidFile)
	}
	if bitDepth == 0 {
		bitDepth = defaultBitDepth
	}

	invMax := 1.0 / fullScale(bitDepth)
	interleaved := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		interleaved[i] = float64(v) * invMax
	}

	return &Clip{
		Samples:        Downmix(interleaved, buf.Format.NumChannels),
		SampleRate:     buf.Format.SampleRate,
		SourceChannels: buf.Format.NumChannels,
		BitDepth:       bitDepth,
	}, nil
}

func decodeMP3(r io.Reader) (*Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	invMax := 1.0 / fullScale(mp3BitDepth)
	interleaved := make([]float64, len(raw)/mp3BytesPerSample)
	for i := range interleaved {
		v := int16(binary.LittleEndian.Uint16(raw[i*mp3BytesPerSample:]))
		interleaved[i] = float64(v) * invMax
	}

	return &Clip{
		Samples:        Downmix(interleaved, mp3Channels),
		SampleRate:     dec.SampleRate(),
		SourceChannels: mp3Channels,
		BitDepth:       mp3BitDepth,
	}, nil
}

func decodeVorbis(r io.Reader) (*Clip, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if format.Channels < 1 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFile)
	}

	interleaved := make([]float64, len(data))
	for i, v := range data {
		interleaved[i] = float64(v)
	}

	return &Clip{
		Samples:        Downmix(interleaved, format.Channels),
		SampleRate:     format.SampleRate,
		SourceChannels: format.Channels,
		BitDepth:       vorbisBitDepth,
	}, nil
}

// Downmix averages each frame of interleaved samples into one mono sample.
// A trailing partial frame is dropped. Mono input is returned as is.
func Downmix(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}

	frames := len(interleaved) / channels
	mono := make([]float64, frames)
	scale := 1.0 / float64(channels)
	for i := range frames {
		var sum float64
		for _, v := range interleaved[i*channels : (i+1)*channels] {
			sum += v
		}
		mono[i] = sum * scale
	}
	return mono
}

// fullScale returns the magnitude of the most negative sample at bitDepth,
// e.g. 32768 for 16-bit PCM.
func fullScale(bitDepth int) float64 {
	return float64(uint64(1) << (bitDepth - 1))
}
