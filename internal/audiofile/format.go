package audiofile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an audio container.
type Format int

const (
	// FormatWAV is RIFF WAVE PCM.
	FormatWAV Format = iota

	// FormatAIFF is Audio Interchange File Format PCM.
	FormatAIFF

	// FormatMP3 is MPEG-1/2 Layer III.
	FormatMP3

	// FormatVorbis is Vorbis in an Ogg container.
	FormatVorbis
)

// String returns the conventional file extension of the format, without the dot.
func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatAIFF:
		return "aiff"
	case FormatMP3:
		return "mp3"
	case FormatVorbis:
		return "ogg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".aif", ".aiff":
		return FormatAIFF, nil
	case ".mp3":
		return FormatMP3, nil
	case ".ogg", ".oga":
		return FormatVorbis, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
