package audiofile

import "errors"

var (
	// ErrUnsupportedFormat is returned for file types without a decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidFile is returned when a file does not match its container format.
	ErrInvalidFile = errors.New("invalid audio file")

	// ErrInvalidBitDepth is returned when encoding to an unsupported PCM bit depth.
	ErrInvalidBitDepth = errors.New("unsupported PCM bit depth")
)
