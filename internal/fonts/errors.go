package fonts

import "errors"

// Sentinel errors for font operations.
var (
	// ErrFontNotFound indicates no font file exists for the requested name.
	ErrFontNotFound = errors.New("font not found")

	// ErrFontLoad indicates the fallback chain is exhausted: neither the
	// requested font nor the built-in default could be loaded.
	ErrFontLoad = errors.New("no usable font")

	// ErrInvalidFontName indicates the font name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidFontName = errors.New("invalid font name")

	// ErrInvalidFontsDir indicates the configured fonts directory is not a
	// valid, readable directory.
	ErrInvalidFontsDir = errors.New("invalid fonts directory")
)
