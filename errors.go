package docx2pdf

import "errors"

// Sentinel errors for resource resolution.
var (
	// ErrContainerUnreadable indicates the source file could not be opened
	// or is not a valid document container.
	ErrContainerUnreadable = errors.New("container unreadable")

	// ErrEntryNotFound indicates a named entry is missing from the
	// container.
	ErrEntryNotFound = errors.New("entry not found in container")

	// ErrRelationshipParse indicates the relationship part is malformed.
	ErrRelationshipParse = errors.New("malformed relationship part")

	// ErrRelationshipNotFound indicates no relationship exists for the
	// requested id.
	ErrRelationshipNotFound = errors.New("relationship not found")

	// ErrFontLoad indicates the font fallback chain is exhausted: neither
	// the requested font nor the built-in face could be loaded.
	ErrFontLoad = errors.New("no usable font")

	// ErrInvalidColorFormat indicates a color token is neither "auto", a
	// recognized name, nor a valid hex triplet.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidFontsDir indicates the configured fonts directory is not a
	// valid, readable directory.
	ErrInvalidFontsDir = errors.New("invalid fonts directory")
)
