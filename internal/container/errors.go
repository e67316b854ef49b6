package container

import "errors"

// Sentinel errors for container operations.
var (
	// ErrContainerUnreadable indicates the file could not be opened or is
	// not a valid zip archive.
	ErrContainerUnreadable = errors.New("container unreadable")

	// ErrEntryNotFound indicates the named entry does not exist in the
	// container.
	ErrEntryNotFound = errors.New("entry not found in container")

	// ErrInvalidEntryName indicates the requested name contains characters
	// that would escape the media naming convention, such as path
	// separators or dots.
	ErrInvalidEntryName = errors.New("invalid entry name")

	// ErrEntryTooLarge indicates the entry exceeds MaxEntrySize when
	// decompressed.
	ErrEntryTooLarge = errors.New("entry exceeds maximum size")
)
