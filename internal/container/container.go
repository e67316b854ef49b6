// Package container reads logical entries out of a WordprocessingML
// package, a zip archive holding the document body, its relationship part,
// and embedded media under fixed conventional paths.
//
// A Package may be held open and reused across reads within one document's
// processing; the package-level ReadEntry helper opens, reads, and closes
// in a single call for one-shot access. Neither form retains state between
// calls.
package container

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// Conventional entry paths inside a WordprocessingML package.
const (
	DocumentPath      = "word/document.xml"
	RelationshipsPath = "word/_rels/document.xml.rels"

	mediaDir = "word/media/"
	mediaExt = ".png"
)

// MaxEntrySize caps the decompressed size of a single entry read.
// Guards against decompression bombs in hostile containers.
var MaxEntrySize = int64(64 << 20)

// Package is an open handle onto a document container. It owns the
// underlying file descriptor until Close is called and is safe to reuse
// for multiple reads of the same document.
type Package struct {
	reader *zip.ReadCloser
	path   string
}

// Open opens the container at path. Returns ErrContainerUnreadable if the
// file cannot be opened or is not a valid zip archive.
func Open(path string) (*Package, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrContainerUnreadable, path, err)
	}
	return &Package{reader: r, path: path}, nil
}

// Close releases the container's file descriptor.
func (p *Package) Close() error {
	return p.reader.Close()
}

// Path returns the filesystem path the container was opened from.
func (p *Package) Path() string {
	return p.path
}

// ReadEntry returns the decompressed bytes of the named entry.
// Returns ErrEntryNotFound if no entry with that exact name exists, and
// ErrEntryTooLarge if the entry decompresses past MaxEntrySize.
func (p *Package) ReadEntry(name string) ([]byte, error) {
	for _, f := range p.reader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %v", ErrContainerUnreadable, name, err)
		}
		defer rc.Close()

		// Read one byte past the cap to detect oversized entries.
		data, err := io.ReadAll(io.LimitReader(rc, MaxEntrySize+1))
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrContainerUnreadable, name, err)
		}
		if int64(len(data)) > MaxEntrySize {
			return nil, fmt.Errorf("%w: %q", ErrEntryTooLarge, name)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
}

// Document returns the document body part (word/document.xml).
func (p *Package) Document() ([]byte, error) {
	return p.ReadEntry(DocumentPath)
}

// Relationships returns the raw relationship part
// (word/_rels/document.xml.rels).
func (p *Package) Relationships() ([]byte, error) {
	return p.ReadEntry(RelationshipsPath)
}

// Media returns an embedded image by base name. The name is lower-cased
// and the fixed .png extension appended before lookup, per the media
// naming convention; other media types are not served.
func (p *Package) Media(name string) ([]byte, error) {
	if err := validateMediaName(name); err != nil {
		return nil, err
	}
	return p.ReadEntry(mediaDir + strings.ToLower(name) + mediaExt)
}

// ReadEntry opens the container at path, reads the named entry, and closes
// the container again. The handle is released on every exit path.
func ReadEntry(path, name string) ([]byte, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ReadEntry(name)
}

// validateMediaName checks that a media base name is safe to splice into
// the media path convention. Returns ErrInvalidEntryName if the name is
// empty or contains path separators or dots.
func validateMediaName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntryName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidEntryName, name)
	}
	return nil
}
