package docx2pdf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alnah/go-docx2pdf/internal/colors"
	"github.com/alnah/go-docx2pdf/internal/container"
	"github.com/alnah/go-docx2pdf/internal/fonts"
	"github.com/alnah/go-docx2pdf/internal/rels"
)

// Compile-time interface implementation checks.
var (
	_ fonts.Loader = (*fonts.DirLoader)(nil)
	_ fonts.Loader = (*fonts.BuiltinLoader)(nil)
	_ fonts.Loader = (*fonts.Resolver)(nil)
	_ Diagnostics  = nopDiagnostics{}
)

// Document is an open handle onto one source file's resources. Create
// with Open, resolve resources with the accessor methods, and Close when
// the document's processing pass is finished.
//
// The relationship table is built on the first call that needs it and is
// read-only afterwards; a Document is safe for concurrent reads once that
// first call has returned.
type Document struct {
	pkg      *container.Package
	fontsDir string
	fonts    *fonts.Resolver
	diag     Diagnostics

	relsOnce sync.Once
	relTable *rels.Table
	relErr   error
}

// Open opens the container at path and prepares its resolvers.
// Returns ErrContainerUnreadable if the file is missing or not a valid
// archive, and ErrInvalidFontsDir if WithFontsDir names an unusable
// directory.
func Open(path string, opts ...Option) (*Document, error) {
	d := &Document{diag: nopDiagnostics{}}
	for _, opt := range opts {
		opt(d)
	}

	resolver, err := fonts.NewResolver(d.fontsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontsDir, err)
	}
	d.fonts = resolver

	pkg, err := container.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContainerUnreadable, err)
	}
	d.pkg = pkg

	return d, nil
}

// Close releases the container handle.
func (d *Document) Close() error {
	return d.pkg.Close()
}

// Body returns the document body part (word/document.xml).
func (d *Document) Body() ([]byte, error) {
	data, err := d.pkg.Document()
	if err != nil {
		return nil, wrapEntryError(err)
	}
	return data, nil
}

// ReadEntry returns the bytes of an arbitrary named entry.
func (d *Document) ReadEntry(name string) ([]byte, error) {
	data, err := d.pkg.ReadEntry(name)
	if err != nil {
		return nil, wrapEntryError(err)
	}
	return data, nil
}

// Image returns an embedded image by base name, per the media convention:
// the name is lower-cased and the .png extension appended before lookup.
func (d *Document) Image(name string) ([]byte, error) {
	data, err := d.pkg.Media(name)
	if err != nil {
		return nil, wrapEntryError(err)
	}
	return data, nil
}

// Hyperlink resolves a relationship id to its target, e.g. the URL behind
// a hyperlink reference in the body. Returns ErrRelationshipNotFound for
// unknown ids and ErrRelationshipParse if the relationship part cannot be
// read or parsed.
func (d *Document) Hyperlink(id string) (string, error) {
	table, err := d.relationships()
	if err != nil {
		return "", err
	}
	target, err := table.Resolve(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrRelationshipNotFound, id)
	}
	return target, nil
}

// Relationships returns all entries of the document's relationship part
// in document order.
func (d *Document) Relationships() ([]Relationship, error) {
	table, err := d.relationships()
	if err != nil {
		return nil, err
	}
	entries := table.All()
	out := make([]Relationship, len(entries))
	for i, e := range entries {
		out[i] = Relationship{ID: e.ID, Type: e.Type, Target: e.Target}
	}
	return out, nil
}

// relationships builds the relationship table on first use. The table and
// any build failure are cached for the document's lifetime.
func (d *Document) relationships() (*rels.Table, error) {
	d.relsOnce.Do(func() {
		data, err := d.pkg.Relationships()
		if err != nil {
			d.relErr = fmt.Errorf("%w: %v", ErrRelationshipParse, err)
			return
		}
		table, err := rels.Parse(data)
		if err != nil {
			d.relErr = fmt.Errorf("%w: %v", ErrRelationshipParse, err)
			return
		}
		d.relTable = table
	})
	return d.relTable, d.relErr
}

// Font resolves a font name through the fallback chain: exact
// case-sensitive {fontsDir}/{name}.ttf first, then the built-in face. A
// substitution is reported through the Diagnostics collaborator and the
// returned Font.Fallback flag. Returns ErrFontLoad only when both tiers
// fail.
func (d *Document) Font(name string) (*Font, error) {
	font, err := d.fonts.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	if font.Tier == fonts.TierFallback {
		d.diag.Warnf("font %q not usable, substituting %s", name, font.Name)
	}
	return &Font{
		Name:     font.Name,
		Data:     font.Data,
		Program:  font.Program,
		Fallback: font.Tier == fonts.TierFallback,
	}, nil
}

// ParseColor converts a color token to its normalized RGB value. Accepts
// the literal "auto" (black), a case-sensitive named constant, or a 3- or
// 6-digit hex triplet with optional '#' prefix. Returns
// ErrInvalidColorFormat otherwise.
func ParseColor(token string) (RGB, error) {
	c, err := colors.Parse(token)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, token)
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// wrapEntryError translates container errors to the public sentinels.
// An invalid media name resolves to no entry, so it surfaces as
// ErrEntryNotFound like any other miss.
func wrapEntryError(err error) error {
	if errors.Is(err, container.ErrEntryNotFound) || errors.Is(err, container.ErrInvalidEntryName) {
		return fmt.Errorf("%w: %v", ErrEntryNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrContainerUnreadable, err)
}
