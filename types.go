package docx2pdf

import (
	"golang.org/x/image/font/sfnt"
)

// RGB is a normalized color value with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Relationship is one id→target mapping from the document's relationship
// part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Font is a loaded, usable font program.
type Font struct {
	// Name is the resolved family name. When Fallback is true this is the
	// built-in family, not the requested name.
	Name string

	// Data is the raw font file.
	Data []byte

	// Program is the parsed font program.
	Program *sfnt.Font

	// Fallback reports that the built-in default face was substituted for
	// the requested font.
	Fallback bool
}

// Diagnostics receives non-fatal degradation notices, such as a font
// falling back to the built-in face. Implementations must be safe for
// concurrent use if the Document is shared across goroutines.
type Diagnostics interface {
	Warnf(format string, args ...any)
}

// nopDiagnostics discards all notices. Used when no collaborator is
// injected so resolution logic never checks for nil.
type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}

// Option configures a Document.
type Option func(*Document)

// WithFontsDir sets the directory searched for {name}.ttf font files.
// Without this option only the built-in face is served.
func WithFontsDir(dir string) Option {
	return func(d *Document) {
		d.fontsDir = dir
	}
}

// WithDiagnostics injects a collaborator for degradation notices.
// Panics if diag is nil (programmer error).
func WithDiagnostics(diag Diagnostics) Option {
	if diag == nil {
		panic("docx2pdf: WithDiagnostics collaborator must not be nil")
	}
	return func(d *Document) {
		d.diag = diag
	}
}
