// Package fonts resolves font names to loaded font programs.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── DirLoader      - loads .ttf files from a directory on disk
//	    ├── BuiltinLoader  - serves the embedded Go Regular face
//	    └── Resolver       - chains both: directory first, built-in fallback
//
// Resolver is the primary loader. It tries the configured directory first
// and falls back to the built-in face on any failure, reporting through
// Font.Tier which stage satisfied the request. Each stage is attempted
// exactly once per call.
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Tier identifies which stage of the fallback chain produced a font.
type Tier int

const (
	// TierPrimary means the requested font was found in the fonts
	// directory.
	TierPrimary Tier = iota

	// TierFallback means the built-in default face was substituted.
	TierFallback
)

// String returns the tier name for diagnostics.
func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Font is a loaded, usable font program, as opposed to a file path.
type Font struct {
	// Name is the family name the font was requested under. For fallback
	// fonts this is the built-in family, not the requested name.
	Name string

	// Data is the raw sfnt font file.
	Data []byte

	// Program is the parsed font program.
	Program *sfnt.Font

	// Tier records which stage of the fallback chain was satisfied.
	Tier Tier
}

// Loader resolves a font name to a loaded font program.
// Implementations may load from a directory, embedded data, etc.
type Loader interface {
	// Load resolves name to a font program.
	// Returns ErrFontNotFound if no font exists under that name, and
	// ErrInvalidFontName if the name contains invalid characters.
	Load(name string) (*Font, error)
}

// validateFontName checks that a font name is safe for use as a filename.
// Matching is exact and case-sensitive; names carry no extension.
func validateFontName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFontName)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidFontName, name)
	}
	return nil
}
