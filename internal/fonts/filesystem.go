package fonts

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/sfnt"
)

// DirLoader loads TrueType fonts from a directory on the filesystem.
// Implements Loader.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a DirLoader for the given directory.
// Returns ErrInvalidFontsDir if the path is not a valid, readable
// directory.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidFontsDir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontsDir, err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidFontsDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidFontsDir, absDir)
	}

	return &DirLoader{dir: absDir}, nil
}

// Load reads and parses {dir}/{name}.ttf. Name matching is exact and
// case-sensitive; no fuzzy or normalized lookup is performed.
func (d *DirLoader) Load(name string) (*Font, error) {
	if err := validateFontName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(d.dir, name+".ttf")
	data, err := os.ReadFile(path) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q in %s", ErrFontNotFound, name, d.dir)
		}
		return nil, fmt.Errorf("reading font %q: %w", name, err)
	}

	program, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %q: %w", name, err)
	}

	return &Font{Name: name, Data: data, Program: program, Tier: TierPrimary}, nil
}

// Compile-time interface check.
var _ Loader = (*DirLoader)(nil)
