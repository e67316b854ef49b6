package fonts

import "fmt"

// Resolver chains a directory loader with the built-in fallback face.
// The chain branches on failure/success only, never on the failure kind:
// any primary failure, not-found or otherwise, routes to the fallback
// tier. Each tier is attempted exactly once per call.
type Resolver struct {
	primary Loader // nil if no fonts directory configured
	builtin Loader
}

// NewResolver creates a Resolver. If fontsDir is empty, only the built-in
// face is served. Returns ErrInvalidFontsDir if fontsDir is set but
// invalid.
func NewResolver(fontsDir string) (*Resolver, error) {
	r := &Resolver{builtin: NewBuiltinLoader()}

	if fontsDir != "" {
		dirLoader, err := NewDirLoader(fontsDir)
		if err != nil {
			return nil, err
		}
		r.primary = dirLoader
	}

	return r, nil
}

// Load resolves name through the fallback chain. A nil error always comes
// with a usable font; inspect Font.Tier to detect a degraded result.
// Returns ErrFontLoad only when both tiers are exhausted.
func (r *Resolver) Load(name string) (*Font, error) {
	if r.primary != nil {
		font, err := r.primary.Load(name)
		if err == nil {
			return font, nil
		}
	}

	font, err := r.builtin.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q and the built-in face both failed: %v", ErrFontLoad, name, err)
	}
	return font, nil
}

// HasFontsDir returns true if a fonts directory is configured.
func (r *Resolver) HasFontsDir() bool {
	return r.primary != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
