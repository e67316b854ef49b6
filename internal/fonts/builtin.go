package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FallbackFamily is the family name of the built-in default face served
// when a requested font cannot be loaded.
const FallbackFamily = "Go Regular"

// BuiltinLoader serves the embedded Go Regular face regardless of the
// requested name. It is the system-independent last resort of the
// fallback chain. Implements Loader.
type BuiltinLoader struct {
	once    sync.Once
	program *sfnt.Font
	err     error
}

// NewBuiltinLoader creates a BuiltinLoader. The embedded face is parsed
// lazily on first use and cached for the loader's lifetime.
func NewBuiltinLoader() *BuiltinLoader {
	return &BuiltinLoader{}
}

// Load returns the built-in default face. The requested name is ignored;
// the returned Font carries FallbackFamily and TierFallback so callers can
// surface the substitution.
func (b *BuiltinLoader) Load(string) (*Font, error) {
	b.once.Do(func() {
		b.program, b.err = sfnt.Parse(goregular.TTF)
	})
	if b.err != nil {
		return nil, fmt.Errorf("parsing built-in face: %w", b.err)
	}
	return &Font{
		Name:    FallbackFamily,
		Data:    goregular.TTF,
		Program: b.program,
		Tier:    TierFallback,
	}, nil
}

// Compile-time interface check.
var _ Loader = (*BuiltinLoader)(nil)
