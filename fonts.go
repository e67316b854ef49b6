package docx2pdf

import (
	"fmt"

	"github.com/alnah/go-docx2pdf/internal/fonts"
)

// FallbackFontFamily is the family name of the built-in face substituted
// when a requested font cannot be loaded.
const FallbackFontFamily = fonts.FallbackFamily

// LoadFont resolves a font name against a search directory without an open
// document: exact case-sensitive {fontsDir}/{name}.ttf first, then the
// built-in face. An empty fontsDir serves the built-in face directly.
// Returns ErrInvalidFontsDir for an unusable directory and ErrFontLoad
// when both tiers fail.
//
// Documents opened with WithFontsDir resolve the same way through
// (*Document).Font, with degradation notices routed to their Diagnostics
// collaborator.
func LoadFont(name, fontsDir string) (*Font, error) {
	resolver, err := fonts.NewResolver(fontsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontsDir, err)
	}
	font, err := resolver.Load(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}
	return &Font{
		Name:     font.Name,
		Data:     font.Data,
		Program:  font.Program,
		Fallback: font.Tier == fonts.TierFallback,
	}, nil
}
