// Package colors parses document color tokens into normalized RGB values.
//
// A token is exactly one of: the literal "auto" (rendered as black by
// convention), a recognized named constant, or a 3- or 6-digit hexadecimal
// triplet with an optional leading '#'. Parsing is pure: no state, no I/O.
package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidFormat indicates the token is neither "auto", a recognized
// color name, nor a valid hex triplet. The offending token is carried in
// the error message so callers can report it verbatim.
var ErrInvalidFormat = errors.New("invalid color format")

// RGB is a normalized color value with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Black is the value "auto" resolves to.
var Black = RGB{0, 0, 0}

// named is the finite, case-sensitive table of recognized color names.
// Both lower- and upper-case forms are listed, matching the constant set
// the upstream document format draws on.
var named = map[string]RGB{
	"black":     {0, 0, 0},
	"blue":      {0, 0, 255},
	"cyan":      {0, 255, 255},
	"darkGray":  {64, 64, 64},
	"gray":      {128, 128, 128},
	"green":     {0, 255, 0},
	"lightGray": {192, 192, 192},
	"magenta":   {255, 0, 255},
	"orange":    {255, 200, 0},
	"pink":      {255, 175, 175},
	"red":       {255, 0, 0},
	"white":     {255, 255, 255},
	"yellow":    {255, 255, 0},

	"BLACK":      {0, 0, 0},
	"BLUE":       {0, 0, 255},
	"CYAN":       {0, 255, 255},
	"DARK_GRAY":  {64, 64, 64},
	"GRAY":       {128, 128, 128},
	"GREEN":      {0, 255, 0},
	"LIGHT_GRAY": {192, 192, 192},
	"MAGENTA":    {255, 0, 255},
	"ORANGE":     {255, 200, 0},
	"PINK":       {255, 175, 175},
	"RED":        {255, 0, 0},
	"WHITE":      {255, 255, 255},
	"YELLOW":     {255, 255, 0},
}

// hexPattern accepts an optional '#' followed by exactly 3 or 6 hex digits.
var hexPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}){1,2}$`)

// Parse converts a color token to its normalized RGB value.
// Rules, in order: the exact literal "auto" yields black; a case-sensitive
// named constant yields its table value; otherwise the token must be a hex
// triplet. 3-digit triplets expand by channel doubling (abc → aabbcc).
// Anything else fails with ErrInvalidFormat.
func Parse(token string) (RGB, error) {
	if token == "auto" {
		return Black, nil
	}

	if c, ok := named[token]; ok {
		return c, nil
	}

	if !hexPattern.MatchString(token) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, token)
	}

	hex := token
	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	r := parseChannel(hex[0:2])
	g := parseChannel(hex[2:4])
	b := parseChannel(hex[4:6])
	return RGB{R: r, G: g, B: b}, nil
}

// parseChannel converts two hex digits to a channel value. The input is
// already validated against hexPattern, so parsing cannot fail.
func parseChannel(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}
