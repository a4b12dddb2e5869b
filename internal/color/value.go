// Package color implements the validated color values used by palettes:
// Hex, RGBA and HSLA representations, parsing, conversion between them,
// WCAG contrast scoring and a small color wheel.
//
// Values are immutable. Every constructor validates its payload and every
// component change returns a new value, so a Value never carries an
// unvalidated payload.
package color

import (
	"strconv"
	"strings"
)

// Format names a concrete color representation.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGBA Format = "rgba"
	FormatHSLA Format = "hsla"
)

// Formats lists the supported representations in conversion order.
func Formats() []Format {
	return []Format{FormatHex, FormatRGBA, FormatHSLA}
}

// ParseFormat matches a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatHex:
		return FormatHex, nil
	case FormatRGBA:
		return FormatRGBA, nil
	case FormatHSLA:
		return FormatHSLA, nil
	default:
		return "", unsupportedFormatError(name)
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Value is a validated color in one of the supported representations.
// The set of implementations is closed: Hex, RGBA and HSLA.
type Value interface {
	// CSS serializes the value to its canonical CSS syntax.
	CSS() string
	// Format reports the representation of the value.
	Format() Format
	// Clone returns a value carrying the same payload.
	Clone() Value

	sealed()
}

// formatAlpha prints alpha in its shortest form: 1, 0.5, 0.25.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func validAlpha(a float64) bool {
	return a >= 0 && a <= 1
}
