package color

import "strings"

// Parse sniffs the leading token of a CSS color string and builds the
// matching value. Only rgba(), #hex and hsla() are recognized.
func Parse(css string) (Value, error) {
	switch {
	case strings.HasPrefix(css, "rgba"):
		return RGBAFromCSS(css)
	case strings.HasPrefix(css, "#"):
		return HexFromCSS(css)
	case strings.HasPrefix(css, "hsla"):
		return HSLAFromCSS(css)
	default:
		return nil, unsupportedFormatError(css)
	}
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(css string) Value {
	v, err := Parse(css)
	if err != nil {
		panic(err)
	}
	return v
}
