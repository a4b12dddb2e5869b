package color

import (
	"fmt"
	"regexp"
	"strconv"
)

var rgbaPattern = regexp.MustCompile(`(?i)^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(0|0?\.\d+|1(\.0)?)\s*\)$`)

// RGBA is a color with 0-255 integer channels and a 0-1 alpha.
type RGBA struct {
	r, g, b int
	a       float64
}

// NewRGBA validates and builds an RGBA value.
func NewRGBA(r, g, b int, a float64) (RGBA, error) {
	if !ValidateRGBA(r, g, b, a) {
		return RGBA{}, invalidValueError("rgba", map[string]interface{}{"r": r, "g": g, "b": b, "a": a})
	}
	return RGBA{r: r, g: g, b: b, a: a}, nil
}

// RGBAFromCSS parses an rgba(r, g, b, a) CSS string.
func RGBAFromCSS(css string) (RGBA, error) {
	match := rgbaPattern.FindStringSubmatch(css)
	if match == nil {
		return RGBA{}, formatError("RGBA", css)
	}

	r, _ := strconv.Atoi(match[1])
	g, _ := strconv.Atoi(match[2])
	b, _ := strconv.Atoi(match[3])
	a, err := strconv.ParseFloat(match[4], 64)
	if err != nil {
		return RGBA{}, formatError("RGBA", css)
	}

	return NewRGBA(r, g, b, a)
}

// ValidateRGBA reports whether every channel is in 0-255 and alpha in 0-1.
func ValidateRGBA(r, g, b int, a float64) bool {
	return validByte(r) && validByte(g) && validByte(b) && validAlpha(a)
}

func validByte(c int) bool {
	return c >= 0 && c <= 255
}

func (c RGBA) R() int     { return c.r }
func (c RGBA) G() int     { return c.g }
func (c RGBA) B() int     { return c.b }
func (c RGBA) A() float64 { return c.a }

// WithR returns a copy with the red channel replaced.
func (c RGBA) WithR(r int) (RGBA, error) {
	return NewRGBA(r, c.g, c.b, c.a)
}

// WithG returns a copy with the green channel replaced.
func (c RGBA) WithG(g int) (RGBA, error) {
	return NewRGBA(c.r, g, c.b, c.a)
}

// WithB returns a copy with the blue channel replaced.
func (c RGBA) WithB(b int) (RGBA, error) {
	return NewRGBA(c.r, c.g, b, c.a)
}

// WithA returns a copy with alpha replaced.
func (c RGBA) WithA(a float64) (RGBA, error) {
	return NewRGBA(c.r, c.g, c.b, a)
}

// CSS renders rgba(r, g, b, a).
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return c.CSS()
}

// Format implements Value.
func (c RGBA) Format() Format {
	return FormatRGBA
}

// Clone implements Value.
func (c RGBA) Clone() Value {
	return c
}

func (RGBA) sealed() {}
