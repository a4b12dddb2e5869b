package color

import (
	"fmt"
	"regexp"
	"strconv"
)

var hslaPattern = regexp.MustCompile(`(?i)^hsla\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*,\s*(0|0?\.\d+|1(\.0)?)\s*\)$`)

// HSLA is a color with hue in [0,360), saturation and lightness in [0,100]
// percent, and alpha in [0,1].
type HSLA struct {
	h, s, l int
	a       float64
}

// NewHSLA validates and builds an HSLA value.
func NewHSLA(h, s, l int, a float64) (HSLA, error) {
	if !ValidateHSLA(h, s, l, a) {
		return HSLA{}, invalidValueError("hsla", map[string]interface{}{"h": h, "s": s, "l": l, "a": a})
	}
	return HSLA{h: h, s: s, l: l, a: a}, nil
}

// HSLAFromCSS parses an hsla(h, s%, l%, a) CSS string.
func HSLAFromCSS(css string) (HSLA, error) {
	match := hslaPattern.FindStringSubmatch(css)
	if match == nil {
		return HSLA{}, formatError("HSLA", css)
	}

	h, _ := strconv.Atoi(match[1])
	s, _ := strconv.Atoi(match[2])
	l, _ := strconv.Atoi(match[3])
	a, err := strconv.ParseFloat(match[4], 64)
	if err != nil {
		return HSLA{}, formatError("HSLA", css)
	}

	return NewHSLA(h, s, l, a)
}

// ValidateHSLA checks the HSLA ranges. The hue upper bound is exclusive.
func ValidateHSLA(h, s, l int, a float64) bool {
	if h < 0 || h >= 360 {
		return false
	}
	if s < 0 || s > 100 {
		return false
	}
	if l < 0 || l > 100 {
		return false
	}
	return validAlpha(a)
}

func (c HSLA) H() int     { return c.h }
func (c HSLA) S() int     { return c.s }
func (c HSLA) L() int     { return c.l }
func (c HSLA) A() float64 { return c.a }

// WithH returns a copy with the hue replaced.
func (c HSLA) WithH(h int) (HSLA, error) {
	return NewHSLA(h, c.s, c.l, c.a)
}

// WithS returns a copy with the saturation replaced.
func (c HSLA) WithS(s int) (HSLA, error) {
	return NewHSLA(c.h, s, c.l, c.a)
}

// WithL returns a copy with the lightness replaced.
func (c HSLA) WithL(l int) (HSLA, error) {
	return NewHSLA(c.h, c.s, l, c.a)
}

// WithA returns a copy with alpha replaced.
func (c HSLA) WithA(a float64) (HSLA, error) {
	return NewHSLA(c.h, c.s, c.l, a)
}

// CSS renders hsla(h, s%, l%, a).
func (c HSLA) CSS() string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", c.h, c.s, c.l, formatAlpha(c.a))
}

// String implements fmt.Stringer.
func (c HSLA) String() string {
	return c.CSS()
}

// Format implements Value.
func (c HSLA) Format() Format {
	return FormatHSLA
}

// Clone implements Value.
func (c HSLA) Clone() Value {
	return c
}

func (HSLA) sealed() {}
