package color

import (
	"strings"
)

// Hex is a hexadecimal color such as #3366cc or #3366cc80.
// The payload is kept as supplied; shorthand and a missing '#' are accepted.
type Hex struct {
	value string
}

// NewHex validates and wraps a hex payload.
func NewHex(value string) (Hex, error) {
	if !ValidateHex(value) {
		return Hex{}, invalidValueError("hex", value)
	}
	return Hex{value: value}, nil
}

// MustHex is NewHex for compile-time constants. It panics on invalid input.
func MustHex(value string) Hex {
	h, err := NewHex(value)
	if err != nil {
		panic(err)
	}
	return h
}

// HexFromCSS parses a hex CSS string.
func HexFromCSS(css string) (Hex, error) {
	if !ValidateHex(css) {
		return Hex{}, formatError("hex", css)
	}
	return Hex{value: css}, nil
}

// ValidateHex reports whether value is 3, 4, 6 or 8 hex digits with an optional leading '#'.
func ValidateHex(value string) bool {
	digits := expandHex(value)
	if len(digits) != 6 && len(digits) != 8 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return true
}

// expandHex strips a leading '#' and doubles each digit of 3/4-digit shorthand.
func expandHex(value string) string {
	value = strings.TrimPrefix(value, "#")
	if len(value) != 3 && len(value) != 4 {
		return value
	}
	var b strings.Builder
	b.Grow(len(value) * 2)
	for i := 0; i < len(value); i++ {
		b.WriteByte(value[i])
		b.WriteByte(value[i])
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Value returns the raw payload.
func (h Hex) Value() string {
	return h.value
}

// Digits returns the payload normalized to 6 or 8 digits without '#'.
func (h Hex) Digits() string {
	return expandHex(h.value)
}

// CSS returns the payload with a leading '#'.
func (h Hex) CSS() string {
	if strings.HasPrefix(h.value, "#") {
		return h.value
	}
	return "#" + h.value
}

// String implements fmt.Stringer.
func (h Hex) String() string {
	return h.CSS()
}

// Format implements Value.
func (h Hex) Format() Format {
	return FormatHex
}

// Clone implements Value.
func (h Hex) Clone() Value {
	return Hex{value: h.value}
}

func (Hex) sealed() {}
