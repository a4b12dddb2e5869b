package color

import (
	"fmt"
	"math"
	"strconv"
)

// ToHex converts any value to Hex. A Hex input is returned unchanged.
func ToHex(v Value) (Hex, error) {
	switch c := v.(type) {
	case Hex:
		return c, nil
	case RGBA:
		return RGBAToHex(c)
	case HSLA:
		return HSLAToHex(c)
	default:
		return Hex{}, unsupportedTypeError(v)
	}
}

// ToRGBA converts any value to RGBA. An RGBA input is returned unchanged.
func ToRGBA(v Value) (RGBA, error) {
	switch c := v.(type) {
	case RGBA:
		return c, nil
	case Hex:
		return HexToRGBA(c)
	case HSLA:
		return HSLAToRGBA(c)
	default:
		return RGBA{}, unsupportedTypeError(v)
	}
}

// ToHSLA converts any value to HSLA. An HSLA input is returned unchanged.
func ToHSLA(v Value) (HSLA, error) {
	switch c := v.(type) {
	case HSLA:
		return c, nil
	case Hex:
		return HexToHSLA(c)
	case RGBA:
		return RGBAToHSLA(c)
	default:
		return HSLA{}, unsupportedTypeError(v)
	}
}

// To converts v to the named format (hex, rgba or hsla, any case).
func To(v Value, format string) (Value, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ToFormat(v, f)
}

// ToFormat converts v to a known format.
func ToFormat(v Value, f Format) (Value, error) {
	switch f {
	case FormatHex:
		return ToHex(v)
	case FormatRGBA:
		return ToRGBA(v)
	case FormatHSLA:
		return ToHSLA(v)
	default:
		return nil, unsupportedFormatError(string(f))
	}
}

// HexToRGBA parses the byte pairs of a hex value. Without an alpha pair the
// result is opaque.
func HexToRGBA(h Hex) (RGBA, error) {
	digits := h.Digits()

	r, err := parseByte(digits[0:2])
	if err != nil {
		return RGBA{}, err
	}
	g, err := parseByte(digits[2:4])
	if err != nil {
		return RGBA{}, err
	}
	b, err := parseByte(digits[4:6])
	if err != nil {
		return RGBA{}, err
	}

	a := 1.0
	if len(digits) == 8 {
		alpha, err := parseByte(digits[6:8])
		if err != nil {
			return RGBA{}, err
		}
		a = float64(alpha) / 255
	}

	return NewRGBA(r, g, b, a)
}

// HexToHSLA goes through RGBA.
func HexToHSLA(h Hex) (HSLA, error) {
	rgba, err := HexToRGBA(h)
	if err != nil {
		return HSLA{}, err
	}
	return RGBAToHSLA(rgba)
}

// RGBAToHex always emits eight lowercase digits, alpha included.
func RGBAToHex(c RGBA) (Hex, error) {
	alpha := int(math.Round(c.a * 255))
	return NewHex(fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, alpha))
}

// RGBAToHSLA derives hue, saturation and lightness from the channel extremes.
func RGBAToHSLA(c RGBA) (HSLA, error) {
	r := float64(c.r) / 255
	g := float64(c.g) / 255
	b := float64(c.b) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	// h/6 can land on exactly 1 after rounding; 360 is outside the hue range.
	if hue == 360 {
		hue = 0
	}

	return NewHSLA(hue, int(math.Round(s*100)), int(math.Round(l*100)), c.a)
}

// HSLAToRGBA evaluates hue2rgb at the three channel offsets.
func HSLAToRGBA(c HSLA) (RGBA, error) {
	s := float64(c.s) / 100
	l := float64(c.l) / 100

	var r, g, b float64
	if s == 0 {
		r = l * 255
		g, b = r, r
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		h := float64(c.h) / 360

		r = hueToRGB(p, q, h+1.0/3) * 255
		g = hueToRGB(p, q, h) * 255
		b = hueToRGB(p, q, h-1.0/3) * 255
	}

	return NewRGBA(int(math.Round(r)), int(math.Round(g)), int(math.Round(b)), c.a)
}

// HSLAToHex goes through RGBA.
func HSLAToHex(c HSLA) (Hex, error) {
	rgba, err := HSLAToRGBA(c)
	if err != nil {
		return Hex{}, err
	}
	return RGBAToHex(rgba)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func parseByte(pair string) (int, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, &Error{Code: ErrCodeInvalidValue, Message: "invalid hex byte", Cause: err}
	}
	return int(v), nil
}
